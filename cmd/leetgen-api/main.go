// @title         leetgen API
// @version       0.1.0
// @description   Expands words into every leetspeak variant allowed by a substitution dictionary

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leetgen/internal/platform/config"
	"leetgen/internal/platform/logger"
	phttp "leetgen/internal/platform/net/http"
	"leetgen/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	// mount our API; the expand module reads CORE_EXPAND_* from the root view
	mods, err := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			MaxInFlight:    apiCfg.MayInt("MAX_INFLIGHT", 0),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)
	if err != nil {
		l.Fatal().Err(err).Msg("mount api")
	}
	for _, m := range mods {
		l.Info().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("module mounted")
	}

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
