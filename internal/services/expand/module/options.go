package module

import (
	"leetgen/internal/platform/config"
	"leetgen/internal/services/expand/domain"
	expandsvc "leetgen/internal/services/expand/service"
)

// Options is the CORE_EXPAND_* configuration
type Options struct {
	DictPath   string
	NoDefault  bool // DictPath alone instead of layered over the default pack; no path means an empty pack
	Workers    int
	MaxResults int
	MaxWords   int
	Strategy   domain.Strategy
	Normalize  bool
	// MaxInFlight caps concurrent requests to the leet routes; 0 is no cap
	MaxInFlight int
}

// FromConfig reads Options from the CORE_EXPAND_ keys under cfg
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_EXPAND_")
	return Options{
		DictPath:   c.MayString("DICT", ""),
		NoDefault:  c.MayBool("NO_DEFAULT", false),
		Workers:    c.MayInt("WORKERS", 0),
		MaxResults: c.MayInt("MAX_RESULTS", 100000),
		MaxWords:   c.MayInt("MAX_WORDS", 0),
		Strategy: domain.Strategy(c.MayEnum("STRATEGY", string(domain.StrategyParallel),
			string(domain.StrategySequential), string(domain.StrategyParallel))),
		Normalize:   c.MayBool("NORMALIZE", false),
		MaxInFlight: c.MayInt("MAX_INFLIGHT", 0),
	}
}

func (o Options) service() expandsvc.Config {
	return expandsvc.Config{
		Workers:    o.Workers,
		MaxResults: o.MaxResults,
		MaxWords:   o.MaxWords,
		Strategy:   o.Strategy,
		Normalize:  o.Normalize,
	}
}
