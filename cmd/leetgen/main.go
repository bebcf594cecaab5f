// Command leetgen prints every leetspeak variant of the words given as arguments or on stdin
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"leetgen/internal/core/dictpack"
	"leetgen/internal/core/normalize"
	"leetgen/internal/core/version"
	"leetgen/internal/platform/config/raw"
	"leetgen/internal/platform/logger"
	pstrings "leetgen/internal/platform/strings"

	"leetgen/internal/services/expand/domain"
	expandsvc "leetgen/internal/services/expand/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit; returns the exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("leetgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dictPath    = fs.String("dict", "", "dictionary pack (.json, .yaml, .yml) layered over the default pack")
		noDefault   = fs.Bool("no-default", false, "do not layer over the default pack")
		parallel    = fs.Bool("parallel", false, "expand words concurrently")
		workers     = fs.Int("workers", 0, "with -parallel, max words in flight (0 = one goroutine per word)")
		normalize   = fs.Bool("normalize", false, "fold case, width and invisible marks before expanding")
		countOnly   = fs.Bool("count", false, "print variant counts instead of variants")
		asJSON      = fs.Bool("json", false, "print one JSON document instead of lines")
		verify      = fs.Bool("verify", false, "exit 1 unless every variant folds back to its word (default pack lookalikes)")
		dump        = fs.String("dump", "", "print the effective dictionary as json or yaml and exit")
		verbose     = fs.Bool("v", false, "debug logging on stderr")
		showVersion = fs.Bool("version", false, "print build info and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	initLogger(stderr, *verbose)
	log := logger.Named("cli")

	if *showVersion {
		return writeJSON(stdout, version.For("leetgen"))
	}

	pack, err := dictpack.Resolve(*dictPath, *noDefault)
	if err != nil {
		log.Error().Err(err).Str("dict", *dictPath).Msg("load dictionary")
		return 1
	}

	if *dump != "" {
		data, err := pack.Encode(dictpack.Format(strings.ToLower(*dump)))
		if err != nil {
			log.Error().Err(err).Msg("dump dictionary")
			return 2
		}
		if _, err := stdout.Write(data); err != nil {
			return 1
		}
		return 0
	}

	words := fs.Args()
	if len(words) == 0 {
		words, err = readWords(stdin)
		if err != nil {
			log.Error().Err(err).Msg("read stdin")
			return 1
		}
	}

	strategy := domain.StrategySequential
	if *parallel {
		strategy = domain.StrategyParallel
	}
	svc := expandsvc.New(pack, expandsvc.Config{Workers: *workers, Strategy: strategy})
	in := domain.ExpandInput{Words: words, Strategy: strategy, Normalize: *normalize}
	ctx := context.Background()

	if *countOnly {
		res, err := svc.Count(ctx, in)
		if err != nil {
			log.Error().Err(err).Msg("count")
			return 1
		}
		if *asJSON {
			return writeJSON(stdout, res)
		}
		return writeCounts(stdout, res)
	}

	res, err := svc.Expand(ctx, in)
	if err != nil {
		log.Error().Err(err).Msg("expand")
		return 1
	}
	var code int
	if *asJSON {
		code = writeJSON(stdout, res)
	} else {
		code = writeLines(stdout, res.Variants)
	}
	if *verify && foldMismatches(log, res) > 0 {
		return 1
	}
	return code
}

// foldMismatches logs every variant whose Fold differs from its word's Fold and
// returns how many there were. Only the default pack's lookalikes fold back
func foldMismatches(log *logger.Logger, res domain.ExpandResult) int {
	bad, off := 0, 0
	for _, c := range res.Counts {
		want := normalize.Fold(c.Word)
		for _, v := range res.Variants[off : off+c.Count] {
			if got := normalize.Fold(v); got != want {
				bad++
				log.Warn().Str("word", c.Word).Str("variant", v).Str("folded", got).Msg("variant does not fold back")
			}
		}
		off += c.Count
	}
	return bad
}

// initLogger points the process logger at stderr; warn level unless -v or LOG_LEVEL says otherwise
func initLogger(stderr io.Writer, verbose bool) {
	opts := logger.FromEnv()
	opts.Writer = stderr
	opts.Component = "leetgen"
	switch {
	case verbose:
		opts.Level = "debug"
	case raw.New().Get("LOG_LEVEL", "") == "":
		opts.Level = "warn"
	}
	logger.Init(opts)
}

// readWords reads one word per line, skipping blank lines
func readWords(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pstrings.NonBlank(lines), nil
}

func writeLines(w io.Writer, lines []string) int {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		_, _ = bw.WriteString(l)
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return 1
	}
	return 0
}

func writeCounts(w io.Writer, res domain.CountResult) int {
	bw := bufio.NewWriter(w)
	for _, c := range res.Counts {
		fmt.Fprintf(bw, "%s\t%d\n", c.Word, c.Count)
	}
	fmt.Fprintf(bw, "total\t%d\n", res.Total)
	if err := bw.Flush(); err != nil {
		return 1
	}
	return 0
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return 1
	}
	return 0
}
