// Package service contains expand workflows
package service

import (
	"context"
	"time"

	"leetgen/internal/core/dictpack"
	"leetgen/internal/core/leet"
	"leetgen/internal/core/normalize"
	perr "leetgen/internal/platform/errors"
	"leetgen/internal/platform/logger"
	"leetgen/internal/services/expand/domain"

	"github.com/google/uuid"
)

// Config for the expand service
type Config struct {
	Workers    int // 0 = one goroutine per word
	MaxResults int // 0 = unlimited
	MaxWords   int // 0 = only the request validator bound applies
	Strategy   domain.Strategy
	Normalize  bool
}

// Service defines the service contract for expand
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Pack *dictpack.Pack
	Norm *normalize.Normalizer
	Cfg  Config
}

// New constructs a new expand service
func New(pack *dictpack.Pack, cfg Config) *Svc {
	if pack == nil {
		panic("expand.Service requires a non nil dictionary pack")
	}
	if cfg.Strategy == "" {
		cfg.Strategy = domain.StrategyParallel
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	return &Svc{Pack: pack, Norm: normalize.New(), Cfg: cfg}
}

// Expand builds the dictionary for in, checks the result cap, then runs the chosen strategy
func (s *Svc) Expand(ctx context.Context, in domain.ExpandInput) (domain.ExpandResult, error) {
	ctx = logger.WithRun(ctx, uuid.NewString())
	dict, words, err := s.prepare(in)
	if err != nil {
		return domain.ExpandResult{}, err
	}
	counts, total := tally(words, dict)
	if s.Cfg.MaxResults > 0 && total > s.Cfg.MaxResults {
		return domain.ExpandResult{}, perr.WithField(
			perr.TooLargef("expansion would produce %d variants, limit is %d", total, s.Cfg.MaxResults), "words")
	}
	if err := ctx.Err(); err != nil {
		return domain.ExpandResult{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "expand cancelled")
	}

	strategy := in.Strategy
	if strategy == "" {
		strategy = s.Cfg.Strategy
	}
	if strategy != domain.StrategySequential {
		strategy = domain.StrategyParallel
	}

	start := time.Now()
	var variants []string
	switch {
	case strategy == domain.StrategySequential:
		variants = leet.Run(words, dict)
	case s.Cfg.Workers > 0:
		variants = leet.RunBounded(words, dict, s.Cfg.Workers)
	default:
		variants = leet.RunParallel(words, dict)
	}

	logger.C(ctx).Debug().
		Int("words", len(words)).
		Int("variants", len(variants)).
		Str("strategy", string(strategy)).
		Dur("elapsed", time.Since(start)).
		Msg("expand done")

	return domain.ExpandResult{
		Variants: variants,
		Counts:   counts,
		Total:    len(variants),
		Strategy: strategy,
	}, nil
}

// Count reports how many variants Expand would return, without the result cap
func (s *Svc) Count(_ context.Context, in domain.ExpandInput) (domain.CountResult, error) {
	dict, words, err := s.prepare(in)
	if err != nil {
		return domain.CountResult{}, err
	}
	counts, total := tally(words, dict)
	return domain.CountResult{Counts: counts, Total: total}, nil
}

// Dictionary describes the loaded pack
func (s *Svc) Dictionary(_ context.Context) domain.DictionaryInfo {
	return domain.DictionaryInfo{
		Name:        s.Pack.Name,
		Version:     s.Pack.Version,
		Description: s.Pack.Description,
		Keys:        s.Pack.Keys(),
		Entries:     s.Pack.Dict.Strings(),
	}
}

// prepare layers request overrides over the pack and applies word normalization
func (s *Svc) prepare(in domain.ExpandInput) (leet.Dictionary, []string, error) {
	if s.Cfg.MaxWords > 0 && len(in.Words) > s.Cfg.MaxWords {
		return nil, nil, perr.WithField(
			perr.Validationf("%d words requested, limit is %d", len(in.Words), s.Cfg.MaxWords), "words")
	}
	base := s.Pack.Dict
	if in.NoDefault {
		base = leet.Dictionary{}
	}
	dict := base
	if len(in.Dictionary) > 0 {
		over, err := leet.FromStrings(in.Dictionary)
		if err != nil {
			return nil, nil, perr.WithOp(err, "dictionary")
		}
		dict = base.Merge(over)
	}
	if err := dict.Validate(); err != nil {
		return nil, nil, perr.WithOp(err, "dictionary")
	}

	words := in.Words
	if in.Normalize || s.Cfg.Normalize {
		words = s.Norm.Words(words)
	}
	return dict, words, nil
}

func tally(words []string, dict leet.Dictionary) ([]domain.WordCount, int) {
	const maxInt = int(^uint(0) >> 1)
	counts := make([]domain.WordCount, len(words))
	total := 0
	for i, w := range words {
		n := leet.Count(w, dict)
		counts[i] = domain.WordCount{Word: w, Count: n}
		if total > maxInt-n {
			total = maxInt
			continue
		}
		total += n
	}
	return counts, total
}
