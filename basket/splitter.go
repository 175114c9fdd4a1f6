// SPDX-License-Identifier: MIT

package basket

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/basketsplit/setcover"
)

// Recorder observes finished splits, e.g. to export metrics.
type Recorder interface {
	RecordSplit(stats Stats)
}

// Stats summarizes one Split call.
type Stats struct {
	Products   int           // basket size
	Categories int           // distinct categories in the basket
	Groups     int           // delivery groups in the result
	Nodes      int           // search nodes visited
	Elapsed    time.Duration // wall-clock time of the call
	Err        error         // nil on success
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithLogger sets the logger used for debug traces. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Splitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSearchOptions passes budget options to every cover search.
func WithSearchOptions(opts ...setcover.Option) Option {
	return func(s *Splitter) {
		s.search = append(s.search, opts...)
	}
}

// WithRecorder installs a Recorder notified after every split.
func WithRecorder(r Recorder) Option {
	return func(s *Splitter) {
		s.recorder = r
	}
}

// Splitter partitions baskets into delivery groups. It is immutable after
// construction and safe for concurrent use.
type Splitter struct {
	cfg        *Config
	categoryOf map[string]string              // product -> category
	serves     map[string]map[string]struct{} // label -> categories

	logger   *slog.Logger
	search   []setcover.Option
	recorder Recorder
}

// NewSplitter loads the configuration at path and builds a Splitter.
// Errors wrap ErrConfigNotFound or ErrConfigInvalid.
func NewSplitter(path string, opts ...Option) (*Splitter, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return NewSplitterFromConfig(cfg, opts...)
}

// NewSplitterFromConfig builds a Splitter from an in-memory configuration.
func NewSplitterFromConfig(cfg *Config, opts ...Option) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Splitter{
		cfg:        cfg,
		categoryOf: make(map[string]string),
		serves:     make(map[string]map[string]struct{}, len(cfg.Groups)),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for label, categories := range cfg.Groups {
		set := make(map[string]struct{}, len(categories))
		for _, c := range categories {
			set[c] = struct{}{}
			s.categoryOf[c] = c
		}
		s.serves[label] = set
	}
	// Catalog entries take precedence over category names.
	for product, category := range cfg.Catalog {
		s.categoryOf[product] = category
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the configuration the Splitter was built from.
func (s *Splitter) Config() *Config { return s.cfg }

// Split is SplitContext with a background context.
func (s *Splitter) Split(products []string) (map[string][]string, error) {
	return s.SplitContext(context.Background(), products)
}

// SplitContext assigns every product of the basket to exactly one delivery
// group, using as few groups as possible. Products keep their basket order
// inside each group; duplicates are kept. An empty basket yields an empty map.
func (s *Splitter) SplitContext(ctx context.Context, products []string) (map[string][]string, error) {
	start := time.Now()
	stats := Stats{Products: len(products)}
	out, err := s.split(ctx, products, &stats)
	stats.Elapsed = time.Since(start)
	stats.Err = err
	stats.Groups = len(out)
	if s.recorder != nil {
		s.recorder.RecordSplit(stats)
	}
	if err != nil {
		s.logger.Debug("basket split failed", "products", stats.Products, "error", err)
		return nil, err
	}
	s.logger.Debug("basket split",
		"products", stats.Products,
		"categories", stats.Categories,
		"groups", stats.Groups,
		"nodes", stats.Nodes,
		"elapsed", stats.Elapsed,
	)

	return out, nil
}

// split does the work of SplitContext and fills stats along the way.
func (s *Splitter) split(ctx context.Context, products []string, stats *Stats) (map[string][]string, error) {
	// 1. Resolve every product to its category.
	categories := make([]string, len(products))
	var unknown []string
	for i, p := range products {
		c, ok := s.categoryOf[p]
		if !ok {
			unknown = append(unknown, p)
			continue
		}
		categories[i] = c
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, lo.Uniq(unknown))
	}
	if len(products) == 0 {
		return map[string][]string{}, nil
	}

	// 2. Build the instance: distinct basket categories and the groups
	// restricted to them.
	universe := lo.Uniq(categories)
	stats.Categories = len(universe)
	family := make(map[string][]string)
	for label, served := range s.serves {
		items := lo.Filter(universe, func(c string, _ int) bool {
			_, ok := served[c]
			return ok
		})
		if len(items) > 0 {
			family[label] = items
		}
	}
	solver := setcover.FromMap(universe, family)

	// 3. Search for the best cover.
	better := setcover.Compose(
		setcover.BySize[string](),
		s.byLargestGroup(categories),
		setcover.ByDescriptors[string](),
	)
	opts := append(slices.Clone(s.search), setcover.WithContext(ctx))
	res, err := solver.Search(better, opts...)
	stats.Nodes = res.Nodes
	if err != nil {
		return nil, fmt.Errorf("basket: split %d products: %w", len(products), err)
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: no group serves %q", ErrNoDeliveryGroup, solver.Uncoverable())
	}

	// 4. Hand out the products.
	return s.assign(res.Cover, products, categories), nil
}

// byLargestGroup prefers the cover whose biggest group, after assignment,
// holds more products.
func (s *Splitter) byLargestGroup(categories []string) setcover.Order[string] {
	products := make([]string, len(categories))
	return func(a, b setcover.Cover[string]) int {
		return cmp.Compare(largest(s.assign(b, products, categories)), largest(s.assign(a, products, categories)))
	}
}

// assign repeatedly gives the group serving most of the still unassigned
// products all of them. Ties go to the label that sorts first.
func (s *Splitter) assign(cover setcover.Cover[string], products, categories []string) map[string][]string {
	var (
		out      = make(map[string][]string, len(cover))
		taken    = make([]bool, len(products))
		open     = slices.Sorted(slices.Values(cover))
		left     = len(products)
		bestIdx  int
		bestHits int
	)
	for left > 0 && len(open) > 0 {
		bestIdx, bestHits = -1, 0
		for i, label := range open {
			if hits := s.count(label, categories, taken); hits > bestHits {
				bestIdx, bestHits = i, hits
			}
		}
		if bestIdx < 0 {
			break
		}
		label := open[bestIdx]
		served := s.serves[label]
		for i, c := range categories {
			if _, ok := served[c]; ok && !taken[i] {
				taken[i] = true
				out[label] = append(out[label], products[i])
				left--
			}
		}
		open = slices.Delete(open, bestIdx, bestIdx+1)
	}

	return out
}

// count returns how many untaken products label serves.
func (s *Splitter) count(label string, categories []string, taken []bool) int {
	served := s.serves[label]
	var n int
	for i, c := range categories {
		if _, ok := served[c]; ok && !taken[i] {
			n++
		}
	}

	return n
}

// largest returns the size of the biggest group.
func largest(groups map[string][]string) int {
	return lo.Max(lo.Map(lo.Values(groups), func(g []string, _ int) int { return len(g) }))
}
