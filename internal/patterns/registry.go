package patterns

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

// Registry owns the pattern catalog and its usage counters. RecordUsage is
// the only path that mutates counters.
type Registry struct {
	patterns map[domain.PatternName]domain.PatternEntry
	stats    map[domain.PatternName]*domain.PatternStats
	order    []domain.PatternName
	clock    ports.Clock
	logger   *zap.Logger
}

// Ranking pairs a pattern with its usage counters for reporting.
type Ranking struct {
	Name  domain.PatternName
	Stats domain.PatternStats
}

// NewRegistry returns a registry seeded with the default catalog.
func NewRegistry(clock ports.Clock, logger *zap.Logger) *Registry {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{
		patterns: make(map[domain.PatternName]domain.PatternEntry),
		stats:    make(map[domain.PatternName]*domain.PatternStats),
		clock:    clock,
		logger:   logger,
	}
	for _, entry := range Defaults(clock.Now()) {
		if err := r.Register(entry); err != nil {
			// The default catalog is static and always valid.
			panic(err)
		}
	}

	return r
}

// Register adds or updates a pattern. Updating keeps existing counters.
func (r *Registry) Register(entry domain.PatternEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("register pattern %q: %w", entry.Name, err)
	}
	entry.NormalizeFallbacks()

	if _, exists := r.patterns[entry.Name]; exists {
		r.logger.Debug("pattern already exists, updating",
			zap.String("pattern", string(entry.Name)))
	} else {
		r.order = append(r.order, entry.Name)
		r.stats[entry.Name] = &domain.PatternStats{}
	}
	r.patterns[entry.Name] = entry

	return nil
}

// Get returns the named pattern or an error wrapping
// domain.ErrPatternNotFound.
func (r *Registry) Get(name domain.PatternName) (domain.PatternEntry, error) {
	entry, ok := r.patterns[name]
	if !ok {
		return domain.PatternEntry{}, fmt.Errorf("pattern %q: %w", name, domain.ErrPatternNotFound)
	}

	return entry, nil
}

// List returns all patterns in registration order.
func (r *Registry) List() []domain.PatternEntry {
	entries := make([]domain.PatternEntry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, r.patterns[name])
	}

	return entries
}

// ListByCategory filters the catalog by metadata category.
func (r *Registry) ListByCategory(category domain.PatternCategory) []domain.PatternEntry {
	var entries []domain.PatternEntry
	for _, name := range r.order {
		if entry := r.patterns[name]; entry.Metadata.Category == category {
			entries = append(entries, entry)
		}
	}

	return entries
}

// RecordUsage folds one application into the pattern's counters. Counters
// exist even for names registered after the usage was recorded.
func (r *Registry) RecordUsage(name domain.PatternName, confidence float64, success bool) {
	stats, ok := r.stats[name]
	if !ok {
		stats = &domain.PatternStats{}
		r.stats[name] = stats
	}
	stats.Record(confidence, success, r.clock.Now())

	r.logger.Info("recorded pattern usage",
		zap.String("pattern", string(name)),
		zap.Float64("confidence", confidence),
		zap.Bool("success", success))
}

// StatsFor returns a copy of the pattern's counters, zero counters for
// unknown names.
func (r *Registry) StatsFor(name domain.PatternName) domain.PatternStats {
	stats, ok := r.stats[name]
	if !ok {
		return domain.PatternStats{}
	}

	return *stats
}

// SeedStats primes the counters from persisted pattern memory.
func (r *Registry) SeedStats(seed map[domain.PatternName]domain.PatternStats) {
	for name, stats := range seed {
		s := stats
		r.stats[name] = &s
	}
}

// ResetStats zeroes every counter, used when memory is cleared.
func (r *Registry) ResetStats() {
	for name := range r.stats {
		r.stats[name] = &domain.PatternStats{}
	}
}

// StatsSnapshot exports every non-zero counter for persistence.
func (r *Registry) StatsSnapshot() map[domain.PatternName]domain.PatternStats {
	snapshot := make(map[domain.PatternName]domain.PatternStats)
	for name, stats := range r.stats {
		if stats.UsageCount == 0 {
			continue
		}
		snapshot[name] = *stats
	}

	return snapshot
}

// Rankings sorts all patterns by success rate then usage count, descending.
// Ties keep registration order.
func (r *Registry) Rankings() []Ranking {
	rankings := make([]Ranking, 0, len(r.order))
	for _, name := range r.order {
		rankings = append(rankings, Ranking{Name: name, Stats: r.StatsFor(name)})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		a, b := rankings[i].Stats, rankings[j].Stats
		if a.SuccessRate() != b.SuccessRate() {
			return a.SuccessRate() > b.SuccessRate()
		}

		return a.UsageCount > b.UsageCount
	})

	return rankings
}

// TopPatterns returns the best-performing patterns, at most limit entries.
func (r *Registry) TopPatterns(limit int) []Ranking {
	rankings := r.Rankings()
	if limit >= 0 && limit < len(rankings) {
		rankings = rankings[:limit]
	}

	return rankings
}
