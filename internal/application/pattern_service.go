package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/patterns"
)

// PatternService exposes the pattern catalog: listing, usage statistics and
// promotion of high-confidence runs into custom patterns.
type PatternService struct {
	registry *patterns.Registry
	promoter *patterns.Promoter
	store    *ContextStore
	logger   *zap.Logger
}

// PromoteReport summarizes one promotion pass.
type PromoteReport struct {
	Promoted []domain.PatternEntry
	Quality  patterns.QualityStats
}

func NewPatternService(registry *patterns.Registry, promoter *patterns.Promoter, store *ContextStore, logger *zap.Logger) *PatternService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PatternService{
		registry: registry,
		promoter: promoter,
		store:    store,
		logger:   logger,
	}
}

// List returns the catalog in registration order.
func (s *PatternService) List() []domain.PatternEntry {
	return s.registry.List()
}

// ListByCategory filters the catalog by metadata category.
func (s *PatternService) ListByCategory(category domain.PatternCategory) []domain.PatternEntry {
	return s.registry.ListByCategory(category)
}

// Rankings returns all patterns sorted by success rate then usage.
func (s *PatternService) Rankings() []patterns.Ranking {
	return s.registry.Rankings()
}

// TopPatterns returns the best-performing patterns, at most limit entries.
func (s *PatternService) TopPatterns(limit int) []patterns.Ranking {
	return s.registry.TopPatterns(limit)
}

// StatsFor returns the counters of one pattern; the pattern must exist.
func (s *PatternService) StatsFor(name domain.PatternName) (domain.PatternStats, error) {
	if _, err := s.registry.Get(name); err != nil {
		return domain.PatternStats{}, err
	}

	return s.registry.StatsFor(name), nil
}

// Promote converts every recorded run above the promotion threshold into a
// custom pattern and persists the catalog additions.
func (s *PatternService) Promote(ctx context.Context) (PromoteReport, error) {
	memory := s.store.Memory()
	quality := s.promoter.AnalyzeQuality(memory)

	promoted, err := s.promoter.Promote(ctx, memory)
	if err != nil {
		return PromoteReport{Promoted: promoted, Quality: quality}, fmt.Errorf("promote patterns: %w", err)
	}

	s.logger.Info("pattern promotion finished",
		zap.Int("promoted", len(promoted)),
		zap.Int("total_runs", quality.TotalRuns))

	return PromoteReport{Promoted: promoted, Quality: quality}, nil
}
