package patterns

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

// DefaultPromotionThreshold is the confidence a run needs to become a
// reusable pattern.
const DefaultPromotionThreshold = 0.95

const promotedNamePrefix = "auto_promoted_"

// Promoter scans interaction history for high-confidence runs and promotes
// them into custom patterns.
type Promoter struct {
	threshold float64
	registry  *Registry
	repo      ports.PatternRepository
	clock     ports.Clock
	logger    *zap.Logger
}

// QualityStats summarises how promotable the interaction history is.
type QualityStats struct {
	TotalRuns      int
	PromotableRuns int
	AvgScore       float64
	PromotionRate  float64
}

func NewPromoter(registry *Registry, repo ports.PatternRepository, clock ports.Clock, logger *zap.Logger) *Promoter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Promoter{
		threshold: DefaultPromotionThreshold,
		registry:  registry,
		repo:      repo,
		clock:     clock,
		logger:    logger,
	}
}

// AnalyzeQuality reports how many recorded runs clear the promotion
// threshold.
func (p *Promoter) AnalyzeQuality(memory domain.Memory) QualityStats {
	stats := QualityStats{TotalRuns: len(memory.Interactions)}
	if stats.TotalRuns == 0 {
		return stats
	}

	var total float64
	for _, record := range memory.Interactions {
		total += record.Confidence
		if record.Confidence >= p.threshold {
			stats.PromotableRuns++
		}
	}
	stats.AvgScore = total / float64(stats.TotalRuns)
	stats.PromotionRate = float64(stats.PromotableRuns) / float64(stats.TotalRuns)

	return stats
}

// Promote turns every promotable run into an auto_promoted custom pattern,
// registers it and persists it. Numbering continues after existing
// promotions so earlier ones are not overwritten.
func (p *Promoter) Promote(ctx context.Context, memory domain.Memory) ([]domain.PatternEntry, error) {
	next := p.countPromoted() + 1

	var promoted []domain.PatternEntry
	for _, record := range memory.Interactions {
		if record.Confidence < p.threshold {
			continue
		}
		prompt := strings.TrimSpace(record.InputPrompt)
		if prompt == "" || strings.TrimSpace(record.OutputText) == "" {
			continue
		}

		entry := domain.PatternEntry{
			Name:                domain.PatternName(fmt.Sprintf("%s%d", promotedNamePrefix, next)),
			Type:                domain.PatternTypePromptEnhancement,
			Agent:               record.AgentName,
			Keywords:            promptKeywords(prompt),
			Enhancement:         prompt,
			ConfidenceThreshold: 0.8,
			Metadata: domain.PatternMetadata{
				Category: "custom",
				Tags:     []string{"auto_promoted"},
				Created:  p.clock.Now(),
				Version:  "1.0",
				Custom:   true,
			},
		}

		if err := p.registry.Register(entry); err != nil {
			return promoted, err
		}
		if err := p.repo.Save(ctx, entry); err != nil {
			return promoted, fmt.Errorf("save promoted pattern %q: %w", entry.Name, err)
		}

		p.logger.Info("promoted interaction to pattern",
			zap.String("pattern", string(entry.Name)),
			zap.String("agent", string(record.AgentName)),
			zap.Float64("confidence", record.Confidence))

		promoted = append(promoted, entry)
		next++
	}

	return promoted, nil
}

// promptKeywords extracts routing keywords from a promoted prompt, dropping
// short filler words.
func promptKeywords(prompt string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(prompt)) {
		if len(word) < 4 {
			continue
		}
		keywords = append(keywords, word)
	}

	return keywords
}

func (p *Promoter) countPromoted() int {
	count := 0
	for _, entry := range p.registry.List() {
		if strings.HasPrefix(string(entry.Name), promotedNamePrefix) {
			count++
		}
	}

	return count
}
