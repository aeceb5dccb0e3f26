package domain

import (
	"fmt"
	"strings"
	"time"
)

type PatternName string
type PatternType string
type PatternCategory string

const (
	PatternTypePromptEnhancement PatternType = "prompt_enhancement"
	PatternTypeToolEnhancement   PatternType = "tool_enhancement"
	PatternTypeAgentEnhancement  PatternType = "agent_enhancement"
)

// PatternEntry describes a keyword-triggered enhancement template targeting
// one agent. Built-in entries live in internal/patterns; custom entries come
// from patterns.toml.
type PatternEntry struct {
	Name                PatternName
	Type                PatternType
	Agent               AgentName
	Tools               []ToolName
	Keywords            []string
	Enhancement         string
	ConfidenceThreshold float64
	FallbackPatterns    []PatternName
	Metadata            PatternMetadata
}

type PatternMetadata struct {
	Category PatternCategory
	Tags     []string
	Created  time.Time
	Version  string
	Custom   bool
}

// PatternStats carries the running usage counters for one pattern. Mutated
// only through the registry's RecordUsage path.
type PatternStats struct {
	UsageCount    int
	SuccessCount  int
	LastUsed      time.Time
	AvgConfidence float64
}

// SuccessRate returns SuccessCount/UsageCount, 0 for unused patterns.
func (s PatternStats) SuccessRate() float64 {
	if s.UsageCount == 0 {
		return 0
	}

	return float64(s.SuccessCount) / float64(s.UsageCount)
}

// Record folds one application into the counters, keeping AvgConfidence a
// running mean.
func (s *PatternStats) Record(confidence float64, success bool, at time.Time) {
	s.UsageCount++
	s.LastUsed = at
	if success {
		s.SuccessCount++
	}

	n := float64(s.UsageCount)
	s.AvgConfidence = ((s.AvgConfidence * (n - 1)) + confidence) / n
}

func (p PatternEntry) Validate() error {
	if strings.TrimSpace(string(p.Name)) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(string(p.Agent)) == "" {
		return fmt.Errorf("agent is required")
	}
	switch p.Type {
	case PatternTypePromptEnhancement, PatternTypeToolEnhancement, PatternTypeAgentEnhancement:
	default:
		return fmt.Errorf("unsupported pattern type %q", p.Type)
	}
	if p.ConfidenceThreshold < 0 || p.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold %v outside [0,1]", p.ConfidenceThreshold)
	}

	return nil
}

func (p *PatternEntry) NormalizeFallbacks() {
	if p == nil {
		return
	}

	fallbacks := make([]PatternName, 0, len(p.FallbackPatterns))
	seen := make(map[PatternName]struct{}, len(p.FallbackPatterns))
	for _, fallback := range p.FallbackPatterns {
		trimmed := PatternName(strings.TrimSpace(string(fallback)))
		if trimmed == "" || trimmed == p.Name {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		fallbacks = append(fallbacks, trimmed)
	}

	p.FallbackPatterns = fallbacks
}

// EnhancePrompt appends the pattern's enhancement text to the input prompt.
func (p PatternEntry) EnhancePrompt(input string) string {
	if strings.TrimSpace(p.Enhancement) == "" {
		return input
	}

	return input + "\n\n" + p.Enhancement
}
