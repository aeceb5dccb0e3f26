package patternfile

import (
	"fmt"
	"time"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Patterns []patternSchema `toml:"patterns"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported patterns schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type patternSchema struct {
	Name                string         `toml:"name"`
	Type                string         `toml:"type"`
	Agent               string         `toml:"agent"`
	Tools               []string       `toml:"tools,omitempty"`
	Keywords            []string       `toml:"keywords,omitempty"`
	Enhancement         string         `toml:"enhancement"`
	ConfidenceThreshold float64        `toml:"confidence_threshold"`
	FallbackPatterns    []string       `toml:"fallback_patterns,omitempty"`
	Metadata            metadataSchema `toml:"metadata"`
}

type metadataSchema struct {
	Category string   `toml:"category"`
	Tags     []string `toml:"tags,omitempty"`
	Created  string   `toml:"created"`
	Version  string   `toml:"version"`
	Custom   bool     `toml:"custom"`
}

func toSchema(entry domain.PatternEntry) patternSchema {
	tools := make([]string, 0, len(entry.Tools))
	for _, tool := range entry.Tools {
		tools = append(tools, string(tool))
	}

	fallbacks := make([]string, 0, len(entry.FallbackPatterns))
	for _, fallback := range entry.FallbackPatterns {
		fallbacks = append(fallbacks, string(fallback))
	}

	return patternSchema{
		Name:                string(entry.Name),
		Type:                string(entry.Type),
		Agent:               string(entry.Agent),
		Tools:               tools,
		Keywords:            entry.Keywords,
		Enhancement:         entry.Enhancement,
		ConfidenceThreshold: entry.ConfidenceThreshold,
		FallbackPatterns:    fallbacks,
		Metadata: metadataSchema{
			Category: string(entry.Metadata.Category),
			Tags:     entry.Metadata.Tags,
			Created:  formatTime(entry.Metadata.Created),
			Version:  entry.Metadata.Version,
			Custom:   entry.Metadata.Custom,
		},
	}
}

func fromSchema(entry patternSchema) domain.PatternEntry {
	var tools []domain.ToolName
	for _, tool := range entry.Tools {
		tools = append(tools, domain.ToolName(tool))
	}

	var fallbacks []domain.PatternName
	for _, fallback := range entry.FallbackPatterns {
		fallbacks = append(fallbacks, domain.PatternName(fallback))
	}

	return domain.PatternEntry{
		Name:                domain.PatternName(entry.Name),
		Type:                domain.PatternType(entry.Type),
		Agent:               domain.AgentName(entry.Agent),
		Tools:               tools,
		Keywords:            entry.Keywords,
		Enhancement:         entry.Enhancement,
		ConfidenceThreshold: entry.ConfidenceThreshold,
		FallbackPatterns:    fallbacks,
		Metadata: domain.PatternMetadata{
			Category: domain.PatternCategory(entry.Metadata.Category),
			Tags:     entry.Metadata.Tags,
			Created:  parseTime(entry.Metadata.Created),
			Version:  entry.Metadata.Version,
			Custom:   entry.Metadata.Custom,
		},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
