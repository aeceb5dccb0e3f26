package jsonfile

import (
	"time"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

type fileSchema struct {
	SessionID     string                        `json:"session_id"`
	Interactions  []interactionSchema           `json:"interactions"`
	SharedState   map[string]string             `json:"shared_state"`
	PatternMemory map[string]patternStatsSchema `json:"pattern_memory"`
}

type interactionSchema struct {
	ID             string   `json:"id"`
	Timestamp      string   `json:"timestamp"`
	AgentName      string   `json:"agent_name"`
	InputPrompt    string   `json:"input_prompt"`
	OutputText     string   `json:"output_text"`
	Confidence     float64  `json:"confidence"`
	ToolsUsed      []string `json:"tools_used,omitempty"`
	ExecutionTime  float64  `json:"execution_time"`
	PatternApplied string   `json:"pattern_applied,omitempty"`
}

type patternStatsSchema struct {
	UsageCount    int     `json:"usage_count"`
	SuccessCount  int     `json:"success_count"`
	LastUsed      string  `json:"last_used,omitempty"`
	AvgConfidence float64 `json:"avg_confidence"`
}

func toSchema(memory domain.Memory) fileSchema {
	file := fileSchema{
		SessionID:     string(memory.SessionID),
		Interactions:  make([]interactionSchema, 0, len(memory.Interactions)),
		SharedState:   map[string]string{},
		PatternMemory: map[string]patternStatsSchema{},
	}

	for _, record := range memory.Interactions {
		tools := make([]string, 0, len(record.ToolsUsed))
		for _, tool := range record.ToolsUsed {
			tools = append(tools, string(tool))
		}

		file.Interactions = append(file.Interactions, interactionSchema{
			ID:             string(record.ID),
			Timestamp:      formatTime(record.Timestamp),
			AgentName:      string(record.AgentName),
			InputPrompt:    record.InputPrompt,
			OutputText:     record.OutputText,
			Confidence:     record.Confidence,
			ToolsUsed:      tools,
			ExecutionTime:  record.ExecutionTime.Seconds(),
			PatternApplied: string(record.PatternApplied),
		})
	}

	for key, value := range memory.SharedState {
		file.SharedState[key] = value
	}

	for name, stats := range memory.PatternMemory {
		file.PatternMemory[string(name)] = patternStatsSchema{
			UsageCount:    stats.UsageCount,
			SuccessCount:  stats.SuccessCount,
			LastUsed:      formatTime(stats.LastUsed),
			AvgConfidence: stats.AvgConfidence,
		}
	}

	return file
}

func fromSchema(file fileSchema) domain.Memory {
	memory := domain.Memory{
		SessionID:     domain.SessionID(file.SessionID),
		SharedState:   make(domain.SharedState, len(file.SharedState)),
		PatternMemory: make(map[domain.PatternName]domain.PatternStats, len(file.PatternMemory)),
	}

	for _, entry := range file.Interactions {
		tools := make([]domain.ToolName, 0, len(entry.ToolsUsed))
		for _, tool := range entry.ToolsUsed {
			tools = append(tools, domain.ToolName(tool))
		}
		if len(tools) == 0 {
			tools = nil
		}

		memory.Interactions = append(memory.Interactions, domain.InteractionRecord{
			ID:             domain.InteractionID(entry.ID),
			Timestamp:      parseTime(entry.Timestamp),
			AgentName:      domain.AgentName(entry.AgentName),
			InputPrompt:    entry.InputPrompt,
			OutputText:     entry.OutputText,
			Confidence:     entry.Confidence,
			ToolsUsed:      tools,
			ExecutionTime:  time.Duration(entry.ExecutionTime * float64(time.Second)),
			PatternApplied: domain.PatternName(entry.PatternApplied),
		})
	}

	for key, value := range file.SharedState {
		memory.SharedState[key] = value
	}

	for name, stats := range file.PatternMemory {
		memory.PatternMemory[domain.PatternName(name)] = domain.PatternStats{
			UsageCount:    stats.UsageCount,
			SuccessCount:  stats.SuccessCount,
			LastUsed:      parseTime(stats.LastUsed),
			AvgConfidence: stats.AvgConfidence,
		}
	}

	return memory
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
