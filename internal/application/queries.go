package application

import "github.com/fusionkit/fusion-cli/internal/domain"

// PatternRun is the outcome of a pattern-routed execution.
type PatternRun struct {
	Pattern      domain.PatternName
	UsedFallback bool
	Result       domain.AgentResult
}

type AgentInfo struct {
	Name        domain.AgentName
	Description string
}

type ToolInfo struct {
	Name        domain.ToolName
	Description string
}

type PatternStatus struct {
	Name  domain.PatternName
	Type  domain.PatternType
	Agent domain.AgentName
	Stats domain.PatternStats
}

// Status is the data behind the status dashboard.
type Status struct {
	Settings  Settings
	SessionID domain.SessionID
	Agents    []AgentInfo
	Tools     []ToolInfo
	Patterns  []PatternStatus
	Memory    domain.MemoryStats
}
