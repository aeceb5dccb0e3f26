package domain

import "time"

type InteractionID string
type SessionID string
type AgentName string
type ToolName string

// Built-in agent names.
const (
	AgentVPDesign         AgentName = "vp_design"
	AgentEvaluator        AgentName = "evaluator"
	AgentCreativeDirector AgentName = "creative_director"
	AgentPromptMaster     AgentName = "prompt_master"
)

// Built-in tool names.
const (
	ToolUXAudit        ToolName = "ux_audit"
	ToolTrustExplainer ToolName = "trust_explainer"
)

// InteractionRecord is one entry of the context store's append-only log.
// Records are never mutated after creation.
type InteractionRecord struct {
	ID             InteractionID
	Timestamp      time.Time
	AgentName      AgentName
	InputPrompt    string
	OutputText     string
	Confidence     float64
	ToolsUsed      []ToolName
	ExecutionTime  time.Duration
	PatternApplied PatternName
}

// SharedState is the flat last-write-wins key/value mapping agents and tools
// may write during a run.
type SharedState map[string]string

func (s SharedState) Clone() SharedState {
	if s == nil {
		return nil
	}

	clone := make(SharedState, len(s))
	for k, v := range s {
		clone[k] = v
	}

	return clone
}

// Merge applies other on top of s, last write wins.
func (s SharedState) Merge(other SharedState) {
	for k, v := range other {
		s[k] = v
	}
}
