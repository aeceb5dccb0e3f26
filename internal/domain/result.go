package domain

import "time"

// AgentResult is the structured outcome of a single agent run.
type AgentResult struct {
	Agent         AgentName
	Input         string
	Output        string
	Confidence    float64
	ExecutionTime time.Duration
	ToolsUsed     []ToolName
	SharedState   SharedState
}

// Recommendation is a single scored suggestion emitted by a tool run.
type Recommendation struct {
	Type        string
	Title       string
	Description string
	Priority    string
	Confidence  float64
}

// ToolResult is the outcome of a tool sub-step; Analysis carries the rendered
// report section that the invoking agent appends to its own output.
type ToolResult struct {
	Tool            ToolName
	Analysis        string
	Recommendations []Recommendation
	Confidence      float64
	ExecutionTime   time.Duration
}

// PipelineStep pairs an agent with its result inside a pipeline run.
type PipelineStep struct {
	Agent  AgentName
	Result AgentResult
}

// PipelineResult collects the outcome of a sequential pipeline. On a step
// failure Failed names the agent and Err carries the message; Steps holds the
// completed prefix.
type PipelineResult struct {
	Start       time.Time
	End         time.Time
	Sequence    []AgentName
	Steps       []PipelineStep
	FinalOutput string
	Elapsed     time.Duration
	Failed      AgentName
	Err         string
}
