package application

import "github.com/fusionkit/fusion-cli/internal/domain"

// Settings is the slice of configuration the application layer acts on.
type Settings struct {
	Version         string
	Entry           string
	ConfigPath      string
	MaxPromptTokens int
	ToolsEnabled    bool
	GithubPush      bool
	AsyncMode       bool
	MemoryEnabled   bool
	PatternFallback bool
	AutoCommit      bool
}

type RunAgentCommand struct {
	Agent domain.AgentName
	Input string
	Tools []domain.ToolName
}

type RunPipelineCommand struct {
	Input    string
	Sequence []domain.AgentName
}
