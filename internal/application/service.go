package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/agents"
	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/patterns"
	"github.com/fusionkit/fusion-cli/internal/ports"
	"github.com/fusionkit/fusion-cli/internal/tools"
)

// fallbackConfidenceFloor is the confidence below which a pattern run walks
// its fallback patterns.
const fallbackConfidenceFloor = 0.8

// Service is the orchestrator: it dispatches prompts to agents, applies
// patterns, and records every run into the context store.
type Service struct {
	agents   *agents.Registry
	tools    *tools.Registry
	patterns *patterns.Registry
	store    *ContextStore
	clock    ports.Clock
	settings Settings
	logger   *zap.Logger
}

type ServiceParams struct {
	Agents   *agents.Registry
	Tools    *tools.Registry
	Patterns *patterns.Registry
	Store    *ContextStore
	Clock    ports.Clock
	Settings Settings
	Logger   *zap.Logger
}

func NewService(params ServiceParams) *Service {
	if params.Clock == nil {
		params.Clock = ports.SystemClock{}
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}

	return &Service{
		agents:   params.Agents,
		tools:    params.Tools,
		patterns: params.Patterns,
		store:    params.Store,
		clock:    params.Clock,
		settings: params.Settings,
		logger:   params.Logger,
	}
}

// AgentNames lists the enabled agents in registration order.
func (s *Service) AgentNames() []domain.AgentName {
	return s.agents.Names()
}

// ExecuteAgent runs one agent over the input and records the interaction.
// A failing agent is recorded with confidence 0.0 and the error propagated.
func (s *Service) ExecuteAgent(ctx context.Context, command RunAgentCommand) (domain.AgentResult, error) {
	input := strings.TrimSpace(command.Input)
	if input == "" {
		return domain.AgentResult{}, domain.ErrEmptyInput
	}

	agent, err := s.agents.Get(command.Agent)
	if err != nil {
		return domain.AgentResult{}, err
	}

	s.warnOnLongPrompt(input)

	result, err := s.runAgent(ctx, agent, input, command.Tools, "")
	if err != nil {
		return domain.AgentResult{}, err
	}

	return result, nil
}

// ExecutePipeline runs the sequence of agents in order, feeding each agent's
// report to the next. A step failure stops the pipeline and is carried in the
// result rather than returned, so partial results survive.
func (s *Service) ExecutePipeline(ctx context.Context, command RunPipelineCommand) (domain.PipelineResult, error) {
	input := strings.TrimSpace(command.Input)
	if input == "" {
		return domain.PipelineResult{}, domain.ErrEmptyInput
	}

	sequence := command.Sequence
	if len(sequence) == 0 {
		sequence = s.agents.Names()
	}

	result := domain.PipelineResult{
		Start:    s.clock.Now(),
		Sequence: sequence,
	}

	current := input
	for _, name := range sequence {
		stepResult, err := s.ExecuteAgent(ctx, RunAgentCommand{Agent: name, Input: current})
		if err != nil {
			s.logger.Warn("pipeline step failed, stopping",
				zap.String("agent", string(name)),
				zap.Error(err))
			result.Failed = name
			result.Err = err.Error()
			break
		}

		result.Steps = append(result.Steps, domain.PipelineStep{Agent: name, Result: stepResult})
		current = stepResult.Output
	}

	if n := len(result.Steps); n > 0 {
		result.FinalOutput = result.Steps[n-1].Result.Output
	}
	result.End = s.clock.Now()
	result.Elapsed = result.End.Sub(result.Start)

	return result, nil
}

// ExecuteWithPatternFallback routes the input to the best-matching pattern
// and walks the pattern's fallbacks when the primary run stays below the
// confidence floor. With the pattern registry disabled it degrades to a
// plain vp_design run.
func (s *Service) ExecuteWithPatternFallback(ctx context.Context, input string) (PatternRun, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return PatternRun{}, domain.ErrEmptyInput
	}

	if !s.settings.PatternFallback {
		result, err := s.ExecuteAgent(ctx, RunAgentCommand{Agent: domain.AgentVPDesign, Input: input})
		return PatternRun{Result: result}, err
	}

	name := patterns.FindBestPattern(input)
	entry, err := s.patterns.Get(name)
	if err != nil {
		return PatternRun{}, err
	}

	s.warnOnLongPrompt(input)

	primary, primaryErr := s.applyPattern(ctx, entry, input)
	if primaryErr == nil && primary.Confidence >= fallbackConfidenceFloor {
		return PatternRun{Pattern: name, Result: primary}, nil
	}

	if primaryErr != nil {
		s.logger.Warn("primary pattern failed, trying fallbacks",
			zap.String("pattern", string(name)),
			zap.Error(primaryErr))
	}

	for _, fallbackName := range entry.FallbackPatterns {
		fallback, err := s.patterns.Get(fallbackName)
		if err != nil {
			s.logger.Warn("fallback pattern not registered, skipping",
				zap.String("pattern", string(fallbackName)))
			continue
		}

		candidate, err := s.applyPattern(ctx, fallback, input)
		if err != nil {
			s.logger.Warn("fallback pattern failed, skipping",
				zap.String("pattern", string(fallbackName)),
				zap.Error(err))
			continue
		}

		if primaryErr != nil || candidate.Confidence > primary.Confidence {
			return PatternRun{Pattern: fallbackName, UsedFallback: true, Result: candidate}, nil
		}
	}

	if primaryErr != nil {
		return PatternRun{Pattern: name}, primaryErr
	}

	return PatternRun{Pattern: name, Result: primary}, nil
}

// GetStatus assembles the status dashboard data.
func (s *Service) GetStatus(ctx context.Context) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}

	status := Status{
		Settings:  s.settings,
		SessionID: s.store.SessionID(),
		Memory:    s.store.Memory().Stats(),
	}

	for _, agent := range s.agents.Agents() {
		status.Agents = append(status.Agents, AgentInfo{
			Name:        agent.Name(),
			Description: agent.Description(),
		})
	}

	for _, name := range s.tools.Names() {
		tool, err := s.tools.Get(name)
		if err != nil {
			continue
		}
		status.Tools = append(status.Tools, ToolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
		})
	}

	for _, entry := range s.patterns.List() {
		status.Patterns = append(status.Patterns, PatternStatus{
			Name:  entry.Name,
			Type:  entry.Type,
			Agent: entry.Agent,
			Stats: s.patterns.StatsFor(entry.Name),
		})
	}

	return status, nil
}

// applyPattern runs the pattern's target agent with the pattern's semantics
// and records the application under the pattern_<name> agent label. Usage is
// counted through the registry's single mutation path; success means the
// application completed without error.
func (s *Service) applyPattern(ctx context.Context, entry domain.PatternEntry, input string) (domain.AgentResult, error) {
	effective := input
	var toolNames []domain.ToolName
	switch entry.Type {
	case domain.PatternTypeToolEnhancement:
		toolNames = entry.Tools
	default:
		effective = entry.EnhancePrompt(input)
	}

	agent, err := s.agents.Get(entry.Agent)
	if err != nil {
		s.patterns.RecordUsage(entry.Name, 0, false)
		s.store.Persist(ctx, s.patterns.StatsSnapshot())
		return domain.AgentResult{}, fmt.Errorf("pattern %q target: %w", entry.Name, err)
	}

	result, err := s.runAgent(ctx, agent, effective, toolNames, entry.Name)
	if err != nil {
		s.patterns.RecordUsage(entry.Name, 0, false)
		s.store.Persist(ctx, s.patterns.StatsSnapshot())
		return domain.AgentResult{}, err
	}

	// runAgent persisted before this usage was counted; persist again so the
	// counters reach memory.
	s.patterns.RecordUsage(entry.Name, result.Confidence, true)
	s.store.Persist(ctx, s.patterns.StatsSnapshot())

	return result, nil
}

// runAgent invokes the agent and records the interaction, under the
// pattern_<name> label when pattern is set.
func (s *Service) runAgent(ctx context.Context, agent agents.Agent, input string, toolNames []domain.ToolName, pattern domain.PatternName) (domain.AgentResult, error) {
	recordedName := agent.Name()
	if pattern != "" {
		recordedName = domain.AgentName("pattern_" + string(pattern))
	}

	start := time.Now()
	result, err := agent.Run(ctx, agents.Request{
		Input:       input,
		Tools:       s.resolveTools(toolNames),
		SharedState: s.store.State(),
	})
	if err != nil {
		s.record(ctx, domain.AgentResult{
			Agent:         agent.Name(),
			Input:         input,
			ExecutionTime: time.Since(start),
		}, recordedName, pattern)

		return domain.AgentResult{}, fmt.Errorf("run agent %q: %w", agent.Name(), err)
	}

	result.Confidence = domain.ClampConfidence(result.Confidence)
	s.record(ctx, result, recordedName, pattern)

	s.logger.Info("agent executed",
		zap.String("agent", string(recordedName)),
		zap.Float64("confidence", result.Confidence),
		zap.Duration("elapsed", result.ExecutionTime))

	return result, nil
}

// resolveTools maps tool names to registered tools; unknown names are logged
// and skipped so the agent still answers.
func (s *Service) resolveTools(names []domain.ToolName) []tools.Tool {
	var resolved []tools.Tool
	for _, name := range names {
		tool, err := s.tools.Get(name)
		if err != nil {
			s.logger.Warn("unknown tool, skipping",
				zap.String("tool", string(name)))
			continue
		}
		resolved = append(resolved, tool)
	}

	return resolved
}

func (s *Service) record(ctx context.Context, result domain.AgentResult, recordedName domain.AgentName, pattern domain.PatternName) {
	s.store.Append(domain.InteractionRecord{
		ID:             domain.InteractionID(uuid.NewString()),
		Timestamp:      s.clock.Now(),
		AgentName:      recordedName,
		InputPrompt:    result.Input,
		OutputText:     result.Output,
		Confidence:     result.Confidence,
		ToolsUsed:      result.ToolsUsed,
		ExecutionTime:  result.ExecutionTime,
		PatternApplied: pattern,
	})
	s.store.MergeState(result.SharedState)
	s.store.Persist(ctx, s.patterns.StatsSnapshot())
}

func (s *Service) warnOnLongPrompt(input string) {
	if estimated := domain.EstimateTokens(input); s.settings.MaxPromptTokens > 0 && estimated > s.settings.MaxPromptTokens {
		s.logger.Warn("prompt exceeds max_prompt_tokens, continuing",
			zap.Int("estimated_tokens", estimated),
			zap.Int("max_prompt_tokens", s.settings.MaxPromptTokens))
	}
}
