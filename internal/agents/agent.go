package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/tools"
)

// Request carries the input of one agent run plus any tools resolved for it.
// Input is the effective prompt, already carrying any pattern enhancement.
type Request struct {
	Input       string
	Tools       []tools.Tool
	SharedState domain.SharedState
}

// Agent maps free-text input to a heuristic text report with a confidence
// score.
type Agent interface {
	Name() domain.AgentName
	Description() string
	Run(ctx context.Context, req Request) (domain.AgentResult, error)
}

// builtins maps agent names to constructors, in registration order.
var builtins = []struct {
	name domain.AgentName
	ctor func(*zap.Logger) Agent
}{
	{domain.AgentVPDesign, func(l *zap.Logger) Agent { return NewVPDesign(l) }},
	{domain.AgentEvaluator, func(l *zap.Logger) Agent { return NewEvaluator(l) }},
	{domain.AgentCreativeDirector, func(l *zap.Logger) Agent { return NewCreativeDirector(l) }},
	{domain.AgentPromptMaster, func(l *zap.Logger) Agent { return NewPromptMaster(l) }},
}

// Registry holds registered agents and preserves registration order, which
// doubles as the default pipeline sequence.
type Registry struct {
	agents map[domain.AgentName]Agent
	order  []domain.AgentName
}

// NewRegistry registers the built-in agents named in enabled, keeping the
// enabled order. Unknown names are logged and skipped.
func NewRegistry(logger *zap.Logger, enabled []string) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctors := make(map[domain.AgentName]func(*zap.Logger) Agent, len(builtins))
	for _, b := range builtins {
		ctors[b.name] = b.ctor
	}

	r := &Registry{agents: make(map[domain.AgentName]Agent, len(enabled))}
	for _, name := range enabled {
		ctor, ok := ctors[domain.AgentName(name)]
		if !ok {
			logger.Warn("unknown agent in enabled_agents, skipping",
				zap.String("agent", name))
			continue
		}
		r.Register(ctor(logger))
	}

	return r
}

// Register adds an agent, replacing any previous registration under the same
// name.
func (r *Registry) Register(agent Agent) {
	name := agent.Name()
	if _, exists := r.agents[name]; !exists {
		r.order = append(r.order, name)
	}
	r.agents[name] = agent
}

// Get returns the named agent or an error wrapping domain.ErrAgentNotFound.
func (r *Registry) Get(name domain.AgentName) (Agent, error) {
	agent, ok := r.agents[name]
	if !ok {
		return nil, fmt.Errorf("agent %q: %w", name, domain.ErrAgentNotFound)
	}

	return agent, nil
}

// Names lists the registered agent names in registration order.
func (r *Registry) Names() []domain.AgentName {
	names := make([]domain.AgentName, len(r.order))
	copy(names, r.order)

	return names
}

// Agents lists the registered agents in registration order.
func (r *Registry) Agents() []Agent {
	list := make([]Agent, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.agents[name])
	}

	return list
}

// runTools invokes each resolved tool as a sub-step and appends its analysis
// to the report. A failing tool is skipped so the agent still answers; only
// context errors abort the run.
func runTools(ctx context.Context, logger *zap.Logger, b *strings.Builder, req Request) ([]domain.ToolName, error) {
	var used []domain.ToolName
	for _, tool := range req.Tools {
		result, err := tool.Run(ctx, req.Input)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return used, err
			}
			logger.Warn("tool failed, skipping its output",
				zap.String("tool", string(tool.Name())),
				zap.Error(err))
			continue
		}

		b.WriteString("\n\n")
		b.WriteString(result.Analysis)
		used = append(used, result.Tool)
	}

	return used, nil
}
