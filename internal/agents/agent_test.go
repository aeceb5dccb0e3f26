package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/tools"
)

// failingTool always errors, standing in for a broken analysis step.
type failingTool struct {
	err error
}

func (f failingTool) Name() domain.ToolName { return "failing_tool" }

func (f failingTool) Description() string { return "always fails" }

func (f failingTool) Run(context.Context, string) (domain.ToolResult, error) {
	return domain.ToolResult{}, f.err
}

func TestNewRegistryKeepsEnabledOrder(t *testing.T) {
	registry := NewRegistry(nil, []string{"evaluator", "vp_design"})

	assert.Equal(t,
		[]domain.AgentName{domain.AgentEvaluator, domain.AgentVPDesign},
		registry.Names())
}

func TestNewRegistrySkipsUnknownNames(t *testing.T) {
	registry := NewRegistry(nil, []string{"vp_design", "strategy_pilot", "evaluator"})

	assert.Equal(t,
		[]domain.AgentName{domain.AgentVPDesign, domain.AgentEvaluator},
		registry.Names())
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry(nil, []string{"vp_design", "evaluator"})

	agent, err := registry.Get(domain.AgentVPDesign)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentVPDesign, agent.Name())

	_, err = registry.Get("bogus_agent")
	require.ErrorIs(t, err, domain.ErrAgentNotFound)
	assert.Contains(t, err.Error(), "bogus_agent")
}

func TestRegistryAgentsMatchesOrder(t *testing.T) {
	registry := NewRegistry(nil, []string{"prompt_master", "creative_director"})

	listed := registry.Agents()
	require.Len(t, listed, 2)
	assert.Equal(t, domain.AgentPromptMaster, listed[0].Name())
	assert.Equal(t, domain.AgentCreativeDirector, listed[1].Name())
}

func TestRunToolsSkipsFailures(t *testing.T) {
	agent := NewVPDesign(nil)

	result, err := agent.Run(context.Background(), Request{
		Input: "design a settings page",
		Tools: []tools.Tool{failingTool{err: errors.New("boom")}, tools.UXAudit{}},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.ToolName{domain.ToolUXAudit}, result.ToolsUsed)
	assert.Contains(t, result.Output, "## UX Audit Report")
}

func TestRunToolsPropagatesContextErrors(t *testing.T) {
	agent := NewVPDesign(nil)

	_, err := agent.Run(context.Background(), Request{
		Input: "design a settings page",
		Tools: []tools.Tool{failingTool{err: context.DeadlineExceeded}},
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
