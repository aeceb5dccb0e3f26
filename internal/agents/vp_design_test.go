package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/tools"
)

func TestVPDesignRun(t *testing.T) {
	agent := NewVPDesign(nil)

	result, err := agent.Run(context.Background(), Request{Input: "design a mobile app"})
	require.NoError(t, err)

	assert.Equal(t, domain.AgentVPDesign, result.Agent)
	assert.Equal(t, "design a mobile app", result.Input)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Empty(t, result.ToolsUsed)

	assert.Contains(t, result.Output, "# VP Design Agent Response")
	assert.Contains(t, result.Output, "## Design Analysis")
	assert.Contains(t, result.Output, "### Visual Hierarchy")
	assert.Contains(t, result.Output, "## User Needs Assessment")
	assert.Contains(t, result.Output, "WCAG 2.1 AA compliance")
	assert.Contains(t, result.Output, "## Recommendations")
	assert.Contains(t, result.Output, "1. **Implement Design System**")
	assert.Contains(t, result.Output, "## Implementation Priority")
	assert.Contains(t, result.Output, "Focus on accessibility and user experience optimization")
}

func TestVPDesignRunWithTools(t *testing.T) {
	agent := NewVPDesign(nil)

	result, err := agent.Run(context.Background(), Request{
		Input: "audit our dashboard design",
		Tools: []tools.Tool{tools.UXAudit{}, tools.TrustExplainer{}},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]domain.ToolName{domain.ToolUXAudit, domain.ToolTrustExplainer},
		result.ToolsUsed)
	assert.Contains(t, result.Output, "## UX Audit Report")
	assert.Contains(t, result.Output, "## Trust Enhancement Plan")
}

func TestVPDesignCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVPDesign(nil).Run(ctx, Request{Input: "design"})
	require.ErrorIs(t, err, context.Canceled)
}
