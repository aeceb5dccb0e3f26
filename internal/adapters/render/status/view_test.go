package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/application"
	"github.com/fusionkit/fusion-cli/internal/domain"
)

func sampleStatus() application.Status {
	return application.Status{
		Settings: application.Settings{
			Version:         "v14.0",
			Entry:           "fusion",
			MaxPromptTokens: 8000,
			ToolsEnabled:    true,
			MemoryEnabled:   true,
			PatternFallback: true,
		},
		SessionID: "session-1",
		Agents: []application.AgentInfo{
			{Name: "vp_design", Description: "design reviews"},
			{Name: "evaluator", Description: "scoring"},
		},
		Tools: []application.ToolInfo{
			{Name: "ux_audit", Description: "heuristic audit"},
		},
		Patterns: []application.PatternStatus{
			{
				Name:  "design_enhancement",
				Type:  domain.PatternTypePromptEnhancement,
				Agent: "vp_design",
				Stats: domain.PatternStats{UsageCount: 4, SuccessCount: 3, AvgConfidence: 0.82},
			},
		},
		Memory: domain.MemoryStats{
			SessionID:         "session-1",
			TotalInteractions: 4,
			AvgConfidence:     0.84,
			AvgExecutionTime:  12 * time.Millisecond,
			SharedStateKeys:   []string{"last_topic"},
		},
	}
}

func TestRenderShowsAllSections(t *testing.T) {
	out, err := Render(sampleStatus(), RenderOptions{Now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Contains(t, out, "Fusion Agent OS")
	assert.Contains(t, out, "version: v14.0 | session: session-1")
	assert.Contains(t, out, "Agents (2)")
	assert.Contains(t, out, "vp_design")
	assert.Contains(t, out, "evaluator")
	assert.Contains(t, out, "Tools (1)")
	assert.Contains(t, out, "ux_audit")
	assert.Contains(t, out, "Patterns (1)")
	assert.Contains(t, out, "design_enhancement")
	assert.Contains(t, out, "uses: 4 | success: 75% | avg conf: 0.82")
	assert.Contains(t, out, "interactions: 4")
	assert.Contains(t, out, "shared state: last_topic")
}

func TestRenderConfigSourceFallsBackToDefaults(t *testing.T) {
	status := sampleStatus()
	status.Settings.ConfigPath = ""

	out, err := Render(status, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "defaults (no .fusion.json found)")
}

func TestRenderToolsDisabled(t *testing.T) {
	status := sampleStatus()
	status.Settings.ToolsEnabled = false

	out, err := Render(status, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "Tools disabled by configuration.")
}

func TestRenderEmptyMemory(t *testing.T) {
	status := sampleStatus()
	status.Memory = domain.MemoryStats{SessionID: "session-1"}

	out, err := Render(status, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "No interactions recorded.")
}

func TestRateBarProportions(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[========--------]", renderRateBar(0.5, 16, s))
	assert.Equal(t, "[----------------]", renderRateBar(0, 16, s))
	assert.Equal(t, "[================]", renderRateBar(1.5, 16, s))
}
