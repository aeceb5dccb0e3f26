package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func TestDetectTone(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "cinematic keyword", prompt: "a cinematic product reveal", want: "cinematic"},
		{name: "dramatic keyword", prompt: "make it dramatic", want: "cinematic"},
		{name: "business keyword", prompt: "quarterly business review", want: "professional"},
		{name: "friendly keyword", prompt: "friendly onboarding flow", want: "friendly"},
		{name: "creative keyword", prompt: "creative exploration", want: "innovative"},
		{name: "no keyword", prompt: "update the settings page", want: "professional"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detectTone(tc.prompt))
		})
	}
}

func TestPrimaryAudience(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "no indicators", prompt: "update the settings page", want: "general"},
		{name: "executive", prompt: "summary for executive review", want: "executive"},
		{name: "technical", prompt: "notes for the developer team", want: "technical"},
		{name: "creative outweighs executive", prompt: "business dashboard design", want: "creative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, primaryAudience(tc.prompt))
		})
	}
}

func TestCreativeDirectorRunCinematic(t *testing.T) {
	agent := NewCreativeDirector(nil)

	result, err := agent.Run(context.Background(),
		Request{Input: "Design a cinematic dashboard tile"})
	require.NoError(t, err)

	assert.Equal(t, domain.AgentCreativeDirector, result.Agent)
	// 0.85 base, 0.05 cinematic boost, 0.05 audience boost, capped.
	assert.InDelta(t, 0.95, result.Confidence, 0.0001)

	assert.Contains(t, result.Output, "# Creative Director Analysis & Strategy")
	assert.Contains(t, result.Output, "**Score:** 0.90/1.00")
	assert.Contains(t, result.Output, "• Implement dramatic visual hierarchy with strong contrast")
	assert.Contains(t, result.Output, "• Create compelling visual narrative with dramatic pacing")

	assert.Equal(t, "cinematic", result.SharedState["tone_detected"])
	assert.Equal(t, "dramatic_cinematic", result.SharedState["cinematic_style"])
	assert.Equal(t, "creative", result.SharedState["target_audience"])
	assert.NotEmpty(t, result.SharedState["analysis_timestamp"])
}

func TestCreativeDirectorRunPlain(t *testing.T) {
	agent := NewCreativeDirector(nil)

	result, err := agent.Run(context.Background(),
		Request{Input: "improve the billing page"})
	require.NoError(t, err)

	assert.InDelta(t, 0.90, result.Confidence, 0.0001)
	assert.Contains(t, result.Output, "**Score:** 0.85/1.00")
	assert.Equal(t, "professional", result.SharedState["tone_detected"])
	assert.Equal(t, "professional_cinematic", result.SharedState["cinematic_style"])
	assert.Equal(t, "general", result.SharedState["target_audience"])
	assert.Equal(t,
		"trustworthy, competent, reliable, authoritative",
		result.SharedState["tone_principles"])
}
