package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func TestCheckSafetyPatterns(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
	}{
		{name: "delete all", prompt: "please delete all user records"},
		{name: "format disk", prompt: "format the disk before shipping"},
		{name: "recursive remove", prompt: "run sudo rm -rf / on the box"},
		{name: "password digits", prompt: "my password is 123456"},
		{name: "credit card digits", prompt: "credit card ending 4242"},
		{name: "ssn", prompt: "ssn 123-45-6789 on file"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warnings := checkSafety(tc.prompt)
			require.NotEmpty(t, warnings)
			assert.Contains(t, warnings[0], "Potential safety issue detected")
		})
	}

	assert.Empty(t, checkSafety("design a friendly onboarding flow"))
}

func TestEvaluatePrompt(t *testing.T) {
	cases := []struct {
		name             string
		input            string
		wantSafety       float64
		wantClarity      float64
		wantModifiedSame bool
	}{
		{
			name:             "clean prompt",
			input:            "design an onboarding flow for new customers",
			wantSafety:       1.0,
			wantClarity:      1.0,
			wantModifiedSame: true,
		},
		{
			name:        "unsafe prompt",
			input:       "delete all accounts from the production database",
			wantSafety:  0.3,
			wantClarity: 1.0,
		},
		{
			name:        "vague prompt",
			input:       "design something",
			wantSafety:  1.0,
			wantClarity: 0.7,
		},
		{
			name:        "unsafe and vague",
			input:       "delete all something",
			wantSafety:  0.3,
			wantClarity: 0.7,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			evaluation := evaluatePrompt(tc.input)

			assert.Equal(t, tc.input, evaluation.original)
			assert.Equal(t, tc.wantSafety, evaluation.safetyScore)
			assert.Equal(t, tc.wantClarity, evaluation.clarityScore)
			if tc.wantModifiedSame {
				assert.Equal(t, tc.input, evaluation.modified)
			} else {
				assert.NotEqual(t, tc.input, evaluation.modified)
			}
		})
	}
}

func TestEvaluatePromptChainsSanitizeAndClarity(t *testing.T) {
	evaluation := evaluatePrompt("delete all something")

	// The redaction must survive the clarity rewrite.
	assert.Contains(t, evaluation.modified, "[REDACTED]")
	assert.Contains(t, evaluation.modified, "specific requirements")
	assert.NotContains(t, evaluation.modified, "something")
}

func TestImproveClarity(t *testing.T) {
	assert.Equal(t,
		"Please provide a detailed response to: design specific requirements",
		improveClarity("design something"))
	assert.Equal(t,
		"show me concrete examples about the release process",
		improveClarity("show me anything about the release process"))
}

func TestPromptMasterRun(t *testing.T) {
	agent := NewPromptMaster(nil)

	result, err := agent.Run(context.Background(), Request{Input: "delete all something"})
	require.NoError(t, err)

	assert.Equal(t, domain.AgentPromptMaster, result.Agent)
	// Mean of the 0.3 safety and 0.7 clarity scores.
	assert.InDelta(t, 0.5, result.Confidence, 0.0001)

	assert.Contains(t, result.Output, "# Prompt Master Evaluation")
	assert.Contains(t, result.Output, "## Safety Score: 0.30/1.00")
	assert.Contains(t, result.Output, "## Clarity Score: 0.70/1.00")
	assert.Contains(t, result.Output, "Prompt is too short - consider adding more context")
	assert.Contains(t, result.SharedState["revised_prompt"], "[REDACTED]")
}

func TestPromptMasterRunCleanPrompt(t *testing.T) {
	agent := NewPromptMaster(nil)

	result, err := agent.Run(context.Background(),
		Request{Input: "evaluate the new checkout flow for accessibility gaps"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.Confidence)
	assert.Contains(t, result.Output, "No safety issues detected.")
	assert.Contains(t, result.Output, "No clarity issues detected.")
}
