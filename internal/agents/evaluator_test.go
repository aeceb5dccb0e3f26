package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func TestOverallScore(t *testing.T) {
	// Weighted sum over the canned criterion scores.
	assert.InDelta(t, 0.845, overallScore(), 0.0001)
}

func TestEvaluatorRun(t *testing.T) {
	agent := NewEvaluator(nil)

	result, err := agent.Run(context.Background(), Request{Input: "evaluate this proposal"})
	require.NoError(t, err)

	assert.Equal(t, domain.AgentEvaluator, result.Agent)
	assert.InDelta(t, 0.845, result.Confidence, 0.0001)

	assert.Contains(t, result.Output, "# Evaluator Agent Response")
	assert.Contains(t, result.Output, "### Clarity: 0.8/1.0")
	assert.Contains(t, result.Output, "### Actionability: 0.9/1.0")
	assert.Contains(t, result.Output, "### Product Value: 0.8/1.0")
	assert.Contains(t, result.Output, "## Overall Score: 0.8/1.0")
	assert.Contains(t, result.Output, "Good Quality - Minor improvements recommended")
}

func TestEvaluationRecommendations(t *testing.T) {
	// Only innovation scores under the 0.8 improvement threshold.
	assert.Equal(t,
		"- Explore more creative and innovative approaches",
		evaluationRecommendations())
}

func TestDisplayCriterion(t *testing.T) {
	assert.Equal(t, "Product Value", displayCriterion("product_value"))
	assert.Equal(t, "Clarity", displayCriterion("clarity"))
}
