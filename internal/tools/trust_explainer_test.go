package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func TestTrustExplainerRun(t *testing.T) {
	result, err := TrustExplainer{}.Run(context.Background(), "how do we build user trust")
	require.NoError(t, err)

	assert.Equal(t, domain.ToolTrustExplainer, result.Tool)
	assert.InDelta(t, 0.78, result.Confidence, 0.0001)
}

func TestTrustExplainerRecommendations(t *testing.T) {
	recommendations := trustRecommendations()
	require.Len(t, recommendations, 3)

	assert.Equal(t, "Strengthen Trust Elements", recommendations[0].Title)
	assert.Equal(t, "Improve 2 trust elements", recommendations[0].Description)
	assert.Equal(t, "high", recommendations[0].Priority)

	assert.Equal(t, "Enhance Trust Indicators", recommendations[1].Title)
	assert.Equal(t, "Improve 2 trust indicators", recommendations[1].Description)

	assert.Equal(t, "Build Overall Trust", recommendations[2].Title)
}

func TestTrustExplainerLowScores(t *testing.T) {
	assert.Equal(t,
		[]string{"social_proof.expert_endorsements", "expertise.industry_recognition"},
		lowScores(trustElements))
	assert.Equal(t,
		[]string{"content.educational_content", "social.community_features"},
		lowScores(trustIndicators))
}

func TestTrustExplainerAnalysisReport(t *testing.T) {
	result, err := TrustExplainer{}.Run(context.Background(), "trust")
	require.NoError(t, err)

	assert.Contains(t, result.Analysis, "## Trust Enhancement Plan")
	assert.Contains(t, result.Analysis, "#### Social Proof")
	assert.Contains(t, result.Analysis, "**Expert Endorsements:** 0.60/1.00")
	assert.Contains(t, result.Analysis, "### Key Trust Recommendations")
}
