package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func TestFindBestPattern(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  domain.PatternName
	}{
		{
			name:  "plain design request",
			input: "Design a landing page",
			want:  PatternDesignEnhancement,
		},
		{
			name:  "design with audit wording",
			input: "Audit the checkout UI",
			want:  PatternUXAudit,
		},
		{
			name:  "design with evaluate wording",
			input: "Evaluate the interface layout",
			want:  PatternUXAudit,
		},
		{
			name:  "design with trust wording",
			input: "Build trust into the UX flows",
			want:  PatternTrustBuilding,
		},
		{
			name:  "evaluation without design wording",
			input: "Assess the quarterly report",
			want:  PatternComprehensiveEvaluation,
		},
		{
			name:  "score wording",
			input: "Score this proposal",
			want:  PatternComprehensiveEvaluation,
		},
		{
			name:  "no keywords",
			input: "hello world",
			want:  PatternDesignEnhancement,
		},
		{
			// Keyword matching is substring containment, so "building"
			// carries "ui" and wins over the assess keyword.
			name:  "substring containment",
			input: "building assessment docs",
			want:  PatternDesignEnhancement,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FindBestPattern(tc.input))
		})
	}
}
