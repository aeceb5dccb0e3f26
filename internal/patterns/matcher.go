package patterns

import (
	"strings"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

// FindBestPattern routes an input prompt to a default pattern by keyword
// containment. Design wording is checked first; inside it, audit and trust
// wording pick the specialised patterns.
func FindBestPattern(input string) domain.PatternName {
	prompt := strings.ToLower(input)

	if containsAny(prompt, designKeywords) {
		switch {
		case containsAny(prompt, auditKeywords):
			return PatternUXAudit
		case containsAny(prompt, trustKeywords):
			return PatternTrustBuilding
		default:
			return PatternDesignEnhancement
		}
	}

	if containsAny(prompt, evaluationKeywords) {
		return PatternComprehensiveEvaluation
	}

	return PatternDesignEnhancement
}

func containsAny(prompt string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(prompt, keyword) {
			return true
		}
	}

	return false
}
