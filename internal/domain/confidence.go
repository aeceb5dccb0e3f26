package domain

import "fmt"

// QualityLabel maps a confidence score to its assessment band.
func QualityLabel(score float64) string {
	switch {
	case score >= 0.9:
		return "Excellent"
	case score >= 0.8:
		return "Good"
	case score >= 0.7:
		return "Acceptable"
	default:
		return "Needs Improvement"
	}
}

// QualityAssessment expands a score into the evaluator's verdict line.
func QualityAssessment(score float64) string {
	switch {
	case score >= 0.9:
		return "Excellent Quality - Ready for production use"
	case score >= 0.8:
		return "Good Quality - Minor improvements recommended"
	case score >= 0.7:
		return "Acceptable Quality - Some improvements needed"
	default:
		return "Needs Improvement - Significant enhancements required"
	}
}

// ClampConfidence bounds a score to [0,1].
func ClampConfidence(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}

	return score
}

// EstimateTokens approximates the token count of a prompt at four characters
// per token.
func EstimateTokens(text string) int {
	return len(text) / 4
}

func FormatConfidence(score float64) string {
	return fmt.Sprintf("%.2f", score)
}
