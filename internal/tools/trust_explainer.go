package tools

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

type scoredGroup struct {
	category string
	items    []metricScore
}

var trustElements = []scoredGroup{
	{category: "transparency", items: []metricScore{
		{name: "clear_pricing", score: 0.8},
		{name: "data_usage", score: 0.7},
		{name: "privacy_policy", score: 0.9},
		{name: "terms_of_service", score: 0.8},
	}},
	{category: "security", items: []metricScore{
		{name: "encryption", score: 0.9},
		{name: "secure_payment", score: 0.85},
		{name: "data_protection", score: 0.8},
		{name: "compliance", score: 0.75},
	}},
	{category: "social_proof", items: []metricScore{
		{name: "reviews", score: 0.8},
		{name: "testimonials", score: 0.7},
		{name: "user_count", score: 0.9},
		{name: "expert_endorsements", score: 0.6},
	}},
	{category: "reliability", items: []metricScore{
		{name: "uptime", score: 0.95},
		{name: "performance", score: 0.85},
		{name: "support_quality", score: 0.7},
		{name: "update_frequency", score: 0.8},
	}},
	{category: "expertise", items: []metricScore{
		{name: "credentials", score: 0.8},
		{name: "experience", score: 0.85},
		{name: "certifications", score: 0.7},
		{name: "industry_recognition", score: 0.6},
	}},
}

var trustIndicators = []scoredGroup{
	{category: "visual", items: []metricScore{
		{name: "professional_design", score: 0.85},
		{name: "brand_consistency", score: 0.9},
		{name: "quality_icons", score: 0.8},
		{name: "modern_ui", score: 0.85},
	}},
	{category: "content", items: []metricScore{
		{name: "clear_messaging", score: 0.8},
		{name: "helpful_information", score: 0.75},
		{name: "transparent_processes", score: 0.7},
		{name: "educational_content", score: 0.6},
	}},
	{category: "interaction", items: []metricScore{
		{name: "responsive_feedback", score: 0.8},
		{name: "error_handling", score: 0.75},
		{name: "loading_states", score: 0.9},
		{name: "progress_indicators", score: 0.8},
	}},
	{category: "social", items: []metricScore{
		{name: "user_reviews", score: 0.8},
		{name: "social_media", score: 0.7},
		{name: "community_features", score: 0.6},
		{name: "expert_opinions", score: 0.7},
	}},
}

// TrustExplainer scores trust-building elements and indicators of a user
// experience.
type TrustExplainer struct{}

var _ Tool = TrustExplainer{}

func (TrustExplainer) Name() domain.ToolName { return domain.ToolTrustExplainer }

func (TrustExplainer) Description() string {
	return "Trust-building analysis and enhancement recommendations"
}

func (TrustExplainer) Run(ctx context.Context, _ string) (domain.ToolResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ToolResult{}, err
	}

	start := time.Now()
	recommendations := trustRecommendations()

	return domain.ToolResult{
		Tool:            domain.ToolTrustExplainer,
		Analysis:        renderTrustAnalysis(recommendations),
		Recommendations: recommendations,
		Confidence:      trustConfidence(),
		ExecutionTime:   time.Since(start),
	}, nil
}

// lowScores lists "category.item" keys scoring under 0.7.
func lowScores(groups []scoredGroup) []string {
	var low []string
	for _, group := range groups {
		for _, item := range group.items {
			if item.score < 0.7 {
				low = append(low, group.category+"."+item.name)
			}
		}
	}

	return low
}

func trustRecommendations() []domain.Recommendation {
	var recommendations []domain.Recommendation

	if low := lowScores(trustElements); len(low) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Type:        "trust_enhancement",
			Title:       "Strengthen Trust Elements",
			Description: fmt.Sprintf("Improve %d trust elements", len(low)),
			Priority:    "high",
			Confidence:  0.85,
		})
	}

	if low := lowScores(trustIndicators); len(low) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Type:        "indicator_improvement",
			Title:       "Enhance Trust Indicators",
			Description: fmt.Sprintf("Improve %d trust indicators", len(low)),
			Priority:    "medium",
			Confidence:  0.8,
		})
	}

	recommendations = append(recommendations, domain.Recommendation{
		Type:        "general_trust",
		Title:       "Build Overall Trust",
		Description: "Implement comprehensive trust-building strategies",
		Priority:    "medium",
		Confidence:  0.75,
	})

	return recommendations
}

func groupAverage(groups []scoredGroup) float64 {
	var sum float64
	var count int
	for _, group := range groups {
		for _, item := range group.items {
			sum += item.score
			count++
		}
	}

	return sum / float64(count)
}

// trustConfidence weighs trust elements at 60% and indicators at 40%, capped
// at 0.95.
func trustConfidence() float64 {
	return math.Min(groupAverage(trustElements)*0.6+groupAverage(trustIndicators)*0.4, 0.95)
}

func renderTrustAnalysis(recommendations []domain.Recommendation) string {
	var b strings.Builder

	b.WriteString("## Trust Enhancement Plan\n\n")

	b.WriteString("### Trust Elements Analysis\n\n")
	for _, group := range trustElements {
		fmt.Fprintf(&b, "#### %s\n", displayName(group.category))
		for _, item := range group.items {
			fmt.Fprintf(&b, "**%s:** %.2f/1.00\n", displayName(item.name), item.score)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Trust Indicators Analysis\n\n")
	for _, group := range trustIndicators {
		fmt.Fprintf(&b, "#### %s\n", displayName(group.category))
		for _, item := range group.items {
			fmt.Fprintf(&b, "**%s:** %.2f/1.00\n", displayName(item.name), item.score)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Key Trust Recommendations\n\n")
	for i, rec := range recommendations {
		fmt.Fprintf(&b, "%d. **%s** (%s): %s\n", i+1, rec.Title, rec.Priority, rec.Description)
	}

	return b.String()
}
