package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

// criterion is one weighted evaluation axis with its canned score and
// reasoning.
type criterion struct {
	name      string
	weight    float64
	score     float64
	reasoning string
}

var evaluationCriteria = []criterion{
	{
		name:      "clarity",
		weight:    0.15,
		score:     0.8,
		reasoning: "Clear structure and logical flow, though some technical terms could be simplified.",
	},
	{
		name:      "completeness",
		weight:    0.15,
		score:     0.85,
		reasoning: "Covers most aspects comprehensively, with room for additional detail in implementation.",
	},
	{
		name:      "actionability",
		weight:    0.20,
		score:     0.9,
		reasoning: "Provides specific, actionable recommendations with clear next steps.",
	},
	{
		name:      "accuracy",
		weight:    0.15,
		score:     0.85,
		reasoning: "Information appears accurate and up-to-date with current best practices.",
	},
	{
		name:      "relevance",
		weight:    0.15,
		score:     0.9,
		reasoning: "Highly relevant to the specific request and context provided.",
	},
	{
		name:      "innovation",
		weight:    0.10,
		score:     0.75,
		reasoning: "Shows creative thinking while maintaining practical applicability.",
	},
	{
		name:      "product_value",
		weight:    0.10,
		score:     0.8,
		reasoning: "Addresses real business needs and user value propositions.",
	},
}

// improvementHints maps a criterion to the recommendation emitted when its
// score falls under 0.8. Criteria without a hint never produce one.
var improvementHints = map[string]string{
	"clarity":       "Improve clarity by simplifying technical language and adding examples",
	"completeness":  "Add more detail to implementation steps and edge cases",
	"actionability": "Provide more specific action items and timelines",
	"innovation":    "Explore more creative and innovative approaches",
}

// Evaluator scores a request against weighted quality criteria.
type Evaluator struct {
	logger *zap.Logger
}

var _ Agent = (*Evaluator)(nil)

func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Evaluator{logger: logger.Named("evaluator")}
}

func (a *Evaluator) Name() domain.AgentName { return domain.AgentEvaluator }

func (a *Evaluator) Description() string {
	return "Comprehensive evaluation and scoring across weighted quality criteria"
}

func (a *Evaluator) Run(ctx context.Context, req Request) (domain.AgentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentResult{}, err
	}

	start := time.Now()
	overall := overallScore()

	var b strings.Builder
	b.WriteString("# Evaluator Agent Response\n\n")
	b.WriteString("## Evaluation Results\n\n")
	for _, c := range evaluationCriteria {
		fmt.Fprintf(&b, "### %s: %.1f/1.0\n%s\n\n", displayCriterion(c.name), c.score, c.reasoning)
	}
	fmt.Fprintf(&b, "## Overall Score: %.1f/1.0\n\n", overall)
	fmt.Fprintf(&b, "## Quality Assessment\n%s\n\n", domain.QualityAssessment(overall))
	fmt.Fprintf(&b, "## Recommendations\n%s", evaluationRecommendations())

	used, err := runTools(ctx, a.logger, &b, req)
	if err != nil {
		return domain.AgentResult{}, err
	}

	return domain.AgentResult{
		Agent:         domain.AgentEvaluator,
		Input:         req.Input,
		Output:        b.String(),
		Confidence:    overall,
		ExecutionTime: time.Since(start),
		ToolsUsed:     used,
	}, nil
}

// overallScore is the weighted sum across all criteria.
func overallScore() float64 {
	var total float64
	for _, c := range evaluationCriteria {
		total += c.score * c.weight
	}

	return total
}

func evaluationRecommendations() string {
	var lines []string
	for _, c := range evaluationCriteria {
		hint, ok := improvementHints[c.name]
		if ok && c.score < 0.8 {
			lines = append(lines, "- "+hint)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "- Continue with current approach - all criteria meet quality standards")
	}

	return strings.Join(lines, "\n")
}

func displayCriterion(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
