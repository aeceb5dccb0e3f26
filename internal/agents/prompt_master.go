package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

var safetyPatternSources = []string{
	`delete.*all`,
	`format.*disk`,
	`sudo.*rm.*-rf`,
	`password.*\d{4,}`,
	`credit.*card.*\d{4}`,
	`ssn.*\d{3}-\d{2}-\d{4}`,
}

var safetyPatterns = compilePatterns(safetyPatternSources)

func compilePatterns(sources []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(sources))
	for i, source := range sources {
		compiled[i] = regexp.MustCompile(`(?i)` + source)
	}

	return compiled
}

var clarityIndicators = []string{
	"unclear", "vague", "confusing", "ambiguous",
	"not specific", "too broad", "unclear goal",
}

const (
	unsafeScore  = 0.3
	uncleanScore = 0.7
	redactedMark = "[REDACTED]"
)

// promptEvaluation is the outcome of the safety and clarity checks over one
// prompt.
type promptEvaluation struct {
	original     string
	modified     string
	safetyScore  float64
	clarityScore float64
	warnings     []string
	suggestions  []string
}

// PromptMaster checks a prompt for safety and clarity issues and rewrites it
// when either check fires.
type PromptMaster struct {
	logger *zap.Logger
}

var _ Agent = (*PromptMaster)(nil)

func NewPromptMaster(logger *zap.Logger) *PromptMaster {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PromptMaster{logger: logger.Named("prompt_master")}
}

func (a *PromptMaster) Name() domain.AgentName { return domain.AgentPromptMaster }

func (a *PromptMaster) Description() string {
	return "Prompt safety screening and clarity rewriting"
}

func (a *PromptMaster) Run(ctx context.Context, req Request) (domain.AgentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentResult{}, err
	}

	start := time.Now()
	evaluation := evaluatePrompt(req.Input)

	var b strings.Builder
	b.WriteString("# Prompt Master Evaluation\n\n")
	fmt.Fprintf(&b, "## Original Prompt\n%s\n\n", evaluation.original)
	fmt.Fprintf(&b, "## Revised Prompt\n%s\n\n", evaluation.modified)
	fmt.Fprintf(&b, "## Safety Score: %.2f/1.00\n%s\n\n",
		evaluation.safetyScore, issueLines(evaluation.warnings, "No safety issues detected."))
	fmt.Fprintf(&b, "## Clarity Score: %.2f/1.00\n%s",
		evaluation.clarityScore, issueLines(evaluation.suggestions, "No clarity issues detected."))

	used, err := runTools(ctx, a.logger, &b, req)
	if err != nil {
		return domain.AgentResult{}, err
	}

	return domain.AgentResult{
		Agent:         domain.AgentPromptMaster,
		Input:         req.Input,
		Output:        b.String(),
		Confidence:    (evaluation.safetyScore + evaluation.clarityScore) / 2,
		ExecutionTime: time.Since(start),
		ToolsUsed:     used,
		SharedState: domain.SharedState{
			"revised_prompt": evaluation.modified,
		},
	}, nil
}

// evaluatePrompt runs the safety check first so clarity improvements apply to
// the sanitized text.
func evaluatePrompt(input string) promptEvaluation {
	evaluation := promptEvaluation{
		original:     input,
		modified:     input,
		safetyScore:  1.0,
		clarityScore: 1.0,
	}

	if warnings := checkSafety(input); len(warnings) > 0 {
		evaluation.safetyScore = unsafeScore
		evaluation.warnings = warnings
		evaluation.modified = sanitizePrompt(evaluation.modified)
	}

	if suggestions := checkClarity(input); len(suggestions) > 0 {
		evaluation.clarityScore = uncleanScore
		evaluation.suggestions = suggestions
		evaluation.modified = improveClarity(evaluation.modified)
	}

	return evaluation
}

func checkSafety(prompt string) []string {
	var warnings []string
	for i, pattern := range safetyPatterns {
		if pattern.MatchString(prompt) {
			warnings = append(warnings,
				"Potential safety issue detected: "+safetyPatternSources[i])
		}
	}

	return warnings
}

func checkClarity(prompt string) []string {
	var suggestions []string
	lowered := strings.ToLower(prompt)

	if len(strings.Fields(prompt)) < 5 {
		suggestions = append(suggestions, "Prompt is too short - consider adding more context")
	}

	for _, indicator := range clarityIndicators {
		if strings.Contains(lowered, indicator) {
			suggestions = append(suggestions, "Prompt contains unclear language")
			break
		}
	}

	if strings.Contains(lowered, "something") || strings.Contains(lowered, "anything") {
		suggestions = append(suggestions, "Prompt is too vague - be more specific")
	}

	return suggestions
}

func sanitizePrompt(prompt string) string {
	sanitized := prompt
	for _, pattern := range safetyPatterns {
		sanitized = pattern.ReplaceAllString(sanitized, redactedMark)
	}

	return sanitized
}

func improveClarity(prompt string) string {
	improved := prompt
	if len(strings.Fields(improved)) < 5 {
		improved = "Please provide a detailed response to: " + improved
	}
	improved = strings.ReplaceAll(improved, "something", "specific requirements")
	improved = strings.ReplaceAll(improved, "anything", "concrete examples")

	return improved
}

func issueLines(issues []string, fallback string) string {
	if len(issues) == 0 {
		return fallback
	}

	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = "- " + issue
	}

	return strings.Join(lines, "\n")
}
