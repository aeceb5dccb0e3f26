package agents

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

var creativePrinciples = []string{
	"emotional_resonance",
	"visual_hierarchy",
	"narrative_flow",
	"audience_empathy",
	"brand_consistency",
	"innovation_spark",
	"cultural_relevance",
}

var toneMapping = map[string][]string{
	"cinematic":    {"dramatic", "immersive", "storytelling", "visual_impact"},
	"professional": {"trustworthy", "competent", "reliable", "authoritative"},
	"friendly":     {"approachable", "warm", "helpful", "conversational"},
	"innovative":   {"cutting_edge", "creative", "bold", "forward_thinking"},
	"luxury":       {"premium", "exclusive", "sophisticated", "refined"},
}

// audienceChecks pair a persona with its keyword triggers and indicator
// weight; listed in precedence order for tie-breaking.
var audienceChecks = []struct {
	persona  string
	keywords []string
	weight   float64
}{
	{persona: "executive", keywords: []string{"executive", "business"}, weight: 0.8},
	{persona: "creative", keywords: []string{"creative", "design"}, weight: 0.9},
	{persona: "technical", keywords: []string{"technical", "developer"}, weight: 0.7},
}

const creativeDirectorBaseConfidence = 0.85

// CreativeDirector orchestrates tone, audience targeting and cinematic
// storytelling direction for a request.
type CreativeDirector struct {
	logger *zap.Logger
}

var _ Agent = (*CreativeDirector)(nil)

func NewCreativeDirector(logger *zap.Logger) *CreativeDirector {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CreativeDirector{logger: logger.Named("creative_director")}
}

func (a *CreativeDirector) Name() domain.AgentName { return domain.AgentCreativeDirector }

func (a *CreativeDirector) Description() string {
	return "Tone, audience targeting and cinematic storytelling direction"
}

func (a *CreativeDirector) Run(ctx context.Context, req Request) (domain.AgentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentResult{}, err
	}

	start := time.Now()
	prompt := strings.ToLower(req.Input)

	tone := detectTone(prompt)
	audience := primaryAudience(prompt)
	style := cinematicStyle(prompt)

	strategy := visualStrategy(tone)
	narrative := narrativeApproach(prompt)
	journey := emotionalJourney(prompt)
	storytelling := visualStorytelling(prompt)

	reportScore := creativeDirectorBaseConfidence
	if style == "dramatic_cinematic" {
		reportScore += 0.05
	}

	var b strings.Builder
	b.WriteString("# Creative Director Analysis & Strategy\n\n")
	fmt.Fprintf(&b, "## Original Request\n%s\n\n", req.Input)
	b.WriteString("## Creative Strategy\n\n")
	fmt.Fprintf(&b, "### Visual Approach\n%s\n\n", strategy)
	fmt.Fprintf(&b, "### Narrative Direction\n%s\n\n", narrative)
	fmt.Fprintf(&b, "### Emotional Journey\n%s\n\n", journey)
	fmt.Fprintf(&b, "### Cinematic Elements\n%s\n\n", storytelling)
	fmt.Fprintf(&b, "## Implementation Guidelines\n\n%s\n\n", creativeGuidelines())
	fmt.Fprintf(&b, "## Creative Confidence\n**Score:** %.2f/1.00\n\n", reportScore)
	b.WriteString("*Generated by Fusion v14 Creative Director Agent*")

	used, err := runTools(ctx, a.logger, &b, req)
	if err != nil {
		return domain.AgentResult{}, err
	}

	// The audience boost applies even for the general fallback; the report
	// score above shows the cinematic boost only.
	confidence := reportScore
	if audience != "" {
		confidence += 0.05
	}
	confidence = math.Min(confidence, 0.95)

	return domain.AgentResult{
		Agent:         domain.AgentCreativeDirector,
		Input:         req.Input,
		Output:        b.String(),
		Confidence:    confidence,
		ExecutionTime: time.Since(start),
		ToolsUsed:     used,
		SharedState: domain.SharedState{
			"creative_principles_applied": strings.Join(creativePrinciples, ", "),
			"tone_detected":               tone,
			"tone_principles":             strings.Join(tonePrinciples(tone), ", "),
			"target_audience":             audience,
			"cinematic_style":             style,
			"analysis_timestamp":          start.UTC().Format(time.RFC3339),
		},
	}, nil
}

func containsAny(prompt string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(prompt, keyword) {
			return true
		}
	}

	return false
}

func detectTone(prompt string) string {
	switch {
	case containsAny(prompt, "cinematic", "dramatic"):
		return "cinematic"
	case containsAny(prompt, "professional", "business"):
		return "professional"
	case containsAny(prompt, "friendly", "approachable"):
		return "friendly"
	case containsAny(prompt, "innovative", "creative"):
		return "innovative"
	default:
		return "professional"
	}
}

func tonePrinciples(tone string) []string {
	principles, ok := toneMapping[tone]
	if !ok {
		return toneMapping["professional"]
	}

	return principles
}

// primaryAudience picks the persona with the strongest keyword indicator,
// falling back to general.
func primaryAudience(prompt string) string {
	audience := "general"
	best := 0.0
	for _, check := range audienceChecks {
		if containsAny(prompt, check.keywords...) && check.weight > best {
			audience = check.persona
			best = check.weight
		}
	}

	return audience
}

func cinematicStyle(prompt string) string {
	if strings.Contains(prompt, "cinematic") {
		return "dramatic_cinematic"
	}

	return "professional_cinematic"
}

func visualStrategy(tone string) string {
	var lines []string
	if tone == "cinematic" {
		lines = append(lines,
			"• Implement dramatic visual hierarchy with strong contrast",
			"• Use cinematic composition principles for visual impact",
			"• Create immersive visual storytelling elements")
	}
	lines = append(lines,
		"• Optimize information architecture for visual clarity",
		"• Apply consistent visual design principles")

	return strings.Join(lines, "\n")
}

func narrativeApproach(prompt string) string {
	if !strings.Contains(prompt, "cinematic") {
		return ""
	}

	return strings.Join([]string{
		"• Create compelling visual narrative with dramatic pacing",
		"• Design emotional journey with clear story arc",
		"• Implement visual storytelling techniques",
	}, "\n")
}

func emotionalJourney(prompt string) string {
	if !containsAny(prompt, "cinematic", "dramatic") {
		return ""
	}

	return strings.Join([]string{
		"• Build dramatic tension through visual composition",
		"• Create emotional crescendos and resolution",
	}, "\n")
}

func visualStorytelling(prompt string) string {
	if !strings.Contains(prompt, "cinematic") {
		return ""
	}

	return strings.Join([]string{
		"• Implement dramatic lighting for visual impact",
		"• Apply cinematic composition principles",
	}, "\n")
}

func creativeGuidelines() string {
	return strings.Join([]string{
		"• Focus on visual storytelling and emotional resonance",
		"• Apply cinematic principles for dramatic impact",
		"• Maintain brand consistency and user experience",
		"• Test with target audience for emotional response",
	}, "\n")
}
