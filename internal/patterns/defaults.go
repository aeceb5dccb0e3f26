package patterns

import (
	"time"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

// Built-in pattern names.
const (
	PatternDesignEnhancement       domain.PatternName = "design_enhancement"
	PatternUXAudit                 domain.PatternName = "ux_audit"
	PatternTrustBuilding           domain.PatternName = "trust_building"
	PatternComprehensiveEvaluation domain.PatternName = "comprehensive_evaluation"
	PatternBasicEvaluation         domain.PatternName = "basic_evaluation"
)

// Keyword lists shared by the catalog entries and the matcher routing.
var (
	designKeywords     = []string{"design", "ui", "ux", "interface"}
	auditKeywords      = []string{"audit", "evaluate"}
	trustKeywords      = []string{"trust", "confidence"}
	evaluationKeywords = []string{"evaluate", "assess", "score", "analyze"}
)

// Defaults returns the built-in pattern catalog; created stamps each entry's
// metadata.
func Defaults(created time.Time) []domain.PatternEntry {
	return []domain.PatternEntry{
		{
			Name:                PatternDesignEnhancement,
			Type:                domain.PatternTypePromptEnhancement,
			Agent:               domain.AgentVPDesign,
			Keywords:            designKeywords,
			Enhancement:         "Apply user-centered design principles and ensure accessibility compliance. Focus on visual hierarchy, consistency, and user experience optimization.",
			ConfidenceThreshold: 0.8,
			FallbackPatterns:    []domain.PatternName{PatternUXAudit, PatternTrustBuilding},
			Metadata: domain.PatternMetadata{
				Category: "design",
				Tags:     []string{"ui", "ux", "accessibility"},
				Created:  created,
				Version:  "1.0",
			},
		},
		{
			Name:                PatternUXAudit,
			Type:                domain.PatternTypeToolEnhancement,
			Agent:               domain.AgentVPDesign,
			Tools:               []domain.ToolName{domain.ToolUXAudit},
			Keywords:            auditKeywords,
			Enhancement:         "Perform comprehensive UX audit using heuristic evaluation and metrics analysis.",
			ConfidenceThreshold: 0.85,
			FallbackPatterns:    []domain.PatternName{PatternDesignEnhancement},
			Metadata: domain.PatternMetadata{
				Category: "ux",
				Tags:     []string{"audit", "heuristics", "metrics"},
				Created:  created,
				Version:  "1.0",
			},
		},
		{
			Name:                PatternTrustBuilding,
			Type:                domain.PatternTypeToolEnhancement,
			Agent:               domain.AgentVPDesign,
			Tools:               []domain.ToolName{domain.ToolTrustExplainer},
			Keywords:            trustKeywords,
			Enhancement:         "Analyze and enhance trust-building elements in the user experience.",
			ConfidenceThreshold: 0.8,
			FallbackPatterns:    []domain.PatternName{PatternDesignEnhancement},
			Metadata: domain.PatternMetadata{
				Category: "trust",
				Tags:     []string{"transparency", "security", "social_proof"},
				Created:  created,
				Version:  "1.0",
			},
		},
		{
			Name:                PatternComprehensiveEvaluation,
			Type:                domain.PatternTypeAgentEnhancement,
			Agent:               domain.AgentEvaluator,
			Keywords:            evaluationKeywords,
			Enhancement:         "Perform comprehensive evaluation across all criteria with detailed scoring and recommendations.",
			ConfidenceThreshold: 0.9,
			FallbackPatterns:    []domain.PatternName{PatternBasicEvaluation},
			Metadata: domain.PatternMetadata{
				Category: "evaluation",
				Tags:     []string{"scoring", "analysis", "recommendations"},
				Created:  created,
				Version:  "1.0",
			},
		},
		{
			Name:                PatternBasicEvaluation,
			Type:                domain.PatternTypeAgentEnhancement,
			Agent:               domain.AgentEvaluator,
			Enhancement:         "Perform basic evaluation with essential criteria.",
			ConfidenceThreshold: 0.7,
			Metadata: domain.PatternMetadata{
				Category: "evaluation",
				Tags:     []string{"basic", "essential"},
				Created:  created,
				Version:  "1.0",
			},
		},
	}
}
