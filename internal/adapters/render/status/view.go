package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fusionkit/fusion-cli/internal/application"
	"github.com/fusionkit/fusion-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Fusion Agent OS"),
		s.header.Render(fmt.Sprintf("version: %s | session: %s",
			status.Settings.Version, status.SessionID)),
	}

	lines = append(lines,
		s.section.Render(renderConfiguration(status.Settings, s)),
		s.section.Render(renderAgents(status.Agents, s)),
		s.section.Render(renderTools(status.Tools, status.Settings.ToolsEnabled, s)),
		s.section.Render(renderPatterns(status.Patterns, s)),
		s.section.Render(renderMemory(status.Memory, status.Settings.MemoryEnabled, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConfiguration(settings application.Settings, s styles) string {
	source := settings.ConfigPath
	if source == "" {
		source = "defaults (no .fusion.json found)"
	}

	parts := []string{
		s.heading.Render("Configuration"),
		s.detail.Render(fmt.Sprintf("config: %s", source)),
		s.detail.Render(fmt.Sprintf("entry: %s | max_prompt_tokens: %d",
			settings.Entry, settings.MaxPromptTokens)),
		flagLine("tools_enabled", settings.ToolsEnabled, s) + "  " +
			flagLine("memory_enabled", settings.MemoryEnabled, s) + "  " +
			flagLine("pattern_fallback", settings.PatternFallback, s),
		flagLine("async_mode", settings.AsyncMode, s) + "  " +
			flagLine("auto_commit", settings.AutoCommit, s) + "  " +
			flagLine("github_push", settings.GithubPush, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func flagLine(name string, value bool, s styles) string {
	marker := s.disabled.Render("off")
	if value {
		marker = s.enabled.Render("on")
	}

	return s.meta.Render(name+":") + " " + marker
}

func renderAgents(agents []application.AgentInfo, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Agents (%d)", len(agents)))}

	if len(agents) == 0 {
		parts = append(parts, s.empty.Render("No agents enabled."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, agent := range agents {
		parts = append(parts, s.name.Render(string(agent.Name))+" "+
			s.meta.Render("- "+agent.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTools(tools []application.ToolInfo, enabled bool, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Tools (%d)", len(tools)))}

	if !enabled {
		parts = append(parts, s.empty.Render("Tools disabled by configuration."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if len(tools) == 0 {
		parts = append(parts, s.empty.Render("No tools registered."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, tool := range tools {
		parts = append(parts, s.name.Render(string(tool.Name))+" "+
			s.meta.Render("- "+tool.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderPatterns(patterns []application.PatternStatus, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Patterns (%d)", len(patterns)))}

	if len(patterns) == 0 {
		parts = append(parts, s.empty.Render("No patterns registered."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	width := 0
	for _, pattern := range patterns {
		if n := len(pattern.Name); n > width {
			width = n
		}
	}

	for _, pattern := range patterns {
		parts = append(parts, patternLine(pattern, width, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func patternLine(pattern application.PatternStatus, width int, s styles) string {
	name := s.name.Render(fmt.Sprintf("%-*s", width, pattern.Name))
	bar := renderRateBar(pattern.Stats.SuccessRate(), 16, s)

	meta := fmt.Sprintf("uses: %d | success: %.0f%% | avg conf: %s",
		pattern.Stats.UsageCount,
		pattern.Stats.SuccessRate()*100,
		domain.FormatConfidence(pattern.Stats.AvgConfidence))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		name, " ", bar, " ", s.meta.Render(meta))
}

func renderMemory(stats domain.MemoryStats, enabled bool, s styles) string {
	parts := []string{s.heading.Render("Memory")}

	if !enabled {
		parts = append(parts, s.empty.Render("Memory disabled by configuration."))
	}

	if stats.TotalInteractions == 0 {
		parts = append(parts, s.empty.Render("No interactions recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts,
		s.detail.Render(fmt.Sprintf("interactions: %d", stats.TotalInteractions)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.meta.Render("avg confidence:"),
			" ",
			renderRateBar(stats.AvgConfidence, 16, s),
			" ",
			s.detail.Render(domain.FormatConfidence(stats.AvgConfidence)+
				" ("+domain.QualityLabel(stats.AvgConfidence)+")"),
		),
		s.detail.Render(fmt.Sprintf("avg execution: %s", stats.AvgExecutionTime.Round(time.Millisecond))),
	)

	if len(stats.SharedStateKeys) > 0 {
		parts = append(parts, s.meta.Render(
			fmt.Sprintf("shared state: %s", strings.Join(stats.SharedStateKeys, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderRateBar draws a [====----] gauge for a rate in [0,1].
func renderRateBar(rate float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampRate(rate)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampRate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
