package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func newPatternCmd(h *appHandle) *cobra.Command {
	var renderMarkdown bool

	cmd := &cobra.Command{
		Use:   "pattern <input>",
		Short: "Run input through the best-matching pattern with fallback",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("pattern requires an input prompt (or a subcommand: list, stats, promote)")
			}

			run, err := h.app.service.ExecuteWithPatternFallback(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if run.Pattern != "" {
				label := "pattern"
				if run.UsedFallback {
					label = "fallback pattern"
				}
				_, _ = fmt.Fprintf(out, "%s: %s\n", label, run.Pattern)
			}

			return writeAgentResult(cmd, h.app, run.Result, renderMarkdown)
		},
	}

	cmd.Flags().BoolVar(&renderMarkdown, "render", false, "render the report as terminal markdown")

	cmd.AddCommand(
		newPatternListCmd(h),
		newPatternStatsCmd(h),
		newPatternPromoteCmd(h),
	)

	return cmd
}

func newPatternListCmd(h *appHandle) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := h.app.patternService.List()
			if category != "" {
				entries = h.app.patternService.ListByCategory(domain.PatternCategory(category))
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "no patterns found")
				return nil
			}
			for _, entry := range entries {
				marker := ""
				if entry.Metadata.Custom {
					marker = " [custom]"
				}
				_, _ = fmt.Fprintf(out, "%s (%s -> %s, threshold %.2f)%s\n",
					entry.Name, entry.Type, entry.Agent, entry.ConfidenceThreshold, marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list patterns in this metadata category")

	return cmd
}

func newPatternStatsCmd(h *appHandle) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats [name]",
		Short: "Show pattern usage statistics, best performers first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				name := domain.PatternName(args[0])
				stats, err := h.app.patternService.StatsFor(name)
				if err != nil {
					return err
				}
				writePatternStats(out, name, stats)
				return nil
			}

			rankings := h.app.patternService.Rankings()
			if top > 0 {
				rankings = h.app.patternService.TopPatterns(top)
			}
			for _, ranking := range rankings {
				writePatternStats(out, ranking.Name, ranking.Stats)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "only show the N best-performing patterns")

	return cmd
}

func writePatternStats(out io.Writer, name domain.PatternName, stats domain.PatternStats) {
	_, _ = fmt.Fprintf(out, "%s: uses %d, successes %d (%.0f%%), avg confidence %s\n",
		name, stats.UsageCount, stats.SuccessCount,
		stats.SuccessRate()*100, domain.FormatConfidence(stats.AvgConfidence))
}

func newPatternPromoteCmd(h *appHandle) *cobra.Command {
	return &cobra.Command{
		Use:   "promote",
		Short: "Promote high-confidence runs from memory into custom patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := h.app.patternService.Promote(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "promoted %d pattern(s)\n", len(report.Promoted))
			for _, entry := range report.Promoted {
				_, _ = fmt.Fprintf(out, "  %s (agent %s)\n", entry.Name, entry.Agent)
			}
			_, _ = fmt.Fprintf(out, "memory quality: %d runs, %d promotable, avg score %.2f, promotion rate %.0f%%\n",
				report.Quality.TotalRuns, report.Quality.PromotableRuns,
				report.Quality.AvgScore, report.Quality.PromotionRate*100)
			return nil
		},
	}
}
