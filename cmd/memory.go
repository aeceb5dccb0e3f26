package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func newMemoryCmd(h *appHandle) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Export, import and inspect the interaction memory",
	}

	cmd.AddCommand(
		newMemoryExportCmd(h),
		newMemoryImportCmd(h),
		newMemoryClearCmd(h),
		newMemoryStatsCmd(h),
		newMemoryRelevantCmd(h),
	)

	return cmd
}

func newMemoryExportCmd(h *appHandle) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the memory document to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.app.memoryService.Export(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "memory exported to %s\n", args[0])
			return err
		},
	}
}

func newMemoryImportCmd(h *appHandle) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Merge a memory document from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := h.app.memoryService.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "memory imported from %s (%d interactions total)\n",
				args[0], stats.TotalInteractions)
			return err
		},
	}
}

func newMemoryClearCmd(h *appHandle) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the interaction log, shared state and pattern counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := h.app.memoryService.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "memory cleared")
			return err
		},
	}
}

func newMemoryRelevantCmd(h *appHandle) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "relevant <query>",
		Short: "List recorded interactions whose prompt matches the query, newest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := h.app.memoryService.Relevant(strings.Join(args, " "), limit)

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(out, "no matching interactions")
				return nil
			}

			for _, record := range records {
				_, _ = fmt.Fprintf(out, "%s  %s  confidence %s  %s\n",
					record.Timestamp.Format(time.RFC3339),
					record.AgentName,
					domain.FormatConfidence(record.Confidence),
					record.InputPrompt)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of interactions to list")

	return cmd
}

func newMemoryStatsCmd(h *appHandle) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the recorded interactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := h.app.memoryService.Stats()
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "session: %s\n", stats.SessionID)
			_, _ = fmt.Fprintf(out, "interactions: %d\n", stats.TotalInteractions)
			if stats.TotalInteractions > 0 {
				_, _ = fmt.Fprintf(out, "avg confidence: %s (%s)\n",
					domain.FormatConfidence(stats.AvgConfidence),
					domain.QualityLabel(stats.AvgConfidence))
				_, _ = fmt.Fprintf(out, "avg execution: %s\n", stats.AvgExecutionTime.Round(time.Millisecond))
			}
			if len(stats.SharedStateKeys) > 0 {
				_, _ = fmt.Fprintf(out, "shared state keys: %s\n", strings.Join(stats.SharedStateKeys, ", "))
			}
			return nil
		},
	}
}
