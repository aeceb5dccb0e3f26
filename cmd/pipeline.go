package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionkit/fusion-cli/internal/application"
	"github.com/fusionkit/fusion-cli/internal/domain"
)

func newPipelineCmd(h *appHandle) *cobra.Command {
	var renderMarkdown bool

	cmd := &cobra.Command{
		Use:   "pipeline <input>",
		Short: "Run all enabled agents in sequence, feeding each report to the next",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			var result domain.PipelineResult
			err := runPipelineSpinner(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context) error {
				var runErr error
				result, runErr = h.app.service.ExecutePipeline(ctx, application.RunPipelineCommand{Input: input})
				return runErr
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, step := range result.Steps {
				_, _ = fmt.Fprintf(out, "step %s: confidence %s (%s)\n",
					step.Agent,
					domain.FormatConfidence(step.Result.Confidence),
					domain.QualityLabel(step.Result.Confidence))
			}
			if result.Failed != "" {
				_, _ = fmt.Fprintf(out, "pipeline stopped at %s: %s\n", result.Failed, result.Err)
			}
			_, _ = fmt.Fprintf(out, "elapsed: %s\n\n", result.Elapsed.Round(time.Millisecond))

			if result.FinalOutput == "" {
				return nil
			}

			if renderMarkdown {
				return h.app.renderReport(out, result.FinalOutput)
			}

			_, err = fmt.Fprintln(out, result.FinalOutput)
			return err
		},
	}

	cmd.Flags().BoolVar(&renderMarkdown, "render", false, "render the final report as terminal markdown")

	return cmd
}
