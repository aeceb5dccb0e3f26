package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func newPushCmd(h *appHandle) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Stage, commit and push working-tree changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			report, err := h.app.pushService.AutoPush(cmd.Context())
			if errors.Is(err, domain.ErrPushDisabled) {
				_, _ = fmt.Fprintln(out, "push disabled: enable auto_commit or github_push in .fusion.json")
				return nil
			}
			if err != nil {
				return err
			}

			if report.Clean {
				_, _ = fmt.Fprintln(out, "no changes")
				return nil
			}

			_, _ = fmt.Fprintf(out, "committed: %s\n", report.CommitMessage)
			if report.Pushed {
				_, _ = fmt.Fprintln(out, "pushed to remote")
			} else {
				_, _ = fmt.Fprintln(out, "push skipped (github_push disabled)")
			}
			return nil
		},
	}
}
