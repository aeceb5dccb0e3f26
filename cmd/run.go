package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fusionkit/fusion-cli/internal/application"
	"github.com/fusionkit/fusion-cli/internal/domain"
)

func newRunCmd(h *appHandle) *cobra.Command {
	var renderMarkdown bool
	var toolNames []string

	cmd := &cobra.Command{
		Use:   "run <agent> <input>",
		Short: "Run a single agent over an input prompt",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentName, err := resolveAgentName(h.app, args[0])
			if err != nil {
				return err
			}

			resolvedTools := make([]domain.ToolName, 0, len(toolNames))
			for _, name := range toolNames {
				resolvedTools = append(resolvedTools, domain.ToolName(name))
			}

			result, err := h.app.service.ExecuteAgent(cmd.Context(), application.RunAgentCommand{
				Agent: agentName,
				Input: strings.Join(args[1:], " "),
				Tools: resolvedTools,
			})
			if err != nil {
				return err
			}

			return writeAgentResult(cmd, h.app, result, renderMarkdown)
		},
	}

	cmd.Flags().BoolVar(&renderMarkdown, "render", false, "render the report as terminal markdown")
	cmd.Flags().StringSliceVar(&toolNames, "tool", nil, "tool to run as an agent sub-step (repeatable)")

	return cmd
}
