package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func writeAgentResult(cmd *cobra.Command, a *app, result domain.AgentResult, render bool) error {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Agent: %s\n", result.Agent)
	_, _ = fmt.Fprintf(out, "Confidence: %s (%s)\n",
		domain.FormatConfidence(result.Confidence), domain.QualityLabel(result.Confidence))
	_, _ = fmt.Fprintf(out, "Execution: %s\n", result.ExecutionTime.Round(time.Millisecond))
	if len(result.ToolsUsed) > 0 {
		names := make([]string, 0, len(result.ToolsUsed))
		for _, tool := range result.ToolsUsed {
			names = append(names, string(tool))
		}
		_, _ = fmt.Fprintf(out, "Tools: %s\n", strings.Join(names, ", "))
	}
	_, _ = fmt.Fprintln(out)

	if render {
		return a.renderReport(out, result.Output)
	}

	_, err := fmt.Fprintln(out, result.Output)
	return err
}
