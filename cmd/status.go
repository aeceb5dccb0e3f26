package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	statusrender "github.com/fusionkit/fusion-cli/internal/adapters/render/status"
)

func newStatusCmd(h *appHandle) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configuration, agents, patterns and memory dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := h.app.service.GetStatus(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			rendered, err := h.app.statusRenderer(status, statusrender.RenderOptions{Now: h.app.now()})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print status as JSON")

	return cmd
}
