package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

// appHandle carries the wired application into subcommands; it is filled by
// the root command's PersistentPreRunE once the --config flag is known.
type appHandle struct {
	app *app
}

func newRootCmd() *cobra.Command {
	var configPath string
	handle := &appHandle{}

	rootCmd := &cobra.Command{
		Use:           "fusion",
		Short:         "Fusion agent OS CLI: run heuristic agents, patterns and pipelines",
		Long:          "fusion dispatches text prompts to named agents that apply keyword heuristics and produce scored markdown reports, routes prompts through keyword-triggered patterns with fallbacks, and logs every interaction into a JSON-backed memory.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}

			wired, err := wireApp(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			handle.app = wired

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if handle.app != nil && handle.app.logger != nil {
				_ = handle.app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the .fusion.json configuration file")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(handle),
		newPipelineCmd(handle),
		newPatternCmd(handle),
		newMemoryCmd(handle),
		newStatusCmd(handle),
		newPushCmd(handle),
	)

	return rootCmd
}
