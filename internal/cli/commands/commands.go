package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"unitlite/discovery"
	"unitlite/internal/cli"
	"unitlite/internal/config"
	"unitlite/internal/storage"
	"unitlite/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Faills  *FaillsCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies. cfg is filled in by
// the root command before any of them executes.
func NewCommands(cfg *config.Config, flags *cli.Flags, registry *discovery.Registry) *Commands {
	fileStorage := storage.NewFileStorage(cfg)
	errorViewer := ui.NewErrorViewer(fileStorage)

	return &Commands{
		Run:     NewRunCommand(cfg, flags, registry, fileStorage, errorViewer),
		List:    NewListCommand(registry, fileStorage),
		Faills:  NewFaillsCommand(fileStorage, errorViewer),
		History: NewHistoryCommand(cfg, flags),
	}
}

// NewRootCommand builds the unitlite command tree over registry
func NewRootCommand(version string, registry *discovery.Registry) *cobra.Command {
	cfg := config.New()
	var flags cli.Flags

	rootCmd := &cobra.Command{
		Use:           "unitlite",
		Short:         "Minimal xUnit-style test runner",
		Long:          "Discover registered test functions, run each one in isolation and report pass/fail results.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flags.ConfigPath)
			if err != nil {
				return cli.WrapExitError(cli.ExitCommandError, "failed to load config", err)
			}
			*cfg = *loaded
			flags.Apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return cli.WrapExitError(cli.ExitCommandError, "invalid configuration", err)
			}
			if !cfg.Console.Color {
				color.NoColor = true
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Path to the config file (default .unitlite.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")

	NewCommands(cfg, &flags, registry).Register(rootCmd, &flags)
	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run all registered tests",
		Long:  "Invoke every registered test once, in registration order, and report each result",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Draw a progress bar on stderr")
	runCmd.Flags().BoolVar(&flags.PadFailures, "pad-failures", false, "Print one blank line per failed test after the summary")
	runCmd.Flags().StringVar(&flags.Format, "format", "", "Format of the stored results (json or yaml)")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run in the history database")
	runCmd.Flags().BoolVar(&flags.Stats, "stats", false, "Print the statistics table after the run")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List registered tests grouped by package without executing them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Long:  "List recent runs from the history database, or the results of one run",
		Args:  cobra.NoArgs,
		RunE:  c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&flags.RunID, "run", "", "Show the results of this run")
	rootCmd.AddCommand(historyCmd)
}
