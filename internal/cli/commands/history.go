package commands

import (
	"github.com/spf13/cobra"

	"unitlite/internal/cli"
	"unitlite/internal/config"
	"unitlite/internal/history"
	"unitlite/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config *config.Config
	flags  *cli.Flags
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, flags *cli.Flags) *HistoryCommand {
	return &HistoryCommand{
		config: cfg,
		flags:  flags,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	store, err := history.Open(cmd.Context(), hc.config.History)
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "failed to open history", err)
	}
	defer store.Close()

	formatter := ui.NewFormatter(cmd.OutOrStdout())

	if hc.flags.RunID != "" {
		records, err := store.Results(cmd.Context(), hc.flags.RunID)
		if err != nil {
			return cli.WrapExitError(cli.ExitCommandError, "failed to load run", err)
		}
		if len(records) == 0 {
			return cli.NewExitError(cli.ExitCommandError, "run not found: "+hc.flags.RunID)
		}
		formatter.PrintRecords(records)
		return nil
	}

	if hc.flags.Limit <= 0 {
		return cli.NewExitError(cli.ExitCommandError, "--limit must be positive")
	}
	runs, err := store.Recent(cmd.Context(), hc.flags.Limit)
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "failed to load runs", err)
	}
	formatter.PrintHistory(runs)
	return nil
}
