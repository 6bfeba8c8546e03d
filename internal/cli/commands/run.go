package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitlite/discovery"
	"unitlite/internal/cli"
	"unitlite/internal/config"
	"unitlite/internal/domain"
	"unitlite/internal/history"
	"unitlite/internal/logging"
	"unitlite/internal/storage"
	"unitlite/internal/ui"
	"unitlite/runner"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	flags    *cli.Flags
	registry *discovery.Registry
	storage  storage.Storage
	viewer   ui.Viewer
	now      func() time.Time
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	flags *cli.Flags,
	registry *discovery.Registry,
	st storage.Storage,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		flags:    flags,
		registry: registry,
		storage:  st,
		viewer:   viewer,
		now:      time.Now,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(rc.config.Logging)
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "failed to create logger", err)
	}
	defer logger.Sync()

	cases := rc.registry.Discover()

	opts := []runner.Option{
		runner.WithSink(ui.ConsoleSink(cmd.OutOrStdout())),
		runner.WithLogger(logger),
		runner.WithFailurePadding(rc.config.Console.PadFailures),
	}
	var bar *ui.ProgressBar
	if rc.config.Console.Progress {
		bar = ui.NewProgressBar(len(cases), cmd.ErrOrStderr())
		opts = append(opts, runner.WithObserver(bar))
	}

	report := runner.New(opts...).Run(cases)
	if bar != nil {
		bar.Finish()
	}

	output := domain.NewRunOutput(uuid.NewString(), report, rc.now())
	if err := rc.storage.Save(output); err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "failed to save test results", err)
	}

	if rc.config.History.Enabled {
		if err := rc.record(cmd, output); err != nil {
			return cli.WrapExitError(cli.ExitCommandError, "failed to record run history", err)
		}
		logger.Debug("run recorded", zap.String("run_id", output.Meta.RunID))
	}

	if rc.flags.Stats {
		ui.NewFormatter(cmd.OutOrStdout()).PrintMetaStats(output)
	}

	if report.Summary.Failed == 0 {
		return nil
	}
	if rc.flags.OpenFaills {
		if err := rc.viewer.View(output); err != nil {
			return cli.WrapExitError(cli.ExitCommandError, "faills viewer failed", err)
		}
	}
	return cli.NewExitError(cli.ExitFailure, fmt.Sprintf("%d test(s) failed", report.Summary.Failed))
}

func (rc *RunCommand) record(cmd *cobra.Command, output *domain.RunOutput) error {
	store, err := history.Open(cmd.Context(), rc.config.History)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(cmd.Context(), output)
}
