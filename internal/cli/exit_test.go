package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitlite/internal/config"
)

func TestGetExitCode(t *testing.T) {
	cause := errors.New("disk full")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", cause, ExitCommandError},
		{"failure", NewExitError(ExitFailure, "2 test(s) failed"), ExitFailure},
		{"wrapped exit error", fmt.Errorf("run: %w", WrapExitError(ExitCommandError, "save", cause)), ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapExitError(ExitCommandError, "failed to save results", cause)

	assert.Equal(t, "failed to save results: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", NewExitError(ExitFailure, "boom").Error())
}

func TestFlags_Apply(t *testing.T) {
	var flags Flags
	cmd := &cobra.Command{Use: "run"}
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "")
	cmd.Flags().BoolVar(&flags.PadFailures, "pad-failures", false, "")
	cmd.Flags().StringVar(&flags.Format, "format", "", "")
	cmd.Flags().BoolVar(&flags.History, "history", false, "")
	require.NoError(t, cmd.ParseFlags([]string{"--format", "yaml", "--history"}))

	cfg := config.New()
	cfg.Console.Progress = true
	flags.Apply(cmd, cfg)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.History.Enabled)
	assert.True(t, cfg.Console.Progress, "unset flags keep configured values")
	assert.True(t, cfg.Console.Color)

	flags.NoColor = true
	flags.Apply(cmd, cfg)
	assert.False(t, cfg.Console.Color)
}
