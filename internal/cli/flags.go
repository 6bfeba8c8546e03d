package cli

import (
	"github.com/spf13/cobra"

	"unitlite/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigPath  string
	NoColor     bool
	Progress    bool
	PadFailures bool
	Format      string
	History     bool
	Stats       bool
	OpenFaills  bool
	Limit       int
	RunID       string
}

// Apply overrides cfg with the flags explicitly set on cmd
func (f *Flags) Apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if f.NoColor {
		cfg.Console.Color = false
	}
	if changed("progress") {
		cfg.Console.Progress = f.Progress
	}
	if changed("pad-failures") {
		cfg.Console.PadFailures = f.PadFailures
	}
	if changed("format") {
		cfg.Output.Format = f.Format
	}
	if changed("history") {
		cfg.History.Enabled = f.History
	}
}
