package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"unitlite/discovery"
	"unitlite/internal/storage"
	"unitlite/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	registry *discovery.Registry
	storage  storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(registry *discovery.Registry, st storage.Storage) *ListCommand {
	return &ListCommand{
		registry: registry,
		storage:  st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := lc.registry.Discover()
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}

	// tests that failed in the last run get a marker; no stored run is fine
	failed := make(map[string]struct{})
	if last, err := lc.storage.Load(); err == nil {
		for _, i := range last.Failures() {
			failed[last.Details[i].Name] = struct{}{}
		}
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintTestList(cases, failed)
	return nil
}
