package main

import (
	"errors"
	"fmt"
	"os"

	"unitlite/discovery"
	"unitlite/internal/cli"
	"unitlite/internal/cli/commands"
	_ "unitlite/internal/samples"
)

var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version, discovery.Global())

	if err := rootCmd.Execute(); err != nil {
		// failed tests were already reported line by line
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != cli.ExitFailure {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
