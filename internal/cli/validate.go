package cli

import (
	"flag"
	"fmt"
	"io"

	"quizhub/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to modules.yml")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		path, err := config.FindPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		registry, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "OK: %d module(s) in %s\n", len(registry.Modules), path)
		return ExitOK
	}
}
