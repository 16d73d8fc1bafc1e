package cli

import (
	"flag"
	"fmt"
	"io"

	"quizhub/internal/config"
	"quizhub/internal/spec"
)

// runModules builds the handler for the modules command.
func runModules(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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

		registry, err := loadRegistry(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		for _, module := range registry.Modules {
			fmt.Fprintf(stdout, "%-12s %s", module.ID, module.Name)
			if len(module.MatchingTriggerPoints) > 0 {
				fmt.Fprintf(stdout, "  (matching after %v)", module.MatchingTriggerPoints)
			}
			fmt.Fprintln(stdout)
		}
		return ExitOK
	}
}

func loadRegistry(configPath string) (spec.Registry, error) {
	path, err := config.FindPath(configPath)
	if err != nil {
		return spec.Registry{}, err
	}
	return config.Load(path)
}
