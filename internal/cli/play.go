package cli

import (
	"flag"
	"fmt"
	"io"

	"quizhub/internal/sheet"
	"quizhub/internal/ui/app"
)

// runInteractive is a test seam for launching the full-screen UI.
var runInteractive = app.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to modules.yml")
		noColor := fs.Bool("no-color", false, "Disable styled output")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		if !decision.interactive {
			fmt.Fprintln(stderr, "Playing needs a TTY; use \"quizhub preview <module-id>\" for plain output.")
			return ExitError
		}

		registry, err := loadRegistry(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}

		loader := &sheet.Loader{Client: newSheetClient()}
		opts := app.Options{NoColor: *noColor}
		if err := runInteractive(stdout, registry.Modules, loader, opts); err != nil {
			fmt.Fprintf(stderr, "UI error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
