package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"quizhub/internal/sheet"
	"quizhub/internal/spec"
)

// newSheetClient is a test seam for pointing the loader at a fake endpoint.
var newSheetClient = sheet.NewClient

const previewTimeout = 30 * time.Second

// runPreview builds the handler for the preview command.
func runPreview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to modules.yml")
		seed := fs.Int64("seed", 0, "Shuffle seed (0 means random)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		moduleID := fs.Arg(0)
		if moduleID == "" {
			fmt.Fprintln(stderr, "Missing <module-id>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		registry, err := loadRegistry(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		module, ok := findModule(registry, moduleID)
		if !ok {
			fmt.Fprintf(stderr, "Unknown module: %s\n", moduleID)
			return ExitError
		}

		loader := &sheet.Loader{Client: newSheetClient()}
		if *seed != 0 {
			loader.Rand = rand.New(rand.NewSource(*seed))
		}
		ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
		defer cancel()

		if err := previewModule(ctx, stdout, loader, module); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func findModule(registry spec.Registry, id string) (spec.Module, bool) {
	for _, module := range registry.Modules {
		if module.ID == id {
			return module, true
		}
	}
	return spec.Module{}, false
}

// previewModule fetches and prints a module's questions and pair sheets in
// plain text, one load per sheet, in the same shape the interactive session
// would see them.
func previewModule(ctx context.Context, stdout io.Writer, loader *sheet.Loader, module spec.Module) error {
	questions, err := loader.Questions(ctx, module.SheetID, module.QuestionLimit)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d question(s)\n", module.Name, len(questions))
	for i, question := range questions {
		fmt.Fprintf(stdout, "\n%d. %s\n", i+1, question.Prompt)
		for _, option := range question.Options {
			marker := " "
			if option == question.Correct {
				marker = "*"
			}
			fmt.Fprintf(stdout, "   %s %s\n", marker, option)
		}
		if question.Explanation != "" {
			fmt.Fprintf(stdout, "   > %s\n", question.Explanation)
		}
	}

	for i, sheetID := range module.MatchingSheetIDs {
		set, err := loader.Pairs(ctx, sheetID)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nMatching %d: %s / %s, %d pair(s)\n", i+1, set.LeftTitle, set.RightTitle, len(set.Pairs))
		for _, pair := range set.Pairs {
			fmt.Fprintf(stdout, "   %s = %s\n", pair.Left, pair.Right)
		}
	}
	return nil
}
