package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizhub/internal/sheet"
	"quizhub/internal/spec"
)

// Run starts the full-screen quiz program and blocks until the user quits.
func Run(stdout io.Writer, modules []spec.Module, loader *sheet.Loader, opts Options) error {
	program := tea.NewProgram(
		NewModel(modules, loader, opts),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
