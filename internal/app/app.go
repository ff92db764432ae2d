// Package app wires configuration, documents and the viewer into the colview
// command line.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/colview/internal/config"
	"github.com/kyaoi/colview/internal/logger"
	"github.com/kyaoi/colview/internal/ui"
)

// Run executes the Bubble Tea program for the table viewer.
func Run(target string, cfg *config.Config) error {
	state, err := LoadInitialState(target, cfg)
	if err != nil {
		return err
	}
	logger.Info("starting viewer", "path", state.Document.Path, "controlled", state.Document.Controlled())
	return runProgram(state)
}

func runProgram(state ui.State) error {
	program := tea.NewProgram(ui.NewModel(state), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
