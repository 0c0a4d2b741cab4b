// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the deck UI
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the deck TUI and blocks until the user quits.
func Run(ctrl Controller, title string, peaks []float64) error {
	p := tea.NewProgram(NewModel(ctrl, title, peaks), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
