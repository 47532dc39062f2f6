package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/report"
)

// Run starts the interactive summary viewer for a scanned document.
func Run(reg *registry.Registry, s report.Summary, file string, rescan RescanFunc) error {
	m := NewModel(reg, s, file, rescan)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
