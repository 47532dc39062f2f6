// Package tui is the interactive summary viewer. It renders the Summary
// projection only: category counts, totals, no matched text and no offsets.
// That restriction is the privacy boundary for every interactive surface, so
// nothing in this package may ever receive a finding's match.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaulty/vaulty/internal/registry"
	"github.com/vaulty/vaulty/internal/report"
	"github.com/vaulty/vaulty/internal/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	borderStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RescanFunc re-runs the scan and returns a fresh summary.
type RescanFunc func() (report.Summary, error)

// Model is the bubbletea model for the summary viewer.
type Model struct {
	reg     *registry.Registry
	summary report.Summary
	file    string
	tbl     table.Model
	rescan  RescanFunc
	lastErr error
}

// NewModel builds a summary viewer for one scanned document.
func NewModel(reg *registry.Registry, s report.Summary, file string, rescan RescanFunc) Model {
	m := Model{reg: reg, summary: s, file: file, rescan: rescan}
	m.tbl = table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 16},
			{Title: "Count", Width: 7},
			{Title: "Severity", Width: 10},
		}),
		table.WithRows(m.rows()),
		table.WithHeight(reg.Len()+1),
		table.WithFocused(true),
	)
	return m
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, 0, m.reg.Len())
	for _, d := range m.reg.All() {
		rows = append(rows, table.Row{
			d.Name,
			strconv.Itoa(m.summary.Counts[d.Name]),
			string(types.SeverityFor(d.BaseWeight)),
		})
	}
	return rows
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.rescan != nil {
				s, err := m.rescan()
				if err != nil {
					m.lastErr = err
					return m, nil
				}
				m.lastErr = nil
				m.summary = s
				m.tbl.SetRows(m.rows())
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := titleStyle.Render("vaulty") + "  " + m.file
	body := borderStyle.Render(m.tbl.View())
	footer := footerStyle.Render(fmt.Sprintf("findings: %d   r rescan · q quit", m.summary.Total))
	if m.lastErr != nil {
		footer = errStyle.Render("rescan failed: "+m.lastErr.Error()) + "\n" + footer
	}
	return header + "\n" + body + "\n" + footer + "\n"
}
