package tui

import (
	"strconv"
	"strings"

	"colombo-utc/internal/convert"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const noResults = "No results"

// renderResultsTable shows one row per outcome, failures included, so the
// user can see which entry was rejected and why.
func renderResultsTable(outcomes []convert.Outcome, width int) string {
	rows := make([][]string, 0, len(outcomes))
	for i, o := range outcomes {
		if o.OK() {
			rows = append(rows, []string{strconv.Itoa(i + 1), glyphOK(), o.UTC})
			continue
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), glyphFailed(), o.Err.Reason + ": " + o.Raw})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"", "", noResults})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("#", "", "UTC Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Bold(true)
			}
			if row < 0 || row >= len(outcomes) {
				return styleMuted().Padding(0, 1)
			}
			if col == 1 {
				if outcomes[row].OK() {
					return st.Foreground(colorOK)
				}
				return st.Foreground(colorError)
			}
			if !outcomes[row].OK() && col == 2 {
				return st.Foreground(colorError)
			}
			return st
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

// renderEntries lists the pending entries, numbered.
func renderEntries(entries []string) string {
	if len(entries) == 0 {
		return styleMuted().Render("No date and time added.")
	}
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, glyphBullet()+" "+strconv.Itoa(i+1)+". "+e)
	}
	return strings.Join(lines, "\n")
}
