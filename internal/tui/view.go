package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const title = "Convert Date and Time from Asia/Colombo to UTC"

func (m appModel) View() string {
	w := m.bodyWidth()
	if m.showHelp {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			renderMarkdown(helpMarkdown(), w) + "\n\n" + styleMuted().Render("?/esc: close help"),
		)
	}

	sections := []string{
		styleTitle().Render(title),
		m.renderModeTabs(),
		m.renderInput(w),
		styleHeading().Render("Input Date and Time Combinations:"),
		renderEntries(m.state.Entries),
		styleHeading().Render("Converted UTC Date and Times:"),
		renderResultsTable(m.state.Outcomes, w),
		m.renderMinibuffer(w),
		m.renderFooter(),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (m appModel) renderModeTabs() string {
	active := lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(colorSelected).Foreground(colorAccent)
	inactive := styleMuted().Padding(0, 1)
	single, batch := inactive.Render("Single"), inactive.Render("Batch")
	if m.mode == modeSingle {
		single = active.Render("Single")
	} else {
		batch = active.Render("Batch")
	}
	return single + styleMuted().Render(" "+glyphSeparator()+" ") + batch
}

func (m appModel) renderInput(w int) string {
	if m.mode == modeBatch {
		return m.batch.View()
	}
	return inputBar(w, m.input.View())
}

var inputBarFlatten = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// inputBar fits the single-entry input into one row of exactly w cells.
func inputBar(w int, view string) string {
	if w < 10 {
		w = 10
	}
	view = xansi.Truncate(" "+inputBarFlatten.Replace(view), w-1, "")
	return lipgloss.NewStyle().
		Background(colorInputBg).
		Width(w).
		MaxWidth(w).
		Render(view)
}

func (m appModel) renderMinibuffer(w int) string {
	if strings.TrimSpace(m.minibufferText) == "" {
		return ""
	}
	st := styleOK()
	if m.minibufferKind == minibufferError {
		st = styleError()
	}
	return st.Width(w).Render(m.minibufferText)
}

func (m appModel) renderFooter() string {
	// Disabled on a copy only: key.Matches ignores disabled bindings.
	keys := m.keys
	keys.Copy.SetEnabled(m.state.CanCopy())
	if m.mode == modeBatch {
		return m.help.ShortHelpView(keys.batchShortHelp())
	}
	return m.help.View(keys)
}
