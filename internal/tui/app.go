package tui

import (
	"fmt"
	"strings"
	"time"

	"colombo-utc/internal/clipboard"
	"colombo-utc/internal/convert"
	"colombo-utc/internal/docs"
	"colombo-utc/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
)

const minibufferAutoClearAfter = 4 * time.Second

type inputMode int

const (
	modeSingle inputMode = iota
	modeBatch
)

type minibufferKind int

const (
	minibufferInfo minibufferKind = iota
	minibufferError
)

type minibufferClearMsg struct{ seq int }

type copyDoneMsg struct {
	copied  int
	skipped int
	err     error
}

type appModel struct {
	state  session.State
	policy session.CopyPolicy
	clip   clipboard.Writer
	log    zerolog.Logger

	width  int
	height int

	mode  inputMode
	input textinput.Model
	batch textarea.Model

	keys     keyMap
	help     help.Model
	showHelp bool

	minibufferText string
	minibufferKind minibufferKind
	minibufferSeq  int
}

func newAppModel(opts Options) appModel {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	policy := opts.CopyPolicy
	if policy == "" {
		policy = session.CopySkip
	}

	in := textinput.New()
	in.Placeholder = convert.ExpectedFormat
	in.Prompt = ""
	in.CharLimit = 64
	in.Focus()

	ta := textarea.New()
	ta.Placeholder = "One entry per line, e.g.\n2024-01-15, 3:45:00 PM"
	ta.ShowLineNumbers = false
	ta.SetHeight(6)

	return appModel{
		policy: policy,
		clip:   clip,
		log:    log,
		mode:   modeSingle,
		input:  in,
		batch:  ta,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard write failed")
			cmd := m.flashError("Failed to copy: " + msg.err.Error())
			return m, cmd
		}
		m.log.Debug().Int("copied", msg.copied).Int("skipped", msg.skipped).Msg("copied")
		text := "Converted UTC times copied to clipboard!"
		if msg.skipped > 0 {
			text = fmt.Sprintf("Copied %d UTC times (%d failed entries left out)", msg.copied, msg.skipped)
		}
		cmd := m.flash(text)
		return m, cmd

	case tea.KeyMsg:
		m.log.Debug().Str("key", msg.String()).Int("mode", int(m.mode)).Msg("key")
		return m.updateKey(msg)
	}

	return m.updateFocused(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case keyMatches(msg, m.keys.ToggleMode):
		cmd := m.toggleMode()
		return m, cmd
	case keyMatches(msg, m.keys.Convert):
		cmd := m.convertAll()
		return m, cmd
	case keyMatches(msg, m.keys.Copy):
		cmd := m.copyResults()
		return m, cmd
	case keyMatches(msg, m.keys.Clear):
		m.clear()
		cmd := m.flash("Cleared")
		return m, cmd
	case keyMatches(msg, m.keys.RemoveLast):
		if !m.state.Remove(len(m.state.Entries) - 1) {
			cmd := m.flash("Nothing to remove")
			return m, cmd
		}
		return m, nil
	case m.mode == modeSingle && keyMatches(msg, m.keys.Add):
		cmd := m.addInput()
		return m, cmd
	case m.mode == modeBatch && keyMatches(msg, m.keys.AddBatch):
		cmd := m.addBatch()
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m appModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == modeBatch {
		m.batch, cmd = m.batch.Update(msg)
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	m.state.Input = m.input.Value()
	return m, cmd
}

func (m *appModel) toggleMode() tea.Cmd {
	if m.mode == modeSingle {
		m.mode = modeBatch
		m.input.Blur()
		return m.batch.Focus()
	}
	m.mode = modeSingle
	m.batch.Blur()
	return m.input.Focus()
}

func (m *appModel) addInput() tea.Cmd {
	m.state.Input = m.input.Value()
	if err := m.state.AddInput(); err != nil {
		m.log.Debug().Err(err).Msg("entry rejected")
		return m.flashError("Please enter a valid date and time in the format " + convert.ExpectedFormat)
	}
	m.input.SetValue("")
	return nil
}

func (m *appModel) addBatch() tea.Cmd {
	added, rejected := m.state.AddBatch(m.batch.Value())
	if added == 0 && len(rejected) == 0 {
		return m.flash("Nothing to add")
	}
	if len(rejected) > 0 {
		// Keep only the rejected lines so they can be fixed in place.
		bad := make([]string, 0, len(rejected))
		for _, err := range rejected {
			if fe, ok := convert.AsFormatError(err); ok {
				bad = append(bad, fe.Raw)
			}
		}
		m.batch.SetValue(strings.Join(bad, "\n"))
		return m.flashError(fmt.Sprintf("Added %d, %d lines missing a date or time", added, len(rejected)))
	}
	m.batch.Reset()
	return m.flash(fmt.Sprintf("Added %d entries", added))
}

func (m *appModel) convertAll() tea.Cmd {
	if len(m.state.Entries) == 0 {
		return m.flash("No date and time added.")
	}
	outs := m.state.ConvertAll()
	failed := len(m.state.Failures())
	for _, o := range outs {
		if !o.OK() {
			m.log.Info().Str("raw", o.Raw).Str("reason", o.Err.Reason).Msg("conversion failed")
		}
	}
	if failed > 0 {
		return m.flashError(fmt.Sprintf("Converted %d of %d (%d invalid)", len(outs)-failed, len(outs), failed))
	}
	return m.flash(fmt.Sprintf("Converted %d", len(outs)))
}

func (m *appModel) copyResults() tea.Cmd {
	if !m.state.CanCopy() {
		if len(m.state.Outcomes) == 0 {
			return m.flashError("Nothing to copy; convert first")
		}
		return m.flashError("Nothing to copy; no entry converted")
	}
	text, skipped, err := m.state.CopyText(m.policy)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrCopyBlocked):
			return m.flashError("Not copied: " + err.Error())
		case errors.Is(err, session.ErrNothingToCopy):
			return m.flashError("Nothing to copy; convert first")
		default:
			return m.flashError(err.Error())
		}
	}
	clip := m.clip
	copied := len(m.state.Successes())
	return func() tea.Msg {
		return copyDoneMsg{copied: copied, skipped: skipped, err: clip.WriteText(text)}
	}
}

func (m *appModel) clear() {
	m.state.Clear()
	m.input.SetValue("")
	m.batch.Reset()
}

func (m *appModel) flash(text string) tea.Cmd {
	return m.showMinibuffer(text, minibufferInfo)
}

func (m *appModel) flashError(text string) tea.Cmd {
	return m.showMinibuffer(text, minibufferError)
}

func (m *appModel) showMinibuffer(text string, kind minibufferKind) tea.Cmd {
	m.minibufferText = text
	m.minibufferKind = kind
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(minibufferAutoClearAfter, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}

func (m *appModel) resize() {
	w := m.bodyWidth()
	m.input.Width = w - 3
	m.batch.SetWidth(w)
	m.help.Width = w
}

func (m appModel) bodyWidth() int {
	w := m.width - 4
	if w > 96 {
		w = 96
	}
	if w < 24 {
		w = 24
	}
	return w
}

func helpMarkdown() string {
	var b strings.Builder
	for _, topic := range []string{"keys", "usage"} {
		if body, ok := docs.Get(topic); ok {
			b.WriteString(body)
			b.WriteString("\n")
		}
	}
	return b.String()
}
