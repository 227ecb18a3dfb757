package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
)

// minQueryLen is the shortest input that triggers a location lookup.
const minQueryLen = 2

// locDebounceMsg fires after the location input has been quiet.
type locDebounceMsg struct {
	seq int
}

// locResultsMsg carries suggestion results tagged with their generation.
type locResultsMsg struct {
	seq         int
	suggestions []api.LocationSuggestion
	err         error
}

// locationPickedMsg is emitted when the picker resolves to a value. An
// empty string means the location was cleared.
type locationPickedMsg struct {
	location string
}

// PickerModel is the location picker: a text input with debounced
// server-backed suggestions. Free text is always a valid choice, so a
// failed or empty lookup never blocks the user.
type PickerModel struct {
	client *api.Client
	logger *log.Logger
	styles Styles
	ctx    context.Context

	input       textinput.Model
	suggestions []api.LocationSuggestion
	cursor      int // -1 = free text, >= 0 = suggestion index
	searching   bool

	debounceSeq int
	fetchSeq    int
}

// NewPickerModel creates a location picker.
func NewPickerModel(ctx context.Context, client *api.Client, logger *log.Logger, styles Styles) PickerModel {
	input := textinput.New()
	input.Placeholder = "Where is it happening?"
	input.Prompt = "⌖ "
	input.Focus()

	return PickerModel{
		client: client,
		logger: logger,
		styles: styles,
		ctx:    ctx,
		input:  input,
		cursor: -1,
	}
}

// Init is a no-op; lookups start on the first keystroke.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetValue pre-fills the input, for re-entering the picker with a
// previously chosen location.
func (m *PickerModel) SetValue(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

// schedule re-arms the debounce timer for the current input value.
func (m PickerModel) schedule() (PickerModel, tea.Cmd) {
	m.debounceSeq++
	seq := m.debounceSeq
	return m, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return locDebounceMsg{seq: seq}
	})
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case locDebounceMsg:
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		query := strings.TrimSpace(m.input.Value())
		if len(query) < minQueryLen {
			m.suggestions = nil
			m.cursor = -1
			return m, nil
		}
		m.fetchSeq++
		seq := m.fetchSeq
		m.searching = true
		client, ctx := m.client, m.ctx
		return m, func() tea.Msg {
			suggestions, err := client.SearchLocations(ctx, query)
			return locResultsMsg{seq: seq, suggestions: suggestions, err: err}
		}

	case locResultsMsg:
		if msg.seq != m.fetchSeq {
			// Superseded lookup; ignore.
			return m, nil
		}
		m.searching = false
		if msg.err != nil {
			// Suggestions are a convenience, free text still works.
			m.logger.WithError(msg.err).Warn("location search failed")
			m.suggestions = nil
			m.cursor = -1
			return m, nil
		}
		m.suggestions = msg.suggestions
		m.cursor = -1
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > -1 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m, m.pick()
		case "esc":
			// Leaving dismisses the list but keeps whatever was typed.
			m.suggestions = nil
			m.cursor = -1
			return m, func() tea.Msg {
				return locationPickedMsg{location: strings.TrimSpace(m.input.Value())}
			}
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.cursor = -1
			var debounce tea.Cmd
			m, debounce = m.schedule()
			return m, tea.Batch(cmd, debounce)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// pick resolves the current state to a location value.
func (m PickerModel) pick() tea.Cmd {
	var location string
	if m.cursor >= 0 && m.cursor < len(m.suggestions) {
		location = m.suggestions[m.cursor].DisplayText()
	} else {
		location = strings.TrimSpace(m.input.Value())
	}
	return func() tea.Msg {
		return locationPickedMsg{location: location}
	}
}

// View renders the picker.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render("Location"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.styles.Muted.Render("Searching...") + "\n")
	}
	for i, suggestion := range m.suggestions {
		text := suggestion.DisplayText()
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("▸ " + text))
		} else {
			b.WriteString("  " + text)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		m.styles.Key.Render("↑/↓") + " " + m.styles.KeyDesc.Render("suggestions") + " • " +
			m.styles.Key.Render("enter") + " " + m.styles.KeyDesc.Render("use") + " • " +
			m.styles.Key.Render("esc") + " " + m.styles.KeyDesc.Render("keep typed text")))
	return b.String()
}
