package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
)

// debounceInterval is the quiet period after the last filter change before
// a fetch is issued.
const debounceInterval = 300 * time.Millisecond

// searchDebounceMsg fires after the debounce window. Only the message whose
// sequence is still current triggers a fetch.
type searchDebounceMsg struct {
	seq int
}

// eventsLoadedMsg carries a fetch result tagged with its generation.
// Stale generations are discarded so the displayed results always reflect
// the most recently issued filter (last writer wins).
type eventsLoadedMsg struct {
	seq    int
	events []api.Event
	err    error
}

// ListModel is the event list/filter view: a debounced search input, a
// category selector, and the fetched collection.
type ListModel struct {
	client *api.Client
	logger *log.Logger
	styles Styles
	ctx    context.Context

	search      textinput.Model
	categoryIdx int // 0 = all categories, i = api.Categories[i-1]

	events  []api.Event
	cursor  int
	loading bool

	debounceSeq int
	fetchSeq    int
	cancelFetch context.CancelFunc

	width  int
	height int
}

// NewListModel creates the event list view.
func NewListModel(ctx context.Context, client *api.Client, logger *log.Logger, styles Styles) ListModel {
	search := textinput.New()
	search.Placeholder = "Search events..."
	search.Prompt = "／ "
	search.Focus()

	return ListModel{
		client: client,
		logger: logger,
		styles: styles,
		ctx:    ctx,
		search: search,
	}
}

// Init issues the initial unfiltered fetch. The zero-sequence debounce
// message matches the fresh model and kicks off generation one.
func (m ListModel) Init() tea.Cmd {
	return func() tea.Msg { return searchDebounceMsg{seq: 0} }
}

// filter returns the current server-driven filter state.
func (m ListModel) filter() api.EventFilter {
	f := api.EventFilter{Search: strings.TrimSpace(m.search.Value())}
	if m.categoryIdx > 0 {
		f.Category = api.Categories[m.categoryIdx-1].Value
	}
	return f
}

// scheduleFetch bumps the debounce sequence and arms the timer. Rapid
// successive changes coalesce into a single fetch with the last value.
func (m ListModel) scheduleFetch() (ListModel, tea.Cmd) {
	m.debounceSeq++
	seq := m.debounceSeq
	return m, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// startFetch begins a new generation, cancelling any superseded request.
func (m ListModel) startFetch() (ListModel, tea.Cmd) {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}

	m.fetchSeq++
	seq := m.fetchSeq
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel
	m.loading = true

	filter := m.filter()
	client := m.client
	return m, func() tea.Msg {
		events, err := client.ListEvents(ctx, filter)
		return eventsLoadedMsg{seq: seq, events: events, err: err}
	}
}

// Update handles messages for the list view.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.debounceSeq {
			// A newer change re-armed the timer.
			return m, nil
		}
		return m.startFetch()

	case eventsLoadedMsg:
		if msg.seq != m.fetchSeq {
			// Stale response from a superseded fetch.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Degrade to the previous list rather than crashing the view.
			m.logger.WithError(msg.err).Error("event list fetch failed")
			return m, nil
		}
		m.events = msg.events
		if m.cursor >= len(m.events) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.events)-1 {
				m.cursor++
			}
			return m, nil
		case "left":
			m.categoryIdx--
			if m.categoryIdx < 0 {
				m.categoryIdx = len(api.Categories)
			}
			return m.scheduleFetch()
		case "right":
			m.categoryIdx++
			if m.categoryIdx > len(api.Categories) {
				m.categoryIdx = 0
			}
			return m.scheduleFetch()
		case "enter":
			if m.cursor < len(m.events) {
				id := m.events[m.cursor].ID
				return m, func() tea.Msg { return openDetailMsg{eventID: id} }
			}
			return m, nil
		case "ctrl+r":
			// Clear filters.
			m.search.SetValue("")
			m.categoryIdx = 0
			return m.scheduleFetch()
		}

		// Everything else feeds the search input; a changed value
		// re-arms the debounce timer.
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			var debounce tea.Cmd
			m, debounce = m.scheduleFetch()
			return m, tea.Batch(cmd, debounce)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// categoryName returns the label of the selected category filter.
func (m ListModel) categoryName() string {
	if m.categoryIdx == 0 {
		return "All Categories"
	}
	return api.Categories[m.categoryIdx-1].Label
}

// View renders the list view.
func (m ListModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Upcoming Events"))
	b.WriteString("\n\n")

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Category: "))
	b.WriteString(m.styles.Status.Render("◀ " + m.categoryName() + " ▶"))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.events) == 0:
		b.WriteString(m.styles.Muted.Render("Loading events..."))
	case len(m.events) == 0:
		b.WriteString(m.styles.Muted.Render("No events found.") + "\n")
		b.WriteString(m.styles.Subtitle.Render("Try adjusting your filters, or press "))
		b.WriteString(m.styles.Key.Render("ctrl+n"))
		b.WriteString(m.styles.Subtitle.Render(" to create an event."))
	default:
		for i, event := range m.events {
			b.WriteString(m.renderRow(i, event))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m ListModel) renderRow(index int, event api.Event) string {
	badge := m.styles.Badge.Render(event.Category)
	when := event.DateTime.Format("Mon Jan 2 15:04")
	count := fmt.Sprintf("%d attending", event.AttendeeCount)
	if event.MaxAttendees != nil {
		count = fmt.Sprintf("%d/%d attending", event.AttendeeCount, *event.MaxAttendees)
	}

	line := fmt.Sprintf("%s  %s  %s · %s", event.Title, badge, m.styles.Muted.Render(when), m.styles.Muted.Render(count))
	if index == m.cursor {
		return m.styles.Selected.Render("▸ "+event.Title) + fmt.Sprintf("  %s  %s · %s", badge, m.styles.Muted.Render(when), m.styles.Muted.Render(count))
	}
	return "  " + line
}

func (m ListModel) helpLine() string {
	items := []string{
		m.styles.Key.Render("↑/↓") + " " + m.styles.KeyDesc.Render("select"),
		m.styles.Key.Render("←/→") + " " + m.styles.KeyDesc.Render("category"),
		m.styles.Key.Render("enter") + " " + m.styles.KeyDesc.Render("open"),
		m.styles.Key.Render("ctrl+n") + " " + m.styles.KeyDesc.Render("create"),
		m.styles.Key.Render("ctrl+p") + " " + m.styles.KeyDesc.Render("profile"),
		m.styles.Key.Render("ctrl+r") + " " + m.styles.KeyDesc.Render("clear filters"),
		m.styles.Key.Render("ctrl+c") + " " + m.styles.KeyDesc.Render("quit"),
	}
	return m.styles.Help.Render(strings.Join(items, " • "))
}
