package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
	"github.com/gatherhq/gather/internal/session"
)

// hostedLoadedMsg carries the events the current user hosts.
type hostedLoadedMsg struct {
	events []api.Event
	err    error
}

// attendingLoadedMsg carries the events the current user attends. The
// backend has no attendee filter, so the full collection is fetched and
// narrowed client-side.
type attendingLoadedMsg struct {
	events []api.Event
	err    error
}

type profileTab int

const (
	tabHosted profileTab = iota
	tabAttending
)

// ProfileModel shows the logged-in user with the events they host and the
// events they attend.
type ProfileModel struct {
	client  *api.Client
	session *session.Manager
	logger  *log.Logger
	styles  Styles
	ctx     context.Context

	tab       profileTab
	hosted    []api.Event
	attending []api.Event
	loading   int
	status    string
}

// NewProfileModel creates the profile view.
func NewProfileModel(ctx context.Context, client *api.Client, sess *session.Manager, logger *log.Logger, styles Styles) ProfileModel {
	return ProfileModel{
		client:  client,
		session: sess,
		logger:  logger,
		styles:  styles,
		ctx:     ctx,
	}
}

// Init fetches both collections concurrently.
func (m ProfileModel) Init() tea.Cmd {
	user := m.session.User()
	if user == nil {
		return nil
	}
	client, ctx, userID := m.client, m.ctx, user.ID
	return tea.Batch(
		func() tea.Msg {
			events, err := client.ListEvents(ctx, api.EventFilter{Host: userID})
			return hostedLoadedMsg{events: events, err: err}
		},
		func() tea.Msg {
			events, err := client.ListEvents(ctx, api.EventFilter{})
			return attendingLoadedMsg{events: events, err: err}
		},
	)
}

// attendingOf narrows a collection to the events the user attends but does
// not host.
func attendingOf(events []api.Event, userID int64) []api.Event {
	var attending []api.Event
	for _, event := range events {
		if event.HasAttendee(userID) && !event.IsHostedBy(userID) {
			attending = append(attending, event)
		}
	}
	return attending
}

// Update handles messages for the profile view.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case hostedLoadedMsg:
		m.loading--
		if msg.err != nil {
			m.status = errorMessage(msg.err)
			return m, nil
		}
		m.hosted = msg.events
		return m, nil

	case attendingLoadedMsg:
		m.loading--
		if msg.err != nil {
			m.status = errorMessage(msg.err)
			return m, nil
		}
		if user := m.session.User(); user != nil {
			m.attending = attendingOf(msg.events, user.ID)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backMsg{} }
		case "tab", "left", "right":
			if m.tab == tabHosted {
				m.tab = tabAttending
			} else {
				m.tab = tabHosted
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the profile view.
func (m ProfileModel) View() string {
	user := m.session.User()
	if user == nil {
		return m.styles.Error.Render("Not logged in.")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(user.FullName()))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(user.Email))
	b.WriteString("\n\n")

	hostedTab := fmt.Sprintf("Hosting (%d)", len(m.hosted))
	attendingTab := fmt.Sprintf("Attending (%d)", len(m.attending))
	if m.tab == tabHosted {
		b.WriteString(m.styles.Selected.Render(hostedTab) + "  " + m.styles.Muted.Render(attendingTab))
	} else {
		b.WriteString(m.styles.Muted.Render(hostedTab) + "  " + m.styles.Selected.Render(attendingTab))
	}
	b.WriteString("\n\n")

	events := m.hosted
	if m.tab == tabAttending {
		events = m.attending
	}
	if len(events) == 0 {
		b.WriteString(m.styles.Muted.Render("Nothing here yet.") + "\n")
	}
	for _, event := range events {
		b.WriteString("  " + event.Title)
		b.WriteString(m.styles.Muted.Render("  " + event.DateTime.Format("Mon Jan 2 15:04")))
		if event.IsPast {
			b.WriteString("  " + m.styles.Muted.Render("(past)"))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		m.styles.Key.Render("tab") + " " + m.styles.KeyDesc.Render("switch") + " • " +
			m.styles.Key.Render("esc") + " " + m.styles.KeyDesc.Render("back")))
	return b.String()
}
