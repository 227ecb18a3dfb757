package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
	"github.com/gatherhq/gather/internal/session"
)

// detailLoadedMsg carries the event fetch for the detail view.
type detailLoadedMsg struct {
	seq   int
	event *api.Event
	err   error
}

// commentsLoadedMsg carries the comment fetch for the detail view.
type commentsLoadedMsg struct {
	seq      int
	comments []api.Comment
	err      error
}

// mutationDoneMsg reports the outcome of a join, leave, or comment request.
type mutationDoneMsg struct {
	action string
	err    error
}

// DetailModel shows a single event with its comments and the join/leave
// and comment actions.
type DetailModel struct {
	client  *api.Client
	session *session.Manager
	logger  *log.Logger
	styles  Styles
	ctx     context.Context

	eventID  int64
	event    *api.Event
	comments []api.Comment

	input   textinput.Model
	typing  bool
	busy    bool
	loadSeq int
	status  string
	isError bool
}

// NewDetailModel creates a detail view for the given event.
func NewDetailModel(ctx context.Context, client *api.Client, sess *session.Manager, logger *log.Logger, styles Styles, eventID int64) DetailModel {
	input := textinput.New()
	input.Placeholder = "Write a comment..."
	input.CharLimit = 500

	return DetailModel{
		client:  client,
		session: sess,
		logger:  logger,
		styles:  styles,
		ctx:     ctx,
		eventID: eventID,
		input:   input,
	}
}

// Init fetches the event and its comments concurrently.
func (m DetailModel) Init() tea.Cmd {
	return m.loadCmd(0)
}

// loadCmd fetches event and comments for the given load generation.
func (m DetailModel) loadCmd(seq int) tea.Cmd {
	client := m.client
	ctx := m.ctx
	id := m.eventID
	return tea.Batch(
		func() tea.Msg {
			event, err := client.GetEvent(ctx, id)
			return detailLoadedMsg{seq: seq, event: event, err: err}
		},
		func() tea.Msg {
			comments, err := client.ListComments(ctx, id)
			return commentsLoadedMsg{seq: seq, comments: comments, err: err}
		},
	)
}

// reload bumps the load generation so in-flight responses are discarded.
func (m DetailModel) reload() (DetailModel, tea.Cmd) {
	m.loadSeq++
	return m, m.loadCmd(m.loadSeq)
}

// canJoin reports whether the join action applies; the second return is a
// human explanation when it does not. The check is advisory: the server
// remains the authority and its rejection is surfaced as-is.
func (m DetailModel) canJoin() (bool, string) {
	user := m.session.User()
	if m.event == nil || user == nil {
		return false, ""
	}
	switch {
	case m.event.IsHostedBy(user.ID):
		return false, "You are hosting this event."
	case m.event.HasAttendee(user.ID):
		return false, "You are already attending."
	case m.event.Full():
		return false, "This event is full."
	}
	return true, ""
}

// Update handles messages for the detail view.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.status = errorMessage(msg.err)
			m.isError = true
			return m, nil
		}
		m.event = msg.event
		return m, nil

	case commentsLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Error("comment fetch failed")
			return m, nil
		}
		m.comments = msg.comments
		return m, nil

	case mutationDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = errorMessage(msg.err)
			m.isError = true
			return m, nil
		}
		m.status = msg.action
		m.isError = false
		if msg.action == "Comment posted." {
			m.input.SetValue("")
			m.typing = false
			m.input.Blur()
		}
		return m.reload()

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backMsg{} }
		case "j":
			return m.join()
		case "l":
			return m.leave()
		case "c":
			m.typing = true
			m.status = ""
			return m, m.input.Focus()
		case "r":
			return m.reload()
		}
	}
	return m, nil
}

func (m DetailModel) updateTyping(msg tea.KeyMsg) (DetailModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.typing = false
		m.input.Blur()
		return m, nil
	case "enter":
		return m.postComment()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m DetailModel) join() (DetailModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if ok, reason := m.canJoin(); !ok {
		if reason != "" {
			m.status = reason
			m.isError = true
		}
		return m, nil
	}
	m.busy = true
	client, ctx, id := m.client, m.ctx, m.eventID
	return m, func() tea.Msg {
		return mutationDoneMsg{action: "You're in!", err: client.JoinEvent(ctx, id)}
	}
}

func (m DetailModel) leave() (DetailModel, tea.Cmd) {
	user := m.session.User()
	if m.busy || m.event == nil || user == nil || !m.event.HasAttendee(user.ID) {
		return m, nil
	}
	m.busy = true
	client, ctx, id := m.client, m.ctx, m.eventID
	return m, func() tea.Msg {
		return mutationDoneMsg{action: "You left the event.", err: client.LeaveEvent(ctx, id)}
	}
}

func (m DetailModel) postComment() (DetailModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		// Whitespace-only comments never reach the server.
		return m, nil
	}
	if m.busy {
		return m, nil
	}
	m.busy = true
	client, ctx, id := m.client, m.ctx, m.eventID
	return m, func() tea.Msg {
		_, err := client.PostComment(ctx, id, text)
		return mutationDoneMsg{action: "Comment posted.", err: err}
	}
}

// View renders the detail view.
func (m DetailModel) View() string {
	if m.event == nil {
		if m.status != "" {
			return m.styles.Error.Render(m.status) + "\n\n" + m.styles.Help.Render("esc back")
		}
		return m.styles.Muted.Render("Loading event...")
	}

	var b strings.Builder
	event := m.event

	b.WriteString(m.styles.Title.Render(event.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.Badge.Render(event.Category))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("When     ") + event.DateTime.Format("Monday, Jan 2 2006 at 15:04") + "\n")
	b.WriteString(m.styles.Muted.Render("Where    ") + event.Location + "\n")
	b.WriteString(m.styles.Muted.Render("Host     ") + event.Host.FullName() + "\n")

	capacity := fmt.Sprintf("%d attending", event.AttendeeCount)
	if event.MaxAttendees != nil {
		capacity = fmt.Sprintf("%d of %d spots taken", event.AttendeeCount, *event.MaxAttendees)
	}
	if event.Full() {
		capacity += "  " + m.styles.Error.Render("FULL")
	}
	b.WriteString(m.styles.Muted.Render("Who      ") + capacity + "\n\n")

	if event.Description != "" {
		b.WriteString(event.Description + "\n\n")
	}

	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Comments (%d)", len(m.comments))))
	b.WriteString("\n")
	if len(m.comments) == 0 {
		b.WriteString(m.styles.Muted.Render("No comments yet.") + "\n")
	}
	for _, comment := range m.comments {
		b.WriteString(m.styles.Status.Render(comment.User.FullName()))
		b.WriteString(m.styles.Muted.Render("  " + comment.CreatedAt.Format("Jan 2 15:04")))
		b.WriteString("\n  " + comment.Text + "\n")
	}
	b.WriteString("\n")

	if m.typing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.isError {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m DetailModel) helpLine() string {
	if m.typing {
		return m.styles.Help.Render(
			m.styles.Key.Render("enter") + " " + m.styles.KeyDesc.Render("post") + " • " +
				m.styles.Key.Render("esc") + " " + m.styles.KeyDesc.Render("cancel"))
	}

	items := []string{}
	user := m.session.User()
	if m.event != nil && user != nil && !m.event.IsHostedBy(user.ID) {
		if m.event.HasAttendee(user.ID) {
			items = append(items, m.styles.Key.Render("l")+" "+m.styles.KeyDesc.Render("leave"))
		} else {
			items = append(items, m.styles.Key.Render("j")+" "+m.styles.KeyDesc.Render("join"))
		}
	}
	items = append(items,
		m.styles.Key.Render("c")+" "+m.styles.KeyDesc.Render("comment"),
		m.styles.Key.Render("r")+" "+m.styles.KeyDesc.Render("refresh"),
		m.styles.Key.Render("esc")+" "+m.styles.KeyDesc.Render("back"),
	)
	return m.styles.Help.Render(strings.Join(items, " • "))
}
