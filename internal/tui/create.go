package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
)

// datetimeLayout is the input format for the event date field.
const datetimeLayout = "2006-01-02 15:04"

// eventCreatedMsg reports the outcome of the create request.
type eventCreatedMsg struct {
	event *api.Event
	err   error
}

type createPhase int

const (
	phaseLocation createPhase = iota
	phaseForm
	phaseSubmitting
)

// CreateModel is the event creation flow: pick a location first, then fill
// in the remaining fields. Field values survive a rejected submission so
// the user can correct and retry.
type CreateModel struct {
	client *api.Client
	logger *log.Logger
	styles Styles
	ctx    context.Context

	phase  createPhase
	picker PickerModel
	form   *huh.Form

	title        string
	description  string
	category     string
	location     string
	datetime     string
	maxAttendees string

	formError string
}

// NewCreateModel creates the event creation flow.
func NewCreateModel(ctx context.Context, client *api.Client, logger *log.Logger, styles Styles) CreateModel {
	return CreateModel{
		client:   client,
		logger:   logger,
		styles:   styles,
		ctx:      ctx,
		phase:    phaseLocation,
		picker:   NewPickerModel(ctx, client, logger, styles),
		category: api.Categories[0].Value,
	}
}

// Init starts the location picker.
func (m CreateModel) Init() tea.Cmd {
	return m.picker.Init()
}

// buildForm constructs the detail form around the currently bound values,
// so a rebuild after a server rejection keeps everything the user typed.
func (m *CreateModel) buildForm() {
	options := make([]huh.Option[string], 0, len(api.Categories))
	for _, category := range api.Categories {
		options = append(options, huh.NewOption(category.Label, category.Value))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.title).
				Validate(func(value string) error {
					if strings.TrimSpace(value) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&m.description),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&m.category),
			huh.NewInput().
				Title("Date and time").
				Description("YYYY-MM-DD HH:MM, e.g. 2026-09-12 18:30").
				Value(&m.datetime).
				Validate(func(value string) error {
					if _, err := time.Parse(datetimeLayout, strings.TrimSpace(value)); err != nil {
						return fmt.Errorf("use the format YYYY-MM-DD HH:MM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Max attendees").
				Description("Leave empty for no limit").
				Value(&m.maxAttendees).
				Validate(validateMaxAttendees),
		),
	)
}

// validateMaxAttendees accepts an empty value (no limit) or an integer of
// at least one.
func validateMaxAttendees(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of at least 1, or leave empty")
	}
	return nil
}

// request builds the create payload from the bound field values. An empty
// max-attendees field is omitted from the payload entirely.
func (m CreateModel) request() api.CreateEventRequest {
	req := api.CreateEventRequest{
		Title:       strings.TrimSpace(m.title),
		Description: strings.TrimSpace(m.description),
		Category:    m.category,
		Location:    m.location,
	}
	if t, err := time.Parse(datetimeLayout, strings.TrimSpace(m.datetime)); err == nil {
		req.DateTime = t
	}
	if value := strings.TrimSpace(m.maxAttendees); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			req.MaxAttendees = &n
		}
	}
	return req
}

// Update handles messages for the creation flow.
func (m CreateModel) Update(msg tea.Msg) (CreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case locationPickedMsg:
		if msg.location == "" {
			// A location is required before the rest of the form opens.
			m.formError = "Pick or type a location first."
			return m, nil
		}
		m.location = msg.location
		m.formError = ""
		m.phase = phaseForm
		m.buildForm()
		return m, m.form.Init()

	case eventCreatedMsg:
		if msg.err != nil {
			// Surface the rejection and reopen the form with the
			// values intact.
			m.formError = errorMessage(msg.err)
			m.phase = phaseForm
			m.buildForm()
			return m, m.form.Init()
		}
		id := msg.event.ID
		return m, func() tea.Msg { return openDetailMsg{eventID: id} }
	}

	switch m.phase {
	case phaseLocation:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+b" {
			return m, func() tea.Msg { return backMsg{} }
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case phaseForm:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+b" {
			// Back to the location step, keeping the typed fields.
			m.phase = phaseLocation
			m.picker = NewPickerModel(m.ctx, m.client, m.logger, m.styles)
			m.picker.SetValue(m.location)
			return m, m.picker.Init()
		}

		model, cmd := m.form.Update(msg)
		if form, ok := model.(*huh.Form); ok {
			m.form = form
		}
		if m.form.State == huh.StateCompleted {
			m.phase = phaseSubmitting
			m.formError = ""
			client, ctx, req := m.client, m.ctx, m.request()
			return m, func() tea.Msg {
				event, err := client.CreateEvent(ctx, req)
				return eventCreatedMsg{event: event, err: err}
			}
		}
		return m, cmd
	}

	return m, nil
}

// View renders the creation flow.
func (m CreateModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Create Event"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseLocation:
		b.WriteString(m.picker.View())
	case phaseForm:
		b.WriteString(m.styles.Muted.Render("Location: ") + m.location + "\n\n")
		b.WriteString(m.form.View())
	case phaseSubmitting:
		b.WriteString(m.styles.Muted.Render("Creating event..."))
	}

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.formError))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		m.styles.Key.Render("ctrl+b") + " " + m.styles.KeyDesc.Render("back")))
	return b.String()
}
