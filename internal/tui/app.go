package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
	"github.com/gatherhq/gather/internal/session"
)

type view int

const (
	viewList view = iota
	viewDetail
	viewCreate
	viewProfile
)

// App is the root model. It owns the active view and routes navigation
// messages between them.
type App struct {
	client  *api.Client
	session *session.Manager
	logger  *log.Logger
	styles  Styles
	ctx     context.Context

	view    view
	list    ListModel
	detail  DetailModel
	create  CreateModel
	profile ProfileModel

	width  int
	height int
}

// NewApp creates the root model starting at the event list.
func NewApp(ctx context.Context, client *api.Client, sess *session.Manager, logger *log.Logger) App {
	styles := DefaultStyles()
	return App{
		client:  client,
		session: sess,
		logger:  logger,
		styles:  styles,
		ctx:     ctx,
		list:    NewListModel(ctx, client, logger, styles),
	}
}

// Init starts the event list.
func (a App) Init() tea.Cmd {
	return a.list.Init()
}

// Update routes messages to the active view and handles navigation.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The list keeps its size current even when not active.
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+n":
			if a.view == viewList {
				return a.open(viewCreate)
			}
		case "ctrl+p":
			if a.view == viewList {
				return a.open(viewProfile)
			}
		}

	case openDetailMsg:
		a.view = viewDetail
		a.detail = NewDetailModel(a.ctx, a.client, a.session, a.logger, a.styles, msg.eventID)
		return a, a.detail.Init()

	case openCreateMsg:
		return a.open(viewCreate)

	case openProfileMsg:
		return a.open(viewProfile)

	case backMsg:
		a.view = viewList
		// Refresh the list so mutations made elsewhere show up.
		var cmd tea.Cmd
		a.list, cmd = a.list.startFetch()
		return a, cmd
	}

	return a.route(msg)
}

// open switches to a freshly constructed view.
func (a App) open(target view) (tea.Model, tea.Cmd) {
	a.view = target
	switch target {
	case viewCreate:
		a.create = NewCreateModel(a.ctx, a.client, a.logger, a.styles)
		return a, a.create.Init()
	case viewProfile:
		a.profile = NewProfileModel(a.ctx, a.client, a.session, a.logger, a.styles)
		return a, a.profile.Init()
	}
	return a, nil
}

// route forwards a message to the active view.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewList:
		a.list, cmd = a.list.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
	case viewCreate:
		a.create, cmd = a.create.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

// View renders the active view.
func (a App) View() string {
	switch a.view {
	case viewDetail:
		return a.detail.View()
	case viewCreate:
		return a.create.View()
	case viewProfile:
		return a.profile.View()
	default:
		return a.list.View()
	}
}
