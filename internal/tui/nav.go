package tui

// Navigation messages emitted by child views and handled by the root model.

type openDetailMsg struct {
	eventID int64
}

type openCreateMsg struct{}

type openProfileMsg struct{}

// backMsg returns to the event list.
type backMsg struct{}
