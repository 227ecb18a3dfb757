package tui

import (
	"testing"

	"github.com/gatherhq/gather/internal/api"
)

func TestAttendingOf(t *testing.T) {
	const me int64 = 7
	events := []api.Event{
		{ID: 1, Title: "hosted by me", Host: api.User{ID: me}, Attendees: []api.User{{ID: me}}},
		{ID: 2, Title: "attending", Host: api.User{ID: 3}, Attendees: []api.User{{ID: me}, {ID: 3}}},
		{ID: 3, Title: "not involved", Host: api.User{ID: 3}, Attendees: []api.User{{ID: 4}}},
		{ID: 4, Title: "also attending", Host: api.User{ID: 5}, Attendees: []api.User{{ID: me}}},
	}

	got := attendingOf(events, me)
	if len(got) != 2 {
		t.Fatalf("attendingOf returned %d events, want 2", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 4 {
		t.Fatalf("attendingOf = %v", got)
	}
}

func TestAttendingOfEmpty(t *testing.T) {
	if got := attendingOf(nil, 1); got != nil {
		t.Fatalf("attendingOf(nil) = %v, want nil", got)
	}
}
