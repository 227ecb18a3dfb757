package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
	"github.com/gatherhq/gather/internal/session"
)

// loggedInSession builds a session manager authenticated as the given user
// against a throwaway backend.
func loggedInSession(t *testing.T, user api.User) (*session.Manager, *api.Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			User:   user,
			Tokens: api.Tokens{Access: "access", Refresh: "refresh"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	mgr := session.NewManager(client, session.NewStore(t.TempDir()), log.Default())
	if res := mgr.Login(context.Background(), user.Email, "pw"); !res.Success {
		t.Fatalf("test login failed: %s", res.Error)
	}
	return mgr, client
}

func newTestDetail(t *testing.T, user api.User, event api.Event) DetailModel {
	t.Helper()
	mgr, client := loggedInSession(t, user)
	m := NewDetailModel(context.Background(), client, mgr, log.Default(), DefaultStyles(), event.ID)
	m, _ = m.Update(detailLoadedMsg{seq: 0, event: &event})
	return m
}

func TestJoinGuardFullEvent(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	limit := 2
	event := api.Event{
		ID:            5,
		Host:          api.User{ID: 9},
		MaxAttendees:  &limit,
		AttendeeCount: 2,
		IsFull:        true,
	}
	m := newTestDetail(t, me, event)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if cmd != nil {
		t.Fatal("join on a full event must not issue a request")
	}
	if m.busy {
		t.Fatal("model marked busy without a request in flight")
	}
	if !m.isError || m.status == "" {
		t.Fatalf("expected an explanation, got status %q", m.status)
	}
}

func TestJoinGuardAlreadyAttending(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{
		ID:        5,
		Host:      api.User{ID: 9},
		Attendees: []api.User{{ID: 1}},
	}
	m := newTestDetail(t, me, event)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if cmd != nil {
		t.Fatal("join while already attending must not issue a request")
	}
}

func TestJoinGuardHost(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Host: api.User{ID: 1}}
	m := newTestDetail(t, me, event)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if cmd != nil {
		t.Fatal("the host must not be offered join")
	}
}

func TestJoinAllowedIssuesRequest(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Host: api.User{ID: 9}}
	m := newTestDetail(t, me, event)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if cmd == nil {
		t.Fatal("expected a join request command")
	}
	if !m.busy {
		t.Fatal("model not marked busy during the request")
	}
}

func TestLeaveOnlyWhenAttending(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Host: api.User{ID: 9}}
	m := newTestDetail(t, me, event)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}); cmd != nil {
		t.Fatal("leave without attending must not issue a request")
	}

	event.Attendees = []api.User{{ID: 1}}
	m = newTestDetail(t, me, event)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}); cmd == nil {
		t.Fatal("expected a leave request command")
	}
}

func TestWhitespaceCommentNeverSent(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Host: api.User{ID: 9}}
	m := newTestDetail(t, me, event)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m.input.SetValue("   \t ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("whitespace-only comment must not issue a request")
	}
	if m.busy {
		t.Fatal("model marked busy for a discarded comment")
	}
}

func TestStaleDetailLoadDiscarded(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Title: "current", Host: api.User{ID: 9}}
	m := newTestDetail(t, me, event)

	// A mutation bumps the load generation.
	m, _ = m.reload()

	old := api.Event{ID: 5, Title: "stale", Host: api.User{ID: 9}}
	m, _ = m.Update(detailLoadedMsg{seq: 0, event: &old})
	if m.event.Title != "current" {
		t.Fatalf("stale load applied, title = %q", m.event.Title)
	}

	fresh := api.Event{ID: 5, Title: "fresh", Host: api.User{ID: 9}}
	m, _ = m.Update(detailLoadedMsg{seq: 1, event: &fresh})
	if m.event.Title != "fresh" {
		t.Fatalf("current load not applied, title = %q", m.event.Title)
	}
}

func TestMutationFailureSurfacesServerMessage(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Host: api.User{ID: 9}}
	m := newTestDetail(t, me, event)

	m, _ = m.Update(mutationDoneMsg{action: "You're in!", err: &api.Error{Status: 400, Message: "Event is full"}})
	if !m.isError || m.status != "Event is full" {
		t.Fatalf("status = %q (isError=%v), want the server message", m.status, m.isError)
	}
}

func TestMutationSuccessTriggersRefetch(t *testing.T) {
	me := api.User{ID: 1, Email: "me@example.com"}
	event := api.Event{ID: 5, Host: api.User{ID: 9}}
	m := newTestDetail(t, me, event)

	before := m.loadSeq
	m, cmd := m.Update(mutationDoneMsg{action: "You're in!"})
	if m.loadSeq != before+1 {
		t.Fatal("successful mutation did not bump the load generation")
	}
	if cmd == nil {
		t.Fatal("expected a refetch command")
	}
}
