package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
)

func newTestList(t *testing.T) ListModel {
	t.Helper()
	client := api.NewClient("http://backend.invalid/api")
	return NewListModel(context.Background(), client, log.Default(), DefaultStyles())
}

func typeKey(m ListModel, r rune) (ListModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestListDebounceCoalescesRapidTyping(t *testing.T) {
	m := newTestList(t)

	// Three quick keystrokes arm three timers but bump the sequence
	// each time.
	for _, r := range "pot" {
		m, _ = typeKey(m, r)
	}
	if m.debounceSeq != 3 {
		t.Fatalf("debounceSeq = %d, want 3", m.debounceSeq)
	}

	// The first two timers fire with stale sequences and must not fetch.
	m, _ = m.Update(searchDebounceMsg{seq: 1})
	m, _ = m.Update(searchDebounceMsg{seq: 2})
	if m.fetchSeq != 0 {
		t.Fatalf("stale debounce triggered a fetch, fetchSeq = %d", m.fetchSeq)
	}

	// Only the last timer fetches, and it fetches the full final value.
	m, cmd := m.Update(searchDebounceMsg{seq: 3})
	if m.fetchSeq != 1 {
		t.Fatalf("fetchSeq = %d, want 1", m.fetchSeq)
	}
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	if got := m.filter().Search; got != "pot" {
		t.Fatalf("filter search = %q, want %q", got, "pot")
	}
}

func TestListStaleResponseDiscarded(t *testing.T) {
	m := newTestList(t)
	m, _ = m.Update(searchDebounceMsg{seq: 0}) // generation 1
	m, _ = typeKey(m, 'x')
	m, _ = m.Update(searchDebounceMsg{seq: m.debounceSeq}) // generation 2

	// The older response arrives after the newer fetch was issued.
	m, _ = m.Update(eventsLoadedMsg{seq: 1, events: []api.Event{{ID: 1, Title: "old"}}})
	if len(m.events) != 0 {
		t.Fatalf("stale response was applied: %d events", len(m.events))
	}
	if !m.loading {
		t.Fatal("stale response cleared the loading state")
	}

	m, _ = m.Update(eventsLoadedMsg{seq: 2, events: []api.Event{{ID: 2, Title: "new"}}})
	if len(m.events) != 1 || m.events[0].Title != "new" {
		t.Fatalf("current response not applied, events = %v", m.events)
	}
	if m.loading {
		t.Fatal("loading not cleared after current response")
	}
}

func TestListFetchErrorKeepsPreviousResults(t *testing.T) {
	m := newTestList(t)
	m, _ = m.Update(searchDebounceMsg{seq: 0})
	m, _ = m.Update(eventsLoadedMsg{seq: 1, events: []api.Event{{ID: 7, Title: "kept"}}})

	m, _ = typeKey(m, 'q')
	m, _ = m.Update(searchDebounceMsg{seq: m.debounceSeq})
	m, _ = m.Update(eventsLoadedMsg{seq: 2, err: context.DeadlineExceeded})

	if len(m.events) != 1 || m.events[0].Title != "kept" {
		t.Fatalf("failed fetch should keep previous results, events = %v", m.events)
	}
	if m.loading {
		t.Fatal("loading not cleared after failed fetch")
	}
}

func TestListCategoryCycleWraps(t *testing.T) {
	m := newTestList(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.filter().Category; got != api.Categories[len(api.Categories)-1].Value {
		t.Fatalf("left from all categories = %q, want last category", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.filter().Category; got != "" {
		t.Fatalf("right back to all categories = %q, want empty", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.filter().Category; got != api.Categories[0].Value {
		t.Fatalf("first category = %q, want %q", got, api.Categories[0].Value)
	}
}

func TestListCategoryChangeSchedulesFetch(t *testing.T) {
	m := newTestList(t)
	before := m.debounceSeq
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.debounceSeq != before+1 {
		t.Fatalf("category change did not re-arm the debounce timer")
	}
	if cmd == nil {
		t.Fatal("expected a debounce command")
	}
}

func TestListEnterOpensSelectedEvent(t *testing.T) {
	m := newTestList(t)
	m, _ = m.Update(searchDebounceMsg{seq: 0})
	m, _ = m.Update(eventsLoadedMsg{seq: 1, events: []api.Event{{ID: 11}, {ID: 22}}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(openDetailMsg)
	if !ok {
		t.Fatalf("expected openDetailMsg, got %T", cmd())
	}
	if msg.eventID != 22 {
		t.Fatalf("eventID = %d, want 22", msg.eventID)
	}
}
