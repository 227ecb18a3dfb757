package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/log"
)

func newTestPicker(t *testing.T) PickerModel {
	t.Helper()
	client := api.NewClient("http://backend.invalid/api")
	return NewPickerModel(context.Background(), client, log.Default(), DefaultStyles())
}

func pickerType(m PickerModel, s string) PickerModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPickerShortQueryDoesNotSearch(t *testing.T) {
	m := newTestPicker(t)
	m = pickerType(m, "a")

	m, cmd := m.Update(locDebounceMsg{seq: m.debounceSeq})
	if cmd != nil {
		t.Fatal("single-character query must not trigger a lookup")
	}
	if m.fetchSeq != 0 {
		t.Fatalf("fetchSeq = %d, want 0", m.fetchSeq)
	}
}

func TestPickerDebounceCoalesces(t *testing.T) {
	m := newTestPicker(t)
	m = pickerType(m, "cafe")
	if m.debounceSeq != 4 {
		t.Fatalf("debounceSeq = %d, want 4", m.debounceSeq)
	}

	m, _ = m.Update(locDebounceMsg{seq: 2})
	if m.fetchSeq != 0 {
		t.Fatal("stale debounce triggered a lookup")
	}

	m, cmd := m.Update(locDebounceMsg{seq: 4})
	if m.fetchSeq != 1 || cmd == nil {
		t.Fatalf("current debounce did not trigger a lookup, fetchSeq = %d", m.fetchSeq)
	}
}

func TestPickerStaleResultsDiscarded(t *testing.T) {
	m := newTestPicker(t)
	m = pickerType(m, "cafe")
	m, _ = m.Update(locDebounceMsg{seq: m.debounceSeq})
	m = pickerType(m, "s")
	m, _ = m.Update(locDebounceMsg{seq: m.debounceSeq})

	m, _ = m.Update(locResultsMsg{seq: 1, suggestions: []api.LocationSuggestion{{Name: "old"}}})
	if len(m.suggestions) != 0 {
		t.Fatal("stale lookup results applied")
	}

	m, _ = m.Update(locResultsMsg{seq: 2, suggestions: []api.LocationSuggestion{{Name: "new"}}})
	if len(m.suggestions) != 1 || m.suggestions[0].Name != "new" {
		t.Fatalf("current results not applied: %v", m.suggestions)
	}
}

func TestPickerFailedLookupKeepsFreeText(t *testing.T) {
	m := newTestPicker(t)
	m = pickerType(m, "my garage")
	m, _ = m.Update(locDebounceMsg{seq: m.debounceSeq})
	m, _ = m.Update(locResultsMsg{seq: 1, err: context.DeadlineExceeded})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a picked message")
	}
	picked, ok := cmd().(locationPickedMsg)
	if !ok {
		t.Fatalf("expected locationPickedMsg, got %T", cmd())
	}
	if picked.location != "my garage" {
		t.Fatalf("location = %q, want the typed text", picked.location)
	}
}

func TestPickerSelectsSuggestion(t *testing.T) {
	m := newTestPicker(t)
	m = pickerType(m, "cafe")
	m, _ = m.Update(locDebounceMsg{seq: m.debounceSeq})
	m, _ = m.Update(locResultsMsg{seq: 1, suggestions: []api.LocationSuggestion{
		{Name: "Cafe One", Address: "1 First St"},
		{Name: "Cafe Two", Address: "2 Second St"},
	}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picked := cmd().(locationPickedMsg)
	if picked.location != "2 Second St" {
		t.Fatalf("location = %q, want the selected suggestion's address", picked.location)
	}
}

func TestPickerTypingResetsSelection(t *testing.T) {
	m := newTestPicker(t)
	m = pickerType(m, "cafe")
	m, _ = m.Update(locDebounceMsg{seq: m.debounceSeq})
	m, _ = m.Update(locResultsMsg{seq: 1, suggestions: []api.LocationSuggestion{{Name: "Cafe One"}}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}

	m = pickerType(m, "x")
	if m.cursor != -1 {
		t.Fatalf("typing must reset the selection, cursor = %d", m.cursor)
	}
}
