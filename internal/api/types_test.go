package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestEvent_Full(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"no capacity limit", Event{AttendeeCount: 100}, false},
		{"under capacity", Event{MaxAttendees: intPtr(5), AttendeeCount: 4}, false},
		{"at capacity", Event{MaxAttendees: intPtr(5), AttendeeCount: 5}, true},
		{"over capacity", Event{MaxAttendees: intPtr(5), AttendeeCount: 6}, true},
		{"server flag wins", Event{IsFull: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Full())
		})
	}
}

func TestEvent_HasAttendeeAndIsHostedBy(t *testing.T) {
	event := Event{
		Host:      User{ID: 1},
		Attendees: []User{{ID: 2}, {ID: 3}},
	}

	assert.True(t, event.HasAttendee(2))
	assert.False(t, event.HasAttendee(1))
	assert.True(t, event.IsHostedBy(1))
	assert.False(t, event.IsHostedBy(2))
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 10)
	assert.True(t, ValidCategory("tech"))
	assert.False(t, ValidCategory("music"))
	assert.Equal(t, "Health & Wellness", CategoryLabel("health"))
	assert.Equal(t, "music", CategoryLabel("music"))
}

func TestLocationSuggestion_DisplayText(t *testing.T) {
	withAddress := LocationSuggestion{Name: "Central Park", Address: "New York, NY"}
	assert.Equal(t, "New York, NY", withAddress.DisplayText())

	nameOnly := LocationSuggestion{Name: "Central Park"}
	assert.Equal(t, "Central Park", nameOnly.DisplayText())
}
