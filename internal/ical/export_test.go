package ical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhq/gather/internal/api"
)

func sampleEvents() []api.Event {
	return []api.Event{
		{
			ID:          1,
			Title:       "Tech Meetup",
			Description: "Monthly talks",
			Category:    "tech",
			Location:    "Community Hall",
			DateTime:    time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
			Host:        api.User{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
		},
		{
			ID:       2,
			Title:    "Trail Run",
			Category: "sports",
			DateTime: time.Date(2026, 9, 13, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestWrite_RoundTripsThroughParser(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleEvents(), "My Events"))

	cal, err := ics.ParseCalendar(&buf)
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "event-1@gather", first.GetProperty(ics.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Tech Meetup", first.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "Community Hall", first.GetProperty(ics.ComponentPropertyLocation).Value)

	start, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)))
}

func TestWrite_OmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleEvents()[1:], ""))

	out := buf.String()
	assert.NotContains(t, out, "LOCATION")
	assert.NotContains(t, out, "ORGANIZER")
	assert.True(t, strings.Contains(out, "SUMMARY:Trail Run"))
}
