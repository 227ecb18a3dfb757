// Package ical renders events as an iCalendar feed so attendees can pull
// their RSVPs into a regular calendar application.
package ical

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/gatherhq/gather/internal/api"
)

// defaultDuration is assumed for events, which carry a start but no end.
const defaultDuration = 2 * time.Hour

// Build converts events into a VCALENDAR.
func Build(events []api.Event, name string) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gather//event export//EN")
	if name != "" {
		cal.SetName(name)
	}

	now := time.Now().UTC()
	for _, e := range events {
		ve := cal.AddEvent(fmt.Sprintf("event-%d@gather", e.ID))
		ve.SetDtStampTime(now)
		ve.SetStartAt(e.DateTime)
		ve.SetEndAt(e.DateTime.Add(defaultDuration))
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.Host.Email != "" {
			ve.SetOrganizer("mailto:"+e.Host.Email, ics.WithCN(e.Host.FullName()))
		}
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt)
		}
	}

	return cal
}

// Write serializes events as an iCalendar feed to w.
func Write(w io.Writer, events []api.Event, name string) error {
	return Build(events, name).SerializeTo(w)
}
