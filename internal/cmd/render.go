package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gatherhq/gather/internal/api"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// renderEventLine formats one event for list output.
func renderEventLine(event api.Event) string {
	capacity := fmt.Sprintf("%d attending", event.AttendeeCount)
	if event.MaxAttendees != nil {
		capacity = fmt.Sprintf("%d/%d attending", event.AttendeeCount, *event.MaxAttendees)
	}
	line := fmt.Sprintf("%-6d %s  %s  %s · %s",
		event.ID,
		event.Title,
		valueStyle.Render("["+event.Category+"]"),
		event.DateTime.Format("2006-01-02 15:04"),
		capacity)
	if event.Full() {
		line += "  " + errorStyle.Render("FULL")
	}
	return line
}

// renderEventDetail formats the full event record.
func renderEventDetail(event *api.Event, comments []api.Comment) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(event.Title) + "\n")
	writeField(&b, "Category", api.CategoryLabel(event.Category))
	writeField(&b, "When", event.DateTime.Format("Monday, Jan 2 2006 at 15:04"))
	writeField(&b, "Where", event.Location)
	writeField(&b, "Host", event.Host.FullName())

	capacity := fmt.Sprintf("%d", event.AttendeeCount)
	if event.MaxAttendees != nil {
		capacity = fmt.Sprintf("%d of %d", event.AttendeeCount, *event.MaxAttendees)
	}
	if event.Full() {
		capacity += " " + errorStyle.Render("(full)")
	}
	writeField(&b, "Attendees", capacity)

	if event.Description != "" {
		b.WriteString("\n" + event.Description + "\n")
	}

	b.WriteString("\n" + headingStyle.Render(fmt.Sprintf("Comments (%d)", len(comments))) + "\n")
	for _, comment := range comments {
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			valueStyle.Render(comment.User.FullName()),
			labelStyle.Render(comment.CreatedAt.Format("2006-01-02 15:04")),
			comment.Text))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), value))
}
