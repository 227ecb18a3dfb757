package api

import "time"

// User represents an account as returned by the backend.
// It is an immutable snapshot; the client never mutates it locally.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns "First Last" for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Tokens is the access/refresh pair issued by the auth endpoints.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse is the body of the login, register and google endpoints.
type AuthResponse struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// Event is a hostable, joinable scheduled activity.
// All state changes happen server-side; the client re-fetches after mutations.
type Event struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	DateTime      time.Time `json:"date_time"`
	MaxAttendees  *int      `json:"max_attendees"`
	Host          User      `json:"host"`
	Attendees     []User    `json:"attendees"`
	AttendeeCount int       `json:"attendee_count"`
	IsFull        bool      `json:"is_full"`
	IsPast        bool      `json:"is_past"`
	CreatedAt     time.Time `json:"created_at"`
}

// Full reports whether the event has reached capacity. The server also sends
// is_full; this derivation covers list payloads that omit attendee details.
func (e Event) Full() bool {
	if e.IsFull {
		return true
	}
	return e.MaxAttendees != nil && e.AttendeeCount >= *e.MaxAttendees
}

// HasAttendee reports whether the user is in the attendee list.
func (e Event) HasAttendee(userID int64) bool {
	for _, a := range e.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// IsHostedBy reports whether the user created the event.
func (e Event) IsHostedBy(userID int64) bool {
	return e.Host.ID == userID
}

// Comment is an append-only note on an event.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationSuggestion is an ephemeral candidate from the location search
// endpoint. Lat/Lng may be absent for free-text matches.
type LocationSuggestion struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// DisplayText returns the address when available, otherwise the name.
// This is the string stored on the event's location field.
func (s LocationSuggestion) DisplayText() string {
	if s.Address != "" {
		return s.Address
	}
	return s.Name
}

// EventFilter holds the server-driven list constraints.
// Empty values mean "no constraint" for that dimension.
type EventFilter struct {
	Category string
	Search   string
	Host     int64
}

// CreateEventRequest is the payload for POST /events/.
// MaxAttendees is nil when the user left the field empty; it is never sent
// as zero or an invalid number.
type CreateEventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	DateTime     time.Time `json:"date_time"`
	MaxAttendees *int      `json:"max_attendees,omitempty"`
}

// Category is one of the ten fixed event categories.
type Category struct {
	Value string
	Label string
}

// Categories lists the fixed category enum with display labels.
var Categories = []Category{
	{Value: "tech", Label: "Technology"},
	{Value: "business", Label: "Business"},
	{Value: "social", Label: "Social"},
	{Value: "education", Label: "Education"},
	{Value: "health", Label: "Health & Wellness"},
	{Value: "arts", Label: "Arts & Culture"},
	{Value: "sports", Label: "Sports & Fitness"},
	{Value: "food", Label: "Food & Drink"},
	{Value: "travel", Label: "Travel"},
	{Value: "other", Label: "Other"},
}

// CategoryLabel returns the display label for a category value.
func CategoryLabel(value string) string {
	for _, c := range Categories {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// ValidCategory reports whether value is one of the fixed categories.
func ValidCategory(value string) bool {
	for _, c := range Categories {
		if c.Value == value {
			return true
		}
	}
	return false
}
