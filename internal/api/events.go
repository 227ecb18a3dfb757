package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gatherhq/gather/internal/errors"
)

// ListEvents fetches the event collection, filtered server-side.
// The backend returns either a paginated envelope {"results": [...]} or a
// bare array; both are accepted.
func (c *Client) ListEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Host != 0 {
		query.Set("host", strconv.FormatInt(filter.Host, 10))
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/events/", query, &raw); err != nil {
		return nil, err
	}
	return decodeEventList(raw)
}

func decodeEventList(raw json.RawMessage) ([]Event, error) {
	var envelope struct {
		Results []Event `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("failed to decode event list: %w", err)
	}
	return events, nil
}

// GetEvent fetches a single event with its attendee list.
func (c *Client) GetEvent(ctx context.Context, id int64) (*Event, error) {
	var event Event
	if err := c.get(ctx, fmt.Sprintf("/events/%d/", id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent submits a new event and returns the created record.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	var event Event
	if err := c.post(ctx, "/events/", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// JoinEvent adds the current user to the event's attendees.
// The server is authoritative on capacity and duplicates.
func (c *Client) JoinEvent(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/events/%d/join/", id), nil, nil)
}

// LeaveEvent removes the current user from the event's attendees.
func (c *Client) LeaveEvent(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/events/%d/leave/", id), nil, nil)
}

// ListComments fetches an event's comments in server order.
func (c *Client) ListComments(ctx context.Context, eventID int64) ([]Comment, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/events/%d/comments/", eventID), nil, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Comment `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	var comments []Comment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comment list: %w", err)
	}
	return comments, nil
}

// PostComment appends a comment to an event. Empty or whitespace-only text
// is rejected client-side and issues no request.
func (c *Client) PostComment(ctx context.Context, eventID int64, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New(errors.ErrCodeInputRequired, "comment text must not be empty")
	}

	body := map[string]string{"text": text}

	var comment Comment
	if err := c.post(ctx, fmt.Sprintf("/events/%d/comments/", eventID), body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SearchLocations resolves free-text input into structured place suggestions.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]LocationSuggestion, error) {
	q := url.Values{}
	q.Set("query", query)

	var envelope struct {
		Results []LocationSuggestion `json:"results"`
	}
	if err := c.get(ctx, "/events/search-locations/", q, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
