package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is an HTTP error status carrying the server-provided message.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsStatus reports whether err is an API error with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == status
}

// errorBody covers the message shapes the backend uses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// newError builds an Error from a non-2xx response body.
func newError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Error != "":
			return &Error{Status: status, Message: eb.Error}
		case eb.Message != "":
			return &Error{Status: status, Message: eb.Message}
		case eb.Detail != "":
			return &Error{Status: status, Message: eb.Detail}
		}
	}

	// Fallback to the raw body, truncated.
	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return &Error{Status: status, Message: msg}
}
