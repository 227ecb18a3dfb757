package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeNotLoggedIn  ErrorCode = "AUTH-001"
	ErrCodeLoginFailed  ErrorCode = "AUTH-002"
	ErrCodeTokenInvalid ErrorCode = "AUTH-003"
	ErrCodeOAuthFailed  ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeAPINetwork ErrorCode = "API-001"
	ErrCodeAPIStatus  ErrorCode = "API-002"
	ErrCodeAPIDecode  ErrorCode = "API-003"

	// Event errors (EVENT-001 to EVENT-099)
	ErrCodeEventNotFound  ErrorCode = "EVENT-001"
	ErrCodeEventFull      ErrorCode = "EVENT-002"
	ErrCodeAlreadyJoined  ErrorCode = "EVENT-003"
	ErrCodeNotAttending   ErrorCode = "EVENT-004"
	ErrCodeHostCannotJoin ErrorCode = "EVENT-005"

	// Input errors (INPUT-001 to INPUT-099)
	ErrCodeInputRequired ErrorCode = "INPUT-001"
	ErrCodeInputInvalid  ErrorCode = "INPUT-002"

	// Config and storage errors (IO-001 to IO-099)
	ErrCodeConfigInvalid     ErrorCode = "IO-001"
	ErrCodeCredentialsFailed ErrorCode = "IO-002"
	ErrCodeFileWriteFailed   ErrorCode = "IO-003"
)

// GatherError represents an enhanced error with code and suggestions
type GatherError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *GatherError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *GatherError) Unwrap() error {
	return e.Cause
}

// New creates a new GatherError
func New(code ErrorCode, message string) *GatherError {
	return &GatherError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new GatherError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *GatherError {
	return &GatherError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *GatherError) WithSuggestion(suggestion string) *GatherError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// Common error constructors

// NewNotLoggedInError is returned when a command needs an authenticated session
func NewNotLoggedInError() *GatherError {
	return New(ErrCodeNotLoggedIn, "not logged in").
		WithSuggestion("Run 'gather auth login' to authenticate").
		WithSuggestion("Run 'gather auth register' to create an account")
}

// NewLoginFailedError creates a login failure error with the server's message
func NewLoginFailedError(serverMessage string) *GatherError {
	if serverMessage == "" {
		serverMessage = "login failed"
	}
	return New(ErrCodeLoginFailed, serverMessage).
		WithSuggestion("Check your email and password").
		WithSuggestion("Run 'gather auth register' if you do not have an account yet")
}

// NewEventFullError is returned by the advisory join guard
func NewEventFullError(title string) *GatherError {
	return New(ErrCodeEventFull, fmt.Sprintf("event %q is full", title)).
		WithSuggestion("Check back later in case an attendee leaves")
}

// NewNetworkError wraps a transport-level failure
func NewNetworkError(cause error) *GatherError {
	return Wrap(ErrCodeAPINetwork, "could not reach the server", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify GATHER_API_URL points at a running backend")
}
