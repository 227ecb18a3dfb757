package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure or a missing session
	AuthError = 3

	// NetworkError indicates the backend could not be reached
	NetworkError = 4

	// NotFound indicates the requested event or resource does not exist
	NotFound = 5
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Typed errors carry their category; string matching is the fallback for
// errors that bubble up from cobra or the runtime.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var gerr *errors.GatherError
	if stderrors.As(err, &gerr) {
		switch {
		case strings.HasPrefix(string(gerr.Code), "AUTH-"):
			return AuthError
		case gerr.Code == errors.ErrCodeAPINetwork:
			return NetworkError
		case gerr.Code == errors.ErrCodeEventNotFound:
			return NotFound
		case strings.HasPrefix(string(gerr.Code), "INPUT-"):
			return UsageError
		}
		return GeneralError
	}

	var apiErr *api.Error
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.Status == 401 || apiErr.Status == 403:
			return AuthError
		case apiErr.Status == 404:
			return NotFound
		}
		return GeneralError
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "not logged in") {
		return AuthError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "unreachable") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") ||
		strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "invalid argument") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case NotFound:
		return "Not found"
	default:
		return "Unknown error"
	}
}
