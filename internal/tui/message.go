package tui

import (
	stderrors "errors"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/errors"
)

// errorMessage extracts a user-presentable message from an error chain,
// preferring the server's own wording when one is available.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if stderrors.As(err, &apiErr) {
		return apiErr.Message
	}
	var gerr *errors.GatherError
	if stderrors.As(err, &gerr) {
		return gerr.Message
	}
	return err.Error()
}
