package api

import (
	"errors"
	"net/http"
	"strings"
)

// Error is a failure reported by the backend, normalized to the status code
// and the message list the UI renders. The backend sends either a single
// message string or an array; coercion to a slice happens once, here.
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return http.StatusText(e.Status)
	}
	return strings.Join(e.Messages, "; ")
}

// Messages extracts the human-readable message list from any error. Non-API
// errors (network failures, cancellations) yield their Error() text so forms
// always have something to display.
func Messages(err error) []string {
	var apiErr *Error
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return apiErr.Messages
	}
	if err != nil {
		return []string{err.Error()}
	}
	return nil
}

func statusIs(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports a bad-credentials or missing/expired-token failure.
func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }

// IsForbidden reports an attempt to act on another user's resources.
func IsForbidden(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsNotFound reports a missing recipe or user.
func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }

// IsValidation reports a field-level validation failure; the message list
// is rendered verbatim beneath the submitting form.
func IsValidation(err error) bool {
	return statusIs(err, http.StatusBadRequest) || statusIs(err, http.StatusUnprocessableEntity)
}
