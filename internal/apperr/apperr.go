// Package apperr defines the error taxonomy shared by the client and the
// viewmodel layer. Every failure a screen can surface wraps one of these
// sentinels; viewmodels match with errors.Is and convert the result into a
// single user-visible notification.
package apperr

import "errors"

var (
	// ErrNetwork covers requests that did not complete or returned a
	// non-2xx status.
	ErrNetwork = errors.New("network failure")

	// ErrValidation covers missing required local input, caught before any
	// request is issued.
	ErrValidation = errors.New("validation failure")

	// ErrInvalidTransition covers lifecycle preconditions violated locally,
	// e.g. finalizing an occurrence that is already finished.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAuth covers an expired or missing token, detected via a failed
	// /api/me call or a 401 response.
	ErrAuth = errors.New("authentication failure")
)
