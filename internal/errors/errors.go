// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable Kind plus a human-friendly message, so
// callers can branch on the category with Is while still showing the message.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// LoginRejected indicates the backend refused the credentials.
	LoginRejected Kind = "login_rejected"
	// CaptchaRejected indicates the backend refused the captcha answer.
	CaptchaRejected Kind = "captcha_rejected"
	// ProfileUnavailable indicates the profile fetch after login failed.
	ProfileUnavailable Kind = "profile_unavailable"
	// LoginInProgress indicates a second login was attempted while one is running.
	LoginInProgress Kind = "login_in_progress"
	// StorageFailed indicates the persistence backend could not be read or written.
	StorageFailed Kind = "storage_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Is reports whether any error in err's chain is an *E of the given kind.
func Is(err error, kind Kind) bool {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
