package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel for a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is the sentinel for an authenticated but unauthorized actor.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials covers unknown username and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned distinctly from ErrInvalidCredentials so
	// the caller can show a different message.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrDuplicateUsername is returned when a registration reuses a username.
	ErrDuplicateUsername = errors.New("username already in use")
	// ErrDuplicateEmail is returned when a registration reuses an email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAlreadyAttached is returned when an (event, service) pair already exists.
	ErrAlreadyAttached = errors.New("service already attached to event")
	// ErrSelfDeactivation is returned when an administrator tries to
	// deactivate their own account.
	ErrSelfDeactivation = errors.New("cannot deactivate own account")
)

// ValidationError is a field-level, caller-correctable failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InUseError blocks a catalog service delete while events still reference it.
// Count carries the number of referencing attachments for the caller message.
type InUseError struct {
	Count int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("service is in use by %d event(s)", e.Count)
}

func NewInUse(count int64) *InUseError {
	return &InUseError{Count: count}
}
