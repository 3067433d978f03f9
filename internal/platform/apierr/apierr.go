package apierr

import (
	"errors"
	"fmt"
	"net/http"

	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From translates a domain failure into the HTTP-level error the handlers
// respond with. Unknown errors map to 500 without exposing the message.
func From(err error) *Error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return New(http.StatusBadRequest, "validation_error", ve)
	}
	var iu *errs.InUseError
	if errors.As(err, &iu) {
		return New(http.StatusConflict, "service_in_use", iu)
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return New(http.StatusNotFound, "not_found", err)
	case errors.Is(err, errs.ErrForbidden):
		return New(http.StatusForbidden, "forbidden", err)
	case errors.Is(err, errs.ErrInvalidCredentials):
		return New(http.StatusUnauthorized, "invalid_credentials", err)
	case errors.Is(err, errs.ErrAccountDisabled):
		return New(http.StatusUnauthorized, "account_disabled", err)
	case errors.Is(err, errs.ErrDuplicateUsername):
		return New(http.StatusConflict, "duplicate_username", err)
	case errors.Is(err, errs.ErrDuplicateEmail):
		return New(http.StatusConflict, "duplicate_email", err)
	case errors.Is(err, errs.ErrAlreadyAttached):
		return New(http.StatusConflict, "already_attached", err)
	case errors.Is(err, errs.ErrSelfDeactivation):
		return New(http.StatusConflict, "self_deactivation", err)
	default:
		return New(http.StatusInternalServerError, "internal_error", errors.New("internal error"))
	}
}
