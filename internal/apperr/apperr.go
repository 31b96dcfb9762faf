// Package apperr defines the one error shape every failed user action is
// funneled into before it is shown to the user.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// GenericMessage is the user-facing notice shown for anything that is not a
// validation or sign-in failure.
const GenericMessage = "Não foi possível completar sua requisição. Contate um administrador."

// Error carries a message, the backend HTTP status when there was one, and
// the original error with the stack captured where it was wrapped.
type Error struct {
	Message string
	Status  int
	cause   error
}

// New raises a deliberate application error (business-rule violation).
func New(message string) *Error {
	return &Error{Message: message, cause: pkgerrors.New(message)}
}

// WithStatus builds an error for a backend response with a non-2xx status.
func WithStatus(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{
		Message: message,
		Status:  status,
		cause:   pkgerrors.Errorf("backend responded %d: %s", status, message),
	}
}

// Wrap converts any error into an *Error. Errors that already are (or wrap)
// an *Error are returned unchanged. Wrap(nil) is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Message: err.Error(), cause: pkgerrors.WithStack(err)}
}

// As reports whether err is (or wraps) an *Error.
func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

// IsStatus reports whether err carries the given backend status.
func IsStatus(err error, status int) bool {
	ae, ok := As(err)
	return ok && ae.Status == status
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Stack renders the original error together with the stack recorded when it
// entered the application.
func (e *Error) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}
