package domain

import "errors"

// Error kinds. Every domain error wraps exactly one of these so the request
// layer can map it to a status code.
var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication failure")
	ErrStorage        = errors.New("storage error")
)

type Error struct {
	kind    error
	message string
	cause   error
}

func NewError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() error {
	return e.kind
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// StorageError wraps a persistence failure for the named operation.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: ErrStorage, message: op + ": " + err.Error(), cause: err}
}

// ValidationError wraps an input error so it is reported with the validation kind.
func ValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: ErrValidation, message: err.Error(), cause: err}
}
