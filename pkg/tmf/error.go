package tmf

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core engines. Handlers map these onto
// HTTP statuses, the engines themselves never talk HTTP.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrConflict        = errors.New("conflict")
)

type Error struct {
	Kind     error
	Resource string
	Ref      string
	Message  string
}

func (e *Error) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s %s: %s", e.Resource, e.Ref, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewNotFound(resource string, ref string) *Error {
	return &Error{
		Kind:     ErrNotFound,
		Resource: resource,
		Ref:      ref,
		Message:  "does not resolve to an active record",
	}
}

func NewInvalidArgument(resource string, message string) *Error {
	return &Error{
		Kind:     ErrInvalidArgument,
		Resource: resource,
		Message:  message,
	}
}

func NewInvalidState(resource string, message string) *Error {
	return &Error{
		Kind:     ErrInvalidState,
		Resource: resource,
		Message:  message,
	}
}

func NewConflict(resource string, ref string) *Error {
	return &Error{
		Kind:     ErrConflict,
		Resource: resource,
		Ref:      ref,
		Message:  "already exists",
	}
}
