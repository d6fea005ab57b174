package opaquebox

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when a Box is read after Close, or when the
	// zero value of Box is used without construction.
	ErrReleased = errors.New("opaquebox: handle released")

	// ErrNilMeter is returned by Instrument when no meter is supplied.
	ErrNilMeter = errors.New("opaquebox: nil meter")
)

// AccessError describes a read through an absent handle.
//
// Get and Value panic with an *AccessError; Lookup and Clone return it.
type AccessError struct {
	Operation string
	Type      string
}

// Error returns the formatted access failure.
func (e *AccessError) Error() string {
	if e == nil {
		return ErrReleased.Error()
	}

	return fmt.Sprintf("%s: %s on Box[%s]", ErrReleased, e.Operation, e.Type)
}

// Unwrap returns ErrReleased for errors.Is.
func (e *AccessError) Unwrap() error {
	return ErrReleased
}
