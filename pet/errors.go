package pet

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a manifest that is not valid JSON or misses a
	// structurally required field.
	ErrMalformed = errors.New("malformed manifest")

	// ErrSizeNotFound reports a visualization manifest without an entry for
	// the requested display size.
	ErrSizeNotFound = errors.New("no visualization for size")

	// ErrNotLoaded reports a manifest that is absent from the resource cache.
	ErrNotLoaded = errors.New("manifest not loaded")
)

// DecodeError describes why a manifest could not be turned into typed data.
type DecodeError struct {
	Type  string // pet type, empty when unknown
	Size  int    // requested size, 0 when not applicable
	Field string // manifest path that failed
	Err   error
}

func (e *DecodeError) Error() string {
	msg := "pet: decode"
	if e.Type != "" {
		msg += " " + e.Type
	}
	if e.Size != 0 {
		msg += fmt.Sprintf(" size %d", e.Size)
	}
	if e.Field != "" {
		msg += " " + e.Field
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
