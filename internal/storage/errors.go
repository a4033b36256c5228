package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrCapacityExhausted means no day within the scheduling horizon has
	// room; nothing was created.
	ErrCapacityExhausted = errors.New("no available dates within 2 weeks")

	// ErrCapacityFull means the explicitly requested day is at its daily
	// maximum.
	ErrCapacityFull = errors.New("capacity full for that day")

	// ErrInvalidTransition means the entity's current status does not
	// permit the requested change.
	ErrInvalidTransition = errors.New("status does not allow this operation")

	// ErrInvalidStatus means the caller asked for a status outside the
	// allowed set.
	ErrInvalidStatus = errors.New("status must be completed or canceled")

	// ErrAlreadyCompleted guards idempotent completion: the submission is
	// already completed and no second ledger entry may be created.
	ErrAlreadyCompleted = errors.New("already completed")
)

// ValidationError carries field-level detail for malformed input. No
// state is mutated when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
