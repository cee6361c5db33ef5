package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by update and delete when no row matched the id.
var ErrNotFound = errors.New("bilty record not found")

// ConflictError reports a uniqueness-constraint violation.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// MissingColumnError reports a not-null column that received no value.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing value for column %s", e.Column)
}
