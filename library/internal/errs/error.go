package errs

import (
	"errors"
)

var (
	// ErrNotFound is returned when a branch, user or book ID does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned when the lending state forbids the operation,
	// e.g. lending a loaned book or returning a book without an open loan.
	ErrInvalidState = errors.New("invalid state")
	ErrInvalidDate  = errors.New("invalid date")
)
