package models

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInvalidDateFormat is matched by every *InvalidDateFormatError.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrRootNotFound is matched by every *RootNotFoundError.
	ErrRootNotFound = errors.New("root directory not found")
)

// InvalidDateFormatError reports a date string that is not a valid
// YYYY-MM-DD calendar date.
type InvalidDateFormatError struct {
	Input string
	Err   error // Underlying parse error (optional)
}

// Error implements the error interface.
func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("Invalid date format. Use YYYY-MM-DD (got %q)", e.Input)
}

// Unwrap returns the underlying parse error.
func (e *InvalidDateFormatError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrInvalidDateFormat.
func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

// RootNotFoundError reports a search root that does not exist or is not
// a directory.
type RootNotFoundError struct {
	Root string
	Err  error
}

// Error implements the error interface.
func (e *RootNotFoundError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("directory does not exist: %s (%v)", e.Root, e.Err)
	}
	return fmt.Sprintf("directory does not exist: %s", e.Root)
}

// Unwrap returns the underlying stat error.
func (e *RootNotFoundError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrRootNotFound.
func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}
