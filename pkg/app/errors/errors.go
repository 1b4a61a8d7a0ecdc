// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
)

// Category defines error category
type Category int

const (
	// CategoryNoError indicates an operation that completed without error.
	CategoryNoError Category = iota
	// CategoryConfigError The simulation cannot be constructed from the
	// supplied configuration, for example no depletion chain is resolvable
	// from any source.
	CategoryConfigError
	// CategoryDataError An input document (chain file, cross-section
	// registry, configuration file) is present but malformed.
	CategoryDataError
	// CategoryIOError A filesystem operation required by the run lifecycle
	// failed (directory creation, working-directory change).
	CategoryIOError
	// CategoryGeneralError The library failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryConfigError:
		return "CategoryConfigError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryIOError:
		return "CategoryIOError"
	default:
		return "CategoryGeneralError"
	}
}

// OperatorError represents the error type used across the depletion
// coupling packages. It carries a category so callers can distinguish
// unconstructable configurations from malformed data without matching
// on message text.
type OperatorError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err OperatorError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err OperatorError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to an operator error
func (err OperatorError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is an OperatorError with desired Category
func Is(err error, cat Category) bool {
	var opErr *OperatorError
	if errors.As(err, &opErr) && opErr.Category == cat {
		return true
	}
	return false
}

// ConfigError returns an error with category ConfigError.
// The message describes which configuration source failed.
func ConfigError(err error, message string) error {
	if err == nil {
		err = errors.New("configuration error: " + message)
	}
	return &OperatorError{
		Category: CategoryConfigError,
		Message:  message,
		Err:      err,
	}
}

// DataError returns an error with category DataError.
func DataError(err error, message string) error {
	if err == nil {
		err = errors.New("data error: " + message)
	}
	return &OperatorError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// IOError returns an error with category IOError.
func IOError(err error, message string) error {
	if err == nil {
		err = errors.New("io error: " + message)
	}
	return &OperatorError{
		Category: CategoryIOError,
		Message:  message,
		Err:      err,
	}
}

// GeneralError returns a general error for failures that fit no
// narrower category.
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal error")
	}
	return &OperatorError{
		Category: CategoryGeneralError,
		Message:  "internal error",
		Err:      err,
	}
}
