package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only failure kind of this package.
// Callers match it with errors.Is; the field name is on InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes one rejected argument.
type InvalidArgumentError struct {
	Field   string
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Field)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Field, e.Message)
}

// Unwrap exposes both the package marker and the underlying cause.
func (e *InvalidArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, e.Err}
}

func invalidArgument(field, message string, cause error) error {
	return &InvalidArgumentError{Field: field, Message: message, Err: cause}
}
