package cssmatrix

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type invalidArgument struct {
	message string
}

// NewInvalidArgument creates an "invalid argument" error from the given
// format string.
func NewInvalidArgument(msg string, v ...interface{}) error {
	return invalidArgument{fmt.Sprintf(msg, v...)}
}

func (i invalidArgument) Error() string {
	return i.message
}

// IsInvalidArgument checks if the given error, or any error it wraps, is an
// "invalid argument" error.
func IsInvalidArgument(err error) bool {
	var target invalidArgument
	return errors.As(err, &target)
}
