package source

import (
	"errors"
	"fmt"
)

var (
	ErrStatus  = errors.New("unexpected status")
	ErrPayload = errors.New("malformed payload")
)

// LoadError is the single failure type of a load. Status is the HTTP status
// when one was received.
type LoadError struct {
	Source string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load %s: status %d: %v", e.Source, e.Status, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err is (or wraps) a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
