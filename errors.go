package vecpool

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreadCount is returned when a pool is constructed or
	// resized with a non-positive thread count.
	ErrInvalidThreadCount = errors.New("thread count must be positive")

	// ErrTaskPanicked wraps a panic recovered from a submitted task.
	// The panic value can be inspected via the error message; the worker
	// that ran the task keeps running.
	ErrTaskPanicked = errors.New("task panicked")
)

// ErrBadStatus promotes a non-success Status to an error value.
//
// WaitAllSuccess returns statuses rather than errors; callers that want a
// single error-shaped result can wrap the outcome in ErrBadStatus.
type ErrBadStatus struct {
	Status Status
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("operation finished with status %s", e.Status)
}
