package teardown

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when the operator interrupts the run.
	ErrCancelled = errors.New("teardown cancelled")

	// ErrStackDeleteTimeout is returned when a stack does not reach a
	// terminal state within the polling budget.
	ErrStackDeleteTimeout = errors.New("timed out waiting for stack deletion")

	// ErrNotImplemented is returned for infrastructure types without a teardown.
	ErrNotImplemented = errors.New("teardown not implemented")
)

// GateError reports the first gate that failed.
type GateError struct {
	Gate   string
	Reason string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("gate %q failed: %s", e.Gate, e.Reason)
}

// StackDeleteError reports a stack that could not be deleted.
type StackDeleteError struct {
	Stack  string
	Status string
	Reason string
	Err    error
}

func (e *StackDeleteError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("failed to delete stack %s: %v", e.Stack, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("stack %s ended in %s: %s", e.Stack, e.Status, e.Reason)
	default:
		return fmt.Sprintf("stack %s ended in %s", e.Stack, e.Status)
	}
}

func (e *StackDeleteError) Unwrap() error {
	return e.Err
}

// cancelled converts context cancellation into ErrCancelled. Other errors are
// returned unchanged.
func cancelled(err error) error {
	if err == nil || errors.Is(err, ErrCancelled) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return err
}

// IsCancelled reports whether err stems from an operator interrupt.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
