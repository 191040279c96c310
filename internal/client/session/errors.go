package session

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is matched by every *PreconditionError.
	ErrPrecondition = errors.New("precondition failed")
	ErrClosed       = errors.New("session store closed")
)

// PreconditionError reports an operation that needs an authenticated
// session but was called without one.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

func notAuthenticated(op string) error {
	return &PreconditionError{Op: op, Reason: "no authenticated user"}
}
