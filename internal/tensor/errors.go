package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrPrecondition is the single failure kind of the engine. Every error
// returned by a tensor operation matches it under errors.Is.
var ErrPrecondition = errors.New("tensor precondition failed")

// PreconditionError describes which invariant an operation found violated.
type PreconditionError struct {
	Op    string // Operation that detected the violation (e.g., "Reshape")
	Cause string // Human-readable description of the violated invariant
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Cause)
}

// Is reports whether target is ErrPrecondition.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// precondition builds a PreconditionError carrying the call stack.
func precondition(op, format string, args ...any) error {
	return errors.WithStack(&PreconditionError{
		Op:    op,
		Cause: fmt.Sprintf(format, args...),
	})
}

func errEmpty(op string) error {
	return precondition(op, "tensor is empty")
}

// Must returns v, panicking if err is non-nil. It is meant for call sites
// where a violated precondition is a programming error.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
