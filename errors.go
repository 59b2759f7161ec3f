package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by the panics raised for malformed
	// operation parameters, such as a negative Limit or Skip count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedElement is wrapped when an element lacks a capability
	// the operation needs, such as an interface value holding an unhashable
	// type passed to Distinct.
	ErrUnsupportedElement = errors.New("unsupported element")
)

// PipelineError describes an element an operation could not process.
type PipelineError struct {
	Op     string
	Item   any
	Reason error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("stream.%s: item %v: %v", e.Op, e.Item, e.Reason)
}

func (e *PipelineError) Unwrap() error {
	return e.Reason
}

func invalidArgument(op, format string, args ...any) error {
	return fmt.Errorf("stream.%s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}
