package asserts

import (
	"errors"
	"fmt"
)

// ErrAssertion matches every *AssertionError under errors.Is.
var ErrAssertion = errors.New("assertion failed")

// Check names the primitive that produced a failure.
type Check string

// Primitive names.
const (
	CheckAssert     Check = "assert"
	CheckThrows     Check = "throws"
	CheckEquals     Check = "equals"
	CheckInstanceOf Check = "instanceof"
)

// AssertionError is raised by every failed primitive.
type AssertionError struct {
	// Check is the primitive that failed.
	Check Check

	// Message describes the violated expectation. It is
	// deterministic for a given set of inputs.
	Message string

	// Expected is the expected operand: the value for Equals,
	// the kind for InstanceOf and Throws.
	Expected any

	// Actual is the observed operand: the value for Equals and
	// InstanceOf, the raised error (or nil) for Throws.
	Actual any

	// Cause is the non-matching error raised by the unit of
	// work passed to Throws.
	Cause error
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Is reports whether target is ErrAssertion.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

func (e *AssertionError) Unwrap() error {
	return e.Cause
}

// PanicError wraps a panic value that is not an error, raised
// by a unit of work passed to Throws.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
