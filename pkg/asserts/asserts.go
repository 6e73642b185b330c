package asserts

import (
	"fmt"
	"strings"

	"digital.vasic.asserts/pkg/kind"
)

const failedMessage = "Assertion failed"

// Assert raises when condition is false. The message is
// "Assertion failed", followed by ": " and the non-empty
// message parts joined with spaces.
func Assert(condition bool, message ...string) {
	if condition {
		return
	}
	panic(&AssertionError{
		Check:   CheckAssert,
		Message: assertMessage(message),
	})
}

func assertMessage(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return failedMessage
	}
	return failedMessage + ": " + strings.Join(kept, " ")
}

// Equals raises unless actual and expected are strictly equal:
// same dynamic type and same value, with no conversion.
// Slices, maps, funcs and channels are equal only when they are
// the same instance. Distinct empty slices of the same type are
// the exception: the runtime backs every zero-capacity slice
// with one shared address, so they compare equal.
func Equals(actual, expected any) {
	if strictEqual(actual, expected) {
		return
	}
	panic(&AssertionError{
		Check:    CheckEquals,
		Message:  "Expected " + fmt.Sprint(expected) + " but got " + fmt.Sprint(actual),
		Expected: expected,
		Actual:   actual,
	})
}

// InstanceOf raises unless value is an instance of k.
func InstanceOf(value any, k kind.Kind) {
	if k.Matches(value) {
		return
	}
	panic(&AssertionError{
		Check:    CheckInstanceOf,
		Message:  fmt.Sprint(value) + " not an instance of " + k.String(),
		Expected: k,
		Actual:   value,
	})
}

// InstanceOfType raises unless value is an instance of T.
func InstanceOfType[T any](value any) {
	InstanceOf(value, kind.Of[T]())
}

// Throws runs fn and raises unless fn raised an error of the
// expected kind. fn raises by returning a non-nil error or by
// panicking. A typed nil error counts as raising nothing.
// Raising nothing, or raising another kind, fails with
// "Assertion failed".
func Throws(fn func() error, expected kind.Kind) {
	var raised error
	if fn != nil {
		raised = run(fn)
	}
	if kind.IsNil(raised) {
		raised = nil
	}
	if raised != nil && expected.Matches(raised) {
		return
	}
	panic(&AssertionError{
		Check:    CheckThrows,
		Message:  failedMessage,
		Expected: expected,
		Actual:   raised,
		Cause:    raised,
	})
}

// ThrowsType runs fn and raises unless fn raised an error of
// kind E.
func ThrowsType[E any](fn func() error) {
	Throws(fn, kind.Of[E]())
}
