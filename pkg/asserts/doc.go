// Package asserts provides the assertion primitives used by
// conformance test sources: Assert, Throws, Equals and
// InstanceOf.
//
// A failed primitive raises: it panics with an *AssertionError,
// which propagates to whatever harness invoked the check. Capture
// converts the raise back into an error at the harness boundary,
// and Checker adapts the primitives to testing.TB.
//
//	asserts.Assert(len(got) > 0, "empty result")
//	asserts.Equals(got, 3)
//	asserts.InstanceOfType[*fs.PathError](err)
//	asserts.ThrowsType[*strconv.NumError](func() error {
//		_, err := strconv.Atoi("x")
//		return err
//	})
package asserts
