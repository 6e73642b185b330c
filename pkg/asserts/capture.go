package asserts

// Capture runs fn and returns the *AssertionError it raised, or
// nil. Any other panic is raised again unchanged.
func Capture(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ae, ok := r.(*AssertionError); ok {
			err = ae
			return
		}
		panic(r)
	}()

	fn()
	return nil
}

// run executes a unit of work, turning a panic into the error
// it raised.
func run(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = &PanicError{Value: r}
	}()

	return fn()
}
