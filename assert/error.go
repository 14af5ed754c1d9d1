package assert

// AssertionError is raised with panic when an assertion fails.
// Any *AssertionError will match another with [errors.Is], so a specific message doesn't need to be known to identify a failed assertion.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	if e == nil || len(e.Message) == 0 {
		return defaultMessage
	}
	return e.Message
}

func (e *AssertionError) Is(err error) bool {
	_, ok := err.(*AssertionError)
	return ok
}

func fail(msg string) {
	panic(&AssertionError{Message: msg})
}

// Recover is intended to be deferred, and will convert a panic caused by a failed assertion into an error assigned to errp.
// Panics that aren't caused by an [AssertionError] are re-raised.
//
//	func validate(val any) (err error) {
//		defer assert.Recover(&err)
//		assert.IsArray(val, "val")
//		return nil
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	aerr, ok := r.(*AssertionError)
	if !ok {
		panic(r)
	}
	if errp != nil {
		*errp = aerr
	}
}

// Catch runs fn and returns the [AssertionError] it raised, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}
