package panicerr

// Recover calls f, converting any panic raised while it runs into a non-nil
// error return. Unlike running f in its own goroutine, f shares the caller's
// goroutine and stack.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = newPanicError(name, e)
		}
	}()
	return f()
}
