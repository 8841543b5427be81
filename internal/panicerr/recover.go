package panicerr

// Recover calls f, converting any panic that escapes it into a non-nil error
// return. Unlike a plain defer/recover, the returned error retains the panic
// value, the given name, and a stack trace for later "%+v" formatting.
//
// f runs on the calling goroutine.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = recovered(name, e)
		}
	}()
	return f()
}
