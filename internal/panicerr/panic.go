package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// panicError carries a recovered panic value, and the stack it was raised on.
type panicError struct {
	name  string
	value interface{}
	stack []byte
}

func recovered(name string, value interface{}) panicError {
	return panicError{name, value, debug.Stack()}
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

// Format writes "name paniced: value", adding the stack under "%+v".
func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name != "" {
		fmt.Fprintf(f, "%v ", pe.name)
	}
	fmt.Fprintf(f, "paniced: %v", pe.value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	_, is := asPanic(err)
	return is
}

// Stack returns a non-empty stacktrace string if err is a recovered panic.
func Stack(err error) string {
	pe, _ := asPanic(err)
	return string(pe.stack)
}

func asPanic(err error) (pe panicError, is bool) {
	is = errors.As(err, &pe)
	return pe, is
}
