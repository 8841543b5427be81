package flushio

import (
	"fmt"
	"io"
)

// Tee copies every write into each of its WriteFlushers, in order.
type Tee []WriteFlusher

// TeeError identifies which Tee member failed a write.
type TeeError struct {
	Index int
	Err   error
}

func (te TeeError) Error() string { return fmt.Sprintf("tee writer #%v: %v", te.Index, te.Err) }

// Unwrap returns the member's error.
func (te TeeError) Unwrap() error { return te.Err }

// WriteFlushers combines WriteFlusher-s into one, skipping any nils and
// flattening any nested Tee. Returns nil when none remain, or the only one
// left without wrapping it.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var tee Tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case Tee:
			tee = append(tee, impl...)
		default:
			tee = append(tee, impl)
		}
	}
	switch len(tee) {
	case 0:
		return nil
	case 1:
		return tee[0]
	}
	return tee
}

// Write stops at the first member that fails, or writes less than all of p;
// later members never see p.
func (tee Tee) Write(p []byte) (int, error) {
	for i, wf := range tee {
		n, err := wf.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, TeeError{i, err}
		}
	}
	return len(p), nil
}

// Flush flushes every member, even after one fails, returning the first error.
func (tee Tee) Flush() (err error) {
	for i, wf := range tee {
		if ferr := wf.Flush(); ferr != nil && err == nil {
			err = TeeError{i, ferr}
		}
	}
	return err
}
