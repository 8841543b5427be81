package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
	"strconv"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher creates a new flushable writer: in memory buffers and the
// discard writer get a noop Flush; an existing WriteFlusher is returned as is;
// anything else is wrapped in a new bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == ioutil.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// IntLines writes integers in decimal, one per line.
type IntLines struct {
	WriteFlusher
	buf []byte
}

// NewIntLines wraps w through NewWriteFlusher.
func NewIntLines(w io.Writer) *IntLines {
	return &IntLines{WriteFlusher: NewWriteFlusher(w)}
}

// WriteInt writes a single value and its line feed.
// Nothing is flushed until Flush is called.
func (il *IntLines) WriteInt(val int) error {
	il.buf = strconv.AppendInt(il.buf[:0], int64(val), 10)
	il.buf = append(il.buf, '\n')
	_, err := il.Write(il.buf)
	return err
}
