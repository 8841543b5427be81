package main

// InputSource provides values to the in instruction.
type InputSource interface {
	ReadInt() (int, error)
}

// ConstInput is an InputSource that provides the same value every time.
type ConstInput int

// ReadInt returns the constant value.
func (ci ConstInput) ReadInt() (int, error) { return int(ci), nil }

// QueueInput is an InputSource that provides each of its values once, in
// order; once empty, ReadInt fails with an error.
type QueueInput []int

// ReadInt removes and returns the first queued value.
func (q *QueueInput) ReadInt() (int, error) {
	if len(*q) == 0 {
		return 0, errNoInput
	}
	val := (*q)[0]
	*q = (*q)[1:]
	return val, nil
}

// OutputSink receives every value produced by the out instruction, as it is
// produced. Sinks that also implement Flush() error are flushed once the
// machine stops.
type OutputSink interface {
	WriteInt(val int) error
}

// OutputFunc adapts a function into an OutputSink.
type OutputFunc func(val int) error

// WriteInt calls the function.
func (f OutputFunc) WriteInt(val int) error { return f(val) }

func flushSink(sink OutputSink) error {
	if fl, ok := sink.(interface{ Flush() error }); ok {
		return fl.Flush()
	}
	return nil
}
