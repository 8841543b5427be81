package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that passes each line written to it through Logf,
// as in testing.T.Logf or a Logger.Leveledf function. Any Prefix is added
// before every line.
type Writer struct {
	Logf   func(string, ...interface{})
	Prefix string

	mu      sync.Mutex
	partial bytes.Buffer
}

// Write logs every line that p completes, holding back any trailing partial
// line until a later Write or Sync completes it. Never fails.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			lw.partial.Write(p)
			break
		}
		lw.partial.Write(p[:i])
		lw.logLine()
		p = p[i+1:]
	}
	return n, nil
}

// Sync logs any partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.partial.Len() > 0 {
		lw.logLine()
	}
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) logLine() {
	lw.Logf("%s%s", lw.Prefix, lw.partial.Bytes())
	lw.partial.Reset()
}
