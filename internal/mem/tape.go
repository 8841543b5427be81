package mem

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by any RangeError under errors.Is.
var ErrOutOfRange = errors.New("address out of range")

// RangeError indicates that a memory operation, like load or store, addressed
// a cell outside of the tape.
type RangeError struct {
	Addr int
	Size uint
	Op   string
}

func (re RangeError) Error() string {
	return fmt.Sprintf("%v @%v outside of %v cell tape", re.Op, re.Addr, re.Size)
}

// Is reports ErrOutOfRange as an equivalent error.
func (re RangeError) Is(target error) bool { return target == ErrOutOfRange }

// Tape implements a fixed size integer memory.
// Its size is set once at construction; it never grows or shrinks.
type Tape struct {
	cells []int
}

// NewTape creates a tape holding a copy of the given values.
func NewTape(values ...int) *Tape {
	return &Tape{cells: append([]int(nil), values...)}
}

// Size returns the number of cells in the tape.
func (t *Tape) Size() uint { return uint(len(t.cells)) }

// Load returns a single value from the given address.
// Returns a RangeError if addr falls outside the tape.
func (t *Tape) Load(addr int) (int, error) {
	if err := t.checkRange(addr, 1, "load"); err != nil {
		return 0, err
	}
	return t.cells[addr], nil
}

// LoadInto reads len(buf) integers from memory starting at addr.
// Returns a RangeError if any of them fall outside the tape; no partial load
// is done.
func (t *Tape) LoadInto(addr int, buf []int) error {
	if len(buf) == 0 {
		return nil
	}
	if err := t.checkRange(addr, len(buf), "load"); err != nil {
		return err
	}
	copy(buf, t.cells[addr:])
	return nil
}

// Stor stores values at addr.
// Returns a RangeError if any of them would fall outside the tape; no partial
// store is done.
func (t *Tape) Stor(addr int, values ...int) error {
	if len(values) == 0 {
		return nil
	}
	if err := t.checkRange(addr, len(values), "stor"); err != nil {
		return err
	}
	copy(t.cells[addr:], values)
	return nil
}

// Values returns a copy of the whole tape.
func (t *Tape) Values() []int {
	return append([]int(nil), t.cells...)
}

func (t *Tape) checkRange(addr, n int, op string) error {
	if addr < 0 || addr >= len(t.cells) {
		return RangeError{addr, t.Size(), op}
	}
	if n > len(t.cells)-addr {
		return RangeError{len(t.cells), t.Size(), op}
	}
	return nil
}
