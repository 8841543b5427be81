package main

import (
	"errors"
	"fmt"
)

var (
	errHalt      = errors.New("normal halt")
	errUnknownOp = errors.New("unknown operation")
	errNoInput   = errors.New("no input available")
)

// opError reports an instruction word whose opcode is not in the operation
// table; it matches errUnknownOp under errors.Is.
type opError struct {
	code int
	addr int
}

func (oe opError) Error() string {
	return fmt.Sprintf("unknown operation %v @%v", oe.code, oe.addr)
}

func (oe opError) Is(target error) bool { return target == errUnknownOp }

// stepError annotates an error with the instruction that caused it.
type stepError struct {
	addr int
	op   opcode
	err  error
}

func (se stepError) Error() string {
	if _, known := se.op.def(); known {
		return fmt.Sprintf("@%v %v: %v", se.addr, se.op, se.err)
	}
	return fmt.Sprintf("@%v: %v", se.addr, se.err)
}

func (se stepError) Unwrap() error { return se.err }
