package main

import (
	"fmt"
	"strconv"
)

// An effect is the outcome of executing one instruction: a value written to
// memory, a value output, a jump, or nothing at all (an untaken jump).
type effect struct {
	kind  effectKind
	addr  int // write destination or jump target
	value int // written or output value
}

type effectKind int

const (
	effectNone effectKind = iota
	effectWrite
	effectOutput
	effectJump
)

func writeEffect(addr, value int) effect { return effect{kind: effectWrite, addr: addr, value: value} }
func outputEffect(value int) effect      { return effect{kind: effectOutput, value: value} }
func jumpEffect(addr int) effect         { return effect{kind: effectJump, addr: addr} }

func (eff effect) String() string {
	switch eff.kind {
	case effectWrite:
		return fmt.Sprintf("%v -> @%v", eff.value, eff.addr)
	case effectOutput:
		return fmt.Sprintf("out %v", eff.value)
	case effectJump:
		return fmt.Sprintf("jump @%v", eff.addr)
	default:
		return "next"
	}
}

//// Arithmetic

// Code  Name  Length  Function
//   1   add     4     store a + b at c
//   2   mul     4     store a * b at c

//// Input/Output

// Code  Name  Length  Function
//   3   in      2     store the next input value at a
//   4   out     2     append a to the output

//// Control Flow

// Code  Name  Length  Function
//   5   jnz     3     jump to b if a is not zero
//   6   jz      3     jump to b if a is zero
//  99   halt    1     stop the machine

//// Comparison

// Code  Name  Length  Function
//   7   lt      4     store 1 at c if a < b, 0 otherwise
//   8   eq      4     store 1 at c if a == b, 0 otherwise

// execute computes the effect of inst, given its resolved argument values.
// Nothing is written here; the effect is applied by the caller.
func (vm *VM) execute(inst instruction, args []int) (effect, error) {
	switch inst.op {
	case opAdd:
		return writeEffect(inst.dest(), args[0]+args[1]), nil
	case opMul:
		return writeEffect(inst.dest(), args[0]*args[1]), nil
	case opIn:
		val, err := vm.readInput()
		if err != nil {
			return effect{}, err
		}
		return writeEffect(inst.dest(), val), nil
	case opOut:
		return outputEffect(args[0]), nil
	case opJnz:
		if args[0] != 0 {
			return jumpEffect(args[1]), nil
		}
		return effect{}, nil
	case opJz:
		if args[0] == 0 {
			return jumpEffect(args[1]), nil
		}
		return effect{}, nil
	case opLt:
		return writeEffect(inst.dest(), boolInt(args[0] < args[1])), nil
	case opEq:
		return writeEffect(inst.dest(), boolInt(args[0] == args[1])), nil
	default:
		return effect{}, opError{int(inst.op), inst.addr}
	}
}

func (vm *VM) readInput() (int, error) {
	if vm.in == nil {
		return 0, errNoInput
	}
	return vm.in.ReadInt()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// formatParams renders inst's parameters: position mode parameters as @addr,
// immediate ones as plain values, and any destination as "-> @addr".
func formatParams(inst instruction) string {
	var buf []byte
	args := inst.args()
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		if inst.modes[i] == modePosition {
			buf = append(buf, '@')
		}
		buf = strconv.AppendInt(buf, int64(arg), 10)
	}
	if inst.def().dest {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, "-> @"...)
		buf = strconv.AppendInt(buf, int64(inst.dest()), 10)
	}
	return string(buf)
}
