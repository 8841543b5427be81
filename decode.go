package main

import (
	"fmt"

	"github.com/jcorbin/intcode/internal/mem"
)

// An opcode is the low two decimal digits of an instruction word.
type opcode int

const (
	opAdd  opcode = 1
	opMul  opcode = 2
	opIn   opcode = 3
	opOut  opcode = 4
	opJnz  opcode = 5
	opJz   opcode = 6
	opLt   opcode = 7
	opEq   opcode = 8
	opHalt opcode = 99
)

// opDef describes the fixed shape of each operation: its length counts the
// opcode word itself, and dest marks the last parameter as a raw
// destination address, never interpreted through its mode.
type opDef struct {
	name   string
	length int
	dest   bool
}

var opDefs = [100]opDef{
	opAdd:  {"add", 4, true},
	opMul:  {"mul", 4, true},
	opIn:   {"in", 2, true},
	opOut:  {"out", 2, false},
	opJnz:  {"jnz", 3, false},
	opJz:   {"jz", 3, false},
	opLt:   {"lt", 4, true},
	opEq:   {"eq", 4, true},
	opHalt: {"halt", 1, false},
}

func (op opcode) def() (opDef, bool) {
	if op < 0 || int(op) >= len(opDefs) {
		return opDef{}, false
	}
	def := opDefs[op]
	return def, def.length > 0
}

func (op opcode) String() string {
	if def, ok := op.def(); ok {
		return def.name
	}
	return fmt.Sprintf("op%d", int(op))
}

// A paramMode determines how a parameter word is interpreted.
type paramMode int

const (
	modePosition  paramMode = 0 // the word is an address to load from
	modeImmediate paramMode = 1 // the word is the value itself
)

func (mode paramMode) valid() bool {
	return mode == modePosition || mode == modeImmediate
}

// decodeModes reads n parameter modes from the digits above an instruction
// word's opcode, least significant digit first.
//
// Digits that name no known mode are dropped, shifting any later modes down
// to fill their place; e.g. the modes of 1201 are [immediate position ...].
// Any parameters left over after the digits run out are in position mode.
func decodeModes(word int, n int) []paramMode {
	modes := make([]paramMode, 0, n)
	for digits := word / 100; digits > 0 && len(modes) < n; digits /= 10 {
		if mode := paramMode(digits % 10); mode.valid() {
			modes = append(modes, mode)
		}
	}
	for len(modes) < n {
		modes = append(modes, modePosition)
	}
	return modes
}

// instruction is a single decoded operation.
type instruction struct {
	addr   int
	word   int
	op     opcode
	modes  []paramMode
	params []int
}

func (inst instruction) def() opDef {
	def, _ := inst.op.def()
	return def
}

// dest returns the raw destination address of a writing instruction.
func (inst instruction) dest() int {
	return inst.params[len(inst.params)-1]
}

// args returns the parameters that must be resolved into values, excluding
// any destination address.
func (inst instruction) args() []int {
	if inst.def().dest {
		return inst.params[:len(inst.params)-1]
	}
	return inst.params
}

// decode reads the instruction at addr: its opcode, and a mode for every
// parameter word that follows it.
func decode(tape *mem.Tape, addr int) (inst instruction, err error) {
	inst.addr = addr
	if inst.word, err = tape.Load(addr); err != nil {
		return inst, err
	}
	inst.op = opcode(inst.word % 100)
	def, ok := inst.op.def()
	if !ok {
		return inst, opError{inst.word % 100, addr}
	}
	n := def.length - 1
	inst.modes = decodeModes(inst.word, n)
	inst.params = make([]int, n)
	if err := tape.LoadInto(addr+1, inst.params); err != nil {
		return inst, err
	}
	return inst, nil
}

// resolve loads the value of every non-destination parameter, left to right.
func resolve(tape *mem.Tape, inst instruction) ([]int, error) {
	args := inst.args()
	vals := make([]int, len(args))
	for i, arg := range args {
		switch inst.modes[i] {
		case modeImmediate:
			vals[i] = arg
		default:
			val, err := tape.Load(arg)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
	}
	return vals, nil
}
