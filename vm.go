package main

import (
	"context"
	"fmt"

	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/jcorbin/intcode/internal/mem"
)

// VM implements an Intcode machine. Program and data share a single tape of
// integers, which the machine executes from address 0 until it reaches a halt
// instruction.
type VM struct {
	logging

	mem    *mem.Tape
	ip     int  // instruction pointer
	halted bool // set once halt has executed; no further steps run

	in InputSource

	// Every output value is passed along to any line writer and sink, in that
	// order, and retained once both have accepted it.
	out   []int
	lines *flushio.IntLines
	sink  OutputSink

	// printed and teed are combined into lines once all options are applied.
	printed flushio.WriteFlusher
	teed    flushio.WriteFlusher
}

// IP returns the address of the next instruction to execute.
func (vm *VM) IP() int { return vm.ip }

// Halted returns true after the machine has executed a halt instruction.
func (vm *VM) Halted() bool { return vm.halted }

// Memory returns a copy of the machine's entire tape.
func (vm *VM) Memory() []int { return vm.mem.Values() }

// Output returns a copy of every value output so far.
func (vm *VM) Output() []int { return append([]int(nil), vm.out...) }

// step executes a single instruction. Memory is only written, and the
// instruction pointer only moved, after the instruction has been fully
// decoded and executed without error.
//
// Returns errHalt once the machine has halted.
func (vm *VM) step() error {
	if vm.halted {
		return errHalt
	}

	inst, err := decode(vm.mem, vm.ip)
	if _, isOpErr := err.(opError); isOpErr {
		return err
	} else if err != nil {
		return stepError{vm.ip, inst.op, err}
	}

	if inst.op == opHalt {
		vm.logf("exec @%v halt", inst.addr)
		vm.halted = true
		return errHalt
	}

	args, err := resolve(vm.mem, inst)
	if err != nil {
		return stepError{inst.addr, inst.op, err}
	}

	eff, err := vm.execute(inst, args)
	if err != nil {
		return stepError{inst.addr, inst.op, err}
	}
	if vm.logfn != nil {
		vm.logf("exec @%v %v %v -- %v %v", inst.addr, inst.op, formatParams(inst), args, eff)
	}

	next := inst.addr + len(inst.params) + 1
	switch eff.kind {
	case effectWrite:
		if err := vm.mem.Stor(eff.addr, eff.value); err != nil {
			return stepError{inst.addr, inst.op, err}
		}
	case effectOutput:
		if err := vm.output(eff.value); err != nil {
			return stepError{inst.addr, inst.op, err}
		}
	case effectJump:
		next = eff.addr
	}
	vm.ip = next
	return nil
}

func (vm *VM) output(val int) error {
	if vm.lines != nil {
		if err := vm.lines.WriteInt(val); err != nil {
			return err
		}
	}
	if vm.sink != nil {
		if err := vm.sink.WriteInt(val); err != nil {
			return err
		}
	}
	vm.out = append(vm.out, val)
	return nil
}

// wireLines combines any printed and teed writers into a single line writer.
func (vm *VM) wireLines() {
	vm.lines = nil
	if wf := flushio.WriteFlushers(vm.printed, vm.teed); wf != nil {
		vm.lines = &flushio.IntLines{WriteFlusher: wf}
	}
}

func (vm *VM) flush() (err error) {
	if vm.lines != nil {
		err = vm.lines.Flush()
	}
	if vm.sink != nil {
		if ferr := flushSink(vm.sink); err == nil {
			err = ferr
		}
	}
	return err
}

// exec steps the machine until it halts, fails, or ctx is done.
func (vm *VM) exec(ctx context.Context) error {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}
	for {
		if err := vm.step(); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (vm *VM) run(ctx context.Context) error {
	return vm.halt(vm.exec(ctx))
}

// halt flushes any output, and logs why the machine stopped.
func (vm *VM) halt(err error) error {
	if ferr := vm.flush(); ferr != nil && (err == nil || err == errHalt) {
		err = ferr
	}
	switch err {
	case nil:
	case errHalt:
		vm.logf("halt @%v", vm.ip)
	default:
		vm.logf("halt error: %v", err)
	}
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v", mess)
}
