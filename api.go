package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/intcode/internal/panicerr"
)

// New creates a machine; without any WithProgram option its tape is empty.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	vm.wireLines()
	return &vm
}

// Run executes the machine until it halts, returning nil after a normal halt.
// Any other stop is an error: an unknown operation, an address outside of the
// tape, missing input, an output error, or ctx being done. Any panic is
// recovered as an error.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	if errors.Is(err, errHalt) {
		return nil
	}
	return err
}

// Result holds the final state of a halted machine.
type Result struct {
	Memory []int
	Output []int
}

// RunProgram runs a copy of tape, feeding input to every in instruction, until
// it halts. No partial result is returned after an error. Options may add a
// sink or printed output, or turn on trace logging.
func RunProgram(tape []int, input int, opts ...VMOption) (Result, error) {
	vm := New(withProgram(tape), withInput(ConstInput(input)), VMOptions(opts...))
	if err := vm.Run(context.Background()); err != nil {
		return Result{}, err
	}
	return Result{
		Memory: vm.Memory(),
		Output: vm.Output(),
	}, nil
}

func WithProgram(values ...int) VMOption      { return withProgram(values) }
func WithInput(in InputSource) VMOption       { return withInput(in) }
func WithInputValue(value int) VMOption       { return withInput(ConstInput(value)) }
func WithInputQueue(values ...int) VMOption   { return withInput((*QueueInput)(&values)) }
func WithOutput(w io.Writer) VMOption         { return withOutput(w) }
func WithTee(w io.Writer) VMOption            { return withTee(w) }
func WithOutputSink(sink OutputSink) VMOption { return withOutputSink(sink) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
