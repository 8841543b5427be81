package main

import (
	"io"

	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/jcorbin/intcode/internal/mem"
)

// VMOption customizes a VM at construction time.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var all vmOptions
	for _, opt := range opts {
		if many, ok := opt.(vmOptions); ok {
			all = append(all, many...)
		} else if opt != nil {
			all = append(all, opt)
		}
	}
	return all
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withProgram(nil),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type programOption []int
type inputOption struct{ InputSource }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type sinkOption struct{ OutputSink }

func withProgram(values []int) programOption    { return programOption(values) }
func withInput(in InputSource) inputOption      { return inputOption{in} }
func withOutput(w io.Writer) outputOption       { return outputOption{w} }
func withTee(w io.Writer) teeOption             { return teeOption{w} }
func withOutputSink(sink OutputSink) sinkOption { return sinkOption{sink} }

// A program option loads a fresh copy of its values, resetting the machine.
func (prog programOption) apply(vm *VM) {
	vm.mem = mem.NewTape(prog...)
	vm.ip = 0
	vm.halted = false
	vm.out = nil
}

func (i inputOption) apply(vm *VM) {
	vm.in = i.InputSource
}

// An output option replaces any previous printed writer; any tee is kept.
func (o outputOption) apply(vm *VM) {
	if vm.printed != nil {
		if err := vm.printed.Flush(); err != nil {
			vm.logf("replaced output flush error: %v", err)
		}
		vm.printed = nil
	}
	if o.Writer != nil {
		vm.printed = flushio.NewWriteFlusher(o.Writer)
	}
}

// A tee option adds another printed copy, regardless of option order.
func (o teeOption) apply(vm *VM) {
	if o.Writer != nil {
		vm.teed = flushio.WriteFlushers(vm.teed, flushio.NewWriteFlusher(o.Writer))
	}
}

func (o sinkOption) apply(vm *VM) {
	if vm.sink != nil {
		if err := flushSink(vm.sink); err != nil {
			vm.logf("replaced sink flush error: %v", err)
		}
	}
	vm.sink = o.OutputSink
}
