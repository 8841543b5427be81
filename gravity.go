package main

import (
	"context"
	"errors"
	"fmt"
)

var errNoSolution = errors.New("no noun and verb produce the target")

// RunNounVerb runs a copy of prog after storing noun and verb at addresses 1
// and 2, returning the value left at address 0 once it halts.
func RunNounVerb(ctx context.Context, prog []int, noun, verb int, opts ...VMOption) (int, error) {
	vm := New(withProgram(prog), VMOptions(opts...))
	if err := vm.mem.Stor(1, noun, verb); err != nil {
		return 0, err
	}
	if err := vm.Run(ctx); err != nil {
		return 0, err
	}
	return vm.mem.Load(0)
}

// SearchNounVerb finds the noun and verb, each within [0, limit], for which
// RunNounVerb produces target. Pairs are tried from (limit, limit) downward,
// verbs changing fastest. Any options apply to every run.
func SearchNounVerb(ctx context.Context, prog []int, target, limit int, opts ...VMOption) (noun, verb int, err error) {
	for noun = limit; noun >= 0; noun-- {
		for verb = limit; verb >= 0; verb-- {
			val, err := RunNounVerb(ctx, prog, noun, verb, opts...)
			if err != nil {
				return 0, 0, fmt.Errorf("noun %v verb %v: %w", noun, verb, err)
			}
			if val == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errNoSolution
}
