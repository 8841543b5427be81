package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jcorbin/intcode/internal/fileinput"
	"github.com/jcorbin/intcode/internal/logio"
)

func main() {
	ctx := context.Background()

	var (
		timeout time.Duration
		trace   bool
		dump    bool
		input   int
		inputs  string
		last    bool
		stream  bool
		noun    int
		verb    int
		search  int
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump final machine state to stderr; not available with -noun, -verb or -search")
	flag.IntVar(&input, "input", 0, "value provided to every input instruction")
	flag.StringVar(&inputs, "inputs", "", "comma separated values provided to input instructions, once each")
	flag.BoolVar(&last, "last", false, "only print the final output value")
	flag.BoolVar(&stream, "print", true, "print each output value as it is produced")
	flag.IntVar(&noun, "noun", -1, "value stored at address 1 before running; prints address 0 after")
	flag.IntVar(&verb, "verb", -1, "value stored at address 2 before running; prints address 0 after")
	flag.IntVar(&search, "search", -1, "search for the noun and verb that produce this value at address 0")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	prog, err := loadProgram(flag.Args())
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	var opts []VMOption
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch {
	case search >= 0:
		noun, verb, err := SearchNounVerb(ctx, prog, search, 99, opts...)
		log.ErrorIf(err)
		if err == nil {
			fmt.Println(100*noun + verb)
		}

	case noun >= 0 || verb >= 0:
		if noun < 0 || verb < 0 {
			log.Errorf("-noun and -verb must be given together")
			break
		}
		val, err := RunNounVerb(ctx, prog, noun, verb, opts...)
		log.ErrorIf(err)
		if err == nil {
			fmt.Println(val)
		}

	default:
		opts = append(opts, WithProgram(prog...), WithInputValue(input))
		if inputs != "" {
			values, err := fileinput.ParseInts(fileinput.Location{Name: "-inputs", Line: 1}, inputs)
			if err != nil {
				log.Errorf("%v", err)
				break
			}
			opts = append(opts, WithInputQueue(values...))
		}
		if stream && !last {
			opts = append(opts, WithOutput(os.Stdout))
		}
		vm := New(opts...)
		err := vm.Run(ctx)
		log.ErrorIf(err)
		if dump {
			lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
			vmDumper{vm: vm, out: lw}.dump()
			lw.Close()
		}
		if out := vm.Output(); err == nil && last && len(out) > 0 {
			fmt.Println(out[len(out)-1])
		}
	}

	os.Exit(log.ExitCode())
}

func loadProgram(args []string) ([]int, error) {
	switch len(args) {
	case 0:
		return fileinput.Load(os.Stdin)
	case 1:
		return fileinput.Open(args[0])
	default:
		return nil, fmt.Errorf("expected at most one program file, got %v", len(args))
	}
}
