package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

type fmtBuf interface {
	Len() int
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteString(s string) (n int, err error)
}

// vmDumper writes a listing of machine state: registers, output, and a linear
// disassembly of the whole tape. Words that do not decode as a complete
// instruction are listed as raw values.
type vmDumper struct {
	vm  *VM
	out io.Writer

	addrWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  ip: %v\n", dump.vm.ip)
	fmt.Fprintf(dump.out, "  halted: %v\n", dump.vm.halted)
	fmt.Fprintf(dump.out, "  output: %v\n", dump.vm.out)
	dump.dumpMem()
}

func (dump *vmDumper) dumpMem() {
	size := int(dump.vm.mem.Size())
	fmt.Fprintf(dump.out, "# Memory @0..%v\n", size)
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(size))
	}
	var buf lineBuffer
	for addr := 0; addr < size; {
		fmt.Fprintf(&buf, "  @%*v ", dump.addrWidth, addr)
		next := dump.formatMem(&buf, addr)
		if addr == dump.vm.ip {
			buf.WriteString(" <- ip")
		}
		buf.WriteTo(dump.out)
		addr = next
	}
}

func (dump *vmDumper) formatMem(buf fmtBuf, addr int) int {
	if inst, err := decode(dump.vm.mem, addr); err == nil {
		buf.WriteString(inst.op.String())
		if params := formatParams(inst); params != "" {
			buf.WriteByte(' ')
			buf.WriteString(params)
		}
		return addr + len(inst.params) + 1
	}
	val, _ := dump.vm.mem.Load(addr)
	buf.WriteString(strconv.Itoa(val))
	return addr + 1
}

// lineBuffer accumulates a single line, which WriteTo terminates and drains.
type lineBuffer struct{ bytes.Buffer }

func (buf *lineBuffer) WriteTo(w io.Writer) (int64, error) {
	buf.WriteByte('\n')
	return buf.Buffer.WriteTo(w)
}
