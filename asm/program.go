package asm

import (
	"errors"
	"io"
	"iter"

	"github.com/ezrec/lc3asm/isa"
)

// Program is the result of assembling a source: the encoded lines and the
// lines in error, each in source order.
type Program struct {
	Opcodes []Opcode
	Errors  []error
	ReadErr error // Error reading the source, if any.
}

// add records the result of encoding a single line, and reports whether
// the line was free of errors.
func (prog *Program) add(op *Opcode, err error) (ok bool) {
	if err != nil {
		prog.Errors = append(prog.Errors, err)
		return false
	}
	if op != nil {
		prog.Opcodes = append(prog.Opcodes, *op)
	}
	return true
}

// Err joins the line errors, or returns nil if there were none.
func (prog *Program) Err() error {
	return errors.Join(prog.Errors...)
}

// Debug returns the opcode at address ip, relative to the start of the
// program, or nil if ip is past the end.
func (prog *Program) Debug(ip uint16) (op *Opcode) {
	if int(ip) < len(prog.Opcodes) {
		op = &prog.Opcodes[ip]
	}
	return
}

// Binary returns the encoded instruction words.
func (prog *Program) Binary() (bins []uint16) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint16(code))
	}

	return
}

// Codes iterates over the program addresses and their instruction words.
func (prog *Program) Codes() iter.Seq2[uint16, isa.Code] {
	return func(yield func(ip uint16, code isa.Code) bool) {
		for n, op := range prog.Opcodes {
			if !yield(uint16(n), op.Code) {
				return
			}
		}
	}
}

// Lines iterates over the 16 character binary form of each instruction.
func (prog *Program) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for _, code := range prog.Codes() {
			if !yield(code.String()) {
				return
			}
		}
	}
}

// WriteTo writes one binary line per instruction, each terminated by a
// newline.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for line := range prog.Lines() {
		var count int
		count, err = io.WriteString(w, line+"\n")
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}
