package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/lc3asm/isa"

	"github.com/ezrec/lc3asm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrUnsupportedInstruction = errors.New(f("unsupported instruction"))
	ErrInvalidAddFormat       = errors.New(f("invalid ADD format"))
	ErrOperandMissing         = errors.New(f("operand missing"))
	ErrOperandExtra           = errors.New(f("excessive operands"))
)

// ErrSyntax locates an error in the assembly source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	// A token error naming the whole line already quotes it.
	var et *isa.ErrToken
	if errors.As(err.Err, &et) && et.Token == strings.TrimSpace(err.Line) {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
