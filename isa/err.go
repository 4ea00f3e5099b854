package isa

import (
	"errors"

	"github.com/ezrec/lc3asm/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrInvalidRegister     = errors.New(f("invalid register"))
	ErrImmediateOutOfRange = errors.New(f("immediate out of range"))
	ErrOffsetOutOfRange    = errors.New(f("offset out of range"))
	ErrInvalidCondition    = errors.New(f("invalid condition"))
)

// ErrToken attaches the offending source token to an error.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrRange reports a numeric operand outside of its field range.
type ErrRange struct {
	Value    int64
	Min, Max int64
	Err      error
}

func (err *ErrRange) Error() string {
	return f("%v: %v not in [%v, %v]", err.Err, err.Value, err.Min, err.Max)
}

func (err *ErrRange) Unwrap() error {
	return err.Err
}
