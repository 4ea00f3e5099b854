package control

import (
	"errors"

	"github.com/ezrec/lc3asm/translate"
)

var f = translate.From

var (
	// Control store errors
	ErrHeaderMissing = errors.New(f("control store header missing"))
	ErrRowWidth      = errors.New(f("row width differs from header"))
)

// ErrRow locates an error in the control store.
type ErrRow struct {
	LineNo int
	Err    error
}

func (err *ErrRow) Error() string {
	return f("control store line %d %v", err.LineNo, err.Err)
}

func (err *ErrRow) Unwrap() error {
	return err.Err
}
