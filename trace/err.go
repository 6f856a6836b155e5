package trace

import (
	"errors"
	"strconv"

	"github.com/ezrec/opsolve/translate"
)

var f = translate.From

var (
	ErrRegisterList     = errors.New(f("expected register list"))
	ErrInstruction      = errors.New(f("expected 'id a b c' instruction"))
	ErrSampleIncomplete = errors.New(f("incomplete sample"))
	ErrNumber           = errors.New(f("number out of range"))
)

// ErrSyntax locates a format error in the input.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %s '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
