package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/opsolve/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrInvalidOperand = errors.New(f("invalid operand"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOperandA       = errors.New(f("operand a"))
	ErrOperandB       = errors.New(f("operand b"))
	ErrOperandC       = errors.New(f("operand c"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
)

// ErrOpcode reports the operation that failed to execute.
type ErrOpcode Op

func (eo ErrOpcode) Error() string {
	return f("bad operation '%v'", Op(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %s '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
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

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %s %v", err.Macro, strconv.Itoa(err.Line), err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
