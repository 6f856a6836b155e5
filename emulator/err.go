package emulator

import (
	"strconv"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/translate"
)

var f = translate.From

// ErrRuntime indicates the program step of a runtime error.
type ErrRuntime struct {
	Step        int
	Instruction cpu.Instruction
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("step %s '%v' %v", strconv.Itoa(err.Step), err.Instruction, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
