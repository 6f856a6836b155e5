package cpu

import (
	"errors"
	"fmt"
)

const (
	REGISTER_COUNT = 4 // Number of general purpose registers.
)

// Registers is the register file of the machine.
//
// Registers is a value type; execution returns a new register file
// instead of modifying one in place, so states may be compared with ==.
type Registers [REGISTER_COUNT]uint32

// String returns the register file in trace notation, ie "[3, 2, 1, 1]".
func (regs Registers) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", regs[0], regs[1], regs[2], regs[3])
}

// Execute applies op to the register file, writing the result to register c.
func Execute(op Opcode, a, b, c uint32, regs Registers) (out Registers, err error) {
	defer func() {
		if err != nil {
			out = Registers{}
			err = errors.Join(ErrOpcode(Op{Opcode: op, A: a, B: b, C: c}), err)
		}
	}()

	if c >= REGISTER_COUNT {
		err = errors.Join(ErrOperandC, ErrInvalidOperand)
		return
	}

	value, err := Apply(op, a, b, regs)
	if err != nil {
		return
	}

	out = regs
	out[c] = value

	return
}
