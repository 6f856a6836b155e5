package cpu

import (
	"fmt"
)

// Instruction is an instruction whose opcode is only known by its numeric id.
type Instruction struct {
	Id uint32 // Numeric opcode id.
	A  uint32
	B  uint32
	C  uint32
}

// String returns the instruction in trace notation, ie "9 2 1 2".
func (in Instruction) String() string {
	return fmt.Sprintf("%d %d %d %d", in.Id, in.A, in.B, in.C)
}

// Op is an instruction with a resolved opcode.
type Op struct {
	Opcode Opcode
	A      uint32
	B      uint32
	C      uint32
}

// Execute the operation against a register file.
func (op Op) Execute(regs Registers) (Registers, error) {
	return Execute(op.Opcode, op.A, op.B, op.C, regs)
}

// String returns the operation in assembler notation, ie "addr 2 1 2".
func (op Op) String() string {
	return fmt.Sprintf("%v %d %d %d", op.Opcode, op.A, op.B, op.C)
}

// Sample is one observed execution of an instruction.
type Sample struct {
	Before Registers
	After  Registers
	Instruction
}

// String returns the sample as a single line.
func (s Sample) String() string {
	return fmt.Sprintf("%v %v -> %v", s.Before, s.Instruction, s.After)
}
