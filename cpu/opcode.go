package cpu

import (
	"errors"
	"iter"
)

// Opcode is a symbolic operation of the machine.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADDR = Opcode(0)  // addr
	OP_ADDI = Opcode(1)  // addi
	OP_MULR = Opcode(2)  // mulr
	OP_MULI = Opcode(3)  // muli
	OP_BANR = Opcode(4)  // banr
	OP_BANI = Opcode(5)  // bani
	OP_BORR = Opcode(6)  // borr
	OP_BORI = Opcode(7)  // bori
	OP_SETR = Opcode(8)  // setr
	OP_SETI = Opcode(9)  // seti
	OP_GTIR = Opcode(10) // gtir
	OP_GTRI = Opcode(11) // gtri
	OP_GTRR = Opcode(12) // gtrr
	OP_EQIR = Opcode(13) // eqir
	OP_EQRI = Opcode(14) // eqri
	OP_EQRR = Opcode(15) // eqrr
)

const (
	OPCODE_COUNT = 16 // Number of symbolic opcodes.
)

// opcodeFlag describes how an opcode interprets its a and b operands.
type opcodeFlag uint8

const (
	FLAG_REG_A = opcodeFlag(1 << 0) // a is a register index
	FLAG_REG_B = opcodeFlag(1 << 1) // b is a register index
)

// opcodeFlags is indexed by Opcode.
var opcodeFlags = [OPCODE_COUNT]opcodeFlag{
	OP_ADDR: FLAG_REG_A | FLAG_REG_B,
	OP_ADDI: FLAG_REG_A,
	OP_MULR: FLAG_REG_A | FLAG_REG_B,
	OP_MULI: FLAG_REG_A,
	OP_BANR: FLAG_REG_A | FLAG_REG_B,
	OP_BANI: FLAG_REG_A,
	OP_BORR: FLAG_REG_A | FLAG_REG_B,
	OP_BORI: FLAG_REG_A,
	OP_SETR: FLAG_REG_A,
	OP_SETI: 0,
	OP_GTIR: FLAG_REG_B,
	OP_GTRI: FLAG_REG_A,
	OP_GTRR: FLAG_REG_A | FLAG_REG_B,
	OP_EQIR: FLAG_REG_B,
	OP_EQRI: FLAG_REG_A,
	OP_EQRR: FLAG_REG_A | FLAG_REG_B,
}

var opcodeByName map[string]Opcode

func init() {
	opcodeByName = make(map[string]Opcode, OPCODE_COUNT)
	for op := range Opcodes() {
		opcodeByName[op.String()] = op
	}
}

// Opcodes returns all of the symbolic opcodes, in declaration order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(op Opcode) bool) {
		for n := range OPCODE_COUNT {
			if !yield(Opcode(n)) {
				return
			}
		}
	}
}

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(name string) (op Opcode, err error) {
	op, ok := opcodeByName[name]
	if !ok {
		err = ErrOpcodeInvalid
	}
	return
}

// Valid returns true if op is one of the sixteen opcodes.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OPCODE_COUNT
}

// RegA returns true if operand a is read as a register index.
func (op Opcode) RegA() bool {
	return op.Valid() && (opcodeFlags[op]&FLAG_REG_A) != 0
}

// RegB returns true if operand b is read as a register index.
func (op Opcode) RegB() bool {
	return op.Valid() && (opcodeFlags[op]&FLAG_REG_B) != 0
}

// operand resolves a raw operand, reading the register bank only if asked to.
func operand(raw uint32, is_reg bool, regs Registers) (value uint32, err error) {
	if !is_reg {
		value = raw
		return
	}

	if raw >= REGISTER_COUNT {
		err = ErrInvalidOperand
		return
	}

	value = regs[raw]
	return
}

// Apply computes the result of op on the raw operands a and b.
// Literal operands are never used as register indexes.
func Apply(op Opcode, a, b uint32, regs Registers) (value uint32, err error) {
	if !op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	va, err := operand(a, op.RegA(), regs)
	if err != nil {
		err = errors.Join(ErrOperandA, err)
		return
	}

	vb, err := operand(b, op.RegB(), regs)
	if err != nil {
		err = errors.Join(ErrOperandB, err)
		return
	}

	switch op {
	case OP_ADDR, OP_ADDI:
		value = va + vb
	case OP_MULR, OP_MULI:
		value = va * vb
	case OP_BANR, OP_BANI:
		value = va & vb
	case OP_BORR, OP_BORI:
		value = va | vb
	case OP_SETR, OP_SETI:
		value = va
	case OP_GTIR, OP_GTRI, OP_GTRR:
		if va > vb {
			value = 1
		}
	case OP_EQIR, OP_EQRI, OP_EQRR:
		if va == vb {
			value = 1
		}
	}

	return
}
