package solver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/opsolve/cpu"
)

// Assignment maps every numeric opcode id to its symbolic opcode.
type Assignment [OPCODE_SETS]cpu.Opcode

// Lookup returns the opcode for a numeric id.
func (asg Assignment) Lookup(id uint32) (op cpu.Opcode, err error) {
	if id >= OPCODE_SETS {
		err = ErrOpcodeId
		return
	}

	op = asg[id]
	return
}

// Id returns the numeric id of an opcode.
func (asg Assignment) Id(op cpu.Opcode) (id uint32, err error) {
	for n, assigned := range asg {
		if assigned == op {
			id = uint32(n)
			return
		}
	}

	err = ErrOpcodeUnassigned
	return
}

// Validate checks that the assignment uses every opcode exactly once.
func (asg Assignment) Validate() (err error) {
	var seen OpcodeSet
	for _, op := range asg {
		if !op.Valid() || seen.Has(op) {
			err = ErrAssignmentInvalid
			return
		}
		seen = seen.Add(op)
	}

	return
}

// Decode resolves the opcode ids of a program.
func (asg Assignment) Decode(program []cpu.Instruction) (ops []cpu.Op, err error) {
	ops = make([]cpu.Op, 0, len(program))
	for n, in := range program {
		var op cpu.Opcode
		op, err = asg.Lookup(in.Id)
		if err != nil {
			ops = nil
			err = errors.Join(errors.New(f("step %s '%v'", strconv.Itoa(n), in)), err)
			return
		}
		ops = append(ops, cpu.Op{Opcode: op, A: in.A, B: in.B, C: in.C})
	}

	return
}

// Encode replaces the opcodes of a listing with their numeric ids.
func (asg Assignment) Encode(ops []cpu.Op) (program []cpu.Instruction, err error) {
	program = make([]cpu.Instruction, 0, len(ops))
	for n, op := range ops {
		var id uint32
		id, err = asg.Id(op.Opcode)
		if err != nil {
			program = nil
			err = errors.Join(errors.New(f("step %s '%v'", strconv.Itoa(n), op)), err)
			return
		}
		program = append(program, cpu.Instruction{Id: id, A: op.A, B: op.B, C: op.C})
	}

	return
}

// Map returns the assignment as id to mnemonic.
func (asg Assignment) Map() map[uint32]string {
	m := make(map[uint32]string, len(asg))
	for id, op := range asg {
		m[uint32(id)] = op.String()
	}
	return m
}

// String returns one "id: mnemonic" line per id.
func (asg Assignment) String() string {
	var sb strings.Builder
	for id, op := range asg {
		fmt.Fprintf(&sb, "%2d: %v\n", id, op)
	}

	return sb.String()
}
