package solver

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/ezrec/opsolve/cpu"
)

// OpcodeSet is a set of symbolic opcodes. Bit n is set if cpu.Opcode(n) is a member.
type OpcodeSet uint16

const (
	AllOpcodes  = OpcodeSet(1<<cpu.OPCODE_COUNT - 1) // Every opcode.
	NoOpcodes   = OpcodeSet(0)                        // The empty set.
	OPCODE_SETS = cpu.OPCODE_COUNT                    // Number of numeric opcode ids.
)

// SetOf returns the set containing ops.
func SetOf(ops ...cpu.Opcode) (set OpcodeSet) {
	for _, op := range ops {
		set = set.Add(op)
	}
	return
}

// Has returns true if op is a member of the set.
func (set OpcodeSet) Has(op cpu.Opcode) bool {
	return op.Valid() && set&(1<<op) != 0
}

// Add returns the set with op added.
func (set OpcodeSet) Add(op cpu.Opcode) OpcodeSet {
	if !op.Valid() {
		return set
	}
	return set | (1 << op)
}

// Remove returns the set with op removed.
func (set OpcodeSet) Remove(op cpu.Opcode) OpcodeSet {
	if !op.Valid() {
		return set
	}
	return set &^ (1 << op)
}

// Intersect returns the opcodes common to both sets.
func (set OpcodeSet) Intersect(other OpcodeSet) OpcodeSet {
	return set & other
}

// Len returns the number of opcodes in the set.
func (set OpcodeSet) Len() int {
	return bits.OnesCount16(uint16(set))
}

// Empty returns true if the set has no members.
func (set OpcodeSet) Empty() bool {
	return set == NoOpcodes
}

// Only returns the single member of a singleton set.
func (set OpcodeSet) Only() (op cpu.Opcode, ok bool) {
	if set.Len() != 1 {
		return
	}

	op = cpu.Opcode(bits.TrailingZeros16(uint16(set)))
	ok = true
	return
}

// All returns an iterator over the members of the set, in opcode order.
func (set OpcodeSet) All() iter.Seq[cpu.Opcode] {
	return func(yield func(op cpu.Opcode) bool) {
		for op := range cpu.Opcodes() {
			if set.Has(op) && !yield(op) {
				return
			}
		}
	}
}

// Slice returns the members of the set, in opcode order.
func (set OpcodeSet) Slice() (ops []cpu.Opcode) {
	for op := range set.All() {
		ops = append(ops, op)
	}
	return
}

// String returns the set as "{addi mulr seti}".
func (set OpcodeSet) String() string {
	names := make([]string, 0, set.Len())
	for op := range set.All() {
		names = append(names, op.String())
	}

	return "{" + strings.Join(names, " ") + "}"
}
