package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/opsolve/cpu"
)

func TestOpcodeSet(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(cpu.OPCODE_COUNT, AllOpcodes.Len())
	assert.Equal(0, NoOpcodes.Len())
	assert.True(NoOpcodes.Empty())

	set := SetOf(cpu.OP_ADDI, cpu.OP_SETI, cpu.OP_EQRR)
	assert.Equal(3, set.Len())
	assert.True(set.Has(cpu.OP_SETI))
	assert.False(set.Has(cpu.OP_SETR))
	assert.False(set.Has(cpu.Opcode(99)))
	assert.Equal("{addi seti eqrr}", set.String())
	assert.Equal([]cpu.Opcode{cpu.OP_ADDI, cpu.OP_SETI, cpu.OP_EQRR}, set.Slice())

	set = set.Remove(cpu.OP_SETI)
	assert.Equal("{addi eqrr}", set.String())
	assert.Equal(set, set.Add(cpu.Opcode(-1)))

	_, ok := set.Only()
	assert.False(ok)

	set = set.Intersect(SetOf(cpu.OP_EQRR, cpu.OP_GTRR))
	op, ok := set.Only()
	assert.True(ok)
	assert.Equal(cpu.OP_EQRR, op)

	_, ok = NoOpcodes.Only()
	assert.False(ok)
	assert.Equal("{}", NoOpcodes.String())
}

func TestCandidates(t *testing.T) {
	assert := assert.New(t)

	cands := NewCandidates()
	assert.False(cands.Resolved())
	for _, set := range cands {
		assert.Equal(AllOpcodes, set)
	}

	matching, err := cands.Narrow(cpu.Sample{
		Before:      cpu.Registers{3, 2, 1, 1},
		After:       cpu.Registers{3, 2, 2, 1},
		Instruction: cpu.Instruction{Id: 9, A: 2, B: 1, C: 2},
	})
	assert.NoError(err)
	assert.Equal(SetOf(cpu.OP_ADDI, cpu.OP_MULR, cpu.OP_SETI), matching)
	assert.Equal(matching, cands[9])
	assert.Equal(AllOpcodes, cands[8])

	// Narrowing never grows a set.
	_, err = cands.Narrow(cpu.Sample{
		Before:      cpu.Registers{3, 2, 1, 1},
		After:       cpu.Registers{3, 2, 3, 1},
		Instruction: cpu.Instruction{Id: 9, A: 2, B: 1, C: 2},
	})
	assert.NoError(err)
	assert.True(cands[9].Empty())

	assert.Contains(cands.String(), " 9: {}\n")
}
