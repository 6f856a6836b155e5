package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/opsolve/cpu"
)

func TestMatching(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		sample   cpu.Sample
		expected OpcodeSet
	}){
		{"three_way", cpu.Sample{
			Before:      cpu.Registers{3, 2, 1, 1},
			After:       cpu.Registers{3, 2, 2, 1},
			Instruction: cpu.Instruction{Id: 9, A: 2, B: 1, C: 2},
		}, SetOf(cpu.OP_ADDI, cpu.OP_MULR, cpu.OP_SETI)},
		{"addr_borr", cpu.Sample{
			Before:      cpu.Registers{3, 2, 1, 1},
			After:       cpu.Registers{3, 2, 3, 1},
			Instruction: cpu.Instruction{Id: 0, A: 2, B: 1, C: 2},
		}, SetOf(cpu.OP_ADDR, cpu.OP_BORR)},
		{"literal_a", cpu.Sample{
			Before:      cpu.Registers{0, 0, 0, 0},
			After:       cpu.Registers{5, 0, 0, 0},
			Instruction: cpu.Instruction{Id: 1, A: 5, B: 0, C: 0},
		}, SetOf(cpu.OP_SETI)},
		{"none", cpu.Sample{
			Before:      cpu.Registers{0, 0, 0, 0},
			After:       cpu.Registers{1, 1, 0, 0},
			Instruction: cpu.Instruction{Id: 1, A: 0, B: 0, C: 0},
		}, NoOpcodes},
		{"bad_target", cpu.Sample{
			Before:      cpu.Registers{0, 0, 0, 0},
			After:       cpu.Registers{0, 0, 0, 0},
			Instruction: cpu.Instruction{Id: 1, A: 0, B: 0, C: 4},
		}, NoOpcodes},
	}

	for _, entry := range table {
		matching := Matching(entry.sample)
		assert.Equal(entry.expected, matching, "%v: %v", entry.name, matching)

		// Referentially transparent.
		assert.Equal(matching, Matching(entry.sample), entry.name)
	}
}

func TestMatchingExhaustive(t *testing.T) {
	assert := assert.New(t)

	// Nothing changes, and every operand and target is r0 = 0:
	// every opcode producing 0 from (0, 0) matches.
	sample := cpu.Sample{
		Before:      cpu.Registers{0, 7, 7, 7},
		After:       cpu.Registers{0, 7, 7, 7},
		Instruction: cpu.Instruction{A: 0, B: 0, C: 0},
	}

	expected := AllOpcodes.
		Remove(cpu.OP_EQIR).
		Remove(cpu.OP_EQRI).
		Remove(cpu.OP_EQRR)
	assert.Equal(expected, Matching(sample))
	assert.Equal(13, Matching(sample).Len())
}

func TestCountAmbiguous(t *testing.T) {
	assert := assert.New(t)

	samples := []cpu.Sample{
		{
			Before:      cpu.Registers{3, 2, 1, 1},
			After:       cpu.Registers{3, 2, 2, 1},
			Instruction: cpu.Instruction{Id: 9, A: 2, B: 1, C: 2},
		},
		{
			Before:      cpu.Registers{3, 2, 1, 1},
			After:       cpu.Registers{3, 2, 3, 1},
			Instruction: cpu.Instruction{Id: 0, A: 2, B: 1, C: 2},
		},
		{
			Before:      cpu.Registers{0, 0, 0, 0},
			After:       cpu.Registers{1, 1, 0, 0},
			Instruction: cpu.Instruction{Id: 1, A: 0, B: 0, C: 0},
		},
	}

	assert.Equal(1, CountAmbiguous(samples, AMBIGUOUS_THRESHOLD))
	assert.Equal(2, CountAmbiguous(samples, 2))
	assert.Equal(3, CountAmbiguous(samples, 0))
	assert.Equal(0, CountAmbiguous(nil, AMBIGUOUS_THRESHOLD))
}
