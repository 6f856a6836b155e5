package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzExecute(f *testing.F) {
	for op := range Opcodes() {
		f.Add(uint8(op), uint32(0), uint32(1), uint32(2), uint32(3), uint32(2), uint32(1), uint32(1))
		f.Add(uint8(op), uint32(7), uint32(9), uint32(3), uint32(0xffffffff), uint32(0), uint32(5), uint32(0))
	}

	f.Fuzz(func(t *testing.T, op_id uint8, a, b, c uint32, r0, r1, r2, r3 uint32) {
		assert := assert.New(t)

		op := Opcode(op_id % OPCODE_COUNT)
		regs := Registers{r0, r1, r2, r3}
		a %= 8
		b %= 8
		c %= 6

		first, err1 := Execute(op, a, b, c, regs)
		second, err2 := Execute(op, a, b, c, regs)

		// Pure: same inputs, same outputs.
		assert.Equal(first, second)
		assert.Equal(err1 == nil, err2 == nil)
		assert.Equal(Registers{r0, r1, r2, r3}, regs)

		invalid := c >= REGISTER_COUNT ||
			(op.RegA() && a >= REGISTER_COUNT) ||
			(op.RegB() && b >= REGISTER_COUNT)
		if invalid {
			assert.True(errors.Is(err1, ErrInvalidOperand), "%v %d %d %d", op, a, b, c)
			return
		}

		assert.NoError(err1)

		// Only register c may change.
		for n := range REGISTER_COUNT {
			if uint32(n) != c {
				assert.Equal(regs[n], first[n])
			}
		}

		value, err := Apply(op, a, b, regs)
		assert.NoError(err)
		assert.Equal(value, first[c])
	})
}
