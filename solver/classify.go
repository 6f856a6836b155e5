package solver

import (
	"github.com/ezrec/opsolve/cpu"
)

const (
	AMBIGUOUS_THRESHOLD = 3 // Conventional threshold for CountAmbiguous.
)

// Matching returns the set of opcodes whose execution is consistent with the sample.
//
// Every opcode is tried. An opcode that fails to execute, for example by
// reading a register index out of range, does not match.
func Matching(sample cpu.Sample) (set OpcodeSet) {
	for op := range cpu.Opcodes() {
		after, err := cpu.Execute(op, sample.A, sample.B, sample.C, sample.Before)
		if err != nil {
			continue
		}
		if after == sample.After {
			set = set.Add(op)
		}
	}

	return
}

// CountAmbiguous counts the samples that match at least threshold opcodes.
func CountAmbiguous(samples []cpu.Sample, threshold int) (count int) {
	for _, sample := range samples {
		if Matching(sample).Len() >= threshold {
			count++
		}
	}

	return
}
