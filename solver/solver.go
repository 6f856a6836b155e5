// Package solver deduces which symbolic opcode each numeric opcode id denotes.
//
// Every sample narrows the candidate set of its id to the opcodes that
// reproduce the observed trace. Singleton elimination then repeatedly
// fixes an id with a single candidate and removes that opcode from every
// other id, until the assignment is complete or no progress is possible.
package solver

import (
	"errors"
	"iter"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/internal"
)

// Stats summarises the evidence seen by a Solver.
type Stats struct {
	Samples   int // Samples considered.
	Rejected  int // Samples that matched no opcode.
	Ambiguous int // Samples that matched at least Threshold opcodes.
}

// Solver narrows candidates from samples, and resolves them to an Assignment.
type Solver struct {
	Verbose   bool        // If set, logs each narrowing and elimination step.
	Strict    bool        // If set, a sample that matches no opcode is an error.
	Threshold int         // Ambiguity threshold for Stats; AMBIGUOUS_THRESHOLD if zero.
	Logger    *log.Logger // Logger, or nil for silence.

	Candidates Candidates // Candidates after the last Narrow or Disambiguate.
}

func (sv *Solver) threshold() int {
	if sv.Threshold <= 0 {
		return AMBIGUOUS_THRESHOLD
	}
	return sv.Threshold
}

func (sv *Solver) debugf(format string, args ...any) {
	if sv.Verbose && sv.Logger != nil {
		sv.Logger.Debugf(format, args...)
	}
}

// Narrow resets the candidates, and narrows them with every sample.
func (sv *Solver) Narrow(samples iter.Seq[cpu.Sample]) (stats Stats, err error) {
	sv.Candidates = NewCandidates()

	n := 0
	for sample := range samples {
		index := n
		n++
		stats.Samples++

		var matching OpcodeSet
		matching, err = sv.Candidates.Narrow(sample)
		switch {
		case errors.Is(err, ErrSampleInconsistent) && !sv.Strict:
			stats.Rejected++
			if sv.Logger != nil {
				sv.Logger.Warn("sample rejected", "index", index, "sample", sample)
			}
			err = nil
			continue
		case err != nil:
			err = &ErrSample{Index: index, Sample: sample, Err: err}
			return
		}

		if matching.Len() >= sv.threshold() {
			stats.Ambiguous++
		}

		sv.debugf("sample %d: %v matches %v, id %d now %v",
			index, sample, matching, sample.Id, sv.Candidates[sample.Id])
	}

	return
}

// Resolve runs singleton elimination on the current candidates.
func (sv *Solver) Resolve() (assignment Assignment, err error) {
	assignment, err = sv.Candidates.resolve(func(id int, op cpu.Opcode) {
		sv.debugf("eliminate: id %d is %v", id, op)
	})
	if err != nil && sv.Logger != nil {
		sv.Logger.Error("solver stuck", "err", err)
	}

	return
}

// Disambiguate narrows the candidates with the samples, and resolves them.
func (sv *Solver) Disambiguate(samples iter.Seq[cpu.Sample]) (assignment Assignment, stats Stats, err error) {
	stats, err = sv.Narrow(samples)
	if err != nil {
		return
	}

	assignment, err = sv.solved(stats)
	return
}

// DisambiguateStream is Disambiguate over a sample stream that may fail.
// A stream error stops narrowing, and is returned without resolving.
func (sv *Solver) DisambiguateStream(samples iter.Seq2[cpu.Sample, error]) (assignment Assignment, stats Stats, err error) {
	var streamErr error
	stats, err = sv.Narrow(internal.IterSeqUntilError(samples, &streamErr))
	if err == nil {
		err = streamErr
	}
	if err != nil {
		return
	}

	assignment, err = sv.solved(stats)
	return
}

// solved resolves the narrowed candidates, and logs the outcome.
func (sv *Solver) solved(stats Stats) (assignment Assignment, err error) {
	assignment, err = sv.Resolve()
	if err != nil {
		return
	}

	if sv.Logger != nil {
		sv.Logger.Info("solved",
			"samples", stats.Samples,
			"rejected", stats.Rejected,
			"ambiguous", stats.Ambiguous)
	}

	return
}

// Disambiguate deduces the assignment from the samples.
func Disambiguate(samples []cpu.Sample) (assignment Assignment, err error) {
	sv := &Solver{}
	assignment, _, err = sv.Disambiguate(slices.Values(samples))
	return
}
