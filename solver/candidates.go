package solver

import (
	"fmt"
	"strings"

	"github.com/ezrec/opsolve/cpu"
)

// Candidates holds, for each numeric opcode id, the opcodes it may still denote.
type Candidates [OPCODE_SETS]OpcodeSet

// NewCandidates returns candidates where every id may be any opcode.
func NewCandidates() (cands Candidates) {
	for id := range cands {
		cands[id] = AllOpcodes
	}
	return
}

// Narrow removes the opcodes that are inconsistent with the sample from
// the candidates of the sample's id.
//
// A sample that matches no opcode at all cannot have been produced by
// the machine; it is rejected with ErrSampleInconsistent and the
// candidates are left unchanged.
func (cands *Candidates) Narrow(sample cpu.Sample) (matching OpcodeSet, err error) {
	if sample.Id >= OPCODE_SETS {
		err = ErrOpcodeId
		return
	}

	matching = Matching(sample)
	if matching.Empty() {
		err = ErrSampleInconsistent
		return
	}

	cands[sample.Id] = cands[sample.Id].Intersect(matching)

	return
}

// Resolved returns true if every id has exactly one candidate.
func (cands Candidates) Resolved() bool {
	for _, set := range cands {
		if set.Len() != 1 {
			return false
		}
	}
	return true
}

// singleton returns the lowest unassigned id with exactly one candidate.
func (cands *Candidates) singleton(assigned *[OPCODE_SETS]bool) (id int, op cpu.Opcode, ok bool) {
	for id = range cands {
		if assigned[id] {
			continue
		}
		op, ok = cands[id].Only()
		if ok {
			return
		}
	}

	return
}

// eliminate assigns op to id, and removes op from every other id.
func (cands *Candidates) eliminate(id int, op cpu.Opcode) {
	for other := range cands {
		if other != id {
			cands[other] = cands[other].Remove(op)
		}
	}
}

// Resolve runs singleton elimination until every id is assigned.
//
// Each round assigns an id whose candidate set has a single opcode,
// and removes that opcode from all other ids. If a round finds no
// singleton before all ids are assigned, ErrUnsatisfiable is returned.
// The receiver is not modified.
func (cands Candidates) Resolve() (assignment Assignment, err error) {
	return cands.resolve(nil)
}

// resolve is Resolve, calling step (if not nil) for each elimination.
func (cands Candidates) resolve(step func(id int, op cpu.Opcode)) (assignment Assignment, err error) {
	var assigned [OPCODE_SETS]bool

	for range OPCODE_SETS {
		id, op, ok := cands.singleton(&assigned)
		if !ok {
			unsat := &ErrUnsatisfiable{Candidates: cands}
			for id, done := range assigned {
				if !done {
					unsat.Unresolved = append(unsat.Unresolved, uint32(id))
				}
			}
			err = unsat
			assignment = Assignment{}
			return
		}

		if step != nil {
			step(id, op)
		}

		assignment[id] = op
		assigned[id] = true
		cands.eliminate(id, op)
	}

	return
}

// String returns one "id: {set}" line per id.
func (cands Candidates) String() string {
	var sb strings.Builder
	for id, set := range cands {
		fmt.Fprintf(&sb, "%2d: %v\n", id, set)
	}

	return sb.String()
}
