package cpu

import (
	"iter"
	"strings"
)

// Statement is one assembled line of a listing.
type Statement struct {
	LineNo int      // Source line number.
	Words  []string // Source words, after equate expansion.
	Op     Op       // Assembled operation.
}

// Listing is an assembled symbolic program.
type Listing struct {
	Statements []Statement
}

// Ops returns an iterator over the program steps and their operations.
func (lst *Listing) Ops() iter.Seq2[int, Op] {
	return func(yield func(step int, op Op) bool) {
		for n, stmt := range lst.Statements {
			if !yield(n, stmt.Op) {
				return
			}
		}
	}
}

// Program returns the operations of the listing, in order.
func (lst *Listing) Program() (ops []Op) {
	ops = make([]Op, 0, len(lst.Statements))
	for _, op := range lst.Ops() {
		ops = append(ops, op)
	}

	return
}

// LineNo returns the source line of a program step, or 0 if there is none.
func (lst *Listing) LineNo(step int) int {
	if step < 0 || step >= len(lst.Statements) {
		return 0
	}

	return lst.Statements[step].LineNo
}

// String disassembles the listing, one operation per line.
func (lst *Listing) String() string {
	var sb strings.Builder
	for _, op := range lst.Ops() {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
