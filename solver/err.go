package solver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/translate"
)

var f = translate.From

var (
	ErrUnsatisfiableAssignment = errors.New(f("unsatisfiable assignment"))
	ErrSampleInconsistent      = errors.New(f("sample matches no opcode"))
	ErrOpcodeId                = errors.New(f("opcode id out of range"))
	ErrAssignmentInvalid       = errors.New(f("assignment is not a bijection"))
	ErrOpcodeUnassigned        = errors.New(f("opcode has no id"))
)

// ErrUnsatisfiable reports the numeric ids that singleton elimination could not resolve.
type ErrUnsatisfiable struct {
	Unresolved []uint32   // Ids without an opcode.
	Candidates Candidates // Candidate sets when elimination stopped.
}

func (err *ErrUnsatisfiable) Error() string {
	var sets []string
	for _, id := range err.Unresolved {
		sets = append(sets, fmt.Sprintf("%d:%v", id, err.Candidates[id]))
	}
	return f("unsatisfiable assignment, unresolved %v", sets)
}

func (err *ErrUnsatisfiable) Is(target error) bool {
	return target == ErrUnsatisfiableAssignment
}

// ErrSample identifies the sample that was rejected.
type ErrSample struct {
	Index  int
	Sample cpu.Sample
	Err    error
}

func (err *ErrSample) Error() string {
	return f("sample %s '%v' %v", strconv.Itoa(err.Index), err.Sample, err.Err)
}

func (err *ErrSample) Unwrap() error {
	return err.Err
}
