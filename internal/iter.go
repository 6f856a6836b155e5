// Package internal holds iterator helpers shared by the command line driver.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// IterSeqUntilError yields the values of a fallible sequence, stopping at
// the first error and storing it in *errp.
func IterSeqUntilError[T any](seq iter.Seq2[T, error], errp *error) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val, err := range seq {
			if err != nil {
				*errp = err
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}
