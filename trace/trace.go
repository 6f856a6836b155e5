// Package trace reads execution samples and numeric programs from text.
//
// A sample is three lines, followed by a blank line:
//
//	Before: [3, 2, 1, 1]
//	9 2 1 2
//	After:  [3, 2, 2, 1]
//
// A program is one "id a b c" instruction per line. A combined input is
// a list of samples followed by a program.
package trace

import (
	"bufio"
	"io"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/opsolve/cpu"
)

var (
	reBefore      = regexp.MustCompile(`^Before:\s*\[\s*(\d+),\s*(\d+),\s*(\d+),\s*(\d+)\s*\]$`)
	reAfter       = regexp.MustCompile(`^After:\s*\[\s*(\d+),\s*(\d+),\s*(\d+),\s*(\d+)\s*\]$`)
	reInstruction = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(\d+)\s+(\d+)$`)
)

// Input is a combined sample list and program.
type Input struct {
	Samples []cpu.Sample
	Program []cpu.Instruction
}

type state int

const (
	stateBefore = state(iota) // Expecting "Before:", a blank line, or a program instruction.
	stateInstruction
	stateAfter
)

// numbers converts the submatches of a regexp match.
func numbers(matches []string) (values [4]uint32, err error) {
	for n := range values {
		var v64 uint64
		v64, err = strconv.ParseUint(matches[n+1], 10, 32)
		if err != nil {
			err = ErrNumber
			return
		}
		values[n] = uint32(v64)
	}

	return
}

func parseRegisters(re *regexp.Regexp, line string) (regs cpu.Registers, err error) {
	matches := re.FindStringSubmatch(line)
	if matches == nil {
		err = ErrRegisterList
		return
	}

	values, err := numbers(matches)
	if err != nil {
		return
	}

	regs = cpu.Registers(values)
	return
}

// ParseInstruction parses a single "id a b c" line.
func ParseInstruction(line string) (in cpu.Instruction, err error) {
	matches := reInstruction.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		err = ErrInstruction
		return
	}

	values, err := numbers(matches)
	if err != nil {
		return
	}

	in = cpu.Instruction{Id: values[0], A: values[1], B: values[2], C: values[3]}
	return
}

// scan reads samples and program instructions from the input.
// A nil callback disallows that kind of record. A callback returning
// false stops the scan.
func scan(input io.Reader, onSample func(cpu.Sample) bool, onInstruction func(cpu.Instruction) bool) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	st := stateBefore
	program := onSample == nil
	var sample cpu.Sample

	for scanner.Scan() {
		lineno++
		line = strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			if st != stateBefore {
				err = ErrSampleIncomplete
				return
			}
			continue
		}

		switch st {
		case stateBefore:
			if !program && strings.HasPrefix(line, "Before:") {
				sample = cpu.Sample{}
				sample.Before, err = parseRegisters(reBefore, line)
				if err != nil {
					return
				}
				st = stateInstruction
				continue
			}

			if onInstruction == nil {
				err = ErrRegisterList
				return
			}

			// The program follows the last sample.
			program = true
			var in cpu.Instruction
			in, err = ParseInstruction(line)
			if err != nil {
				return
			}
			if !onInstruction(in) {
				return
			}
		case stateInstruction:
			sample.Instruction, err = ParseInstruction(line)
			if err != nil {
				return
			}
			st = stateAfter
		case stateAfter:
			sample.After, err = parseRegisters(reAfter, line)
			if err != nil {
				return
			}
			st = stateBefore
			if !onSample(sample) {
				return
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if st != stateBefore {
		line = ""
		err = ErrSampleIncomplete
		return
	}

	return
}

// Samples returns an iterator over the samples of the input.
// A parse failure is yielded as the final element.
func Samples(input io.Reader) iter.Seq2[cpu.Sample, error] {
	return func(yield func(sample cpu.Sample, err error) bool) {
		stopped := false
		err := scan(input, func(sample cpu.Sample) bool {
			if !yield(sample, nil) {
				stopped = true
				return false
			}
			return true
		}, nil)
		if err != nil && !stopped {
			yield(cpu.Sample{}, err)
		}
	}
}

// ParseSamples reads every sample of the input.
func ParseSamples(input io.Reader) (samples []cpu.Sample, err error) {
	for sample, err := range Samples(input) {
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	return
}

// ParseProgram reads every instruction of a numeric program.
func ParseProgram(input io.Reader) (program []cpu.Instruction, err error) {
	err = scan(input, nil, func(in cpu.Instruction) bool {
		program = append(program, in)
		return true
	})
	if err != nil {
		program = nil
	}

	return
}

// ParseInput reads a list of samples, followed by a program.
func ParseInput(input io.Reader) (in *Input, err error) {
	in = &Input{}
	err = scan(input, func(sample cpu.Sample) bool {
		in.Samples = append(in.Samples, sample)
		return true
	}, func(instruction cpu.Instruction) bool {
		in.Program = append(in.Program, instruction)
		return true
	})
	if err != nil {
		in = nil
	}

	return
}
