package main

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/emulator"
	"github.com/ezrec/opsolve/internal"
	"github.com/ezrec/opsolve/solver"
	"github.com/ezrec/opsolve/trace"
)

// Report is the YAML form of a solved assignment.
type Report struct {
	Samples    int               `yaml:"samples"`
	Rejected   int               `yaml:"rejected"`
	Ambiguous  int               `yaml:"ambiguous"`
	Threshold  int               `yaml:"threshold"`
	Assignment map[uint32]string `yaml:"assignment"`
}

// sampleFiles streams the samples of several files, in order.
type sampleFiles struct {
	files []*os.File
	err   error
}

func openSamples(paths []string) (sf *sampleFiles, err error) {
	sf = &sampleFiles{}
	for _, path := range paths {
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			sf.Close()
			sf = nil
			return
		}
		sf.files = append(sf.files, inf)
	}

	return
}

// fileSamples annotates parse errors with the file name.
func fileSamples(inf *os.File) iter.Seq2[cpu.Sample, error] {
	return func(yield func(cpu.Sample, error) bool) {
		for sample, err := range trace.Samples(inf) {
			if err != nil {
				err = fmt.Errorf("%v: %w", inf.Name(), err)
			}
			if !yield(sample, err) {
				return
			}
		}
	}
}

// Stream iterates over every sample, then any parse error.
func (sf *sampleFiles) Stream() iter.Seq2[cpu.Sample, error] {
	seqs := make([]iter.Seq2[cpu.Sample, error], 0, len(sf.files))
	for _, inf := range sf.files {
		seqs = append(seqs, fileSamples(inf))
	}

	return internal.IterSeq2Concat(seqs...)
}

// Samples iterates over every sample; a parse error stops the sequence,
// and is reported by Err.
func (sf *sampleFiles) Samples() iter.Seq[cpu.Sample] {
	return internal.IterSeqUntilError(sf.Stream(), &sf.err)
}

func (sf *sampleFiles) Err() error {
	return sf.err
}

func (sf *sampleFiles) Close() {
	for _, inf := range sf.files {
		inf.Close()
	}
}

// readSamples reads every sample of the files.
func readSamples(paths []string) (samples []cpu.Sample, err error) {
	sf, err := openSamples(paths)
	if err != nil {
		return
	}
	defer sf.Close()

	samples = slices.Collect(sf.Samples())
	err = sf.Err()
	if err != nil {
		samples = nil
	}

	return
}

// solve streams the sample files through a solver.
func solve(opts *options, paths []string, strict bool, threshold int) (asg solver.Assignment, stats solver.Stats, err error) {
	sf, err := openSamples(paths)
	if err != nil {
		return
	}
	defer sf.Close()

	sv := &solver.Solver{
		Verbose:   opts.verbose,
		Strict:    strict,
		Threshold: threshold,
		Logger:    opts.logger,
	}

	return sv.DisambiguateStream(sf.Stream())
}

// runProgram runs a numeric program under an assignment.
func runProgram(opts *options, program []cpu.Instruction, asg solver.Assignment) (regs cpu.Registers, err error) {
	emu := emulator.NewEmulator(asg)
	emu.Verbose = opts.verbose
	emu.Logger = opts.logger
	emu.Load(program)

	return emu.Execute()
}

func newCountCmd(opts *options) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "count SAMPLES...",
		Short: "Count samples matching at least --threshold opcodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			samples, err := readSamples(args)
			if err != nil {
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), solver.CountAmbiguous(samples, threshold))
			return
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", solver.AMBIGUOUS_THRESHOLD, "Ambiguity threshold")

	return cmd
}

func newMatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match SAMPLES...",
		Short: "Show the opcodes consistent with each sample",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			samples, err := readSamples(args)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for _, sample := range samples {
				set := solver.Matching(sample)
				fmt.Fprintf(out, "%v: %d %v\n", sample, set.Len(), set)
			}

			return
		},
	}
}

func newSolveCmd(opts *options) *cobra.Command {
	var threshold int
	var strict bool
	var asYaml bool

	cmd := &cobra.Command{
		Use:   "solve SAMPLES...",
		Short: "Deduce the opcode of every id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			asg, stats, err := solve(opts, args, strict, threshold)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			if !asYaml {
				fmt.Fprint(out, asg.String())
				return
			}

			report := &Report{
				Samples:    stats.Samples,
				Rejected:   stats.Rejected,
				Ambiguous:  stats.Ambiguous,
				Threshold:  threshold,
				Assignment: asg.Map(),
			}

			enc := yaml.NewEncoder(out)
			defer enc.Close()

			err = enc.Encode(report)
			return
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", solver.AMBIGUOUS_THRESHOLD, "Ambiguity threshold")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject samples that match no opcode")
	cmd.Flags().BoolVar(&asYaml, "yaml", false, "Emit a YAML report")

	return cmd
}

func newRunCmd(opts *options) *cobra.Command {
	var samplePaths []string
	var all bool
	var listing bool

	cmd := &cobra.Command{
		Use:   "run --samples FILE... PROGRAM",
		Short: "Solve the assignment from samples, then run a numeric program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			asg, _, err := solve(opts, samplePaths, false, 0)
			if err != nil {
				return
			}

			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			program, err := trace.ParseProgram(inf)
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
				return
			}

			out := cmd.OutOrStdout()
			if listing {
				var ops []cpu.Op
				ops, err = asg.Decode(program)
				if err != nil {
					return
				}
				for _, op := range ops {
					fmt.Fprintln(out, op)
				}
			}

			regs, err := runProgram(opts, program, asg)
			if err != nil {
				return
			}

			printRegisters(out, regs, all)
			return
		},
	}

	cmd.Flags().StringSliceVarP(&samplePaths, "samples", "s", nil, "Sample files")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every register")
	cmd.Flags().BoolVarP(&listing, "listing", "l", false, "Print the decoded program")
	cmd.MarkFlagRequired("samples")

	return cmd
}

func newExecCmd(opts *options) *cobra.Command {
	var defines []string
	var all bool

	cmd := &cobra.Command{
		Use:   "exec LISTING",
		Short: "Assemble a symbolic listing, and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			asm := &cpu.Assembler{
				Verbose: opts.verbose,
				Logger:  opts.logger,
			}
			for _, define := range defines {
				equ, value, ok := strings.Cut(define, "=")
				if !ok {
					err = fmt.Errorf("--define %v: %w", define, cpu.ErrEquateSyntax)
					return
				}
				asm.Predefine(equ, value)
			}

			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			lst, err := asm.Parse(inf)
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
				return
			}

			regs, err := execListing(lst)
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
				return
			}

			printRegisters(cmd.OutOrStdout(), regs, all)
			return
		},
	}

	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Predefine an equate, as NAME=VALUE")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every register")

	return cmd
}

// execListing runs a symbolic listing from zeroed registers.
func execListing(lst *cpu.Listing) (regs cpu.Registers, err error) {
	for step, op := range lst.Ops() {
		regs, err = op.Execute(regs)
		if err != nil {
			err = fmt.Errorf("line %d '%v': %w", lst.LineNo(step), op, err)
			regs = cpu.Registers{}
			return
		}
	}

	return
}

func newDayCmd(opts *options) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "day INPUT",
		Short: "Count ambiguous samples, and run the program, of a combined input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			in, err := trace.ParseInput(inf)
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
				return
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, solver.CountAmbiguous(in.Samples, threshold))

			sv := &solver.Solver{
				Verbose:   opts.verbose,
				Threshold: threshold,
				Logger:    opts.logger,
			}
			asg, _, err := sv.Disambiguate(slices.Values(in.Samples))
			if err != nil {
				return
			}

			regs, err := runProgram(opts, in.Program, asg)
			if err != nil {
				return
			}

			printRegisters(out, regs, false)
			return
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", solver.AMBIGUOUS_THRESHOLD, "Ambiguity threshold")

	return cmd
}

// printRegisters prints register 0, or the full register file.
func printRegisters(out io.Writer, regs cpu.Registers, all bool) {
	if all {
		fmt.Fprintln(out, regs)
		return
	}

	fmt.Fprintln(out, regs[0])
}
