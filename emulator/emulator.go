// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs numeric programs once their opcode ids are resolved.
package emulator

import (
	"github.com/charmbracelet/log"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/solver"
)

// Emulator state. Register file + resolved program.
type Emulator struct {
	Verbose bool        // If set, enables verbose logging.
	Logger  *log.Logger // Logger used when Verbose is set.

	Assignment solver.Assignment // Opcode id resolution.
	Program    []cpu.Instruction // Currently loaded program.
	Registers  cpu.Registers     // Current register file.
	Step       int               // Index of the next instruction.
}

// NewEmulator creates a new emulator for an assignment.
func NewEmulator(assignment solver.Assignment) (emu *Emulator) {
	emu = &Emulator{
		Assignment: assignment,
	}

	return
}

// Load a program, and reset the machine.
func (emu *Emulator) Load(program []cpu.Instruction) {
	emu.Program = program
	emu.Reset()
}

// Reset the machine state to all zeros, at the start of the program.
func (emu *Emulator) Reset() {
	emu.Registers = cpu.Registers{}
	emu.Step = 0
}

// Done returns true if every instruction has been executed.
func (emu *Emulator) Done() bool {
	return emu.Step >= len(emu.Program)
}

// Tick executes a single instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Done() {
		done = true
		return
	}

	in := emu.Program[emu.Step]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: emu.Step, Instruction: in, Err: err}
		}
	}()

	op, err := emu.Assignment.Lookup(in.Id)
	if err != nil {
		return
	}

	regs, err := cpu.Execute(op, in.A, in.B, in.C, emu.Registers)
	if err != nil {
		return
	}

	if emu.Verbose && emu.Logger != nil {
		emu.Logger.Debugf("%03d: %v (%v) %v -> %v", emu.Step, in, cpu.Op{Opcode: op, A: in.A, B: in.B, C: in.C}, emu.Registers, regs)
	}

	emu.Registers = regs
	emu.Step++

	return
}

// Execute runs the loaded program to completion.
func (emu *Emulator) Execute() (regs cpu.Registers, err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return cpu.Registers{}, err
		}
	}

	regs = emu.Registers
	return
}

// Run executes program from an all zero register file, and returns the final register file.
func Run(program []cpu.Instruction, assignment solver.Assignment) (regs cpu.Registers, err error) {
	emu := NewEmulator(assignment)
	emu.Load(program)

	return emu.Execute()
}
