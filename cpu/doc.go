// Package cpu implements the four register machine and its symbolic assembler.
//
// The machine has four unsigned 32-bit registers (r0-r3) and sixteen
// operations. Each operation reads operands a and b either as register
// indexes or as literal values, and always writes its result to register c.
// There is no instruction pointer state beyond the program order, no memory,
// and no flow control.
//
// Numeric opcode ids (as found in execution traces) are carried by
// Instruction, and only become an Op once an id has been resolved to an
// Opcode. The assembler produces Op listings from symbolic source.
package cpu
