// Package isa describes the instruction encoding of the 16-bit LC-3 style
// subset handled by the assembler.
//
// Each instruction is a single 16-bit word: a 4-bit opcode in bits 15..12,
// followed by 12 bits of operand fields. Only ADD, LD, ST and BR are defined.
// Operand types own their validation ranges; a value outside its range is an
// error and is never clamped.
package isa
