// Package asm implements the line oriented assembler.
//
// Each source line holds at most one instruction:
//
//	ADD DR SR1 1 IMM5     ; immediate mode
//	ADD DR SR1 000 SR2    ; register mode
//	LD  DR PCOFFSET9
//	ST  SR PCOFFSET9
//	BR  NZP PCOFFSET9
//
// Everything after a ';' is a comment. Numbers are signed decimal, or a
// compile-time $(...) expression. There are no labels and no directives.
package asm
