package isa

import (
	"fmt"
)

// Opcode is the 4-bit instruction family in bits 15..12.
type Opcode uint16

const (
	OP_BR  = Opcode(0b0000) // BR
	OP_ADD = Opcode(0b0001) // ADD
	OP_LD  = Opcode(0b0010) // LD
	OP_ST  = Opcode(0b0011) // ST
)

// OPCODE_WIDTH is the width of the opcode field.
const OPCODE_WIDTH = 4

// CODE_WIDTH is the width of an instruction word.
const CODE_WIDTH = 16

// mnemonicMap maps the case-sensitive mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{
	"BR":  OP_BR,
	"ADD": OP_ADD,
	"LD":  OP_LD,
	"ST":  OP_ST,
}

// ParseMnemonic looks up an opcode by its mnemonic.
func ParseMnemonic(word string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[word]
	return
}

func (op Opcode) String() string {
	for name, code := range mnemonicMap {
		if code == op {
			return name
		}
	}
	return fmt.Sprintf("Opcode(%d)", uint16(op))
}

// Bits returns the 4-bit opcode form.
func (op Opcode) Bits() string {
	return bits(uint16(op), OPCODE_WIDTH)
}

// Code is a single encoded instruction word.
type Code uint16

// makeCode places the opcode above the 12 operand bits.
func makeCode(op Opcode, operands uint16) Code {
	return Code((uint16(op) << 12) | (operands & mask(CODE_WIDTH-OPCODE_WIDTH)))
}

// MakeCodeAddRegister creates a register mode ADD: DR SR1 0 00 SR2.
func MakeCodeAddRegister(dr, sr1, sr2 Register) Code {
	return makeCode(OP_ADD, (dr.Field()<<9)|(sr1.Field()<<6)|(0<<5)|sr2.Field())
}

// MakeCodeAddImmediate creates an immediate mode ADD: DR SR1 1 IMM5.
func MakeCodeAddImmediate(dr, sr1 Register, imm Imm5) Code {
	return makeCode(OP_ADD, (dr.Field()<<9)|(sr1.Field()<<6)|(1<<5)|imm.Field())
}

// MakeCodeLoad creates an LD: DR PCOFFSET9.
func MakeCodeLoad(dr Register, off PCOffset9) Code {
	return makeCode(OP_LD, (dr.Field()<<9)|off.Field())
}

// MakeCodeStore creates an ST: SR PCOFFSET9.
func MakeCodeStore(sr Register, off PCOffset9) Code {
	return makeCode(OP_ST, (sr.Field()<<9)|off.Field())
}

// MakeCodeBranch creates a BR: N Z P PCOFFSET9.
func MakeCodeBranch(cond NZP, off PCOffset9) Code {
	return makeCode(OP_BR, (cond.Field()<<9)|off.Field())
}

// Opcode returns the opcode field.
func (code Code) Opcode() Opcode {
	return Opcode((uint16(code) >> 12) & mask(OPCODE_WIDTH))
}

// Field extracts width bits whose least significant bit is at shift.
func (code Code) Field(shift, width int) uint16 {
	return (uint16(code) >> shift) & mask(width)
}

// String returns the 16 character binary form, most significant bit first.
func (code Code) String() string {
	return bits(uint16(code), CODE_WIDTH)
}
