package isa

import (
	"fmt"
	"strings"
)

// Field widths, in bits.
const (
	REGISTER_WIDTH  = 3
	IMM5_WIDTH      = 5
	PCOFFSET9_WIDTH = 9
	NZP_WIDTH       = 3
)

// Signed operand ranges.
const (
	IMM5_MIN      = -(1 << (IMM5_WIDTH - 1))
	IMM5_MAX      = (1 << (IMM5_WIDTH - 1)) - 1
	PCOFFSET9_MIN = -(1 << (PCOFFSET9_WIDTH - 1))
	PCOFFSET9_MAX = (1 << (PCOFFSET9_WIDTH - 1)) - 1
)

// REGISTER_COUNT is the number of general purpose registers, R0-R7.
const REGISTER_COUNT = 1 << REGISTER_WIDTH

// bits renders the low width bits of value, most significant first.
func bits(value uint16, width int) string {
	return fmt.Sprintf("%0*b", width, value&mask(width))
}

func mask(width int) uint16 {
	return uint16(1<<width) - 1
}

// SignExtend interprets the low width bits of field as a two's complement value.
func SignExtend(field uint16, width int) int64 {
	field &= mask(width)
	if field&(1<<(width-1)) != 0 {
		return int64(field) - (1 << width)
	}
	return int64(field)
}

// Register is a general purpose register index.
type Register uint8

// MakeRegister validates a register index.
func MakeRegister(index int) (reg Register, err error) {
	if index < 0 || index >= REGISTER_COUNT {
		err = &ErrToken{Token: fmt.Sprintf("R%d", index), Err: ErrInvalidRegister}
		return
	}
	reg = Register(index)
	return
}

// ParseRegister parses a register token, 'R0' through 'R7'.
func ParseRegister(word string) (reg Register, err error) {
	if len(word) != 2 || word[0] != 'R' || word[1] < '0' || word[1] > '7' {
		err = &ErrToken{Token: word, Err: ErrInvalidRegister}
		return
	}
	reg = Register(word[1] - '0')
	return
}

// Field returns the unsigned field value.
func (reg Register) Field() uint16 {
	return uint16(reg) & mask(REGISTER_WIDTH)
}

// Bits returns the 3-bit binary form.
func (reg Register) Bits() string {
	return bits(reg.Field(), REGISTER_WIDTH)
}

func (reg Register) String() string {
	return fmt.Sprintf("R%d", uint8(reg))
}

// Imm5 is a 5-bit signed immediate.
type Imm5 int8

// MakeImm5 range checks value into an Imm5.
func MakeImm5(value int64) (imm Imm5, err error) {
	if value < IMM5_MIN || value > IMM5_MAX {
		err = &ErrRange{Value: value, Min: IMM5_MIN, Max: IMM5_MAX, Err: ErrImmediateOutOfRange}
		return
	}
	imm = Imm5(value)
	return
}

// Field returns the two's complement field value.
func (imm Imm5) Field() uint16 {
	return uint16(int16(imm)) & mask(IMM5_WIDTH)
}

// Bits returns the 5-bit two's complement form.
func (imm Imm5) Bits() string {
	return bits(imm.Field(), IMM5_WIDTH)
}

// PCOffset9 is a 9-bit signed displacement from the incremented PC.
type PCOffset9 int16

// MakePCOffset9 range checks value into a PCOffset9.
func MakePCOffset9(value int64) (off PCOffset9, err error) {
	if value < PCOFFSET9_MIN || value > PCOFFSET9_MAX {
		err = &ErrRange{Value: value, Min: PCOFFSET9_MIN, Max: PCOFFSET9_MAX, Err: ErrOffsetOutOfRange}
		return
	}
	off = PCOffset9(value)
	return
}

// Field returns the two's complement field value.
func (off PCOffset9) Field() uint16 {
	return uint16(off) & mask(PCOFFSET9_WIDTH)
}

// Bits returns the 9-bit two's complement form.
func (off PCOffset9) Bits() string {
	return bits(off.Field(), PCOFFSET9_WIDTH)
}

// NZP is the set of condition codes tested by a branch.
type NZP uint8

const (
	NZP_P = NZP(1 << 0) // p
	NZP_Z = NZP(1 << 1) // z
	NZP_N = NZP(1 << 2) // n
)

// ParseNZP parses any combination of 'n', 'z' and 'p', in any order.
func ParseNZP(word string) (cond NZP, err error) {
	if len(word) == 0 {
		err = &ErrToken{Token: word, Err: ErrInvalidCondition}
		return
	}

	for _, c := range word {
		switch c {
		case 'n':
			cond |= NZP_N
		case 'z':
			cond |= NZP_Z
		case 'p':
			cond |= NZP_P
		default:
			err = &ErrToken{Token: word, Err: ErrInvalidCondition}
			return
		}
	}

	return
}

// Field returns the n, z, p bits, n most significant.
func (cond NZP) Field() uint16 {
	return uint16(cond) & mask(NZP_WIDTH)
}

// Bits returns the 3-bit form.
func (cond NZP) Bits() string {
	return bits(cond.Field(), NZP_WIDTH)
}

func (cond NZP) String() string {
	var sb strings.Builder
	if cond&NZP_N != 0 {
		sb.WriteByte('n')
	}
	if cond&NZP_Z != 0 {
		sb.WriteByte('z')
	}
	if cond&NZP_P != 0 {
		sb.WriteByte('p')
	}
	return sb.String()
}
