package asm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3asm/isa"
)

func parseProgram(t *testing.T, source ...string) *Program {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(source, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := parseProgram(t,
		"; Computes nothing useful",
		"ADD R1 R2 1 5",
		"ADD R0 R1 000 R2",
		"",
		"LD R3 -5",
		"ST R4 10",
		"BR nz 3",
	)

	var out bytes.Buffer
	n, err := prog.WriteTo(&out)
	assert.NoError(err)
	assert.Equal(int64(5*(isa.CODE_WIDTH+1)), n)

	want := `0001001010100101
0001000001000010
0010011111111011
0011100000001010
0000110000000011
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("WriteTo() mismatch (-want +got):\n%s", diff)
	}
}

func TestProgram_WriteTo_Error(t *testing.T) {
	assert := assert.New(t)

	prog := parseProgram(t, "LD R1 1", "LD R2 2")

	failure := errors.New("write failed")
	w := &failingWriter{failure: failure}
	_, err := prog.WriteTo(w)
	assert.ErrorIs(err, failure)
}

type failingWriter struct {
	failure error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.failure
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := parseProgram(t,
		"; header",
		"LD R1 1",
		"",
		"ST R1 2",
	)

	op := prog.Debug(0)
	if assert.NotNil(op) {
		assert.Equal(2, op.LineNo)
		assert.Equal([]string{"LD", "R1", "1"}, op.Words)
	}

	op = prog.Debug(1)
	if assert.NotNil(op) {
		assert.Equal(4, op.LineNo)
		assert.Equal(isa.OP_ST, op.Code.Opcode())
	}

	assert.Nil(prog.Debug(2))
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := parseProgram(t, "ADD R1 R2 1 5", "BR nz 3")

	assert.Equal([]uint16{0b0001_001_010_1_00101, 0b0000_110_000000011}, prog.Binary())

	var ips []uint16
	for ip := range prog.Codes() {
		ips = append(ips, ip)
		break
	}
	assert.Equal([]uint16{0}, ips)
}

func TestProgram_ReadError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("read failed")
	asm := &Assembler{}
	prog, err := asm.Parse(iotest.ErrReader(failure))
	assert.ErrorIs(err, failure)
	assert.ErrorIs(prog.ReadErr, failure)
	assert.NoError(prog.Err())
	assert.Equal(0, len(prog.Opcodes))
}
