package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzImm5(f *testing.F) {
	for _, v := range []int64{IMM5_MIN - 1, IMM5_MIN, -1, 0, 1, IMM5_MAX, IMM5_MAX + 1} {
		f.Add(v)
	}

	f.Fuzz(func(t *testing.T, value int64) {
		assert := assert.New(t)

		imm, err := MakeImm5(value)
		if value < IMM5_MIN || value > IMM5_MAX {
			assert.ErrorIs(err, ErrImmediateOutOfRange)
			return
		}
		assert.NoError(err)
		assert.Len(imm.Bits(), IMM5_WIDTH)
		assert.Equal(value, SignExtend(imm.Field(), IMM5_WIDTH))
	})
}

func FuzzPCOffset9(f *testing.F) {
	for _, v := range []int64{PCOFFSET9_MIN - 1, PCOFFSET9_MIN, -5, 0, 10, PCOFFSET9_MAX, PCOFFSET9_MAX + 1} {
		f.Add(v)
	}

	f.Fuzz(func(t *testing.T, value int64) {
		assert := assert.New(t)

		off, err := MakePCOffset9(value)
		if value < PCOFFSET9_MIN || value > PCOFFSET9_MAX {
			assert.ErrorIs(err, ErrOffsetOutOfRange)
			return
		}
		assert.NoError(err)
		assert.Len(off.Bits(), PCOFFSET9_WIDTH)
		assert.Equal(value, SignExtend(off.Field(), PCOFFSET9_WIDTH))
	})
}

func TestImm5_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for value := int64(IMM5_MIN); value <= IMM5_MAX; value++ {
		imm, err := MakeImm5(value)
		assert.NoError(err)
		assert.Equal(value, SignExtend(imm.Field(), IMM5_WIDTH))
	}
}

func TestPCOffset9_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for value := int64(PCOFFSET9_MIN); value <= PCOFFSET9_MAX; value++ {
		off, err := MakePCOffset9(value)
		assert.NoError(err)
		assert.Equal(value, SignExtend(off.Field(), PCOFFSET9_WIDTH))
	}
}
