package internal

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert := assert.New(t)

	var err error
	var numbers []int
	var texts []string
	for lineno, text := range Lines(strings.NewReader("ADD R1 R2 1 5\r\n\n; note\nBR nz 3"), &err) {
		numbers = append(numbers, lineno)
		texts = append(texts, text)
	}

	assert.NoError(err)
	assert.Equal([]int{1, 2, 3, 4}, numbers)
	assert.Equal([]string{"ADD R1 R2 1 5", "", "; note", "BR nz 3"}, texts)
}

func TestLines_Stop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for lineno := range Lines(strings.NewReader("a\nb\nc\n"), nil) {
		count++
		if lineno == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestLines_ReadError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("disk on fire")
	var err error
	for range Lines(iotest.ErrReader(failure), &err) {
		t.Fatal("unexpected line")
	}
	assert.ErrorIs(err, failure)
}
