package internal

import (
	"bufio"
	"io"
	"iter"
)

// Lines returns an iterator over the lines of r, numbered from 1.
// Line terminators are stripped. Once iteration ends, *err holds any
// read error; err may be nil if the caller does not care.
func Lines(r io.Reader, err *error) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		scanner := bufio.NewScanner(r)
		lineno := 0
		for scanner.Scan() {
			lineno += 1
			if !yield(lineno, scanner.Text()) {
				return // Stop if the consumer stops
			}
		}
		if err != nil {
			*err = scanner.Err()
		}
	}
}
