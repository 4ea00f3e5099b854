// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package control converts a control store table into control words.
//
// The table is CSV. The first row is a header and the first column of every
// row is a state label; both are discarded. Every remaining cell becomes one
// bit of the row's control word: '1' for a "1" cell, and '0' for anything
// else, including "0", "x", "X" and empty cells.
package control

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strings"
)

// Cell classifies a single control store cell.
type Cell int

const (
	CELL_EMPTY     = Cell(0) // empty
	CELL_ZERO      = Cell(1) // 0
	CELL_ONE       = Cell(2) // 1
	CELL_DONT_CARE = Cell(3) // x
	CELL_OTHER     = Cell(4) // ?
)

// ParseCell classifies the text of a cell.
func ParseCell(text string) Cell {
	switch text {
	case "":
		return CELL_EMPTY
	case "0":
		return CELL_ZERO
	case "1":
		return CELL_ONE
	case "x", "X":
		return CELL_DONT_CARE
	}
	return CELL_OTHER
}

// Bit returns the control word bit for the cell. Only CELL_ONE is set.
func (cell Cell) Bit() byte {
	if cell == CELL_ONE {
		return '1'
	}
	return '0'
}

func (cell Cell) String() string {
	switch cell {
	case CELL_EMPTY:
		return "empty"
	case CELL_ZERO:
		return "0"
	case CELL_ONE:
		return "1"
	case CELL_DONT_CARE:
		return "x"
	}
	return "?"
}

// Word is one control word, a string of '0' and '1'.
type Word string

// ControlStore is a converted control store.
type ControlStore struct {
	Header []string // Signal names, without the label column.
	Labels []string // State labels, one per word.
	Words  []Word   // Control words, in table order.
}

// WriteTo writes one control word per line.
func (cs *ControlStore) WriteTo(w io.Writer) (n int64, err error) {
	for _, word := range cs.Words {
		var count int
		count, err = io.WriteString(w, string(word)+"\n")
		n += int64(count)
		if err != nil {
			return
		}
	}
	return
}

// Converter reads control store tables.
type Converter struct {
	Verbose bool // If set, logs every converted row.
	Strict  bool // If set, every row must have one cell per header signal.
	Comma   rune // Field delimiter. Defaults to ','.
}

// Convert reads a control store table from input.
func (conv *Converter) Convert(input io.Reader) (cs *ControlStore, err error) {
	reader := csv.NewReader(input)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if conv.Comma != 0 {
		reader.Comma = conv.Comma
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		err = ErrHeaderMissing
		return
	}
	if err != nil {
		return
	}

	cs = &ControlStore{}
	if len(header) > 0 {
		cs.Header = header[1:]
	}

	for {
		var row []string
		row, err = reader.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		line, _ := reader.FieldPos(0)
		if conv.Strict && len(row)-1 != len(cs.Header) {
			err = &ErrRow{LineNo: line, Err: ErrRowWidth}
			return
		}

		var label string
		var sb strings.Builder
		if len(row) > 0 {
			label = row[0]
			for _, text := range row[1:] {
				sb.WriteByte(ParseCell(text).Bit())
			}
		}

		word := Word(sb.String())
		if conv.Verbose {
			log.Printf("%v: %v %v", line, label, word)
		}

		cs.Labels = append(cs.Labels, label)
		cs.Words = append(cs.Words, word)
	}

	return
}

// Convert reads a control store table with the default Converter.
func Convert(input io.Reader) (cs *ControlStore, err error) {
	return (&Converter{}).Convert(input)
}
