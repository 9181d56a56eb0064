// Package parser groups the tokenizer's flat event stream into rows.
// It adds no semantics beyond event-to-row grouping: an eager façade
// that drains everything into a 2D slice, and a lazy façade that
// yields one row at a time.
package parser

import (
	"github.com/mr-adult/WhitespaceSV/internal/tokenizer"
)

// ParseAll drains tok into a 2D collection, stopping at the first
// error. columnHint pre-sizes each row's backing array; it does not
// pad, truncate, or validate row length (jagged rows remain legal).
func ParseAll(tok *tokenizer.Tokenizer, columnHint int) ([][]tokenizer.Value, error) {
	if columnHint < 0 {
		columnHint = 0
	}
	var rows [][]tokenizer.Value
	var row []tokenizer.Value

	for {
		ev, ok := tok.Next()
		if !ok {
			return rows, nil
		}
		switch ev.Kind {
		case tokenizer.StartRowEvent:
			row = make([]tokenizer.Value, 0, columnHint)
		case tokenizer.ValueEvent:
			row = append(row, ev.Val)
		case tokenizer.EndRowEvent:
			rows = append(rows, row)
			row = nil
		case tokenizer.ErrorEvent:
			return rows, ev.Err
		}
	}
}

// RowIterator is a bufio.Scanner-shaped pull façade: Scan advances to
// the next row, Row returns it, Err reports the terminal error (if
// any) once Scan returns false. Working set is O(max row size).
type RowIterator struct {
	tok *tokenizer.Tokenizer
	row []tokenizer.Value
	err error
	done bool
}

// NewRowIterator wraps tok in a row-at-a-time façade.
func NewRowIterator(tok *tokenizer.Tokenizer) *RowIterator {
	return &RowIterator{tok: tok}
}

// Scan advances to the next row, returning false at EOF or on error.
func (it *RowIterator) Scan() bool {
	if it.done {
		return false
	}
	var row []tokenizer.Value
	for {
		ev, ok := it.tok.Next()
		if !ok {
			it.done = true
			return false
		}
		switch ev.Kind {
		case tokenizer.StartRowEvent:
			row = []tokenizer.Value{}
		case tokenizer.ValueEvent:
			row = append(row, ev.Val)
		case tokenizer.EndRowEvent:
			it.row = row
			return true
		case tokenizer.ErrorEvent:
			it.done = true
			it.err = ev.Err
			return false
		}
	}
}

// Row returns the row produced by the most recent successful Scan.
func (it *RowIterator) Row() []tokenizer.Value {
	return it.row
}

// Err returns the error that stopped iteration, if any.
func (it *RowIterator) Err() error {
	return it.err
}
