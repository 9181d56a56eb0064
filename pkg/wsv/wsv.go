// Package wsv is the public surface of the WSV library: parsing a
// string or io.Reader into rows of optional strings, lazily scanning
// a reader one row at a time, and writing rows back out with optional
// column alignment. The lexical and grouping machinery lives in
// internal/tokenizer and internal/parser; this package owns the
// io.Reader/io.Writer plumbing and rune decoding that spec.md's core
// deliberately keeps out.
package wsv

import (
	"bufio"
	"io"

	"github.com/mr-adult/WhitespaceSV/internal/parser"
	"github.com/mr-adult/WhitespaceSV/internal/tokenizer"
)

// Parse parses s, borrowing directly from it wherever no escape
// decoding is required.
func Parse(s string) ([][]Value, error) {
	return parser.ParseAll(tokenizer.NewFromString(s), 0)
}

// ParseWithColumnHint behaves like Parse but pre-sizes each row's
// backing array with hint, the caller's best guess at the column
// count. It does not pad, truncate, or validate against the hint.
func ParseWithColumnHint(s string, hint int) ([][]Value, error) {
	return parser.ParseAll(tokenizer.NewFromString(s), hint)
}

// ParseReader parses everything available from r. Every value
// produced is owned, since r cannot be re-sliced the way a string can.
func ParseReader(r io.Reader) ([][]Value, error) {
	return parser.ParseAll(tokenizer.NewFromRuneReader(asRuneReader(r)), 0)
}

// asRuneReader avoids wrapping r in a *bufio.Reader when it already
// implements io.RuneReader.
func asRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// Scanner lazily reads one row at a time from an io.Reader, in the
// style of bufio.Scanner: call Scan, then Row, until Scan returns
// false, then check Err.
type Scanner struct {
	it *parser.RowIterator
}

// NewScanner wraps r in a row-at-a-time Scanner.
func NewScanner(r io.Reader) *Scanner {
	tok := tokenizer.NewFromRuneReader(asRuneReader(r))
	return &Scanner{it: parser.NewRowIterator(tok)}
}

// Scan advances to the next row, returning false at EOF or on error.
func (s *Scanner) Scan() bool {
	return s.it.Scan()
}

// Row returns the row produced by the most recent successful Scan.
func (s *Scanner) Row() []Value {
	return s.it.Row()
}

// Err returns the error that stopped iteration, if any.
func (s *Scanner) Err() error {
	return s.it.Err()
}
