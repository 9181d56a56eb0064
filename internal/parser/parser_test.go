package parser

import (
	"testing"

	"github.com/mr-adult/WhitespaceSV/internal/tokenizer"
)

func rowsOf(t *testing.T, input string) [][]tokenizer.Value {
	t.Helper()
	rows, err := ParseAll(tokenizer.NewFromString(input), 0)
	if err != nil {
		t.Fatalf("ParseAll(%q): unexpected error %v", input, err)
	}
	return rows
}

func TestParseAllEmptyInput(t *testing.T) {
	rows := rowsOf(t, "")
	if len(rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(rows))
	}
}

func TestParseAllMultipleRows(t *testing.T) {
	rows := rowsOf(t, "1 2 3\n4 5 6\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0].Text != "1" || rows[1][2].Text != "6" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseAllJaggedRows(t *testing.T) {
	rows := rowsOf(t, "a\nb c d\n")
	if len(rows[0]) != 1 || len(rows[1]) != 3 {
		t.Fatalf("expected jagged row lengths 1 and 3, got %d and %d", len(rows[0]), len(rows[1]))
	}
}

func TestParseAllStopsAtFirstError(t *testing.T) {
	rows, err := ParseAll(tokenizer.NewFromString("1 2\nab\"c\n3 4\n"), 0)
	if err == nil {
		t.Fatalf("expected error, got rows %+v", rows)
	}
	terr, ok := err.(*tokenizer.Error)
	if !ok {
		t.Fatalf("expected *tokenizer.Error, got %T", err)
	}
	if terr.Kind != tokenizer.QuoteInUnquotedValue {
		t.Fatalf("expected QuoteInUnquotedValue, got %v", terr.Kind)
	}
	if len(rows) != 1 {
		t.Fatalf("expected the first row to have been returned before the error, got %+v", rows)
	}
}

func TestRowIteratorYieldsRowsLazily(t *testing.T) {
	it := NewRowIterator(tokenizer.NewFromString("1 2\n3 4\n5 6\n"))
	var got [][]tokenizer.Value
	for it.Scan() {
		row := append([]tokenizer.Value(nil), it.Row()...)
		got = append(got, row)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
}

func TestRowIteratorStopsMidStreamOnError(t *testing.T) {
	it := NewRowIterator(tokenizer.NewFromString("1 2\n\"unterminated\n3 4\n"))
	count := 0
	for it.Scan() {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 row before the error, got %d", count)
	}
	if it.Err() == nil {
		t.Fatalf("expected an error after Scan stops")
	}
}

func TestRowIteratorCanStopBeforeExhaustingInput(t *testing.T) {
	it := NewRowIterator(tokenizer.NewFromString("1\n2\n3\n"))
	if !it.Scan() {
		t.Fatalf("expected first Scan to succeed")
	}
	if it.Row()[0].Text != "1" {
		t.Fatalf("unexpected first row: %+v", it.Row())
	}
	// Deliberately stop here; the tokenizer must not be forced further.
}
