package wsv

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mr-adult/WhitespaceSV/internal/wsvlex"
)

// needsQuoting reports whether text must be quoted to round-trip,
// per the quoting decision in spec.md §4.D.
func needsQuoting(text string) bool {
	if text == "" || text == "-" {
		return true
	}
	for _, r := range text {
		if wsvlex.IsWhitespace(r) || wsvlex.IsLineTerminator(r) || wsvlex.IsQuote(r) || wsvlex.IsCommentStart(r) {
			return true
		}
	}
	return false
}

// renderCell renders one value to its WSV spelling: "-" for null,
// the bare text when no trigger applies, or a quoted, escaped form.
func renderCell(v Value) string {
	if !v.Valid {
		return "-"
	}
	if !needsQuoting(v.Text) {
		return v.Text
	}
	var b strings.Builder
	b.Grow(len(v.Text) + 2)
	b.WriteByte('"')
	for _, r := range v.Text {
		switch r {
		case wsvlex.Quote:
			b.WriteString(`""`)
		case wsvlex.LineTerminator:
			b.WriteString(`"/"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Render serializes rows to a single string. Under Packed, it makes a
// single pass. Under Left/Right, it must materialize every rendered
// cell first to compute per-column widths (growing the width table as
// jagged rows widen it) before emitting anything.
func Render(rows RowSource, opts WriterOptions) (string, error) {
	if opts.Align == Packed {
		return renderPacked(rows)
	}
	return renderAligned(rows, opts.Align)
}

func renderPacked(rows RowSource) (string, error) {
	var b strings.Builder
	rowIdx := 0
	for {
		row, ok := rows.NextRow()
		if !ok {
			break
		}
		if rowIdx > 0 {
			b.WriteByte(byte(wsvlex.LineTerminator))
		}
		rowIdx++
		for i, v := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(renderCell(v))
		}
	}
	return b.String(), nil
}

func renderAligned(rows RowSource, align ColumnAlignment) (string, error) {
	var rendered [][]string
	var widths []int
	numColumns := 0

	for {
		row, ok := rows.NextRow()
		if !ok {
			break
		}
		cells := make([]string, len(row))
		for i, v := range row {
			cell := renderCell(v)
			cells[i] = cell
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
		if len(row) > numColumns {
			numColumns = len(row)
		}
		rendered = append(rendered, cells)
	}

	var b strings.Builder
	for r, cells := range rendered {
		if r > 0 {
			b.WriteByte(byte(wsvlex.LineTerminator))
		}
		if len(cells) == 0 {
			continue
		}
		for i := 0; i < numColumns; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - utf8.RuneCountInString(cell)
			if pad < 0 {
				pad = 0
			}
			if align == Right {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	return b.String(), nil
}

// Writer is a fluent, one-line wrapper over Render: NewWriter(rows)
// defaults to Packed, and Align sets the column mode before String
// does the actual rendering.
type Writer struct {
	rows RowSource
	opts WriterOptions
}

// NewWriter wraps rows for rendering with DefaultWriterOptions.
func NewWriter(rows RowSource) *Writer {
	return &Writer{rows: rows, opts: DefaultWriterOptions()}
}

// Align sets the column alignment mode and returns w for chaining.
func (w *Writer) Align(align ColumnAlignment) *Writer {
	w.opts.Align = align
	return w
}

// String renders the wrapped rows with the configured options.
func (w *Writer) String() (string, error) {
	return Render(w.rows, w.opts)
}

// StreamWriter serializes rows one scalar at a time as an io.Reader,
// ignoring column alignment (it behaves as Packed). It never buffers
// more than one rendered value (plus at most one pending separator
// byte) at a time, translating the original format's one-cell
// lookahead character iterator into Go's pull-based io.Reader.
type StreamWriter struct {
	rows     RowSource
	pending  []byte
	curRow   []Value
	curIdx   int
	haveRow  bool
	rowIdx   int
	finished bool
}

// NewStreamWriter wraps rows for streaming, allocation-light output.
func NewStreamWriter(rows RowSource) *StreamWriter {
	return &StreamWriter{rows: rows}
}

func (w *StreamWriter) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(w.pending) == 0 {
			if w.finished {
				break
			}
			w.fill()
			continue
		}
		c := copy(p[n:], w.pending)
		w.pending = w.pending[c:]
		n += c
	}
	if n == 0 && w.finished {
		return 0, io.EOF
	}
	return n, nil
}

// fill advances the state machine by exactly one step, queuing at
// most one rendered cell (with its leading separator, if any) into
// pending.
func (w *StreamWriter) fill() {
	for {
		if !w.haveRow {
			row, ok := w.rows.NextRow()
			if !ok {
				w.finished = true
				return
			}
			w.curRow = row
			w.curIdx = 0
			w.haveRow = true
			if w.rowIdx > 0 {
				w.pending = append(w.pending, byte(wsvlex.LineTerminator))
			}
			w.rowIdx++
			if len(w.pending) > 0 {
				return
			}
			continue
		}
		if w.curIdx >= len(w.curRow) {
			w.haveRow = false
			continue
		}
		if w.curIdx > 0 {
			w.pending = append(w.pending, ' ')
		}
		w.pending = append(w.pending, renderCell(w.curRow[w.curIdx])...)
		w.curIdx++
		return
	}
}
