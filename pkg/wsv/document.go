package wsv

// RowSource is a one-method pull interface over rows: the same pull
// shape the tokenizer uses on the input side, mirrored here for the
// writer's input side. *Rows implements it; *Document does not, and
// renders through a Rows adapter instead (see Document.Render).
type RowSource interface {
	NextRow() ([]Value, bool)
}

// Rows adapts a plain [][]Value into a RowSource.
type Rows struct {
	rows [][]Value
	idx  int
}

// NewRows wraps rows for use with Render or NewStreamWriter.
func NewRows(rows [][]Value) *Rows {
	return &Rows{rows: rows}
}

// NextRow implements RowSource.
func (r *Rows) NextRow() ([]Value, bool) {
	if r.idx >= len(r.rows) {
		return nil, false
	}
	row := r.rows[r.idx]
	r.idx++
	return row, true
}

// Document is a fluent, headerless builder over rows of optional
// strings. WSV has no header-row concept, so unlike a CSV DOM,
// Document has no name-based field lookup: adding one would mean
// inventing a schema.
type Document struct {
	rows [][]Value
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// AddRow appends row to the document. Returns d for chaining.
func (d *Document) AddRow(row []Value) *Document {
	d.rows = append(d.rows, row)
	return d
}

// AddStrings appends a row built from non-null string values. Returns
// d for chaining.
func (d *Document) AddStrings(values ...string) *Document {
	row := make([]Value, len(values))
	for i, v := range values {
		row[i] = Value{Text: v, Valid: true}
	}
	return d.AddRow(row)
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// Row returns the row at index, and whether index was in bounds.
func (d *Document) Row(index int) ([]Value, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// Rows returns a copy of all rows.
func (d *Document) Rows() [][]Value {
	rows := make([][]Value, len(d.rows))
	copy(rows, d.rows)
	return rows
}

// Render serializes the document with opts, per Render.
func (d *Document) Render(opts WriterOptions) (string, error) {
	return Render(NewRows(d.rows), opts)
}

// ParseDocument parses input into a Document.
func ParseDocument(input string) (*Document, error) {
	rows, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return &Document{rows: rows}, nil
}
