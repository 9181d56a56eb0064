package tokenizer

import (
	"io"
	"unicode/utf8"

	"github.com/mr-adult/WhitespaceSV/internal/wsvlex"
)

// scalarSource is a single-pass pull source of Unicode scalars,
// terminated by wsvlex.EOF. It is the minimal capability the state
// machine needs; borrowing is an additional capability offered only by
// stringSource, checked for via a type assertion at construction.
type scalarSource interface {
	read() rune
}

// stringSource walks a Go string byte offset by byte offset, the same
// technique internal/fastparser/zerocopy.go uses over a []byte: it
// never copies, so slices taken between two offsets alias the
// original string directly.
type stringSource struct {
	s   string
	pos int
}

func newStringSource(s string) *stringSource {
	return &stringSource{s: s}
}

func (ss *stringSource) read() rune {
	if ss.pos >= len(ss.s) {
		return wsvlex.EOF
	}
	r, size := utf8.DecodeRuneInString(ss.s[ss.pos:])
	ss.pos += size
	return r
}

func (ss *stringSource) slice(start, end int) string {
	return ss.s[start:end]
}

// readerSource adapts any io.RuneReader. Because a generic reader
// cannot be re-sliced, values produced over it are always owned.
type readerSource struct {
	rr io.RuneReader
}

func (rs *readerSource) read() rune {
	r, _, err := rs.rr.ReadRune()
	if err != nil {
		return wsvlex.EOF
	}
	return r
}
