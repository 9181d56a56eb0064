// Package tokenizer implements the WSV lexical state machine: a
// pull-driven scanner that turns a stream of Unicode scalars into the
// flat event sequence StartRow | Value | EndRow | Error.
package tokenizer

import (
	"io"
	"unicode/utf8"

	"github.com/mr-adult/WhitespaceSV/internal/wsvlex"
)

type state int

const (
	stateBetweenValues state = iota
	stateInUnquotedValue
	stateInQuotedValue
	stateAfterQuote
	stateAfterEscapeSlash
	stateInComment
	stateEnd
)

// Tokenizer is a single-pass, single-threaded pull scanner. It holds
// no lookahead beyond the state needed to redispatch the character
// that just ended a value.
type Tokenizer struct {
	src scalarSource
	zc  *stringSource // non-nil only when src wraps a plain string

	state   state
	rowOpen bool

	line, col int

	queue []Event

	redispatch bool
	curRune    rune
	curPos     Position
	curByteStt int // byte offset before curRune, valid only when zc != nil
	curByteEnd int // byte offset after curRune, valid only when zc != nil

	valueStartPos  Position
	valueStartByte int
	quoteByteStt   int
	owned          []byte
}

// NewFromString builds a Tokenizer that borrows directly from s: any
// value requiring no escape decoding is returned as a slice of s.
func NewFromString(s string) *Tokenizer {
	ss := newStringSource(s)
	return &Tokenizer{src: ss, zc: ss, line: 1, col: 1}
}

// NewFromRuneReader builds a Tokenizer over any pull iterator of
// Unicode scalars. Every value it produces is owned, since rr cannot
// be re-sliced.
func NewFromRuneReader(rr io.RuneReader) *Tokenizer {
	return &Tokenizer{src: &readerSource{rr: rr}, line: 1, col: 1}
}

// Next returns the next event in the stream, or ok=false once the
// stream is exhausted (whether cleanly or via a fatal error: the
// caller distinguishes by inspecting the last event's Kind).
func (t *Tokenizer) Next() (Event, bool) {
	for len(t.queue) == 0 {
		if t.state == stateEnd {
			return Event{}, false
		}
		t.step()
	}
	ev := t.queue[0]
	t.queue = t.queue[1:]
	return ev, true
}

func (t *Tokenizer) enqueue(ev Event) {
	t.queue = append(t.queue, ev)
}

func (t *Tokenizer) nextChar() rune {
	if t.redispatch {
		t.redispatch = false
		return t.curRune
	}
	t.curPos = Position{Line: t.line, Column: t.col}
	if t.zc != nil {
		t.curByteStt = t.zc.pos
	}
	r := t.src.read()
	t.curRune = r
	if t.zc != nil {
		t.curByteEnd = t.zc.pos
	}
	if r != wsvlex.EOF {
		if wsvlex.IsLineTerminator(r) {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
	}
	return r
}

func (t *Tokenizer) step() {
	r := t.nextChar()
	switch t.state {
	case stateBetweenValues:
		t.stepBetweenValues(r)
	case stateInUnquotedValue:
		t.stepInUnquotedValue(r)
	case stateInQuotedValue:
		t.stepInQuotedValue(r)
	case stateAfterQuote:
		t.stepAfterQuote(r)
	case stateAfterEscapeSlash:
		t.stepAfterEscapeSlash(r)
	case stateInComment:
		t.stepInComment(r)
	}
}

func (t *Tokenizer) openRow() {
	if !t.rowOpen {
		t.rowOpen = true
		t.enqueue(Event{Kind: StartRowEvent})
	}
}

func (t *Tokenizer) closeRow() {
	t.rowOpen = false
	t.enqueue(Event{Kind: EndRowEvent})
}

func (t *Tokenizer) fail(kind ErrorKind, pos Position) {
	t.enqueue(Event{Kind: ErrorEvent, Err: &Error{Kind: kind, Pos: pos}})
	t.state = stateEnd
}

func (t *Tokenizer) stepBetweenValues(r rune) {
	switch {
	case r == wsvlex.EOF:
		if t.rowOpen {
			t.closeRow()
		}
		t.state = stateEnd
	case wsvlex.IsLineTerminator(r):
		if t.rowOpen {
			t.closeRow()
		}
	case wsvlex.IsWhitespace(r):
		// stays in BetweenValues; whitespace only separates
	case wsvlex.IsCommentStart(r):
		if t.rowOpen {
			t.closeRow()
		}
		t.state = stateInComment
	case wsvlex.IsQuote(r):
		t.openRow()
		t.beginQuotedValue()
		t.state = stateInQuotedValue
	default:
		t.openRow()
		t.beginUnquotedValue()
		t.state = stateInUnquotedValue
	}
}

// beginUnquotedValue and beginQuotedValue are called with t.curRune /
// t.curPos already set to the character that started the value.

func (t *Tokenizer) beginUnquotedValue() {
	t.valueStartPos = t.curPos
	if t.zc != nil {
		t.valueStartByte = t.curByteStt
		t.owned = nil
	} else {
		t.owned = utf8.AppendRune(getBuffer(), t.curRune)
	}
}

func (t *Tokenizer) stepInUnquotedValue(r rune) {
	switch {
	case r == wsvlex.EOF, wsvlex.IsWhitespace(r), wsvlex.IsLineTerminator(r), wsvlex.IsCommentStart(r):
		v := t.finishUnquotedValue()
		t.enqueue(Event{Kind: ValueEvent, Val: v})
		t.redispatch = true
		t.state = stateBetweenValues
	case wsvlex.IsQuote(r):
		t.fail(QuoteInUnquotedValue, t.curPos)
	default:
		if t.owned != nil {
			t.owned = utf8.AppendRune(t.owned, r)
		}
	}
}

func (t *Tokenizer) finishUnquotedValue() Value {
	var text string
	if t.owned != nil {
		text = string(t.owned)
		putBuffer(t.owned)
		t.owned = nil
	} else {
		text = t.zc.slice(t.valueStartByte, t.curByteStt)
	}
	if text == "-" {
		return Value{}
	}
	return Value{Text: text, Valid: true}
}

func (t *Tokenizer) beginQuotedValue() {
	t.valueStartPos = t.curPos // position of the opening quote
	if t.zc != nil {
		t.valueStartByte = t.curByteEnd
		t.owned = nil
	} else {
		t.owned = getBuffer()
	}
}

func (t *Tokenizer) stepInQuotedValue(r rune) {
	switch {
	case r == wsvlex.EOF, wsvlex.IsLineTerminator(r):
		t.fail(UnterminatedString, t.valueStartPos)
	case wsvlex.IsQuote(r):
		t.quoteByteStt = t.curByteStt
		t.state = stateAfterQuote
	default:
		if t.owned != nil {
			t.owned = utf8.AppendRune(t.owned, r)
		}
	}
}

func (t *Tokenizer) stepAfterQuote(r rune) {
	switch {
	case wsvlex.IsQuote(r):
		t.appendEscaped('"')
		t.state = stateInQuotedValue
	case r == wsvlex.EscapeSlash:
		t.state = stateAfterEscapeSlash
	case wsvlex.IsStringCloser(r):
		v := t.finishQuotedValue()
		t.enqueue(Event{Kind: ValueEvent, Val: v})
		t.redispatch = true
		t.state = stateBetweenValues
	default:
		t.fail(InvalidEscape, t.curPos)
	}
}

func (t *Tokenizer) stepAfterEscapeSlash(r rune) {
	if wsvlex.IsQuote(r) {
		t.appendEscaped('\n')
		t.state = stateInQuotedValue
		return
	}
	t.fail(InvalidEscape, t.curPos)
}

// appendEscaped materializes the owned buffer on first use (copying
// everything accumulated so far as a borrowed slice) and appends a
// decoded escape character.
func (t *Tokenizer) appendEscaped(decoded rune) {
	if t.owned == nil {
		buf := getBuffer()
		if t.zc != nil {
			buf = append(buf, t.zc.slice(t.valueStartByte, t.quoteByteStt)...)
		}
		t.owned = buf
	}
	t.owned = utf8.AppendRune(t.owned, decoded)
}

func (t *Tokenizer) finishQuotedValue() Value {
	var text string
	if t.owned != nil {
		text = string(t.owned)
		putBuffer(t.owned)
		t.owned = nil
	} else {
		text = t.zc.slice(t.valueStartByte, t.quoteByteStt)
	}
	return Value{Text: text, Valid: true}
}

func (t *Tokenizer) stepInComment(r rune) {
	switch {
	case r == wsvlex.EOF:
		t.state = stateEnd
	case wsvlex.IsLineTerminator(r):
		t.state = stateBetweenValues
	}
}
