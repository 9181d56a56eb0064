// Package wsvlex defines the character classes shared by the WSV
// tokenizer and writer. Every predicate is a pure function of a single
// rune; none of them hold state.
package wsvlex

// LineTerminator is the only scalar that ends a row.
const LineTerminator rune = '\n'

// Quote opens and closes a quoted value.
const Quote rune = '"'

// CommentStart opens a comment that runs to the next line terminator.
const CommentStart rune = '#'

// Dash is the unquoted spelling of null when it stands alone as a value.
const Dash rune = '-'

// EscapeSlash is the second character of the three-character in-quote
// newline escape, "/".
const EscapeSlash rune = '/'

// EOF is the sentinel rune returned by a scalar source once it is
// exhausted, following the text/scanner convention.
const EOF rune = -1

// IsLineTerminator reports whether r ends a row.
func IsLineTerminator(r rune) bool {
	return r == LineTerminator
}

// IsWhitespace reports whether r is in the WSV whitespace class. This
// is a bespoke table, not unicode.IsSpace: it includes U+FEFF, which
// unicode.IsSpace does not, and excludes the line terminator U+000A,
// which unicode.IsSpace includes.
func IsWhitespace(r rune) bool {
	switch r {
	case 0x0009, 0x000B, 0x000C, 0x000D, 0x0020, 0x0085, 0x00A0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	if r >= 0x2000 && r <= 0x200A {
		return true
	}
	return false
}

// IsQuote reports whether r opens or closes a quoted value.
func IsQuote(r rune) bool {
	return r == Quote
}

// IsCommentStart reports whether r opens a comment.
func IsCommentStart(r rune) bool {
	return r == CommentStart
}

// IsDash reports whether r is the null-denoting dash character.
func IsDash(r rune) bool {
	return r == Dash
}

// IsValueChar reports whether r may appear in an unquoted value, i.e.
// it is none of whitespace, line terminator, quote, or comment-start.
func IsValueChar(r rune) bool {
	if r == EOF {
		return false
	}
	return !IsWhitespace(r) && !IsLineTerminator(r) && !IsQuote(r) && !IsCommentStart(r)
}

// IsStringCloser reports whether r may legally follow a closed quoted
// value: whitespace, a line terminator, a comment-start, or EOF.
func IsStringCloser(r rune) bool {
	return r == EOF || IsWhitespace(r) || IsLineTerminator(r) || IsCommentStart(r)
}
