package wsv

import (
	"fmt"

	"github.com/mr-adult/WhitespaceSV/internal/tokenizer"
)

// Re-exported from internal/tokenizer so callers never need to import
// an internal package to inspect an error's kind or position.
type (
	Value     = tokenizer.Value
	Error     = tokenizer.Error
	ErrorKind = tokenizer.ErrorKind
	Position  = tokenizer.Position
)

const (
	UnterminatedString   = tokenizer.UnterminatedString
	InvalidEscape        = tokenizer.InvalidEscape
	QuoteInUnquotedValue = tokenizer.QuoteInUnquotedValue
)

// OptionsError reports an invalid field in a WriterOptions value.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("wsv: invalid %s: %s", e.Field, e.Message)
}
