//go:build go1.18
// +build go1.18

package tokenizer

import "testing"

// FuzzTokenizer feeds random strings to the tokenizer and asserts it
// never panics and always terminates.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"a b c",
		"a b c\n",
		"- - -",
		`"quoted"`,
		`"with ""quote"""`,
		`"line1"/"line2"`,
		`ab"c`,
		`"unterminated`,
		"# comment only\n",
		"  \t\n\n  ",
		"a\n\nb\n",
		"\ufeffa b\n",
		`"/"`,
		`"/x"`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tok := NewFromString(input)
		count := 0
		for {
			ev, ok := tok.Next()
			if !ok {
				break
			}
			count++
			if count > 10*len(input)+1000 {
				t.Fatalf("tokenizer did not terminate for input %q", input)
			}
			_ = ev
		}
	})
}
