package tokenizer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSpace reports whether r separates tokens. It uses unicode.IsSpace, which
// matches the Unicode White_Space property (plus U+0085 and U+00A0 in Latin-1).
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// SplitWhitespace is a cursor over a string that yields maximal runs of
// non-whitespace runes and can hand back the unconsumed remainder at any time.
//
// Tokens and the remainder are substrings of the original text; nothing is
// copied. The zero value is an exhausted cursor. A SplitWhitespace must not be
// advanced from multiple goroutines without external synchronization.
type SplitWhitespace struct {
	rest string
}

// NewSplitWhitespace creates a cursor positioned at the start of text.
func NewSplitWhitespace(text string) SplitWhitespace {
	return SplitWhitespace{rest: text}
}

// Next returns the next token and true, or "" and false once the text is
// exhausted. Each call consumes the token plus the single whitespace rune that
// terminated it; runs of whitespace are skipped without yielding empty tokens.
func (s *SplitWhitespace) Next() (string, bool) {
	for {
		i := strings.IndexFunc(s.rest, IsSpace)
		if i < 0 {
			if s.rest == "" {
				return "", false
			}
			tok := s.rest
			s.rest = s.rest[len(s.rest):]
			return tok, true
		}

		tok := s.rest[:i]
		_, width := utf8.DecodeRuneInString(s.rest[i:])
		s.rest = s.rest[i+width:]
		if tok != "" {
			return tok, true
		}
	}
}

// Rest returns the text not yet consumed, exactly as stored. Leading
// whitespace that a later Next would skip is still included.
func (s *SplitWhitespace) Rest() string {
	return s.rest
}

// Take extracts up to n tokens. It returns fewer when the text runs out.
func (s *SplitWhitespace) Take(n int) []string {
	if n <= 0 {
		return nil
	}
	tokens := make([]string, 0, min(n, 16))
	for len(tokens) < n {
		tok, ok := s.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// All returns an iterator over the remaining tokens. Breaking out of the
// range loop leaves the cursor right after the last token yielded.
func (s *SplitWhitespace) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
