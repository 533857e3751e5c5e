// Package splitrest provides a top-level convenience entry point for the
// whitespace cursor in package tokenizer.
//
// Usage:
//
//	import "github.com/BaSui01/splitrest"
//
//	sw := splitrest.New("say Hello, World!")
//	cmd, _ := sw.Next()  // "say"
//	args := sw.Rest()    // "Hello, World!"
//
// This is a thin wrapper around [tokenizer.NewSplitWhitespace]; both produce
// identical results.
package splitrest

import "github.com/BaSui01/splitrest/tokenizer"

// SplitWhitespace is re-exported so callers never need to import tokenizer/.
type SplitWhitespace = tokenizer.SplitWhitespace

// New creates a cursor positioned at the start of text.
func New(text string) SplitWhitespace {
	return tokenizer.NewSplitWhitespace(text)
}
