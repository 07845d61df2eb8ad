// Package html5parser is a thin facade in front of the tokenizer/tree/dom
// packages, mirroring the teacher's root "pages" package sitting in front
// of its "chtml" component engine: callers that just want a parsed
// document never need to import tokenizer or tree directly.
package html5parser

import (
	"io"

	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/dpotapov/html5parser/tree"
)

// Option configures the tree constructor a Parse call drives. It is an
// alias of tree.Option so callers never need to import the tree package
// just to pass WithScriptingEnabled or WithLogger.
type Option = tree.Option

// WithScriptingEnabled forwards to tree.WithScriptingEnabled.
func WithScriptingEnabled(enabled bool) Option { return tree.WithScriptingEnabled(enabled) }

// WithLogger forwards to tree.WithLogger.
var WithLogger = tree.WithLogger

// Parse reads HTML from r and returns the finished Document. Non-fatal
// parse errors (spec section 7) are never returned here; they are emitted
// one at a time through the *slog.Logger a WithLogger option supplies
// (slog.Default() otherwise), the same reporting channel the teacher's own
// components log through. Parse returns a non-nil error only when the
// document contains a construct this core does not implement (an unwired
// insertion mode, foreign content). A read error from r ends the input as
// if at EOF and is not returned.
func Parse(r io.Reader, opts ...Option) (*dom.Document, error) {
	p := tree.New(r, opts...)
	if err := p.Run(); err != nil {
		return nil, err
	}
	return p.Document(), nil
}

// ParseFragment parses r as an HTML fragment in the content model of the
// given context element, returning its top-level nodes. See
// tree.ParseFragment for the algorithm this wraps.
func ParseFragment(r io.Reader, context token.TagName, opts ...Option) (*dom.Fragment, error) {
	return tree.ParseFragment(r, context, opts...)
}
