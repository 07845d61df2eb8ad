package tree

import (
	"errors"
	"fmt"
)

// ErrorCode enumerates the named, non-fatal parse errors the tree
// constructor can raise on its own account (spec section 7); most of the
// taxonomy lives in the tokenizer, but a handful of tree-construction
// specific conditions (a second DOCTYPE, a misplaced end tag) are raised
// here.
type ErrorCode int

const (
	UnexpectedDoctype ErrorCode = iota
	UnexpectedStartTagHTML
	UnexpectedEndTag
	UnexpectedStartTag
	NonVoidHTMLElementStartTagWithTrailingSolidus
)

var errorNames = map[ErrorCode]string{
	UnexpectedDoctype:      "unexpected-doctype",
	UnexpectedStartTagHTML: "unexpected-start-tag-html",
	UnexpectedEndTag:       "unexpected-end-tag",
	UnexpectedStartTag:     "unexpected-start-tag",
	NonVoidHTMLElementStartTagWithTrailingSolidus: "non-void-html-element-start-tag-with-trailing-solidus",
}

func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return "unknown-parse-error"
}

// ParseError is a non-fatal, named parse error raised by the tree
// constructor (spec section 7). The driver collects these rather than
// aborting the run.
type ParseError struct {
	Code ErrorCode
	Mode string // the insertion mode active when the error was raised
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Mode, e.Code)
}

// ErrStateTransition is the sentinel wrapped by a *StateTransitionError
// when a token reaches an insertion mode with no rule for it (spec section
// 7). Unlike ParseError this is fatal: it terminates Run.
var ErrStateTransition = errors.New("tree: state-transition error")

// StateTransitionError wraps ErrStateTransition with the offending mode and
// token for diagnostics.
type StateTransitionError struct {
	Mode string
	Info string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("tree: no transition from insertion mode %s: %s", e.Mode, e.Info)
}

func (e *StateTransitionError) Unwrap() error { return ErrStateTransition }

func newStateTransitionError(mode, info string) error {
	return &StateTransitionError{Mode: mode, Info: info}
}
