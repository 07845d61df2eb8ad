// Package tree implements the tree construction stage of the WHATWG HTML
// parsing algorithm (spec section 4.3): a second state machine, driven by
// "insertion modes", that consumes the token.Token sequence a
// tokenizer.Tokenizer produces and builds a dom.Document. Grounded on the
// teacher's chtml/html/parse.go (itself a thin wrapper around
// golang.org/x/net/html's tokenizer and tree builder) — this package keeps
// its naming (nodeStack, insertionMode, popUntil,
// reconstructActiveFormattingElements, ...) and file layout while owning
// its own tokenizer and Token model instead of delegating to x/net/html.
package tree

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/dpotapov/html5parser/tokenizer"
)

// config mirrors the functional-options shape the tokenizer package and
// the teacher's pages.Option use throughout this corpus.
type config struct {
	scriptingEnabled bool
	logger           *slog.Logger
}

// Option configures a Parser at construction time.
type Option func(*config)

// WithScriptingEnabled sets the scripting flag spec section 3's parser
// state record carries. It changes a handful of InHead/InBody decisions
// (e.g. whether <noscript> content is parsed as RAWTEXT) but this core
// never executes script content either way (spec section 1, non-goal).
func WithScriptingEnabled(enabled bool) Option {
	return func(c *config) { c.scriptingEnabled = enabled }
}

// WithLogger sets the *slog.Logger parse errors are emitted through (spec
// section 7). New defaults to slog.Default(); ParseFragment logs nothing
// unless this option is given.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// insertionMode is the tree constructor's state-transition function type
// (spec section 3, "Insertion mode"; section 9's design notes), grounded
// directly on the teacher's chtml/html/parse.go
// `type insertionMode func(*parser) bool`. Unlike the teacher's mutate-in-
// place style, this signature returns the next mode and a reprocess flag
// explicitly, matching the dispatcher contract spec section 4.3 describes.
type insertionMode func(p *Parser, t token.Token) (next insertionMode, reprocess bool)

// Parser is the tree constructor (spec section 3, "Parser state record"):
// it owns the Document, the open-elements stack, the active-formatting-
// elements list, the head-element pointer, the scripting and frameset-ok
// flags, and drives the insertion-mode state machine.
type Parser struct {
	doc *dom.Document
	tok *tokenizer.Tokenizer

	mode         insertionMode
	originalMode insertionMode

	oe  nodeStack
	afe afeList

	head *dom.Node
	form *dom.Node

	scripting       bool
	framesetOK      bool
	fosterParenting bool

	fragmentContext *dom.Node // non-nil only for a fragment parse (dom.Fragment)

	// pendingTableText/tableTextHasNonWhitespace/tableTextOriginalMode hold
	// the InTableText insertion mode's buffered run of character tokens
	// (spec section 4.3): flushed either straight into the table (an
	// all-whitespace run) or through fosterParent (a run containing any
	// non-whitespace character) once a non-character token arrives.
	pendingTableText           []rune
	tableTextHasNonWhitespace  bool
	tableTextOriginalMode      insertionMode

	errs   []*ParseError
	fatal  error
	logger *slog.Logger
}

// New constructs a Parser reading HTML from r. ScriptingEnabled defaults
// to false; callers that want the noscript/RAWTEXT behavior a scripting
// user agent has should pass WithScriptingEnabled(true).
func New(r io.Reader, opts ...Option) *Parser {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	p := &Parser{
		doc:        dom.NewDocument(),
		tok:        tokenizer.New(r),
		mode:       initialMode,
		framesetOK: true,
		scripting:  cfg.scriptingEnabled,
		logger:     cfg.logger,
	}
	return p
}

// Document returns the Document this Parser builds. Valid at any point,
// but only complete once Run has returned.
func (p *Parser) Document() *dom.Document { return p.doc }

// Errors returns every tree-construction ParseError raised so far, in
// emission order. Parse errors raised by the underlying tokenizer are not
// included; Run emits those through the logger only.
func (p *Parser) Errors() []*ParseError { return p.errs }

func (p *Parser) recordError(code ErrorCode, mode string) {
	e := &ParseError{Code: code, Mode: mode}
	p.errs = append(p.errs, e)
	if p.logger != nil {
		p.logger.Warn("html5parser: parse error", "code", code.String(), "mode", mode)
	}
}

// Run pumps tokens from the tokenizer until Term, driving the insertion-
// mode state machine (spec section 4.3). It returns a non-nil error only
// for a fatal state-transition error; malformed-but-recoverable markup is
// reported through Errors and the logger instead (spec section 7). A read
// error from the underlying reader ends the input as if at EOF and is not
// returned.
func (p *Parser) Run() error {
	logged := 0
	for {
		t, err := p.tok.Next()
		if err != nil {
			return fmt.Errorf("tree: reading token: %w", err)
		}
		if p.logger != nil {
			for _, e := range p.tok.Errors()[logged:] {
				p.logger.Warn("html5parser: parse error", "code", e.Code.String(), "line", e.Line, "col", e.Col)
			}
		}
		logged = len(p.tok.Errors())
		if err := p.processToken(t); err != nil {
			return err
		}
		if t.Kind == token.KindEOF {
			return nil
		}
	}
}

// processToken drives the dispatcher (spec section 4.3) for a single
// token, including the reprocess loop.
func (p *Parser) processToken(t token.Token) error {
	for {
		var next insertionMode
		var reprocess bool
		if p.useForeignContent(t) {
			next, reprocess = p.foreignContent(t)
		} else {
			next, reprocess = p.mode(p, t)
		}
		if p.fatal != nil {
			return p.fatal
		}
		p.mode = next
		if !reprocess {
			return nil
		}
	}
}

// useForeignContent implements the dispatcher's HTML-content/foreign-
// content split (spec section 4.3, "Dispatcher"). The foreign-content path
// itself is an identified extension point (spec section 1); this core
// still computes the split correctly so callers whose documents never
// enter foreign content (the overwhelming majority of HTML) are unaffected.
func (p *Parser) useForeignContent(t token.Token) bool {
	if len(p.oe) == 0 || t.Kind == token.KindEOF {
		return false
	}
	n := p.adjustedCurrentNode()
	if n.Namespace == token.HTML {
		return false
	}
	if isMathMLTextIntegrationPoint(n) {
		if t.Kind == token.KindCharacter || t.Kind == token.KindCharacters {
			return false
		}
		if t.Kind == token.KindStartTag && t.Name.String() != "mglyph" && t.Name.String() != "malignmark" {
			return false
		}
	}
	if n.Namespace == token.MathML && n.Name.String() == "annotation-xml" &&
		t.Kind == token.KindStartTag && t.Name.Is(token.TagSvg) {
		return false
	}
	if isHTMLIntegrationPoint(n) && (t.Kind == token.KindStartTag || t.Kind == token.KindCharacter || t.Kind == token.KindCharacters) {
		return false
	}
	return true
}

func isMathMLTextIntegrationPoint(n *dom.Node) bool {
	if n.Namespace != token.MathML {
		return false
	}
	switch n.Name.String() {
	case "mi", "mo", "mn", "ms", "mtext":
		return true
	}
	return false
}

func isHTMLIntegrationPoint(n *dom.Node) bool {
	if n.Namespace == token.SVG {
		switch n.Name.String() {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	if n.Namespace == token.MathML && n.Name.String() == "annotation-xml" {
		if v, ok := attrValue(n.Attr, "encoding"); ok {
			return equalFoldASCII(v, "text/html") || equalFoldASCII(v, "application/xhtml+xml")
		}
	}
	return false
}

func attrValue(attrs []token.Attribute, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// foreignContent is the foreign-content insertion-mode extension point
// spec section 1 names as an out-of-scope collaborator of this core ("only
// within foreign content, which this core leaves stubbed behind an
// explicit extension point"). Reaching it is itself diagnostic: it means
// the document contains a MathML or SVG subtree, which this core's HTML-
// content-only tree constructor cannot build.
func (p *Parser) foreignContent(t token.Token) (insertionMode, bool) {
	p.fatal = newStateTransitionError("foreign-content", fmt.Sprintf("token %s", t.Kind))
	return p.mode, false
}

