package tokenizer

import (
	"io"
	"strings"

	"github.com/dpotapov/html5parser/token"
)

// config mirrors the functional-options shape used throughout this corpus
// (see go-xml's Option pattern and the teacher's own pages.Option): a
// private struct plus Option funcs that mutate it.
type config struct {
	coalesceCharacters bool
	initialState       State
	lastStartTag       token.TagName
}

// Option configures a Tokenizer at construction time.
type Option func(*config)

// WithCoalesceCharacters enables or disables merging consecutive Character
// tokens into a single Characters token (spec section 4.2, "Output lazy
// sequence").
func WithCoalesceCharacters(enabled bool) Option {
	return func(c *config) { c.coalesceCharacters = enabled }
}

// WithInitialState starts the tokenizer in a state other than Data. The
// fragment parser uses it to seed the tokenizer consistently with the
// fragment's context element; the tree constructor's own switches into
// RCDATA/RAWTEXT/PlainText/ScriptData go through SetState instead.
func WithInitialState(s State) Option {
	return func(c *config) { c.initialState = s }
}

// WithLastStartTag seeds the "appropriate end tag" check (spec section
// 4.2) for a tokenizer constructed mid-stream, e.g. when fragment parsing
// begins already inside a <script> or <title> context element.
func WithLastStartTag(name token.TagName) Option {
	return func(c *config) { c.lastStartTag = name }
}

// Tokenizer drives the state machine described in spec section 4.2: it
// consumes token.Characters from a Source and produces a lazy sequence of
// token.Tokens, raising ParseErrors along the way.
type Tokenizer struct {
	src *Source

	state      State
	returnState State // saved state character references return to

	reconsume bool
	lastChar  token.Character

	lastStartTag token.TagName // for the "appropriate end tag" check

	tag     tagBuilder
	comment []rune
	doctype doctypeBuilder

	// charref* hold the character-reference sublanguage's working state
	// (spec section 4.2, "Character reference resolution").
	charrefBuf       []rune // the "tmp" buffer, starts with '&'
	charrefCode      int64
	charrefMark      int
	charrefInAttr    bool // whether the return state is an attribute-value state

	doubleEscapeBuf []rune // accumulates the candidate "script" match for double-escape states

	cdataAllowed bool // set by the tree constructor: true only inside foreign content
	suppressRawText bool // one-shot: tree constructor vetoes entering RAWTEXT for <noscript>

	coalesce     bool
	pendingChars []rune // accumulator for Characters coalescing
	queue        []token.Token
	errs         []*ParseError

	done bool
}

// New constructs a Tokenizer reading from r.
func New(r io.Reader, opts ...Option) *Tokenizer {
	cfg := &config{coalesceCharacters: true}
	for _, opt := range opts {
		opt(cfg)
	}
	t := &Tokenizer{
		src:          NewSource(r),
		state:        cfg.initialState,
		coalesce:     cfg.coalesceCharacters,
		lastStartTag: cfg.lastStartTag,
	}
	return t
}

// SetState forces the tokenizer into state s, discarding any in-progress
// reconsume. The tree constructor calls this right after inserting an
// element whose content model is RCDATA/RAWTEXT/ScriptData/PlainText
// (spec section 4.3, "Generic RCDATA / RAWTEXT parse").
func (t *Tokenizer) SetState(s State) {
	t.state = s
	t.reconsume = false
}

// State returns the tokenizer's current state.
func (t *Tokenizer) State() State { return t.state }

// SetLastStartTag updates the "appropriate end tag" reference name.
func (t *Tokenizer) SetLastStartTag(name token.TagName) { t.lastStartTag = name }

// AllowCDATA tells the tokenizer whether a `<![CDATA[` section should be
// parsed as CDATA (true, only valid in foreign content per spec section 1)
// or as a bogus comment (false, the HTML-content default). The tree
// package never calls it, so a tree parse always treats `<![CDATA[` as a
// bogus comment.
func (t *Tokenizer) AllowCDATA(allowed bool) { t.cdataAllowed = allowed }

// SuppressNextRawText sets a one-shot flag that no tokenizer state reads,
// so calling it has no effect. The tokenizer never enters RAWTEXT on its
// own; the tree constructor selects RAWTEXT through SetState, and for
// <noscript> with scripting disabled it simply does not.
func (t *Tokenizer) SuppressNextRawText() { t.suppressRawText = true }

// Errors returns every ParseError raised so far, in emission order.
func (t *Tokenizer) Errors() []*ParseError { return t.errs }

func (t *Tokenizer) errorf(code ErrorCode) {
	line, col := t.src.Position()
	t.errs = append(t.errs, &ParseError{Code: code, Line: line, Col: col})
}

// Next returns the next Token in the sequence. Once it has returned an EOF
// token, every subsequent call returns EOF again.
func (t *Tokenizer) Next() (token.Token, error) {
	if t.done {
		return token.EOFToken, nil
	}
	for len(t.queue) == 0 {
		if err := t.step(); err != nil {
			return token.Token{}, err
		}
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	if tok.Kind == token.KindEOF {
		t.done = true
	}
	return tok, nil
}

// read returns the next Character to process: either the one set aside by
// reconsume, or a freshly read one from the source.
func (t *Tokenizer) read() token.Character {
	if t.reconsume {
		t.reconsume = false
		return t.lastChar
	}
	ch := t.src.Next()
	t.lastChar = ch
	return ch
}

// setReconsume arranges for the driver's next call to read() to return ch
// again, feeding it to the newly entered state (spec section 4.2,
// "Reconsume").
func (t *Tokenizer) setReconsume(ch token.Character) {
	t.lastChar = ch
	t.reconsume = true
}

// emit pushes a fully built token onto the output queue, flushing any
// pending coalesced Characters run first if tok is not itself a
// Character/Characters token.
func (t *Tokenizer) emit(tok token.Token) {
	if tok.IsCharacterLike() {
		if t.coalesce {
			t.pendingChars = append(t.pendingChars, []rune(characterRunOf(tok))...)
			return
		}
		t.queue = append(t.queue, tok)
		return
	}
	t.flushPendingChars()
	t.queue = append(t.queue, tok)
}

func characterRunOf(tok token.Token) string {
	if tok.Kind == token.KindCharacter {
		return string(tok.Char)
	}
	return tok.Text
}

func (t *Tokenizer) flushPendingChars() {
	if len(t.pendingChars) == 0 {
		return
	}
	t.queue = append(t.queue, token.NewCharacters(string(t.pendingChars)))
	t.pendingChars = nil
}

// emitChar is a convenience wrapper used by the content-state family.
func (t *Tokenizer) emitChar(r rune) { t.emit(token.NewCharacter(r)) }

// emitEOF flushes pending characters and emits the terminal EOF token,
// entering Term (spec section 4.2, "Term").
func (t *Tokenizer) emitEOF() {
	t.flushPendingChars()
	t.queue = append(t.queue, token.EOFToken)
	t.state = Term
}

func (t *Tokenizer) emitStartTag() {
	tok := t.tag.finalize()
	if !tok.SelfClosing {
		t.lastStartTag = tok.Name
	}
	t.emit(tok)
}

func (t *Tokenizer) emitEndTag() {
	tok := t.tag.finalize()
	if len(tok.Attrs) > 0 || tok.SelfClosing {
		// Per spec section 4.2 this is tolerated but unusual; no dedicated
		// error code is listed for it, so it is only surfaced via the
		// attribute-sublanguage errors raised while it was being built.
		tok.Attrs = nil
		tok.SelfClosing = false
	}
	t.emit(tok)
}

func (t *Tokenizer) emitComment() {
	t.emit(token.NewComment(string(t.comment)))
	t.comment = nil
}

func (t *Tokenizer) emitDoctype() {
	t.emit(t.doctype.finalize())
	t.doctype = doctypeBuilder{}
}

// appropriateEndTag reports whether the tag currently being built in an
// RCDATA/RAWTEXT/ScriptData end-tag-name state is "appropriate": its name
// equals the last emitted start tag's name (spec section 4.2).
func (t *Tokenizer) appropriateEndTag() bool {
	return strings.EqualFold(string(t.tag.name), t.lastStartTag.String()) && t.lastStartTag.String() != ""
}

// step advances the state machine by exactly one transition, possibly
// enqueuing zero or more tokens.
func (t *Tokenizer) step() error {
	switch {
	case t.state < scriptEscapeStatesBegin:
		return t.stepContent()
	case t.state < attributeStatesBegin:
		return t.stepScriptEscape()
	case t.state < markupStatesBegin:
		return t.stepAttribute()
	case t.state < doctypeStatesBegin:
		return t.stepMarkup()
	case t.state < cdataStatesBegin:
		return t.stepDoctype()
	case t.state < charrefStatesBegin:
		return t.stepCdata()
	case t.state < Term:
		return t.stepCharacterReference()
	default: // Term
		t.emitEOF()
		return nil
	}
}

// Family boundaries, expressed as the first state constant of the next
// family, so step can dispatch with simple range comparisons instead of a
// seventy-way switch at the top level.
const (
	scriptEscapeStatesBegin = ScriptDataEscapeStart
	attributeStatesBegin    = BeforeAttributeName
	markupStatesBegin       = BogusComment
	doctypeStatesBegin      = Doctype
	cdataStatesBegin        = CdataSection
	charrefStatesBegin      = CharacterReference
)
