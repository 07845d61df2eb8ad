package tree

import (
	"io"

	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/dpotapov/html5parser/tokenizer"
)

// fragmentInitialMode picks the insertion mode a fragment parse starts in,
// and the tokenizer content state the context element implies (spec
// section 4.4 supplement, "parsing HTML fragments" step 4: "reset the
// insertion mode appropriately" plus the context-element content-model
// switch original_source/src/dom/document_fragment.rs performs before any
// token is read).
func fragmentInitialMode(context token.TagName) (insertionMode, tokenizer.State) {
	switch context.ID() {
	case token.TagTitle, token.TagTextarea:
		return textMode, tokenizer.RcData
	case token.TagStyle, token.TagXmp, token.TagIframe, token.TagNoembed, token.TagNoframes:
		return textMode, tokenizer.RawText
	case token.TagScript:
		return textMode, tokenizer.ScriptData
	case token.TagPlaintext:
		return textMode, tokenizer.PlainText
	case token.TagHTML:
		return beforeHeadMode, tokenizer.Data
	case token.TagHead:
		return inHeadMode, tokenizer.Data
	case token.TagBody:
		return inBodyMode, tokenizer.Data
	case token.TagTable:
		return inTableMode, tokenizer.Data
	case token.TagCaption:
		return inCaptionMode, tokenizer.Data
	case token.TagColgroup:
		return inColumnGroupMode, tokenizer.Data
	case token.TagSelect:
		return inSelectMode, tokenizer.Data
	case token.TagTemplate:
		return inTemplateMode, tokenizer.Data
	case token.TagFrameset:
		return inFramesetMode, tokenizer.Data
	default:
		return inBodyMode, tokenizer.Data
	}
}

// ParseFragment implements spec section 4.4's supplemented "parsing HTML
// fragments" algorithm: it builds a dom.Fragment by running the ordinary
// tree constructor seeded with a synthetic <html> root and a context
// element that determines the initial insertion mode and tokenizer content
// state, per original_source/src/dom/document_fragment.rs. The context
// element itself is never inserted into the result; only its descendants
// (the fragment's children) are returned.
func ParseFragment(r io.Reader, context token.TagName, opts ...Option) (*dom.Fragment, error) {
	cfg := &config{logger: nil}
	for _, opt := range opts {
		opt(cfg)
	}

	frag := dom.NewFragment(context)
	doc := frag.Document()

	mode, tokState := fragmentInitialMode(context)

	p := &Parser{
		doc:        doc,
		tok:        tokenizer.New(r, tokenizer.WithInitialState(tokState), tokenizer.WithLastStartTag(context)),
		mode:         mode,
		originalMode: inBodyMode,
		framesetOK:   true,
		scripting:  cfg.scriptingEnabled,
		logger:     cfg.logger,
	}

	html := doc.NewElement(token.Of(token.TagHTML))
	p.oe.push(html)

	ctxNode := doc.NewElement(context)
	p.fragmentContext = ctxNode

	if context.Is(token.TagForm) {
		p.form = ctxNode
	}

	if err := p.Run(); err != nil {
		return nil, err
	}

	for c := html.FirstChild; c != nil; {
		next := c.NextSibling
		html.RemoveChild(c)
		frag.Root.AppendChild(c)
		c = next
	}

	return frag, nil
}
