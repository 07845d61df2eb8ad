package tree

import (
	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/dpotapov/html5parser/tokenizer"
)

// whitespace reports whether r is one of the five ASCII characters spec
// section 3 treats as document whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// splitLeadingWhitespace splits s into its longest whitespace prefix and
// the remainder, used by insertion modes that special-case whitespace
// characters token-by-token even though the tokenizer coalesces runs.
func splitLeadingWhitespace(s string) (ws, rest string) {
	for i, r := range s {
		if !isWhitespace(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func characterData(t token.Token) string {
	if t.Kind == token.KindCharacter {
		return string(t.Char)
	}
	return t.Text
}

// initialMode implements the Initial insertion mode (spec section 4.3).
func initialMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter, token.KindCharacters:
		ws, rest := splitLeadingWhitespace(characterData(t))
		_ = ws
		if rest == "" {
			return initialMode, false
		}
		p.doc.SetQuirksMode(dom.Quirks)
		return beforeHTMLMode, true
	case token.KindComment:
		p.doc.Root().AppendChild(p.doc.NewComment(t.Data))
		return initialMode, false
	case token.KindDoctype:
		name := t.DoctypeName
		public := t.PublicID
		system := t.SystemID
		p.doc.Root().AppendChild(p.doc.NewDoctype(name, public, system))
		if quirksCheck(name, public, system, t.ForceQuirks, t.SystemIDPresent) {
			p.doc.SetQuirksMode(dom.Quirks)
		} else if limitedQuirksCheck(public, t.SystemIDPresent) {
			p.doc.SetQuirksMode(dom.LimitedQuirks)
		}
		return beforeHTMLMode, false
	default:
		p.doc.SetQuirksMode(dom.Quirks)
		return beforeHTMLMode, true
	}
}

// beforeHTMLMode implements the BeforeHtml insertion mode.
func beforeHTMLMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "before-html")
		return beforeHTMLMode, false
	case token.KindComment:
		p.doc.Root().AppendChild(p.doc.NewComment(t.Data))
		return beforeHTMLMode, false
	case token.KindCharacter, token.KindCharacters:
		_, rest := splitLeadingWhitespace(characterData(t))
		if rest == "" {
			return beforeHTMLMode, false
		}
	case token.KindStartTag:
		if t.Name.Is(token.TagHTML) {
			n := p.insertHTMLElement(t)
			_ = n
			return beforeHeadMode, false
		}
	case token.KindEndTag:
		if t.Name.In(token.TagHead, token.TagBody, token.TagHTML, token.TagBr) {
			break
		}
		p.recordError(UnexpectedEndTag, "before-html")
		return beforeHTMLMode, false
	}
	html := p.doc.NewElement(token.Of(token.TagHTML))
	p.doc.Root().AppendChild(html)
	p.oe.push(html)
	return beforeHeadMode, true
}

// beforeHeadMode implements the BeforeHead insertion mode.
func beforeHeadMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter, token.KindCharacters:
		_, rest := splitLeadingWhitespace(characterData(t))
		if rest == "" {
			return beforeHeadMode, false
		}
	case token.KindComment:
		p.insertComment(t.Data)
		return beforeHeadMode, false
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "before-head")
		return beforeHeadMode, false
	case token.KindStartTag:
		switch {
		case t.Name.Is(token.TagHTML):
			return inBodyMode(p, t)
		case t.Name.Is(token.TagHead):
			n := p.insertHTMLElement(t)
			p.head = n
			return inHeadMode, false
		}
	case token.KindEndTag:
		if t.Name.In(token.TagHead, token.TagBody, token.TagHTML, token.TagBr) {
			break
		}
		p.recordError(UnexpectedEndTag, "before-head")
		return beforeHeadMode, false
	}
	n := p.insertHTMLElement(token.NewStartTag(token.Of(token.TagHead), nil, false))
	p.head = n
	return inHeadMode, true
}

// inHeadMode implements the InHead insertion mode.
func inHeadMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter, token.KindCharacters:
		ws, rest := splitLeadingWhitespace(characterData(t))
		if ws != "" {
			p.insertCharacter(ws)
		}
		if rest == "" {
			return inHeadMode, false
		}
		// reprocess only the non-whitespace remainder in the pop-head path below
		t = token.NewCharacters(rest)
	case token.KindComment:
		p.insertComment(t.Data)
		return inHeadMode, false
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "in-head")
		return inHeadMode, false
	case token.KindStartTag:
		switch {
		case t.Name.Is(token.TagHTML):
			return inBodyMode(p, t)
		case t.Name.In(token.TagBase, token.TagBasefont, token.TagBgsound, token.TagLink):
			p.insertHTMLElement(t)
			p.oe.pop()
			t.Acknowledged = true
			return inHeadMode, false
		case t.Name.Is(token.TagMeta):
			p.insertHTMLElement(t)
			p.oe.pop()
			t.Acknowledged = true
			return inHeadMode, false
		case t.Name.Is(token.TagTitle):
			p.genericRawTextOrRCDATAParse(t, tokenizer.RcData)
			return textMode, false
		case t.Name.Is(token.TagNoscript) && p.scripting:
			p.genericRawTextOrRCDATAParse(t, tokenizer.RawText)
			return textMode, false
		case t.Name.Is(token.TagNoscript):
			p.insertHTMLElement(t)
			return inHeadNoscriptMode, false
		case t.Name.In(token.TagNoframes, token.TagStyle):
			p.genericRawTextOrRCDATAParse(t, tokenizer.RawText)
			return textMode, false
		case t.Name.Is(token.TagScript):
			n := p.doc.NewElement(t.Name)
			n.Attr = append([]token.Attribute(nil), t.Attrs...)
			p.insertNode(n)
			p.tok.SetLastStartTag(t.Name)
			p.tok.SetState(tokenizer.ScriptData)
			p.originalMode = p.mode
			return textMode, false
		case t.Name.Is(token.TagTemplate):
			p.insertHTMLElement(t)
			p.afe.pushMarker()
			p.framesetOK = false
			return inTemplateMode, false
		case t.Name.Is(token.TagHead):
			p.recordError(UnexpectedStartTag, "in-head")
			return inHeadMode, false
		}
	case token.KindEndTag:
		switch {
		case t.Name.Is(token.TagHead):
			p.oe.pop()
			return afterHeadMode, false
		case t.Name.In(token.TagBody, token.TagHTML, token.TagBr):
			// fall through to the "anything else" pop-head handling.
		case t.Name.Is(token.TagTemplate):
			return inTemplateMode, false
		default:
			p.recordError(UnexpectedEndTag, "in-head")
			return inHeadMode, false
		}
	case token.KindEOF:
		// fall through
	}
	p.oe.pop()
	return afterHeadMode, true
}

// inHeadNoscriptMode implements the InHeadNoscript insertion mode, a thin
// sibling of InHead that only runs when scripting is disabled (spec
// section 4.3): noscript content is then parsed as ordinary markup. With
// scripting enabled, InHead parses <noscript> as RAWTEXT instead and this
// mode is never entered. Script content is never executed either way.
func inHeadNoscriptMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "in-head-noscript")
		return inHeadNoscriptMode, false
	case token.KindStartTag:
		if t.Name.Is(token.TagHTML) {
			return inBodyMode(p, t)
		}
		if t.Name.In(token.TagBasefont, token.TagBgsound, token.TagLink, token.TagMeta,
			token.TagNoframes, token.TagStyle) {
			return inHeadMode(p, t)
		}
		if t.Name.In(token.TagHead, token.TagNoscript) {
			p.recordError(UnexpectedStartTag, "in-head-noscript")
			return inHeadNoscriptMode, false
		}
	case token.KindEndTag:
		if t.Name.Is(token.TagNoscript) {
			p.oe.pop()
			return inHeadMode, false
		}
		if t.Name.Is(token.TagBr) {
			// fall through
		} else {
			p.recordError(UnexpectedEndTag, "in-head-noscript")
			return inHeadNoscriptMode, false
		}
	case token.KindCharacter, token.KindCharacters:
		if _, rest := splitLeadingWhitespace(characterData(t)); rest == "" {
			return inHeadMode(p, t)
		}
	case token.KindComment:
		return inHeadMode(p, t)
	}
	p.recordError(UnexpectedEndTag, "in-head-noscript")
	p.oe.pop()
	return inHeadMode, true
}

// afterHeadMode implements the AfterHead insertion mode.
func afterHeadMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter, token.KindCharacters:
		ws, rest := splitLeadingWhitespace(characterData(t))
		if ws != "" {
			p.insertCharacter(ws)
		}
		if rest == "" {
			return afterHeadMode, false
		}
		t = token.NewCharacters(rest)
	case token.KindComment:
		p.insertComment(t.Data)
		return afterHeadMode, false
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "after-head")
		return afterHeadMode, false
	case token.KindStartTag:
		switch {
		case t.Name.Is(token.TagHTML):
			return inBodyMode(p, t)
		case t.Name.Is(token.TagBody):
			p.insertHTMLElement(t)
			p.framesetOK = false
			return inBodyMode, false
		case t.Name.Is(token.TagFrameset):
			p.insertHTMLElement(t)
			return inFramesetMode, false
		case t.Name.In(token.TagBase, token.TagBasefont, token.TagBgsound, token.TagLink,
			token.TagMeta, token.TagNoframes, token.TagScript, token.TagStyle,
			token.TagTemplate, token.TagTitle):
			p.recordError(UnexpectedStartTag, "after-head")
			p.oe.push(p.head)
			next, reprocess := inHeadMode(p, t)
			p.oe.remove(p.head)
			return next, reprocess
		case t.Name.Is(token.TagHead):
			p.recordError(UnexpectedStartTag, "after-head")
			return afterHeadMode, false
		}
	case token.KindEndTag:
		if t.Name.In(token.TagBody, token.TagHTML, token.TagBr) {
			// fall through
		} else if t.Name.Is(token.TagTemplate) {
			p.oe.push(p.head)
			next, reprocess := inHeadMode(p, t)
			p.oe.remove(p.head)
			return next, reprocess
		} else {
			p.recordError(UnexpectedEndTag, "after-head")
			return afterHeadMode, false
		}
	}
	p.insertHTMLElement(token.NewStartTag(token.Of(token.TagBody), nil, false))
	return inBodyMode, true
}

// formattingTags lists the elements spec section 3 calls "formatting
// elements": the ones InBody pushes onto the active-formatting list.
var formattingTags = []token.Tag{
	token.TagA, token.TagB, token.TagBig, token.TagCode, token.TagEm, token.TagFont,
	token.TagI, token.TagNobr, token.TagS, token.TagSmall, token.TagStrike,
	token.TagStrong, token.TagTt, token.TagU,
}

// headingTags lists h1-h6 (spec section 4.3, "any other end tag" for
// headings pops through this set as a single scope-closing family).
var headingTags = []token.Tag{token.TagH1, token.TagH2, token.TagH3, token.TagH4, token.TagH5, token.TagH6}

func closeP(p *Parser) {
	p.generateImpliedEndTags(token.TagP)
	if !p.current().Name.Is(token.TagP) {
		p.recordError(UnexpectedEndTag, "in-body")
	}
	p.popUntil(buttonScope, token.TagP)
}

// inBodyMode implements the InBody insertion mode (spec section 4.3), the
// largest and most heavily visited table row: nearly every ordinary HTML
// document spends the bulk of its tokens here.
func inBodyMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter:
		if t.Char == 0 {
			p.recordError(UnexpectedStartTag, "in-body")
			return inBodyMode, false
		}
		p.reconstructActiveFormattingElements()
		p.insertCharacter(string(t.Char))
		if !isWhitespace(t.Char) {
			p.framesetOK = false
		}
		return inBodyMode, false

	case token.KindCharacters:
		p.reconstructActiveFormattingElements()
		p.insertCharacter(t.Text)
		for _, r := range t.Text {
			if !isWhitespace(r) {
				p.framesetOK = false
				break
			}
		}
		return inBodyMode, false

	case token.KindComment:
		p.insertComment(t.Data)
		return inBodyMode, false

	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "in-body")
		return inBodyMode, false

	case token.KindEOF:
		return inBodyMode, false

	case token.KindStartTag:
		return inBodyStartTag(p, t)

	case token.KindEndTag:
		return inBodyEndTag(p, t)
	}
	return inBodyMode, false
}

func inBodyStartTag(p *Parser, t token.Token) (insertionMode, bool) {
	switch {
	case t.Name.Is(token.TagHTML):
		p.recordError(UnexpectedStartTagHTML, "in-body")
		if len(p.oe) > 0 {
			p.oe[0].Attr = mergeMissingAttrs(p.oe[0].Attr, t.Attrs)
		}
		return inBodyMode, false

	case t.Name.In(token.TagBase, token.TagBasefont, token.TagBgsound, token.TagLink,
		token.TagMeta, token.TagNoframes, token.TagScript, token.TagStyle,
		token.TagTemplate, token.TagTitle):
		return inHeadMode(p, t)

	case t.Name.Is(token.TagBody):
		p.recordError(UnexpectedStartTag, "in-body")
		if len(p.oe) >= 2 {
			p.oe[1].Attr = mergeMissingAttrs(p.oe[1].Attr, t.Attrs)
		}
		p.framesetOK = false
		return inBodyMode, false

	case t.Name.Is(token.TagFrameset):
		p.recordError(UnexpectedStartTag, "in-body")
		return inBodyMode, false

	case t.Name.In(token.TagAddress, token.TagArticle, token.TagAside, token.TagBlockquote,
		token.TagCenter, token.TagDetails, token.TagDialog, token.TagDir, token.TagDiv,
		token.TagDl, token.TagFieldset, token.TagFigcaption, token.TagFigure, token.TagFooter,
		token.TagHeader, token.TagHgroup, token.TagMain, token.TagMenu, token.TagNav,
		token.TagOl, token.TagP, token.TagSection, token.TagSummary, token.TagUl):
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.In(headingTags...):
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		if p.current().Name.In(headingTags...) {
			p.recordError(UnexpectedStartTag, "in-body")
			p.oe.pop()
		}
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.In(token.TagPre, token.TagListing):
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		p.framesetOK = false
		return inBodyMode, false

	case t.Name.Is(token.TagForm):
		if p.form != nil {
			p.recordError(UnexpectedStartTag, "in-body")
			return inBodyMode, false
		}
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		n := p.insertHTMLElement(t)
		p.form = n
		return inBodyMode, false

	case t.Name.Is(token.TagLi):
		p.framesetOK = false
		for i := len(p.oe) - 1; i >= 0; i-- {
			n := p.oe[i]
			if n.Namespace == token.HTML && n.Name.Is(token.TagLi) {
				p.generateImpliedEndTags(token.TagLi)
				p.popUntil(listItemScope, token.TagLi)
				break
			}
			if isSpecialElement(n) && !n.Name.In(token.TagAddress, token.TagDiv, token.TagP) {
				break
			}
		}
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.In(token.TagDd, token.TagDt):
		p.framesetOK = false
		for i := len(p.oe) - 1; i >= 0; i-- {
			n := p.oe[i]
			if n.Namespace == token.HTML && n.Name.In(token.TagDd, token.TagDt) {
				p.generateImpliedEndTags(n.Name.ID())
				p.popUntil(defaultScope, n.Name.ID())
				break
			}
			if isSpecialElement(n) && !n.Name.In(token.TagAddress, token.TagDiv, token.TagP) {
				break
			}
		}
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.Is(token.TagPlaintext):
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		p.tok.SetState(tokenizer.PlainText)
		return inBodyMode, false

	case t.Name.Is(token.TagButton):
		if p.elementInScope(defaultScope, token.TagButton) {
			p.recordError(UnexpectedStartTag, "in-body")
			p.generateImpliedEndTags(token.TagOther)
			p.popUntil(defaultScope, token.TagButton)
		}
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		p.framesetOK = false
		return inBodyMode, false

	case t.Name.Is(token.TagA):
		if existing := p.afe.findFormattingElement(t.Name); existing != nil {
			p.recordError(UnexpectedStartTag, "in-body")
			p.adoptionAgency(t.Name)
			p.afe.remove(existing)
			p.oe.remove(existing)
		}
		p.reconstructActiveFormattingElements()
		n := p.insertHTMLElement(t)
		p.addFormattingElement(n)
		return inBodyMode, false

	case t.Name.In(formattingTags...):
		p.reconstructActiveFormattingElements()
		n := p.insertHTMLElement(t)
		p.addFormattingElement(n)
		return inBodyMode, false

	case t.Name.In(token.TagApplet, token.TagMarquee, token.TagObject):
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		p.afe.pushMarker()
		p.framesetOK = false
		return inBodyMode, false

	case t.Name.Is(token.TagTable):
		if p.doc.QuirksMode() != dom.Quirks && p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		p.framesetOK = false
		return inTableMode, false

	case t.Name.In(token.TagArea, token.TagBr, token.TagEmbed, token.TagImg,
		token.TagKeygen, token.TagWbr):
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		p.oe.pop()
		t.Acknowledged = true
		p.framesetOK = false
		return inBodyMode, false

	case t.Name.Is(token.TagInput):
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		p.oe.pop()
		t.Acknowledged = true
		if typ, ok := t.Attr("type"); !ok || !equalFoldASCII(typ, "hidden") {
			p.framesetOK = false
		}
		return inBodyMode, false

	case t.Name.In(token.TagParam, token.TagSource, token.TagTrack):
		p.insertHTMLElement(t)
		p.oe.pop()
		t.Acknowledged = true
		return inBodyMode, false

	case t.Name.Is(token.TagHr):
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.insertHTMLElement(t)
		p.oe.pop()
		t.Acknowledged = true
		p.framesetOK = false
		return inBodyMode, false

	case t.Name.String() == "image":
		p.recordError(UnexpectedStartTag, "in-body")
		t.Name = token.Of(token.TagImg)
		return inBodyStartTag(p, t)

	case t.Name.Is(token.TagTextarea):
		p.genericRawTextOrRCDATAParse(t, tokenizer.RcData)
		p.framesetOK = false
		return textMode, false

	case t.Name.Is(token.TagXmp):
		if p.elementInScope(buttonScope, token.TagP) {
			closeP(p)
		}
		p.reconstructActiveFormattingElements()
		p.framesetOK = false
		p.genericRawTextOrRCDATAParse(t, tokenizer.RawText)
		return textMode, false

	case t.Name.Is(token.TagIframe):
		p.framesetOK = false
		p.genericRawTextOrRCDATAParse(t, tokenizer.RawText)
		return textMode, false

	case t.Name.Is(token.TagNoembed):
		p.genericRawTextOrRCDATAParse(t, tokenizer.RawText)
		return textMode, false

	case t.Name.Is(token.TagNoscript) && p.scripting:
		p.genericRawTextOrRCDATAParse(t, tokenizer.RawText)
		return textMode, false

	case t.Name.Is(token.TagSelect):
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		p.framesetOK = false
		return inSelectMode, false

	case t.Name.In(token.TagOptgroup, token.TagOption):
		if p.current().Name.Is(token.TagOption) {
			p.oe.pop()
		}
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.In(token.TagRb, token.TagRtc):
		if p.elementInScope(defaultScope, token.TagRuby) {
			p.generateImpliedEndTags(token.TagOther)
		}
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.In(token.TagRp, token.TagRt):
		if p.elementInScope(defaultScope, token.TagRuby) {
			p.generateImpliedEndTags(token.TagRtc)
		}
		p.insertHTMLElement(t)
		return inBodyMode, false

	case t.Name.In(token.TagMath, token.TagSvg):
		p.reconstructActiveFormattingElements()
		ns := token.MathML
		if t.Name.Is(token.TagSvg) {
			ns = token.SVG
		}
		p.insertForeignElement(t, ns)
		if t.SelfClosing {
			p.oe.pop()
		}
		t.Acknowledged = true
		return inBodyMode, false

	case t.Name.In(token.TagCaption, token.TagCol, token.TagColgroup, token.TagFrame,
		token.TagHead, token.TagTbody, token.TagTd, token.TagTfoot, token.TagTh,
		token.TagThead, token.TagTr):
		p.recordError(UnexpectedStartTag, "in-body")
		return inBodyMode, false

	default:
		p.reconstructActiveFormattingElements()
		p.insertHTMLElement(t)
		return inBodyMode, false
	}
}

func inBodyEndTag(p *Parser, t token.Token) (insertionMode, bool) {
	switch {
	case t.Name.Is(token.TagBody):
		if !p.elementInScope(defaultScope, token.TagBody) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		return afterBodyMode, false

	case t.Name.Is(token.TagHTML):
		if !p.elementInScope(defaultScope, token.TagBody) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		return afterBodyMode, true

	case t.Name.In(token.TagAddress, token.TagArticle, token.TagAside, token.TagBlockquote,
		token.TagButton, token.TagCenter, token.TagDetails, token.TagDialog, token.TagDir,
		token.TagDiv, token.TagDl, token.TagFieldset, token.TagFigcaption, token.TagFigure,
		token.TagFooter, token.TagHeader, token.TagHgroup, token.TagMain, token.TagMenu,
		token.TagNav, token.TagOl, token.TagSection, token.TagSummary, token.TagUl):
		if !p.elementInScope(defaultScope, t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		p.generateImpliedEndTags(token.TagOther)
		if !p.current().Name.Is(t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
		}
		p.popUntil(defaultScope, t.Name.ID())
		return inBodyMode, false

	case t.Name.Is(token.TagForm):
		if p.form == nil || !p.elementInScope(defaultScope, token.TagForm) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		node := p.form
		p.form = nil
		p.generateImpliedEndTags(token.TagOther)
		if p.current() != node {
			p.recordError(UnexpectedEndTag, "in-body")
		}
		p.oe.remove(node)
		return inBodyMode, false

	case t.Name.Is(token.TagP):
		if !p.elementInScope(buttonScope, token.TagP) {
			p.recordError(UnexpectedEndTag, "in-body")
			p.insertHTMLElement(token.NewStartTag(token.Of(token.TagP), nil, false))
		}
		closeP(p)
		return inBodyMode, false

	case t.Name.Is(token.TagLi):
		if !p.elementInScope(listItemScope, token.TagLi) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		p.generateImpliedEndTags(token.TagLi)
		if !p.current().Name.Is(token.TagLi) {
			p.recordError(UnexpectedEndTag, "in-body")
		}
		p.popUntil(listItemScope, token.TagLi)
		return inBodyMode, false

	case t.Name.In(token.TagDd, token.TagDt):
		if !p.elementInScope(defaultScope, t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		p.generateImpliedEndTags(t.Name.ID())
		if !p.current().Name.Is(t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
		}
		p.popUntil(defaultScope, t.Name.ID())
		return inBodyMode, false

	case t.Name.In(headingTags...):
		if !p.elementInScope(defaultScope, headingTags...) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		p.generateImpliedEndTags(token.TagOther)
		if !p.current().Name.Is(t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
		}
		p.popUntil(defaultScope, headingTags...)
		return inBodyMode, false

	case t.Name.In(formattingTags...):
		p.adoptionAgency(t.Name)
		return inBodyMode, false

	case t.Name.In(token.TagApplet, token.TagMarquee, token.TagObject):
		if !p.elementInScope(defaultScope, t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
			return inBodyMode, false
		}
		p.generateImpliedEndTags(token.TagOther)
		if !p.current().Name.Is(t.Name.ID()) {
			p.recordError(UnexpectedEndTag, "in-body")
		}
		p.popUntil(defaultScope, t.Name.ID())
		p.afe.clearToLastMarker()
		return inBodyMode, false

	case t.Name.Is(token.TagBr):
		p.recordError(UnexpectedStartTag, "in-body")
		p.reconstructActiveFormattingElements()
		n := p.doc.NewElement(token.Of(token.TagBr))
		p.insertNode(n)
		p.oe.pop()
		p.framesetOK = false
		return inBodyMode, false

	default:
		p.anyOtherEndTag(t.Name)
		return inBodyMode, false
	}
}

// mergeMissingAttrs implements spec section 4.3's "for each attribute...if
// no attribute... is already present, add it" step used when a spurious
// <html>/<body> start tag is encountered in body content.
func mergeMissingAttrs(dst []token.Attribute, src []token.Attribute) []token.Attribute {
	for _, a := range src {
		found := false
		for _, d := range dst {
			if d.Name == a.Name {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, a)
		}
	}
	return dst
}

// textMode implements the Text insertion mode (spec section 4.3): used
// while consuming an RCDATA/RAWTEXT/script-data element's content.
func textMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter:
		p.insertCharacter(string(t.Char))
		return textMode, false
	case token.KindCharacters:
		p.insertCharacter(t.Text)
		return textMode, false
	case token.KindEOF:
		p.recordError(UnexpectedEndTag, "text")
		p.oe.pop()
		return p.originalMode, true
	case token.KindEndTag:
		if t.Name.Is(token.TagScript) {
			p.oe.pop()
			return p.originalMode, false
		}
		p.oe.pop()
		return p.originalMode, false
	}
	return textMode, false
}

// afterBodyMode implements the AfterBody insertion mode.
func afterBodyMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter, token.KindCharacters:
		if _, rest := splitLeadingWhitespace(characterData(t)); rest == "" {
			return inBodyMode(p, t)
		}
	case token.KindComment:
		p.oe[0].AppendChild(p.doc.NewComment(t.Data))
		return afterBodyMode, false
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "after-body")
		return afterBodyMode, false
	case token.KindStartTag:
		if t.Name.Is(token.TagHTML) {
			return inBodyMode(p, t)
		}
	case token.KindEndTag:
		if t.Name.Is(token.TagHTML) {
			return afterAfterBodyMode, false
		}
	case token.KindEOF:
		return afterBodyMode, false
	}
	p.recordError(UnexpectedStartTag, "after-body")
	return inBodyMode, true
}

// afterAfterBodyMode implements the AfterAfterBody insertion mode.
func afterAfterBodyMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindComment:
		p.doc.Root().AppendChild(p.doc.NewComment(t.Data))
		return afterAfterBodyMode, false
	case token.KindDoctype:
		return inBodyMode(p, t)
	case token.KindCharacter, token.KindCharacters:
		if _, rest := splitLeadingWhitespace(characterData(t)); rest == "" {
			return inBodyMode(p, t)
		}
	case token.KindStartTag:
		if t.Name.Is(token.TagHTML) {
			return inBodyMode(p, t)
		}
	case token.KindEOF:
		return afterAfterBodyMode, false
	}
	p.recordError(UnexpectedStartTag, "after-after-body")
	return inBodyMode, true
}

// inCaptionMode implements the InCaption insertion mode "for real" (spec
// section 4.5's table-mode commitment): it is structurally simple enough
// that this core resolves it with the same close/popUntil primitives
// InBody uses, rather than stubbing it alongside the remaining table
// modes.
func inCaptionMode(p *Parser, t token.Token) (insertionMode, bool) {
	closeCaption := func() bool {
		if !p.elementInScope(tableScope, token.TagCaption) {
			p.recordError(UnexpectedEndTag, "in-caption")
			return false
		}
		p.generateImpliedEndTags(token.TagOther)
		if !p.current().Name.Is(token.TagCaption) {
			p.recordError(UnexpectedEndTag, "in-caption")
		}
		p.popUntil(tableScope, token.TagCaption)
		p.afe.clearToLastMarker()
		return true
	}

	switch t.Kind {
	case token.KindEndTag:
		switch {
		case t.Name.Is(token.TagCaption):
			if closeCaption() {
				return inTableMode, false
			}
			return inCaptionMode, false
		case t.Name.Is(token.TagTable):
			if closeCaption() {
				return inTableMode, true
			}
			return inCaptionMode, false
		case t.Name.In(token.TagBody, token.TagCol, token.TagColgroup, token.TagHTML,
			token.TagTbody, token.TagTd, token.TagTfoot, token.TagTh, token.TagThead, token.TagTr):
			p.recordError(UnexpectedEndTag, "in-caption")
			return inCaptionMode, false
		}
	case token.KindStartTag:
		if t.Name.In(token.TagCaption, token.TagCol, token.TagColgroup, token.TagTbody,
			token.TagTd, token.TagTfoot, token.TagTh, token.TagThead, token.TagTr) {
			if closeCaption() {
				return inTableMode, true
			}
			return inCaptionMode, false
		}
	}
	return inBodyMode(p, t)
}

// inColumnGroupMode implements the InColumnGroup insertion mode "for
// real", the second table mode spec section 4.5 singles out as simple
// enough to resolve directly rather than stub.
func inColumnGroupMode(p *Parser, t token.Token) (insertionMode, bool) {
	switch t.Kind {
	case token.KindCharacter, token.KindCharacters:
		ws, rest := splitLeadingWhitespace(characterData(t))
		if ws != "" {
			p.insertCharacter(ws)
		}
		if rest == "" {
			return inColumnGroupMode, false
		}
	case token.KindComment:
		p.insertComment(t.Data)
		return inColumnGroupMode, false
	case token.KindDoctype:
		p.recordError(UnexpectedDoctype, "in-column-group")
		return inColumnGroupMode, false
	case token.KindStartTag:
		switch {
		case t.Name.Is(token.TagHTML):
			return inBodyMode(p, t)
		case t.Name.Is(token.TagCol):
			p.insertHTMLElement(t)
			p.oe.pop()
			t.Acknowledged = true
			return inColumnGroupMode, false
		case t.Name.Is(token.TagTemplate):
			return inHeadMode(p, t)
		}
	case token.KindEndTag:
		switch {
		case t.Name.Is(token.TagColgroup):
			if !p.current().Name.Is(token.TagColgroup) {
				p.recordError(UnexpectedEndTag, "in-column-group")
				return inColumnGroupMode, false
			}
			p.oe.pop()
			return inTableMode, false
		case t.Name.Is(token.TagCol):
			p.recordError(UnexpectedEndTag, "in-column-group")
			return inColumnGroupMode, false
		case t.Name.Is(token.TagTemplate):
			return inHeadMode(p, t)
		}
	case token.KindEOF:
		return inBodyMode(p, t)
	}
	if !p.current().Name.Is(token.TagColgroup) {
		p.recordError(UnexpectedEndTag, "in-column-group")
		return inColumnGroupMode, false
	}
	p.oe.pop()
	return inTableMode, true
}

// stubMode raises the fatal state-transition error for an insertion mode
// spec section 4.5 scopes out of this core (InTableBody, InRow, InCell,
// InSelect, InSelectInTable, InTemplate,
// InFrameset, AfterFrameset, AfterAfterFrameset — see SPEC_FULL.md's table
// for the full list and rationale). It returns the current mode unchanged
// so callers that (incorrectly) keep consuming tokens after a fatal error
// don't also nil-pointer-panic on a missing mode function.
func (p *Parser) stubMode(name string) (insertionMode, bool) {
	p.fatal = newStateTransitionError(name, "insertion mode not implemented")
	return p.mode, false
}
