package tokenizer

import "github.com/dpotapov/html5parser/token"

// stepContent implements the Data/RcData/RawText/ScriptData/PlainText
// content states, tag-open framing, and the three *LessThanSign/*EndTagOpen/
// *EndTagName sublanguages that let RCDATA/RAWTEXT/ScriptData recognize an
// appropriate closing tag (spec section 4.2, "Content states" and
// "Tag framing").
func (t *Tokenizer) stepContent() error {
	switch t.state {
	case Data:
		return t.stepData()
	case RcData:
		return t.stepRcData()
	case RawText:
		return t.stepRawText()
	case ScriptData:
		return t.stepScriptData()
	case PlainText:
		return t.stepPlainText()
	case TagOpen:
		return t.stepTagOpen()
	case EndTagOpen:
		return t.stepEndTagOpen()
	case TagName:
		return t.stepTagName()
	case RcDataLessThanSign:
		return t.stepSublanguageLessThanSign(RcDataEndTagOpen, RcData)
	case RcDataEndTagOpen:
		return t.stepSublanguageEndTagOpen(RcDataEndTagName, RcData)
	case RcDataEndTagName:
		return t.stepSublanguageEndTagName(RcData)
	case RawTextLessThanSign:
		return t.stepSublanguageLessThanSign(RawTextEndTagOpen, RawText)
	case RawTextEndTagOpen:
		return t.stepSublanguageEndTagOpen(RawTextEndTagName, RawText)
	case RawTextEndTagName:
		return t.stepSublanguageEndTagName(RawText)
	case ScriptDataLessThanSign:
		return t.stepScriptDataLessThanSign()
	case ScriptDataEndTagOpen:
		return t.stepSublanguageEndTagOpen(ScriptDataEndTagName, ScriptData)
	case ScriptDataEndTagName:
		return t.stepSublanguageEndTagName(ScriptData)
	case SelfClosingStartTag:
		return t.stepSelfClosingStartTag()
	}
	return newStateTransitionError(t.state, "stepContent")
}

func (t *Tokenizer) stepData() error {
	ch := t.read()
	switch {
	case ch.Kind == token.CharEof:
		t.emitEOF()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0)
	case charRune(ch) == '&':
		t.beginCharacterReference(Data)
	case charRune(ch) == '<':
		t.state = TagOpen
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepRcData() error {
	ch := t.read()
	switch {
	case ch.Kind == token.CharEof:
		t.emitEOF()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
	case charRune(ch) == '&':
		t.beginCharacterReference(RcData)
	case charRune(ch) == '<':
		t.state = RcDataLessThanSign
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepRawText() error {
	ch := t.read()
	switch {
	case ch.Kind == token.CharEof:
		t.emitEOF()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
	case charRune(ch) == '<':
		t.state = RawTextLessThanSign
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepScriptData() error {
	ch := t.read()
	switch {
	case ch.Kind == token.CharEof:
		t.emitEOF()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
	case charRune(ch) == '<':
		t.state = ScriptDataLessThanSign
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepPlainText() error {
	ch := t.read()
	switch {
	case ch.Kind == token.CharEof:
		t.emitEOF()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepTagOpen() error {
	ch := t.read()
	switch {
	case charRune(ch) == '!':
		t.state = MarkupDeclarationOpen
	case charRune(ch) == '/':
		t.state = EndTagOpen
	case ch.Kind != token.CharEof && token.IsASCIIAlpha(charRune(ch)):
		t.tag.reset(false)
		t.setReconsume(ch)
		t.state = TagName
	case charRune(ch) == '?':
		t.errorf(UnexpectedQuestionMarkInsteadOfTagName)
		t.comment = nil
		t.setReconsume(ch)
		t.state = BogusComment
	case ch.Kind == token.CharEof:
		t.errorf(EofBeforeTagName)
		t.emitChar('<')
		t.emitEOF()
	default:
		t.errorf(InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		t.setReconsume(ch)
		t.state = Data
	}
	return nil
}

func (t *Tokenizer) stepEndTagOpen() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIAlpha(charRune(ch)):
		t.tag.reset(true)
		t.setReconsume(ch)
		t.state = TagName
	case charRune(ch) == '>':
		t.errorf(MissingEndTagName)
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		t.emitEOF()
	default:
		t.errorf(InvalidFirstCharacterOfTagName)
		t.comment = nil
		t.setReconsume(ch)
		t.state = BogusComment
	}
	return nil
}

func (t *Tokenizer) stepTagName() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BeforeAttributeName
	case charRune(ch) == '/':
		t.state = SelfClosingStartTag
	case charRune(ch) == '>':
		t.finishTag()
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.tag.name = append(t.tag.name, token.ToASCIILower(charRune(ch)))
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.tag.name = append(t.tag.name, 0xFFFD)
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.tag.name = append(t.tag.name, charRune(ch))
	}
	return nil
}

// finishTag emits the in-progress tag as a start or end tag and always
// transitions out of tag framing back to Data, whatever the tag's name
// (the tree constructor
// overrides this via SetState right after consuming the token, for
// RCDATA/RAWTEXT/ScriptData/PlainText elements).
func (t *Tokenizer) finishTag() {
	t.state = Data
	if t.tag.isEndTag {
		t.emitEndTag()
		return
	}
	t.emitStartTag()
}

// stepSublanguageLessThanSign implements the shared shape of
// RcDataLessThanSign/RawTextLessThanSign: '/' starts a candidate end tag,
// anything else flushes '<' verbatim and returns to contentState.
func (t *Tokenizer) stepSublanguageLessThanSign(open State, contentState State) error {
	ch := t.read()
	if charRune(ch) == '/' {
		t.tag.reset(true)
		t.state = open
		return nil
	}
	t.emitChar('<')
	t.setReconsume(ch)
	t.state = contentState
	return nil
}

// stepSublanguageEndTagOpen implements RcDataEndTagOpen/RawTextEndTagOpen/
// ScriptDataEndTagOpen: an alpha starts accumulating the candidate end-tag
// name; anything else flushes "</" verbatim.
func (t *Tokenizer) stepSublanguageEndTagOpen(nameState State, contentState State) error {
	ch := t.read()
	if ch.Kind != token.CharEof && token.IsASCIIAlpha(charRune(ch)) {
		t.setReconsume(ch)
		t.state = nameState
		return nil
	}
	t.emitChar('<')
	t.emitChar('/')
	t.setReconsume(ch)
	t.state = contentState
	return nil
}

// stepSublanguageEndTagName implements RcDataEndTagName/RawTextEndTagName/
// ScriptDataEndTagName: the "appropriate end tag" contract from spec
// section 4.2 — only an appropriate end tag is allowed to leave the
// sublanguage via whitespace/'/'/'>'; otherwise every tentatively matched
// character is flushed as Character tokens and the state reverts to
// contentState.
func (t *Tokenizer) stepSublanguageEndTagName(contentState State) error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)) && t.appropriateEndTag():
		t.state = BeforeAttributeName
		return nil
	case charRune(ch) == '/' && t.appropriateEndTag():
		t.state = SelfClosingStartTag
		return nil
	case charRune(ch) == '>' && t.appropriateEndTag():
		t.finishTag()
		return nil
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.tag.name = append(t.tag.name, token.ToASCIILower(charRune(ch)))
		return nil
	case ch.Kind != token.CharEof && token.IsASCIILowerAlpha(charRune(ch)):
		t.tag.name = append(t.tag.name, charRune(ch))
		return nil
	default:
		t.flushAnythingElseEndTagName(contentState)
		t.setReconsume(ch)
		return nil
	}
}

// flushAnythingElseEndTagName implements the "Anything else" branch shared
// by the three end-tag-name sublanguage states: emit "</" plus every
// character matched so far, verbatim, and go back to contentState.
func (t *Tokenizer) flushAnythingElseEndTagName(contentState State) {
	t.emitChar('<')
	t.emitChar('/')
	for _, r := range t.tag.name {
		t.emitChar(r)
	}
	t.state = contentState
}

func (t *Tokenizer) stepSelfClosingStartTag() error {
	ch := t.read()
	switch {
	case charRune(ch) == '>':
		t.tag.selfClosing = true
		t.finishTag()
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.errorf(UnexpectedSolidusInTag)
		t.setReconsume(ch)
		t.state = BeforeAttributeName
	}
	return nil
}
