package tokenizer

import "github.com/dpotapov/html5parser/token"

// stepAttribute implements the attribute sublanguage shared by start and
// end tags (spec section 4.2, "Attribute states"): BeforeAttributeName
// through AfterAttributeValueQuoted.
func (t *Tokenizer) stepAttribute() error {
	switch t.state {
	case BeforeAttributeName:
		return t.stepBeforeAttributeName()
	case AttributeName:
		return t.stepAttributeName()
	case AfterAttributeName:
		return t.stepAfterAttributeName()
	case BeforeAttributeValue:
		return t.stepBeforeAttributeValue()
	case AttributeValueDoubleQuoted:
		return t.stepAttributeValueQuoted('"')
	case AttributeValueSingleQuoted:
		return t.stepAttributeValueQuoted('\'')
	case AttributeValueUnquoted:
		return t.stepAttributeValueUnquoted()
	case AfterAttributeValueQuoted:
		return t.stepAfterAttributeValueQuoted()
	}
	return newStateTransitionError(t.state, "stepAttribute")
}

func (t *Tokenizer) stepBeforeAttributeName() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '/' || charRune(ch) == '>' || ch.Kind == token.CharEof:
		t.tag.flushAttr()
		t.setReconsume(ch)
		t.state = AfterAttributeName
	case charRune(ch) == '=':
		t.errorf(UnexpectedEqualsSignBeforeAttributeName)
		t.tag.flushAttr()
		t.startAttrName(token.ToASCIILower(charRune(ch)))
		t.state = AttributeName
	default:
		t.tag.flushAttr()
		t.setReconsume(ch)
		t.startAttrNamePending()
		t.state = AttributeName
	}
	return nil
}

// startAttrNamePending begins a new attribute name without consuming a
// character yet (used when the actual first character is handled by
// reconsume in AttributeName).
func (t *Tokenizer) startAttrNamePending() {
	t.tag.curName = nil
	t.tag.curValue = nil
	t.tag.curNameStarted = true
}

func (t *Tokenizer) startAttrName(r rune) {
	t.tag.curName = []rune{r}
	t.tag.curValue = nil
	t.tag.curNameStarted = true
}

func (t *Tokenizer) stepAttributeName() error {
	ch := t.read()
	switch {
	case ch.Kind == token.CharEof || (token.IsASCIIWhitespace(charRune(ch)) || charRune(ch) == '/' || charRune(ch) == '>'):
		t.setReconsume(ch)
		t.state = AfterAttributeName
	case charRune(ch) == '=':
		t.state = BeforeAttributeValue
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.tag.curName = append(t.tag.curName, token.ToASCIILower(charRune(ch)))
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.tag.curName = append(t.tag.curName, 0xFFFD)
	case charRune(ch) == '"' || charRune(ch) == '\'' || charRune(ch) == '<':
		t.errorf(UnexpectedCharacterInAttributeName)
		t.tag.curName = append(t.tag.curName, charRune(ch))
	default:
		t.tag.curName = append(t.tag.curName, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepAfterAttributeName() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '/':
		t.state = SelfClosingStartTag
	case charRune(ch) == '=':
		t.state = BeforeAttributeValue
	case charRune(ch) == '>':
		t.finishTag()
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.startAttrNamePending()
		t.setReconsume(ch)
		t.state = AttributeName
	}
	return nil
}

func (t *Tokenizer) stepBeforeAttributeValue() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '"':
		t.state = AttributeValueDoubleQuoted
	case charRune(ch) == '\'':
		t.state = AttributeValueSingleQuoted
	case charRune(ch) == '>':
		t.errorf(MissingAttributeValue)
		t.finishTag()
	default:
		t.setReconsume(ch)
		t.state = AttributeValueUnquoted
	}
	return nil
}

func (t *Tokenizer) stepAttributeValueQuoted(quote rune) error {
	ch := t.read()
	switch {
	case charRune(ch) == quote:
		t.state = AfterAttributeValueQuoted
	case charRune(ch) == '&':
		t.beginCharacterReference(t.state)
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.tag.curValue = append(t.tag.curValue, 0xFFFD)
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.tag.curValue = append(t.tag.curValue, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepAttributeValueUnquoted() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BeforeAttributeName
	case charRune(ch) == '&':
		t.beginCharacterReference(AttributeValueUnquoted)
	case charRune(ch) == '>':
		t.finishTag()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.tag.curValue = append(t.tag.curValue, 0xFFFD)
	case charRune(ch) == '"' || charRune(ch) == '\'' || charRune(ch) == '<' || charRune(ch) == '=' || charRune(ch) == '`':
		t.errorf(UnexpectedCharacterInUnquotedAttributeValue)
		t.tag.curValue = append(t.tag.curValue, charRune(ch))
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.tag.curValue = append(t.tag.curValue, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BeforeAttributeName
	case charRune(ch) == '/':
		t.state = SelfClosingStartTag
	case charRune(ch) == '>':
		t.finishTag()
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.errorf(MissingWhitespaceBetweenAttributes)
		t.setReconsume(ch)
		t.state = BeforeAttributeName
	}
	return nil
}
