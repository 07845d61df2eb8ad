package tokenizer

import "github.com/dpotapov/html5parser/token"

// stepScriptEscape implements the fourteen states that let <script> content
// recognize nested "<!--...-->" comments so that "</script>" inside a
// commented-out nested script tag isn't mistaken for the element's real
// closing tag (spec section 4.2, "Script data escape states").
func (t *Tokenizer) stepScriptEscape() error {
	switch t.state {
	case ScriptDataLessThanSign:
		return t.stepScriptDataLessThanSign()
	case ScriptDataEscapeStart:
		return t.stepScriptDataEscapeStart()
	case ScriptDataEscapeStartDash:
		return t.stepScriptDataEscapeStartDash()
	case ScriptDataEscaped:
		return t.stepScriptDataEscaped()
	case ScriptDataEscapedDash:
		return t.stepScriptDataEscapedDash()
	case ScriptDataEscapedDashDash:
		return t.stepScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSign:
		return t.stepScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpen:
		return t.stepSublanguageEndTagOpen(ScriptDataEscapedEndTagName, ScriptDataEscaped)
	case ScriptDataEscapedEndTagName:
		return t.stepSublanguageEndTagName(ScriptDataEscaped)
	case ScriptDataDoubleEscapeStart:
		return t.stepScriptDataDoubleEscapeStart()
	case ScriptDataDoubleEscaped:
		return t.stepScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDash:
		return t.stepScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDash:
		return t.stepScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSign:
		return t.stepScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEnd:
		return t.stepScriptDataDoubleEscapeEnd()
	}
	return newStateTransitionError(t.state, "stepScriptEscape")
}

func (t *Tokenizer) stepScriptDataLessThanSign() error {
	ch := t.read()
	switch charRune(ch) {
	case '/':
		t.tag.reset(true)
		t.state = ScriptDataEndTagOpen
	case '!':
		t.emitChar('<')
		t.emitChar('!')
		t.state = ScriptDataEscapeStart
	default:
		t.emitChar('<')
		t.setReconsume(ch)
		t.state = ScriptData
	}
	return nil
}

func (t *Tokenizer) stepScriptDataEscapeStart() error {
	ch := t.read()
	if charRune(ch) == '-' {
		t.emitChar('-')
		t.state = ScriptDataEscapeStartDash
		return nil
	}
	t.setReconsume(ch)
	t.state = ScriptData
	return nil
}

func (t *Tokenizer) stepScriptDataEscapeStartDash() error {
	ch := t.read()
	if charRune(ch) == '-' {
		t.emitChar('-')
		t.state = ScriptDataEscapedDashDash
		return nil
	}
	t.setReconsume(ch)
	t.state = ScriptData
	return nil
}

func (t *Tokenizer) stepScriptDataEscaped() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.emitChar('-')
		t.state = ScriptDataEscapedDash
	case charRune(ch) == '<':
		t.state = ScriptDataEscapedLessThanSign
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepScriptDataEscapedDash() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.emitChar('-')
		t.state = ScriptDataEscapedDashDash
	case charRune(ch) == '<':
		t.state = ScriptDataEscapedLessThanSign
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
		t.state = ScriptDataEscaped
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
		t.state = ScriptDataEscaped
	}
	return nil
}

func (t *Tokenizer) stepScriptDataEscapedDashDash() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.emitChar('-')
	case charRune(ch) == '<':
		t.state = ScriptDataEscapedLessThanSign
	case charRune(ch) == '>':
		t.emitChar('>')
		t.state = ScriptData
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
		t.state = ScriptDataEscaped
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
		t.state = ScriptDataEscaped
	}
	return nil
}

func (t *Tokenizer) stepScriptDataEscapedLessThanSign() error {
	ch := t.read()
	switch {
	case charRune(ch) == '/':
		t.tag.reset(true)
		t.state = ScriptDataEscapedEndTagOpen
	case ch.Kind != token.CharEof && token.IsASCIIAlpha(charRune(ch)):
		t.doubleEscapeBuf = nil
		t.emitChar('<')
		t.setReconsume(ch)
		t.state = ScriptDataDoubleEscapeStart
	default:
		t.emitChar('<')
		t.setReconsume(ch)
		t.state = ScriptDataEscaped
	}
	return nil
}

func (t *Tokenizer) stepScriptDataDoubleEscapeStart() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && (token.IsASCIIWhitespace(charRune(ch)) || charRune(ch) == '/' || charRune(ch) == '>'):
		t.emitChar(charRune(ch))
		if string(t.doubleEscapeBuf) == "script" {
			t.state = ScriptDataDoubleEscaped
		} else {
			t.state = ScriptDataEscaped
		}
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.doubleEscapeBuf = append(t.doubleEscapeBuf, token.ToASCIILower(charRune(ch)))
		t.emitChar(charRune(ch))
	case ch.Kind != token.CharEof && token.IsASCIILowerAlpha(charRune(ch)):
		t.doubleEscapeBuf = append(t.doubleEscapeBuf, charRune(ch))
		t.emitChar(charRune(ch))
	default:
		t.setReconsume(ch)
		t.state = ScriptDataEscaped
	}
	return nil
}

func (t *Tokenizer) stepScriptDataDoubleEscaped() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.emitChar('-')
		t.state = ScriptDataDoubleEscapedDash
	case charRune(ch) == '<':
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSign
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.emitChar('-')
		t.state = ScriptDataDoubleEscapedDashDash
	case charRune(ch) == '<':
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSign
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
		t.state = ScriptDataDoubleEscaped
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
		t.state = ScriptDataDoubleEscaped
	}
	return nil
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.emitChar('-')
	case charRune(ch) == '<':
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSign
	case charRune(ch) == '>':
		t.emitChar('>')
		t.state = ScriptData
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.emitChar(0xFFFD)
		t.state = ScriptDataDoubleEscaped
	case ch.Kind == token.CharEof:
		t.errorf(EofInTag)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
		t.state = ScriptDataDoubleEscaped
	}
	return nil
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThanSign() error {
	ch := t.read()
	if charRune(ch) == '/' {
		t.doubleEscapeBuf = nil
		t.emitChar('/')
		t.state = ScriptDataDoubleEscapeEnd
		return nil
	}
	t.setReconsume(ch)
	t.state = ScriptDataDoubleEscaped
	return nil
}

func (t *Tokenizer) stepScriptDataDoubleEscapeEnd() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && (token.IsASCIIWhitespace(charRune(ch)) || charRune(ch) == '/' || charRune(ch) == '>'):
		t.emitChar(charRune(ch))
		if string(t.doubleEscapeBuf) == "script" {
			t.state = ScriptDataEscaped
		} else {
			t.state = ScriptDataDoubleEscaped
		}
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.doubleEscapeBuf = append(t.doubleEscapeBuf, token.ToASCIILower(charRune(ch)))
		t.emitChar(charRune(ch))
	case ch.Kind != token.CharEof && token.IsASCIILowerAlpha(charRune(ch)):
		t.doubleEscapeBuf = append(t.doubleEscapeBuf, charRune(ch))
		t.emitChar(charRune(ch))
	default:
		t.setReconsume(ch)
		t.state = ScriptDataDoubleEscaped
	}
	return nil
}
