package tokenizer

import "github.com/dpotapov/html5parser/token"

// stepDoctype implements the sixteen DOCTYPE states (spec section 4.2,
// "Doctype states").
func (t *Tokenizer) stepDoctype() error {
	switch t.state {
	case Doctype:
		return t.stepDoctypeState()
	case BeforeDoctypeName:
		return t.stepBeforeDoctypeName()
	case DoctypeName:
		return t.stepDoctypeName()
	case AfterDoctypeName:
		return t.stepAfterDoctypeName()
	case AfterDoctypePublicKeyword:
		return t.stepAfterDoctypePublicKeyword()
	case BeforeDoctypePublicIdentifier:
		return t.stepBeforeDoctypePublicIdentifier()
	case DoctypePublicIdentifierDoubleQuoted:
		return t.stepDoctypePublicIdentifierQuoted('"')
	case DoctypePublicIdentifierSingleQuoted:
		return t.stepDoctypePublicIdentifierQuoted('\'')
	case AfterDoctypePublicIdentifier:
		return t.stepAfterDoctypePublicIdentifier()
	case BetweenDoctypePublicAndSystemIdentifiers:
		return t.stepBetweenDoctypePublicAndSystemIdentifiers()
	case AfterDoctypeSystemKeyword:
		return t.stepAfterDoctypeSystemKeyword()
	case BeforeDoctypeSystemIdentifier:
		return t.stepBeforeDoctypeSystemIdentifier()
	case DoctypeSystemIdentifierDoubleQuoted:
		return t.stepDoctypeSystemIdentifierQuoted('"')
	case DoctypeSystemIdentifierSingleQuoted:
		return t.stepDoctypeSystemIdentifierQuoted('\'')
	case AfterDoctypeSystemIdentifier:
		return t.stepAfterDoctypeSystemIdentifier()
	case BogusDoctype:
		return t.stepBogusDoctype()
	}
	return newStateTransitionError(t.state, "stepDoctype")
}

func (t *Tokenizer) stepDoctypeState() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BeforeDoctypeName
	case charRune(ch) == '>':
		t.setReconsume(ch)
		t.state = BeforeDoctypeName
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingWhitespaceBeforeDoctypeName)
		t.setReconsume(ch)
		t.state = BeforeDoctypeName
	}
	return nil
}

func (t *Tokenizer) stepBeforeDoctypeName() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.doctype.name = []rune{token.ToASCIILower(charRune(ch))}
		t.doctype.nameSet = true
		t.state = DoctypeName
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.doctype.name = []rune{0xFFFD}
		t.doctype.nameSet = true
		t.state = DoctypeName
	case charRune(ch) == '>':
		t.errorf(MissingDoctypeName)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.name = []rune{charRune(ch)}
		t.doctype.nameSet = true
		t.state = DoctypeName
	}
	return nil
}

func (t *Tokenizer) stepDoctypeName() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = AfterDoctypeName
	case charRune(ch) == '>':
		t.emitDoctype()
		t.state = Data
	case ch.Kind != token.CharEof && token.IsASCIIUpperAlpha(charRune(ch)):
		t.doctype.name = append(t.doctype.name, token.ToASCIILower(charRune(ch)))
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.doctype.name = append(t.doctype.name, 0xFFFD)
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.name = append(t.doctype.name, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepAfterDoctypeName() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '>':
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	case t.peekLiteralFoldAt(ch, "PUBLIC"):
		t.consumeLiteralAfter(ch, "PUBLIC")
		t.state = AfterDoctypePublicKeyword
	case t.peekLiteralFoldAt(ch, "SYSTEM"):
		t.consumeLiteralAfter(ch, "SYSTEM")
		t.state = AfterDoctypeSystemKeyword
	default:
		t.errorf(InvalidCharacterSequenceAfterDoctypeName)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

// peekLiteralFoldAt reports whether ch plus the following len(lit)-1
// characters from src spell out lit, case-insensitively. Used for the
// "PUBLIC"/"SYSTEM" keyword checks, which start from a character already
// consumed by the caller.
func (t *Tokenizer) peekLiteralFoldAt(ch token.Character, lit string) bool {
	runes := []rune(lit)
	if ch.Kind == token.CharEof || token.ToASCIILower(charRune(ch)) != token.ToASCIILower(runes[0]) {
		return false
	}
	for i := 1; i < len(runes); i++ {
		c := t.src.Peek(i - 1)
		if c.Kind == token.CharEof || token.ToASCIILower(c.Rune()) != token.ToASCIILower(runes[i]) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) consumeLiteralAfter(ch token.Character, lit string) {
	for range []rune(lit)[1:] {
		t.src.Next()
	}
}

func (t *Tokenizer) stepAfterDoctypePublicKeyword() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BeforeDoctypePublicIdentifier
	case charRune(ch) == '"':
		t.errorf(MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.public = nil
		t.doctype.publicSet = true
		t.state = DoctypePublicIdentifierDoubleQuoted
	case charRune(ch) == '\'':
		t.errorf(MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.public = nil
		t.doctype.publicSet = true
		t.state = DoctypePublicIdentifierSingleQuoted
	case charRune(ch) == '>':
		t.errorf(MissingDoctypePublicIdentifier)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepBeforeDoctypePublicIdentifier() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '"':
		t.doctype.public = nil
		t.doctype.publicSet = true
		t.state = DoctypePublicIdentifierDoubleQuoted
	case charRune(ch) == '\'':
		t.doctype.public = nil
		t.doctype.publicSet = true
		t.state = DoctypePublicIdentifierSingleQuoted
	case charRune(ch) == '>':
		t.errorf(MissingDoctypePublicIdentifier)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepDoctypePublicIdentifierQuoted(quote rune) error {
	ch := t.read()
	switch {
	case charRune(ch) == quote:
		t.state = AfterDoctypePublicIdentifier
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.doctype.public = append(t.doctype.public, 0xFFFD)
	case charRune(ch) == '>':
		t.errorf(AbruptDoctypePublicIdentifier)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.public = append(t.doctype.public, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BetweenDoctypePublicAndSystemIdentifiers
	case charRune(ch) == '>':
		t.emitDoctype()
		t.state = Data
	case charRune(ch) == '"':
		t.errorf(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierDoubleQuoted
	case charRune(ch) == '\'':
		t.errorf(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierSingleQuoted
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '>':
		t.emitDoctype()
		t.state = Data
	case charRune(ch) == '"':
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierDoubleQuoted
	case charRune(ch) == '\'':
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierSingleQuoted
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepAfterDoctypeSystemKeyword() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		t.state = BeforeDoctypeSystemIdentifier
	case charRune(ch) == '"':
		t.errorf(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierDoubleQuoted
	case charRune(ch) == '\'':
		t.errorf(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierSingleQuoted
	case charRune(ch) == '>':
		t.errorf(MissingDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepBeforeDoctypeSystemIdentifier() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '"':
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierDoubleQuoted
	case charRune(ch) == '\'':
		t.doctype.system = nil
		t.doctype.systemSet = true
		t.state = DoctypeSystemIdentifierSingleQuoted
	case charRune(ch) == '>':
		t.errorf(MissingDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepDoctypeSystemIdentifierQuoted(quote rune) error {
	ch := t.read()
	switch {
	case charRune(ch) == quote:
		t.state = AfterDoctypeSystemIdentifier
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.doctype.system = append(t.doctype.system, 0xFFFD)
	case charRune(ch) == '>':
		t.errorf(AbruptDoctypeSystemIdentifier)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.doctype.system = append(t.doctype.system, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIWhitespace(charRune(ch)):
		// ignore
	case charRune(ch) == '>':
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInDoctype)
		t.doctype.forceQuirks = true
		t.emitDoctype()
		t.emitEOF()
	default:
		t.errorf(UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.setReconsume(ch)
		t.state = BogusDoctype
	}
	return nil
}

func (t *Tokenizer) stepBogusDoctype() error {
	ch := t.read()
	switch {
	case charRune(ch) == '>':
		t.emitDoctype()
		t.state = Data
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
	case ch.Kind == token.CharEof:
		t.emitDoctype()
		t.emitEOF()
	default:
		// ignore
	}
	return nil
}
