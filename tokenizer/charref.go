package tokenizer

import (
	"strings"

	"github.com/dpotapov/html5parser/token"
)

// beginCharacterReference enters the character reference sublanguage (spec
// section 4.2, "Character reference state"), remembering where to resume
// once resolution finishes.
func (t *Tokenizer) beginCharacterReference(returnState State) {
	t.returnState = returnState
	t.charrefBuf = []rune{'&'}
	t.charrefInAttr = isAttributeValueState(returnState)
	t.state = CharacterReference
}

func isAttributeValueState(s State) bool {
	switch s {
	case AttributeValueDoubleQuoted, AttributeValueSingleQuoted, AttributeValueUnquoted:
		return true
	}
	return false
}

// stepCharacterReference implements the nine character-reference states:
// CharacterReference, NamedCharacterReference, AmbiguousAmpersand,
// NumericCharacterReference and its hex/decimal sub-states (spec section
// 4.2, "Character reference resolution").
func (t *Tokenizer) stepCharacterReference() error {
	switch t.state {
	case CharacterReference:
		return t.stepCharacterReferenceStart()
	case NamedCharacterReference:
		return t.stepNamedCharacterReference()
	case AmbiguousAmpersand:
		return t.stepAmbiguousAmpersand()
	case NumericCharacterReference:
		return t.stepNumericCharacterReference()
	case HexadecimalCharacterReferenceStart:
		return t.stepHexadecimalCharacterReferenceStart()
	case DecimalCharacterReferenceStart:
		return t.stepDecimalCharacterReferenceStart()
	case HexadecimalCharacterReference:
		return t.stepHexadecimalCharacterReferenceDigits()
	case DecimalCharacterReference:
		return t.stepDecimalCharacterReferenceDigits()
	case NumericCharacterReferenceEnd:
		return t.stepNumericCharacterReferenceEnd()
	}
	return newStateTransitionError(t.state, "stepCharacterReference")
}

func (t *Tokenizer) stepCharacterReferenceStart() error {
	ch := t.src.Peek(0)
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIAlphanumeric(charRune(ch)):
		t.state = NamedCharacterReference
	case charRune(ch) == '#':
		t.src.Next()
		t.charrefBuf = append(t.charrefBuf, '#')
		t.state = NumericCharacterReference
	default:
		t.flushCharacterReference(t.charrefBuf)
		t.state = t.returnState
	}
	return nil
}

// stepNamedCharacterReference implements the named-character-reference
// lookup: the longest key in namedReferences that is a prefix of the
// upcoming input is the match, mirroring how the full WHATWG table's trie
// of identifiers resolves ambiguity between e.g. "not" and "notin;" (spec
// section 4.2, "Named character reference state"; design notes section 9).
func (t *Tokenizer) stepNamedCharacterReference() error {
	name, value, ok := t.matchNamedReference()
	if !ok {
		t.flushCharacterReference(t.charrefBuf)
		t.state = AmbiguousAmpersand
		return nil
	}
	matched := []rune(name)
	for range matched {
		t.src.Next()
	}
	t.charrefBuf = append(t.charrefBuf, matched...)

	endsWithSemicolon := strings.HasSuffix(name, ";")
	if t.charrefInAttr && !endsWithSemicolon {
		next := t.src.Peek(0)
		if next.Kind != token.CharEof && (next.Rune() == '=' || token.IsASCIIAlphanumeric(next.Rune())) {
			// Historical compatibility (spec section 4.2): leave the raw
			// "&name" text in the attribute value instead of translating it.
			t.flushCharacterReference(t.charrefBuf)
			t.state = t.returnState
			return nil
		}
	}
	if !endsWithSemicolon {
		t.errorf(MissingSemicolonAfterCharacterReference)
	}
	t.flushCharacterReference([]rune(value))
	t.state = t.returnState
	return nil
}

// matchNamedReference finds the longest key of namedReferences that
// prefixes the upcoming input, without consuming anything.
func (t *Tokenizer) matchNamedReference() (name, value string, ok bool) {
	var buf []rune
	for i := 0; i < maxEntityNameLen; i++ {
		ch := t.src.Peek(i)
		if ch.Kind == token.CharEof {
			break
		}
		buf = append(buf, charRune(ch))
	}
	for length := len(buf); length >= 1; length-- {
		candidate := string(buf[:length])
		if v, found := namedReferences[candidate]; found {
			return candidate, v, true
		}
	}
	return "", "", false
}

func (t *Tokenizer) stepAmbiguousAmpersand() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIAlphanumeric(charRune(ch)):
		if t.charrefInAttr {
			t.tag.curValue = append(t.tag.curValue, charRune(ch))
		} else {
			t.emitChar(charRune(ch))
		}
	case charRune(ch) == ';':
		t.errorf(UnknownNamedCharacterReference)
		t.setReconsume(ch)
		t.state = t.returnState
	default:
		t.setReconsume(ch)
		t.state = t.returnState
	}
	return nil
}

func (t *Tokenizer) stepNumericCharacterReference() error {
	t.charrefCode = 0
	ch := t.read()
	if charRune(ch) == 'x' || charRune(ch) == 'X' {
		t.charrefBuf = append(t.charrefBuf, charRune(ch))
		t.state = HexadecimalCharacterReferenceStart
		return nil
	}
	t.setReconsume(ch)
	t.state = DecimalCharacterReferenceStart
	return nil
}

func (t *Tokenizer) stepHexadecimalCharacterReferenceStart() error {
	ch := t.read()
	if ch.Kind != token.CharEof && token.IsASCIIHexDigit(charRune(ch)) {
		t.setReconsume(ch)
		t.state = HexadecimalCharacterReference
		return nil
	}
	t.errorf(AbsenceOfDigitsInNumericCharacterReference)
	t.flushCharacterReference(t.charrefBuf)
	t.setReconsume(ch)
	t.state = t.returnState
	return nil
}

func (t *Tokenizer) stepDecimalCharacterReferenceStart() error {
	ch := t.read()
	if ch.Kind != token.CharEof && token.IsASCIIDigit(charRune(ch)) {
		t.setReconsume(ch)
		t.state = DecimalCharacterReference
		return nil
	}
	t.errorf(AbsenceOfDigitsInNumericCharacterReference)
	t.flushCharacterReference(t.charrefBuf)
	t.setReconsume(ch)
	t.state = t.returnState
	return nil
}

func (t *Tokenizer) stepHexadecimalCharacterReferenceDigits() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIDigit(charRune(ch)):
		t.accumulateCharrefDigit(16, int64(charRune(ch)-'0'))
	case ch.Kind != token.CharEof && token.IsASCIIUpperHexDigit(charRune(ch)):
		t.accumulateCharrefDigit(16, int64(charRune(ch)-'A'+10))
	case ch.Kind != token.CharEof && token.IsASCIILowerHexDigit(charRune(ch)):
		t.accumulateCharrefDigit(16, int64(charRune(ch)-'a'+10))
	case charRune(ch) == ';':
		t.state = NumericCharacterReferenceEnd
	default:
		t.errorf(MissingSemicolonAfterCharacterReference)
		t.setReconsume(ch)
		t.state = NumericCharacterReferenceEnd
	}
	return nil
}

func (t *Tokenizer) stepDecimalCharacterReferenceDigits() error {
	ch := t.read()
	switch {
	case ch.Kind != token.CharEof && token.IsASCIIDigit(charRune(ch)):
		t.accumulateCharrefDigit(10, int64(charRune(ch)-'0'))
	case charRune(ch) == ';':
		t.state = NumericCharacterReferenceEnd
	default:
		t.errorf(MissingSemicolonAfterCharacterReference)
		t.setReconsume(ch)
		t.state = NumericCharacterReferenceEnd
	}
	return nil
}

func (t *Tokenizer) accumulateCharrefDigit(base, digit int64) {
	if t.charrefCode >= maxCharrefCode {
		return
	}
	t.charrefCode = t.charrefCode*base + digit
}

// stepNumericCharacterReferenceEnd implements the code-point validation and
// Windows-1252 fixup table from spec sections 4.2 and 6.
func (t *Tokenizer) stepNumericCharacterReferenceEnd() error {
	code := t.charrefCode
	switch {
	case code == 0:
		t.errorf(NullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		t.errorf(CharacterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case token.IsSurrogate(rune(code)):
		t.errorf(SurrogateCharacterReference)
		code = 0xFFFD
	case token.IsNoncharacter(rune(code)):
		t.errorf(NoncharacterCharacterReference)
	case code == 0x0D || (token.IsControl(rune(code)) && !token.IsASCIIWhitespace(rune(code))):
		t.errorf(ControlCharacterReference)
		if mapped, ok := windows1252Fixup[code]; ok {
			code = int64(mapped)
		}
	}
	t.flushCharacterReference([]rune{rune(code)})
	t.state = t.returnState
	return nil
}

// flushCharacterReference delivers resolved character-reference output
// either into the attribute value currently being built, or as Character
// tokens into the content stream, per spec section 4.2's "flush code points
// consumed as a character reference".
func (t *Tokenizer) flushCharacterReference(runes []rune) {
	if t.charrefInAttr {
		t.tag.curValue = append(t.tag.curValue, runes...)
		return
	}
	for _, r := range runes {
		t.emitChar(r)
	}
}
