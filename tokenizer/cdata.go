package tokenizer

import "github.com/dpotapov/html5parser/token"

// stepCdata implements the three CDATA section states (spec section 4.2,
// "CDATA section states"). These are only reachable after a caller has
// called AllowCDATA(true); the tree constructor never does.
func (t *Tokenizer) stepCdata() error {
	switch t.state {
	case CdataSection:
		return t.stepCdataSection()
	case CdataSectionBracket:
		return t.stepCdataSectionBracket()
	case CdataSectionEnd:
		return t.stepCdataSectionEnd()
	}
	return newStateTransitionError(t.state, "stepCdata")
}

func (t *Tokenizer) stepCdataSection() error {
	ch := t.read()
	switch {
	case charRune(ch) == ']':
		t.state = CdataSectionBracket
	case ch.Kind == token.CharEof:
		t.errorf(EofInCdata)
		t.emitEOF()
	default:
		t.emitChar(charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepCdataSectionBracket() error {
	ch := t.read()
	if charRune(ch) == ']' {
		t.state = CdataSectionEnd
		return nil
	}
	t.emitChar(']')
	t.setReconsume(ch)
	t.state = CdataSection
	return nil
}

func (t *Tokenizer) stepCdataSectionEnd() error {
	ch := t.read()
	switch charRune(ch) {
	case ']':
		t.emitChar(']')
	case '>':
		t.state = Data
	default:
		t.emitChar(']')
		t.emitChar(']')
		t.setReconsume(ch)
		t.state = CdataSection
	}
	return nil
}
