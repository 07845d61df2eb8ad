package tokenizer

import (
	"github.com/dpotapov/html5parser/token"
)

// stepMarkup implements bogus comments, the "<!--" / DOCTYPE / CDATA
// dispatch, and the full comment state family (spec section 4.2, "Markup
// declaration and comment states").
func (t *Tokenizer) stepMarkup() error {
	switch t.state {
	case BogusComment:
		return t.stepBogusComment()
	case MarkupDeclarationOpen:
		return t.stepMarkupDeclarationOpen()
	case CommentStart:
		return t.stepCommentStart()
	case CommentStartDash:
		return t.stepCommentStartDash()
	case Comment:
		return t.stepComment()
	case CommentLessThanSign:
		return t.stepCommentLessThanSign()
	case CommentLessThanSignBang:
		return t.stepCommentLessThanSignBang()
	case CommentLessThanSignBangDash:
		return t.stepCommentLessThanSignBangDash()
	case CommentLessThanSignBangDashDash:
		return t.stepCommentLessThanSignBangDashDash()
	case CommentEndDash:
		return t.stepCommentEndDash()
	case CommentEnd:
		return t.stepCommentEnd()
	case CommentEndBang:
		return t.stepCommentEndBang()
	}
	return newStateTransitionError(t.state, "stepMarkup")
}

func (t *Tokenizer) stepBogusComment() error {
	ch := t.read()
	switch {
	case charRune(ch) == '>':
		t.emitComment()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.emitComment()
		t.emitEOF()
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.comment = append(t.comment, 0xFFFD)
	default:
		t.comment = append(t.comment, charRune(ch))
	}
	return nil
}

// stepMarkupDeclarationOpen dispatches "<!--", "<!DOCTYPE", "<![CDATA[" and
// the bogus-comment fallback, by peeking ahead in the source rather than
// consuming speculatively (spec section 4.2, "Markup declaration open
// state").
func (t *Tokenizer) stepMarkupDeclarationOpen() error {
	if t.peekLiteral("--") {
		t.consumeLiteral("--")
		t.comment = nil
		t.state = CommentStart
		return nil
	}
	if t.peekLiteralFold("DOCTYPE") {
		t.consumeLiteral("DOCTYPE")
		t.state = Doctype
		return nil
	}
	if t.cdataAllowed && t.peekLiteral("[CDATA[") {
		t.consumeLiteral("[CDATA[")
		t.state = CdataSection
		return nil
	}
	if t.peekLiteral("[CDATA[") {
		t.errorf(CdataInHTMLContent)
	}
	t.errorf(IncorrectlyOpenedComment)
	t.comment = nil
	t.state = BogusComment
	return nil
}

// peekLiteral reports whether the next len(lit) characters from src equal
// lit exactly, without consuming them.
func (t *Tokenizer) peekLiteral(lit string) bool {
	runes := []rune(lit)
	for i, want := range runes {
		ch := t.src.Peek(i)
		if ch.Kind == token.CharEof || charRune(ch) != want {
			return false
		}
	}
	return true
}

// peekLiteralFold is peekLiteral's ASCII-case-insensitive counterpart, used
// for the "DOCTYPE" keyword.
func (t *Tokenizer) peekLiteralFold(lit string) bool {
	runes := []rune(lit)
	for i, want := range runes {
		ch := t.src.Peek(i)
		if ch.Kind == token.CharEof {
			return false
		}
		if token.ToASCIILower(charRune(ch)) != token.ToASCIILower(want) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) consumeLiteral(lit string) {
	for range []rune(lit) {
		t.src.Next()
	}
}

func (t *Tokenizer) stepCommentStart() error {
	ch := t.read()
	switch charRune(ch) {
	case '-':
		t.state = CommentStartDash
	case '>':
		t.errorf(AbruptClosingOfEmptyComment)
		t.emitComment()
		t.state = Data
	default:
		t.setReconsume(ch)
		t.state = Comment
	}
	return nil
}

func (t *Tokenizer) stepCommentStartDash() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.state = CommentEnd
	case charRune(ch) == '>':
		t.errorf(AbruptClosingOfEmptyComment)
		t.emitComment()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInComment)
		t.emitComment()
		t.emitEOF()
	default:
		t.comment = append(t.comment, '-')
		t.setReconsume(ch)
		t.state = Comment
	}
	return nil
}

func (t *Tokenizer) stepComment() error {
	ch := t.read()
	switch {
	case charRune(ch) == '<':
		t.comment = append(t.comment, '<')
		t.state = CommentLessThanSign
	case charRune(ch) == '-':
		t.state = CommentEndDash
	case ch.Kind == token.CharNull:
		t.errorf(UnexpectedNullCharacter)
		t.comment = append(t.comment, 0xFFFD)
	case ch.Kind == token.CharEof:
		t.errorf(EofInComment)
		t.emitComment()
		t.emitEOF()
	default:
		t.comment = append(t.comment, charRune(ch))
	}
	return nil
}

func (t *Tokenizer) stepCommentLessThanSign() error {
	ch := t.read()
	switch charRune(ch) {
	case '!':
		t.comment = append(t.comment, '!')
		t.state = CommentLessThanSignBang
	case '<':
		t.comment = append(t.comment, '<')
	default:
		t.setReconsume(ch)
		t.state = Comment
	}
	return nil
}

func (t *Tokenizer) stepCommentLessThanSignBang() error {
	ch := t.read()
	if charRune(ch) == '-' {
		t.state = CommentLessThanSignBangDash
		return nil
	}
	t.setReconsume(ch)
	t.state = Comment
	return nil
}

func (t *Tokenizer) stepCommentLessThanSignBangDash() error {
	ch := t.read()
	if charRune(ch) == '-' {
		t.state = CommentLessThanSignBangDashDash
		return nil
	}
	t.setReconsume(ch)
	t.state = CommentEndDash
	return nil
}

func (t *Tokenizer) stepCommentLessThanSignBangDashDash() error {
	ch := t.read()
	if charRune(ch) != '>' && ch.Kind != token.CharEof {
		t.errorf(NestedComment)
	}
	t.setReconsume(ch)
	t.state = CommentEnd
	return nil
}

func (t *Tokenizer) stepCommentEndDash() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.state = CommentEnd
	case ch.Kind == token.CharEof:
		t.errorf(EofInComment)
		t.emitComment()
		t.emitEOF()
	default:
		t.comment = append(t.comment, '-')
		t.setReconsume(ch)
		t.state = Comment
	}
	return nil
}

func (t *Tokenizer) stepCommentEnd() error {
	ch := t.read()
	switch {
	case charRune(ch) == '>':
		t.emitComment()
		t.state = Data
	case charRune(ch) == '!':
		t.state = CommentEndBang
	case charRune(ch) == '-':
		t.comment = append(t.comment, '-')
	case ch.Kind == token.CharEof:
		t.errorf(EofInComment)
		t.emitComment()
		t.emitEOF()
	default:
		t.comment = append(t.comment, '-', '-')
		t.setReconsume(ch)
		t.state = Comment
	}
	return nil
}

func (t *Tokenizer) stepCommentEndBang() error {
	ch := t.read()
	switch {
	case charRune(ch) == '-':
		t.comment = append(t.comment, '-', '-', '!')
		t.state = CommentEndDash
	case charRune(ch) == '>':
		t.errorf(IncorrectlyClosedComment)
		t.emitComment()
		t.state = Data
	case ch.Kind == token.CharEof:
		t.errorf(EofInComment)
		t.emitComment()
		t.emitEOF()
	default:
		t.comment = append(t.comment, '-', '-', '!')
		t.setReconsume(ch)
		t.state = Comment
	}
	return nil
}
