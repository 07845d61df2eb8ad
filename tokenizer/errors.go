package tokenizer

import (
	"errors"
	"fmt"
)

// ErrorCode enumerates the named, non-fatal parse errors the tokenizer can
// raise (spec section 7). The tokenizer keeps running after raising one;
// they exist purely for diagnostics.
type ErrorCode int

const (
	UnexpectedNullCharacter ErrorCode = iota
	EofInTag
	EofInComment
	EofInDoctype
	EofInCdata
	EofBeforeTagName
	MissingEndTagName
	MissingAttributeValue
	MissingWhitespaceBeforeDoctypeName
	MissingDoctypeName
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedSolidusInTag
	MissingSemicolonAfterCharacterReference
	UnknownNamedCharacterReference
	AbruptClosingOfEmptyComment
	IncorrectlyOpenedComment
	IncorrectlyClosedComment
	NestedComment
	CdataInHTMLContent
	InvalidFirstCharacterOfTagName
	UnexpectedQuestionMarkInsteadOfTagName
	MissingWhitespaceBetweenAttributes
	AbsenceOfDigitsInNumericCharacterReference
	ControlCharacterReference
	NullCharacterReference
	CharacterReferenceOutsideUnicodeRange
	NoncharacterCharacterReference
	SurrogateCharacterReference
	NonVoidHTMLElementStartTagWithTrailingSolidus
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	UnexpectedCharacterAfterDoctypeSystemIdentifier
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	InvalidCharacterSequenceAfterDoctypeName
)

var errorNames = map[ErrorCode]string{
	UnexpectedNullCharacter:                      "unexpected-null-character",
	EofInTag:                                     "eof-in-tag",
	EofInComment:                                 "eof-in-comment",
	EofInDoctype:                                 "eof-in-doctype",
	EofInCdata:                                   "eof-in-cdata",
	EofBeforeTagName:                             "eof-before-tag-name",
	MissingEndTagName:                            "missing-end-tag-name",
	MissingAttributeValue:                        "missing-attribute-value",
	MissingWhitespaceBeforeDoctypeName:           "missing-whitespace-before-doctype-name",
	MissingDoctypeName:                           "missing-doctype-name",
	UnexpectedEqualsSignBeforeAttributeName:      "unexpected-equals-sign-before-attribute-name",
	UnexpectedCharacterInAttributeName:           "unexpected-character-in-attribute-name",
	UnexpectedCharacterInUnquotedAttributeValue:  "unexpected-character-in-unquoted-attribute-value",
	UnexpectedSolidusInTag:                       "unexpected-solidus-in-tag",
	MissingSemicolonAfterCharacterReference:      "missing-semicolon-after-character-reference",
	UnknownNamedCharacterReference:               "unknown-named-character-reference",
	AbruptClosingOfEmptyComment:                  "abrupt-closing-of-empty-comment",
	IncorrectlyOpenedComment:                     "incorrectly-opened-comment",
	IncorrectlyClosedComment:                     "incorrectly-closed-comment",
	NestedComment:                                "nested-comment",
	CdataInHTMLContent:                           "cdata-in-html-content",
	InvalidFirstCharacterOfTagName:               "invalid-first-character-of-tag-name",
	UnexpectedQuestionMarkInsteadOfTagName:       "unexpected-question-mark-instead-of-tag-name",
	MissingWhitespaceBetweenAttributes:           "missing-whitespace-between-attributes",
	AbsenceOfDigitsInNumericCharacterReference:   "absence-of-digits-in-numeric-character-reference",
	ControlCharacterReference:                    "control-character-reference",
	NullCharacterReference:                       "null-character-reference",
	CharacterReferenceOutsideUnicodeRange:        "character-reference-outside-unicode-range",
	NoncharacterCharacterReference:                "noncharacter-character-reference",
	SurrogateCharacterReference:                  "surrogate-character-reference",
	NonVoidHTMLElementStartTagWithTrailingSolidus: "non-void-html-element-start-tag-with-trailing-solidus",
	AbruptDoctypePublicIdentifier:                 "abrupt-doctype-public-identifier",
	AbruptDoctypeSystemIdentifier:                 "abrupt-doctype-system-identifier",
	MissingQuoteBeforeDoctypePublicIdentifier:     "missing-quote-before-doctype-public-identifier",
	MissingQuoteBeforeDoctypeSystemIdentifier:     "missing-quote-before-doctype-system-identifier",
	MissingWhitespaceAfterDoctypePublicKeyword:    "missing-whitespace-after-doctype-public-keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword:    "missing-whitespace-after-doctype-system-keyword",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "missing-whitespace-between-doctype-public-and-system-identifiers",
	UnexpectedCharacterAfterDoctypeSystemIdentifier:           "unexpected-character-after-doctype-system-identifier",
	MissingDoctypePublicIdentifier:                            "missing-doctype-public-identifier",
	MissingDoctypeSystemIdentifier:                            "missing-doctype-system-identifier",
	InvalidCharacterSequenceAfterDoctypeName:                  "invalid-character-sequence-after-doctype-name",
}

func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return "unknown-parse-error"
}

// ParseError is a non-fatal, named parse error raised by the tokenizer
// (spec section 7). The driver collects these rather than aborting.
type ParseError struct {
	Code       ErrorCode
	Line, Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Code)
}

// ErrStateTransition is the sentinel wrapped by a *StateTransitionError
// when the tokenizer reaches a state/Character combination it has no rule
// for. Per spec section 7 this is fatal: it signals an unimplemented
// branch or an invariant violation, not a recoverable markup error.
var ErrStateTransition = errors.New("tokenizer: state-transition error")

// StateTransitionError wraps ErrStateTransition with the offending state
// and a short description of where it arose, for diagnostics.
type StateTransitionError struct {
	State string
	Info  string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("tokenizer: no transition from state %s: %s", e.State, e.Info)
}

func (e *StateTransitionError) Unwrap() error { return ErrStateTransition }

func newStateTransitionError(state fmt.Stringer, info string) error {
	return &StateTransitionError{State: state.String(), Info: info}
}
