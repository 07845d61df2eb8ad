// Package tokenizer implements the WHATWG HTML tokenization state machine
// (spec section 4.2): roughly seventy states grouped into content, tag
// framing, script-data-escape, attribute, markup/comment/doctype, CDATA
// and character-reference families, driving a lazy sequence of
// github.com/dpotapov/html5parser/token.Token values.
package tokenizer

import "github.com/dpotapov/html5parser/token"

// State identifies one of the tokenizer's states. The zero value is Data,
// the state every document starts in.
type State int

const (
	Data State = iota
	RcData
	RawText
	ScriptData
	PlainText

	TagOpen
	EndTagOpen
	TagName

	RcDataLessThanSign
	RcDataEndTagOpen
	RcDataEndTagName

	RawTextLessThanSign
	RawTextEndTagOpen
	RawTextEndTagName

	ScriptDataLessThanSign
	ScriptDataEndTagOpen
	ScriptDataEndTagName

	SelfClosingStartTag

	ScriptDataEscapeStart
	ScriptDataEscapeStartDash
	ScriptDataEscaped
	ScriptDataEscapedDash
	ScriptDataEscapedDashDash
	ScriptDataEscapedLessThanSign
	ScriptDataEscapedEndTagOpen
	ScriptDataEscapedEndTagName
	ScriptDataDoubleEscapeStart
	ScriptDataDoubleEscaped
	ScriptDataDoubleEscapedDash
	ScriptDataDoubleEscapedDashDash
	ScriptDataDoubleEscapedLessThanSign
	ScriptDataDoubleEscapeEnd

	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValueQuoted

	BogusComment
	MarkupDeclarationOpen
	CommentStart
	CommentStartDash
	Comment
	CommentLessThanSign
	CommentLessThanSignBang
	CommentLessThanSignBangDash
	CommentLessThanSignBangDashDash
	CommentEndDash
	CommentEnd
	CommentEndBang

	Doctype
	BeforeDoctypeName
	DoctypeName
	AfterDoctypeName
	AfterDoctypePublicKeyword
	BeforeDoctypePublicIdentifier
	DoctypePublicIdentifierDoubleQuoted
	DoctypePublicIdentifierSingleQuoted
	AfterDoctypePublicIdentifier
	BetweenDoctypePublicAndSystemIdentifiers
	AfterDoctypeSystemKeyword
	BeforeDoctypeSystemIdentifier
	DoctypeSystemIdentifierDoubleQuoted
	DoctypeSystemIdentifierSingleQuoted
	AfterDoctypeSystemIdentifier
	BogusDoctype

	CdataSection
	CdataSectionBracket
	CdataSectionEnd

	CharacterReference
	NamedCharacterReference
	AmbiguousAmpersand
	NumericCharacterReference
	HexadecimalCharacterReferenceStart
	DecimalCharacterReferenceStart
	HexadecimalCharacterReference
	DecimalCharacterReference
	NumericCharacterReferenceEnd

	Term
)

var stateNames = map[State]string{
	Data: "Data", RcData: "RcData", RawText: "RawText", ScriptData: "ScriptData", PlainText: "PlainText",
	TagOpen: "TagOpen", EndTagOpen: "EndTagOpen", TagName: "TagName",
	RcDataLessThanSign: "RcDataLessThanSign", RcDataEndTagOpen: "RcDataEndTagOpen", RcDataEndTagName: "RcDataEndTagName",
	RawTextLessThanSign: "RawTextLessThanSign", RawTextEndTagOpen: "RawTextEndTagOpen", RawTextEndTagName: "RawTextEndTagName",
	ScriptDataLessThanSign: "ScriptDataLessThanSign", ScriptDataEndTagOpen: "ScriptDataEndTagOpen", ScriptDataEndTagName: "ScriptDataEndTagName",
	SelfClosingStartTag: "SelfClosingStartTag",
	ScriptDataEscapeStart: "ScriptDataEscapeStart", ScriptDataEscapeStartDash: "ScriptDataEscapeStartDash",
	ScriptDataEscaped: "ScriptDataEscaped", ScriptDataEscapedDash: "ScriptDataEscapedDash", ScriptDataEscapedDashDash: "ScriptDataEscapedDashDash",
	ScriptDataEscapedLessThanSign: "ScriptDataEscapedLessThanSign", ScriptDataEscapedEndTagOpen: "ScriptDataEscapedEndTagOpen", ScriptDataEscapedEndTagName: "ScriptDataEscapedEndTagName",
	ScriptDataDoubleEscapeStart: "ScriptDataDoubleEscapeStart", ScriptDataDoubleEscaped: "ScriptDataDoubleEscaped",
	ScriptDataDoubleEscapedDash: "ScriptDataDoubleEscapedDash", ScriptDataDoubleEscapedDashDash: "ScriptDataDoubleEscapedDashDash",
	ScriptDataDoubleEscapedLessThanSign: "ScriptDataDoubleEscapedLessThanSign", ScriptDataDoubleEscapeEnd: "ScriptDataDoubleEscapeEnd",
	BeforeAttributeName: "BeforeAttributeName", AttributeName: "AttributeName", AfterAttributeName: "AfterAttributeName",
	BeforeAttributeValue: "BeforeAttributeValue", AttributeValueDoubleQuoted: "AttributeValueDoubleQuoted",
	AttributeValueSingleQuoted: "AttributeValueSingleQuoted", AttributeValueUnquoted: "AttributeValueUnquoted",
	AfterAttributeValueQuoted: "AfterAttributeValueQuoted",
	BogusComment: "BogusComment", MarkupDeclarationOpen: "MarkupDeclarationOpen",
	CommentStart: "CommentStart", CommentStartDash: "CommentStartDash", Comment: "Comment",
	CommentLessThanSign: "CommentLessThanSign", CommentLessThanSignBang: "CommentLessThanSignBang",
	CommentLessThanSignBangDash: "CommentLessThanSignBangDash", CommentLessThanSignBangDashDash: "CommentLessThanSignBangDashDash",
	CommentEndDash: "CommentEndDash", CommentEnd: "CommentEnd", CommentEndBang: "CommentEndBang",
	Doctype: "Doctype", BeforeDoctypeName: "BeforeDoctypeName", DoctypeName: "DoctypeName", AfterDoctypeName: "AfterDoctypeName",
	AfterDoctypePublicKeyword: "AfterDoctypePublicKeyword", BeforeDoctypePublicIdentifier: "BeforeDoctypePublicIdentifier",
	DoctypePublicIdentifierDoubleQuoted: "DoctypePublicIdentifierDoubleQuoted", DoctypePublicIdentifierSingleQuoted: "DoctypePublicIdentifierSingleQuoted",
	AfterDoctypePublicIdentifier: "AfterDoctypePublicIdentifier", BetweenDoctypePublicAndSystemIdentifiers: "BetweenDoctypePublicAndSystemIdentifiers",
	AfterDoctypeSystemKeyword: "AfterDoctypeSystemKeyword", BeforeDoctypeSystemIdentifier: "BeforeDoctypeSystemIdentifier",
	DoctypeSystemIdentifierDoubleQuoted: "DoctypeSystemIdentifierDoubleQuoted", DoctypeSystemIdentifierSingleQuoted: "DoctypeSystemIdentifierSingleQuoted",
	AfterDoctypeSystemIdentifier: "AfterDoctypeSystemIdentifier", BogusDoctype: "BogusDoctype",
	CdataSection: "CdataSection", CdataSectionBracket: "CdataSectionBracket", CdataSectionEnd: "CdataSectionEnd",
	CharacterReference: "CharacterReference", NamedCharacterReference: "NamedCharacterReference", AmbiguousAmpersand: "AmbiguousAmpersand",
	NumericCharacterReference: "NumericCharacterReference", HexadecimalCharacterReferenceStart: "HexadecimalCharacterReferenceStart",
	DecimalCharacterReferenceStart: "DecimalCharacterReferenceStart", HexadecimalCharacterReference: "HexadecimalCharacterReference",
	DecimalCharacterReference: "DecimalCharacterReference", NumericCharacterReferenceEnd: "NumericCharacterReferenceEnd",
	Term: "Term",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "UnknownState"
}

// tagBuilder accumulates a start or end tag token across TagName,
// attribute-sublanguage and self-closing states.
type tagBuilder struct {
	isEndTag    bool
	name        []rune
	attrs       []token.Attribute
	selfClosing bool

	// curName/curValue accumulate the attribute currently being scanned;
	// they are flushed into attrs when the next attribute (or the tag's
	// end) is reached.
	curName, curValue []rune
	curNameStarted    bool
}

func (b *tagBuilder) reset(isEndTag bool) {
	*b = tagBuilder{isEndTag: isEndTag}
}

// flushAttr appends the attribute currently being built to attrs,
// implementing the duplicate-attribute-name detection from spec section
// 4.2 ("Attribute duplicate detection"): a later attribute with a name
// equal to an earlier, non-duplicate attribute on the same tag is marked
// Duplicate and stripped by finalize.
func (b *tagBuilder) flushAttr() {
	if !b.curNameStarted {
		return
	}
	name := string(b.curName)
	dup := false
	for _, a := range b.attrs {
		if !a.Duplicate && a.Name == name {
			dup = true
			break
		}
	}
	b.attrs = append(b.attrs, token.Attribute{
		Name:      name,
		Value:     string(b.curValue),
		Duplicate: dup,
	})
	b.curName = nil
	b.curValue = nil
	b.curNameStarted = false
}

// finalize produces the Token this builder represents: TagName promotion
// and duplicate-attribute stripping both happen here (spec section 3/4.2
// emission invariants).
func (b *tagBuilder) finalize() token.Token {
	b.flushAttr()
	name := token.Other(string(b.name))
	if b.isEndTag {
		return token.NewEndTag(name)
	}
	return token.NewStartTag(name, b.attrs, b.selfClosing)
}

// doctypeBuilder accumulates a DOCTYPE token across the Doctype state
// family.
type doctypeBuilder struct {
	name                            []rune
	nameSet                         bool
	public, system                  []rune
	publicSet, systemSet            bool
	forceQuirks                     bool
}

func (b *doctypeBuilder) finalize() token.Token {
	t := token.Token{Kind: token.KindDoctype, ForceQuirks: b.forceQuirks}
	if b.nameSet {
		t.DoctypeName = string(b.name)
		t.DoctypeNamePresent = true
	}
	if b.publicSet {
		t.PublicID = string(b.public)
		t.PublicIDPresent = true
	}
	if b.systemSet {
		t.SystemID = string(b.system)
		t.SystemIDPresent = true
	}
	return t
}
