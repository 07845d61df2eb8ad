package token

// Kind identifies which variant of Token is populated.
type Kind uint8

const (
	KindDoctype Kind = iota
	KindStartTag
	KindEndTag
	KindComment
	KindCharacter
	KindCharacters
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindDoctype:
		return "Doctype"
	case KindStartTag:
		return "StartTag"
	case KindEndTag:
		return "EndTag"
	case KindComment:
		return "Comment"
	case KindCharacter:
		return "Character"
	case KindCharacters:
		return "Characters"
	case KindEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token is the sum type the tokenizer emits and the tree constructor
// consumes (spec section 3). Only the fields relevant to Kind are
// meaningful; the others are zero.
type Token struct {
	Kind Kind

	// StartTag / EndTag
	Name         TagName
	SelfClosing  bool
	Attrs        []Attribute
	Acknowledged bool // set by the tree constructor once it has consumed SelfClosing

	// Doctype
	DoctypeName       string
	DoctypeNamePresent bool
	PublicID          string
	PublicIDPresent   bool
	SystemID          string
	SystemIDPresent   bool
	ForceQuirks       bool

	// Comment
	Data string

	// Character / Characters
	Char rune   // valid when Kind == KindCharacter
	Text string // valid when Kind == KindCharacters
}

// Attr looks up the first non-duplicate attribute named name (case
// sensitive, since by emit time names are already normalized to
// lowercase for HTML content).
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// NewStartTag builds a finalized start-tag token: TagName promotion and
// attribute de-duplication both happen here so every caller gets the same
// emit-time invariants spec section 3 requires.
func NewStartTag(name TagName, attrs []Attribute, selfClosing bool) Token {
	return Token{
		Kind:        KindStartTag,
		Name:        name.Finalize(),
		Attrs:       finalizeAttributes(attrs),
		SelfClosing: selfClosing,
	}
}

// NewEndTag builds a finalized end-tag token.
func NewEndTag(name TagName) Token {
	return Token{Kind: KindEndTag, Name: name.Finalize()}
}

// NewComment builds a comment token.
func NewComment(data string) Token { return Token{Kind: KindComment, Data: data} }

// NewCharacter builds a single-scalar character token.
func NewCharacter(r rune) Token { return Token{Kind: KindCharacter, Char: r} }

// NewCharacters builds a coalesced run-of-characters token.
func NewCharacters(s string) Token { return Token{Kind: KindCharacters, Text: s} }

// EOFToken is the singleton terminal token.
var EOFToken = Token{Kind: KindEOF}

// IsCharacterLike reports whether t is either a Character or a Characters
// token, the two variants the tokenizer's coalescing option interchanges.
func (t Token) IsCharacterLike() bool {
	return t.Kind == KindCharacter || t.Kind == KindCharacters
}
