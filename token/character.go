package token

// CharacterKind identifies which variant of Character is populated.
type CharacterKind int

const (
	// CharScalar carries an ordinary decoded Unicode scalar.
	CharScalar CharacterKind = iota
	// CharLineFeed is emitted for both CR and CRLF after newline
	// normalization; it is kept distinct from CharScalar('\n') so that the
	// tokenizer's pre-state-(ish) `<pre>`/`<textarea>` leading-newline rules
	// in the tree constructor can recognize a normalized line break.
	CharLineFeed
	// CharNull marks a literal NUL byte read from the source; several
	// tokenizer states branch on this to raise UnexpectedNullCharacter.
	CharNull
	// CharEof marks end of input. Once emitted, every subsequent read
	// yields CharEof again.
	CharEof
)

// Character is the unit the byte source preprocessor hands to the
// tokenizer: a tagged variant over {Scalar, LineFeed, Null, Eof} (spec
// section 3).
type Character struct {
	Kind  CharacterKind
	Value rune // valid only when Kind == CharScalar
}

// Scalar builds a Character wrapping an ordinary scalar value.
func Scalar(r rune) Character { return Character{Kind: CharScalar, Value: r} }

// LineFeed is the singleton normalized-newline Character.
var LineFeed = Character{Kind: CharLineFeed, Value: '\n'}

// Null is the singleton NUL Character.
var Null = Character{Kind: CharNull, Value: 0}

// Eof is the singleton end-of-stream Character.
var Eof = Character{Kind: CharEof}

// Rune returns the scalar this Character represents for the purposes of
// tokenizer state transitions: LineFeed reads as '\n', Null as 0x00, and
// Eof panics (callers must check Kind first).
func (c Character) Rune() rune {
	switch c.Kind {
	case CharScalar:
		return c.Value
	case CharLineFeed:
		return '\n'
	case CharNull:
		return 0
	default:
		panic("token: Rune called on an Eof Character")
	}
}

// IsEof reports whether c is the end-of-stream marker.
func (c Character) IsEof() bool { return c.Kind == CharEof }
