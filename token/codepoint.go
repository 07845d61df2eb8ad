// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
// Copyright 2024 Daniel Potapov
//  - Replaced the x/net/html byte-oriented tokenizer helpers with a
//    codepoint-level classification API, since this tokenizer consumes
//    decoded Unicode scalars rather than raw bytes.

// Package token defines the data model shared by the tokenizer and the
// tree constructor: codepoints, characters, tag names, namespaces,
// attributes and the token sum type itself (see section 3 of the parser
// design notes).
package token

// IsSurrogate reports whether r is a UTF-16 surrogate codepoint. Surrogates
// can appear in the input stream (e.g. via a numeric character reference)
// even though they are never valid standalone Unicode scalars.
func IsSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

// IsNoncharacter reports whether r is one of the Unicode noncharacter
// codepoints (the last two codepoints of each plane, plus U+FDD0..U+FDEF).
func IsNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

// IsControl reports whether r is a C0 or C1 control character.
func IsControl(r rune) bool {
	return (r >= 0x0000 && r <= 0x001F) || (r >= 0x007F && r <= 0x009F)
}

// IsASCIIWhitespace reports whether r is tab, line feed, form feed,
// carriage return or space, per the WHATWG definition of "ASCII whitespace".
func IsASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// IsASCIIUpperHexDigit reports whether r is one of 0-9, A-F.
func IsASCIIUpperHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')
}

// IsASCIILowerHexDigit reports whether r is one of 0-9, a-f.
func IsASCIILowerHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

// IsASCIIHexDigit reports whether r is one of 0-9, A-F, a-f.
func IsASCIIHexDigit(r rune) bool {
	return IsASCIIUpperHexDigit(r) || IsASCIILowerHexDigit(r)
}

// IsASCIIDigit reports whether r is one of 0-9.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIIUpperAlpha reports whether r is one of A-Z.
func IsASCIIUpperAlpha(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsASCIILowerAlpha reports whether r is one of a-z.
func IsASCIILowerAlpha(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsASCIIAlpha reports whether r is one of A-Z, a-z.
func IsASCIIAlpha(r rune) bool {
	return IsASCIIUpperAlpha(r) || IsASCIILowerAlpha(r)
}

// IsASCIIAlphanumeric reports whether r is one of A-Z, a-z, 0-9.
func IsASCIIAlphanumeric(r rune) bool {
	return IsASCIIAlpha(r) || IsASCIIDigit(r)
}

// ToASCIILower lower-cases r if it is an ASCII upper-case letter, and
// returns r unchanged otherwise.
func ToASCIILower(r rune) rune {
	if IsASCIIUpperAlpha(r) {
		return r + ('a' - 'A')
	}
	return r
}
