// Package encoding resolves an encoding label (a <meta charset>, a
// Content-Type header parameter, a BOM sniff) to the decoder this module's
// byte source needs (spec section 6, "Encoding label table"). Per spec
// section 1 this core assumes UTF-8 input by default and never performs
// encoding detection on its own account; this package exposes the lookup
// table as a separate, optional collaborator so a caller that already has
// raw bytes and an HTTP response (or a <meta> tag) can transcode before
// handing a reader to tokenizer.New.
package encoding

import (
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Lookup resolves label (case-insensitively, per the WHATWG encoding
// standard's label list) to its canonical encoding.Encoding, the same
// table golang.org/x/text/encoding/htmlindex ships. ok is false for a
// label this module's dependencies don't recognize.
func Lookup(label string) (enc encoding.Encoding, canonicalName string, ok bool) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", false
	}
	canonicalName, _ = htmlindex.Name(enc)
	return enc, canonicalName, true
}

// Sniff implements the "sniffing the encoding" collaborator spec section 6
// leaves external: given the first bytes of a document and an optional
// Content-Type value, it delegates to golang.org/x/net/html/charset's BOM
// and <meta charset> prescan, the same sniffing algorithm a browser's HTML
// parser entry point runs before invoking a tokenizer.
func Sniff(content []byte, contentType string) (enc encoding.Encoding, canonicalName string, certain bool) {
	return charset.DetermineEncoding(content, contentType)
}

// NewDecodingReader wraps r so it always yields UTF-8 bytes, transcoding
// from the encoding labeled by contentType (a Content-Type header value)
// if necessary. This is the glue a caller uses to feed tokenizer.New a
// reader that already satisfies spec section 1's "assumes UTF-8 input"
// contract, grounded on golang.org/x/net/html/charset.NewReader's own
// sniff-then-wrap shape.
func NewDecodingReader(r io.Reader, contentType string) (io.Reader, error) {
	rr, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("encoding: determining charset: %w", err)
	}
	return rr, nil
}
