// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
// Copyright 2024 Daniel Potapov
//  - TagName pairs golang.org/x/net/html/atom's Atom identity with the
//    original element-name string, mirroring the split the teacher's
//    chtml/node.go Node struct uses (DataAtom atom.Atom, Data string) and
//    the lookup the teacher's component.go performs
//    (DataAtom: atom.Lookup([]byte(src.FullTag()))).

package token

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Tag is the closed tag identity spec section 3's "TagName" calls for:
// golang.org/x/net/html/atom's own Atom type, the same closed enumeration
// the teacher's chtml/html parser and chtml/node.go DataAtom field use.
type Tag = atom.Atom

// TagOther is atom.Atom's own zero value: the identity atom.Lookup
// returns for any element name outside its table. A TagName carrying
// TagOther still has its original string available via String/EqualFold.
const TagOther Tag = 0

// lookupTag resolves name through golang.org/x/net/html/atom, the same
// call the teacher's component.go makes for an element's DataAtom. Tags
// this tree constructor and tokenizer branch on by identity are resolved
// once here, at init, rather than hardcoded against
// golang.org/x/net/html/atom's generated constant names, so this table
// tracks that package's own table instead of duplicating it.
func lookupTag(name string) Tag { return atom.Lookup([]byte(name)) }

// Known tags the tokenizer and tree constructor need to recognize by
// identity rather than by string comparison (spec section 3, "TagName").
// MathML- and SVG-only names (annotation-xml, mglyph, malignmark,
// foreignObject, desc, and the MathML text-integration tags mi/mo/mn/ms/
// mtext) are deliberately absent: golang.org/x/net/html/atom's table is
// generated from the HTML element/attribute/event vocabulary, not the
// MathML or SVG ones, so tree/stack.go and tree/parser.go match those by
// lowercase string instead (see isSpecialElement, isDefaultScopeStopTag,
// isMathMLTextIntegrationPoint, isHTMLIntegrationPoint).
var (
	TagHTML       = lookupTag("html")
	TagHead       = lookupTag("head")
	TagBody       = lookupTag("body")
	TagTitle      = lookupTag("title")
	TagBase       = lookupTag("base")
	TagBasefont   = lookupTag("basefont")
	TagBgsound    = lookupTag("bgsound")
	TagLink       = lookupTag("link")
	TagMeta       = lookupTag("meta")
	TagStyle      = lookupTag("style")
	TagScript     = lookupTag("script")
	TagNoscript   = lookupTag("noscript")
	TagNoframes   = lookupTag("noframes")
	TagTemplate   = lookupTag("template")
	TagFrameset   = lookupTag("frameset")
	TagFrame      = lookupTag("frame")
	TagP          = lookupTag("p")
	TagH1         = lookupTag("h1")
	TagH2         = lookupTag("h2")
	TagH3         = lookupTag("h3")
	TagH4         = lookupTag("h4")
	TagH5         = lookupTag("h5")
	TagH6         = lookupTag("h6")
	TagLi         = lookupTag("li")
	TagDd         = lookupTag("dd")
	TagDt         = lookupTag("dt")
	TagA          = lookupTag("a")
	TagB          = lookupTag("b")
	TagBig        = lookupTag("big")
	TagCode       = lookupTag("code")
	TagEm         = lookupTag("em")
	TagFont       = lookupTag("font")
	TagI          = lookupTag("i")
	TagNobr       = lookupTag("nobr")
	TagS          = lookupTag("s")
	TagSmall      = lookupTag("small")
	TagStrike     = lookupTag("strike")
	TagStrong     = lookupTag("strong")
	TagTt         = lookupTag("tt")
	TagU          = lookupTag("u")
	TagApplet     = lookupTag("applet")
	TagMarquee    = lookupTag("marquee")
	TagObject     = lookupTag("object")
	TagTable      = lookupTag("table")
	TagTbody      = lookupTag("tbody")
	TagThead      = lookupTag("thead")
	TagTfoot      = lookupTag("tfoot")
	TagTr         = lookupTag("tr")
	TagTd         = lookupTag("td")
	TagTh         = lookupTag("th")
	TagCaption    = lookupTag("caption")
	TagColgroup   = lookupTag("colgroup")
	TagCol        = lookupTag("col")
	TagSelect     = lookupTag("select")
	TagOptgroup   = lookupTag("optgroup")
	TagOption     = lookupTag("option")
	TagRb         = lookupTag("rb")
	TagRp         = lookupTag("rp")
	TagRt         = lookupTag("rt")
	TagRtc        = lookupTag("rtc")
	TagRuby       = lookupTag("ruby")
	TagBr         = lookupTag("br")
	TagImg        = lookupTag("img")
	TagInput      = lookupTag("input")
	TagHr         = lookupTag("hr")
	TagArea       = lookupTag("area")
	TagEmbed      = lookupTag("embed")
	TagParam      = lookupTag("param")
	TagSource     = lookupTag("source")
	TagTrack      = lookupTag("track")
	TagWbr        = lookupTag("wbr")
	TagKeygen     = lookupTag("keygen")
	TagMenuitem   = lookupTag("menuitem")
	TagPre        = lookupTag("pre")
	TagListing    = lookupTag("listing")
	TagTextarea   = lookupTag("textarea")
	TagXmp        = lookupTag("xmp")
	TagIframe     = lookupTag("iframe")
	TagNoembed    = lookupTag("noembed")
	TagPlaintext  = lookupTag("plaintext")
	TagForm       = lookupTag("form")
	TagButton     = lookupTag("button")
	TagAddress    = lookupTag("address")
	TagArticle    = lookupTag("article")
	TagAside      = lookupTag("aside")
	TagBlockquote = lookupTag("blockquote")
	TagCenter     = lookupTag("center")
	TagDetails    = lookupTag("details")
	TagDialog     = lookupTag("dialog")
	TagDir        = lookupTag("dir")
	TagDiv        = lookupTag("div")
	TagDl         = lookupTag("dl")
	TagFieldset   = lookupTag("fieldset")
	TagFigcaption = lookupTag("figcaption")
	TagFigure     = lookupTag("figure")
	TagFooter     = lookupTag("footer")
	TagHeader     = lookupTag("header")
	TagHgroup     = lookupTag("hgroup")
	TagMain       = lookupTag("main")
	TagMenu       = lookupTag("menu")
	TagNav        = lookupTag("nav")
	TagOl         = lookupTag("ol")
	TagSection    = lookupTag("section")
	TagSummary    = lookupTag("summary")
	TagUl         = lookupTag("ul")
	TagMath       = lookupTag("math")
	TagSvg        = lookupTag("svg")
)

// knownTagNames backs NewTagName's promotion check (TagName.String renders
// a known tag through the atom itself): golang.org/x/net/html/atom.Atom.String
// already recovers an atom's original text, but NewTagName needs the
// reverse direction (string to Tag) keyed by exactly the strings this
// tree constructor cares about, since atom.Lookup alone can't tell this
// package "html" was promoted on purpose versus coincidentally resolving
// to some unrelated, uninteresting atom.
var knownTagNames map[string]Tag

func init() {
	knownTagNames = map[string]Tag{
		"html": TagHTML, "head": TagHead, "body": TagBody, "title": TagTitle,
		"base": TagBase, "basefont": TagBasefont, "bgsound": TagBgsound,
		"link": TagLink, "meta": TagMeta, "style": TagStyle, "script": TagScript,
		"noscript": TagNoscript, "noframes": TagNoframes, "template": TagTemplate,
		"frameset": TagFrameset, "frame": TagFrame, "p": TagP,
		"h1": TagH1, "h2": TagH2, "h3": TagH3, "h4": TagH4, "h5": TagH5, "h6": TagH6,
		"li": TagLi, "dd": TagDd, "dt": TagDt, "a": TagA, "b": TagB, "big": TagBig,
		"code": TagCode, "em": TagEm, "font": TagFont, "i": TagI, "nobr": TagNobr,
		"s": TagS, "small": TagSmall, "strike": TagStrike, "strong": TagStrong,
		"tt": TagTt, "u": TagU, "applet": TagApplet, "marquee": TagMarquee,
		"object": TagObject, "table": TagTable, "tbody": TagTbody, "thead": TagThead,
		"tfoot": TagTfoot, "tr": TagTr, "td": TagTd, "th": TagTh, "caption": TagCaption,
		"colgroup": TagColgroup, "col": TagCol, "select": TagSelect,
		"optgroup": TagOptgroup, "option": TagOption, "rb": TagRb, "rp": TagRp,
		"rt": TagRt, "rtc": TagRtc, "ruby": TagRuby, "br": TagBr, "img": TagImg,
		"input": TagInput, "hr": TagHr, "area": TagArea, "embed": TagEmbed,
		"param": TagParam, "source": TagSource, "track": TagTrack, "wbr": TagWbr,
		"keygen": TagKeygen, "menuitem": TagMenuitem, "pre": TagPre,
		"listing": TagListing, "textarea": TagTextarea, "xmp": TagXmp,
		"iframe": TagIframe, "noembed": TagNoembed, "plaintext": TagPlaintext,
		"form": TagForm, "button": TagButton, "address": TagAddress,
		"article": TagArticle, "aside": TagAside, "blockquote": TagBlockquote,
		"center": TagCenter, "details": TagDetails, "dialog": TagDialog,
		"dir": TagDir, "div": TagDiv, "dl": TagDl, "fieldset": TagFieldset,
		"figcaption": TagFigcaption, "figure": TagFigure, "footer": TagFooter,
		"header": TagHeader, "hgroup": TagHgroup, "main": TagMain, "menu": TagMenu,
		"nav": TagNav, "ol": TagOl, "section": TagSection, "summary": TagSummary,
		"ul": TagUl, "math": TagMath, "svg": TagSvg,
	}
}

// TagName is the tokenizer/tree-constructor's view of an element or
// attribute name: a closed Tag identity when the lowercased string names
// a known HTML element, or TagOther carrying the original string
// otherwise.
//
// Invariant (spec section 3): once a tag token is finalized and emitted,
// its TagName never carries TagOther for a string that is also a key of
// knownTagNames — NewTagName always promotes known names.
type TagName struct {
	id   Tag
	name string
}

// NewTagName builds a finalized TagName from a raw (already-lowercased,
// for HTML content) element name, promoting it to a known Tag when
// possible.
func NewTagName(name string) TagName {
	if id, ok := knownTagNames[name]; ok {
		return TagName{id: id, name: name}
	}
	return TagName{id: TagOther, name: name}
}

// Other builds a TagName carrying an arbitrary string without attempting
// promotion. Used by the tokenizer while a tag is still being built; call
// Finalize before emitting.
func Other(name string) TagName { return TagName{id: TagOther, name: name} }

// Of is a convenience constructor for a known Tag.
func Of(t Tag) TagName {
	if t == TagOther {
		return TagName{id: TagOther}
	}
	return TagName{id: t, name: t.String()}
}

// Finalize promotes t to a known Tag if its string matches one, leaving
// it unchanged otherwise. The tokenizer calls this once per tag, right
// before emitting the token (spec section 3).
func (t TagName) Finalize() TagName { return NewTagName(t.name) }

// String returns the element name as it should appear in markup: the
// canonical lowercase spelling for known tags (even if it was reached via
// Of), or the raw string for TagOther.
func (t TagName) String() string {
	if t.id != TagOther {
		return t.id.String()
	}
	return t.name
}

// Is reports whether t identifies the given known Tag. A TagName whose
// identity is TagOther never matches, even if want is itself TagOther —
// use IsOther to test for that case — so that a caller cannot mistake an
// unrecognized element for a specific one due to both sharing the zero
// Tag value.
func (t TagName) Is(want Tag) bool { return t.id != TagOther && t.id == want }

// ID returns the underlying closed Tag identity (TagOther for an unknown
// name), for callers that need to pass a TagName where a Tag is expected,
// e.g. the adoption agency algorithm's scope checks (spec section 4.3).
func (t TagName) ID() Tag { return t.id }

// In reports whether t identifies any of the given known Tags.
func (t TagName) In(tags ...Tag) bool {
	if t.id == TagOther {
		return false
	}
	for _, w := range tags {
		if t.id == w {
			return true
		}
	}
	return false
}

// IsOther reports whether t fell outside the known Tag set.
func (t TagName) IsOther() bool { return t.id == TagOther }

// EqualFold reports whether t's string equals other ASCII-case-
// insensitively, used by the "appropriate end tag" check and
// foreign-content end-tag scans.
func (t TagName) EqualFold(other string) bool {
	return strings.EqualFold(t.String(), other)
}
