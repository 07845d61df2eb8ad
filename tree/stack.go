package tree

import (
	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
)

// nodeStack is the stack of open elements (spec section 3,
// OpenElementsStack), grounded on the teacher's chtml/html/node.go
// nodeStack type with *html.Node replaced by *dom.Node.
type nodeStack []*dom.Node

func (s *nodeStack) push(n *dom.Node) { *s = append(*s, n) }

func (s *nodeStack) pop() *dom.Node {
	i := len(*s)
	n := (*s)[i-1]
	*s = (*s)[:i-1]
	return n
}

func (s *nodeStack) top() *dom.Node {
	if i := len(*s); i > 0 {
		return (*s)[i-1]
	}
	return nil
}

func (s *nodeStack) index(n *dom.Node) int {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i] == n {
			return i
		}
	}
	return -1
}

func (s *nodeStack) contains(t token.Tag) bool {
	for _, n := range *s {
		if n.Namespace == token.HTML && n.Name.Is(t) {
			return true
		}
	}
	return false
}

func (s *nodeStack) insert(i int, n *dom.Node) {
	*s = append(*s, nil)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = n
}

func (s *nodeStack) remove(n *dom.Node) {
	i := s.index(n)
	if i == -1 {
		return
	}
	copy((*s)[i:], (*s)[i+1:])
	j := len(*s) - 1
	(*s)[j] = nil
	*s = (*s)[:j]
}

// scope identifies one of the named element-scope predicates spec section
// 4.3's insertion-primitives and adoption-agency sections rely on
// (defaultScope, listItemScope, buttonScope, tableScope, selectScope).
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// defaultScopeStopTags mirrors x/net/html's defaultScopeStopTags, keyed by
// namespace; unlike the teacher this module's TagName enum does not carry
// every MathML/SVG name, so the MathML/SVG stop lists are matched by
// lowercase string instead of by Tag identity.
var defaultScopeStopTagsHTML = []token.Tag{
	token.TagApplet, token.TagCaption, token.TagHTML, token.TagTable,
	token.TagTd, token.TagTh, token.TagMarquee, token.TagObject, token.TagTemplate,
}

var defaultScopeStopTagsMathML = map[string]bool{
	"annotation-xml": true, "mi": true, "mn": true, "mo": true, "ms": true, "mtext": true,
}

var defaultScopeStopTagsSVG = map[string]bool{
	"desc": true, "foreignObject": true, "title": true,
}

func isDefaultScopeStopTag(n *dom.Node) bool {
	switch n.Namespace {
	case token.HTML:
		return n.Name.In(defaultScopeStopTagsHTML...)
	case token.MathML:
		return defaultScopeStopTagsMathML[n.Name.String()]
	case token.SVG:
		return defaultScopeStopTagsSVG[n.Name.String()]
	default:
		return false
	}
}

// indexOfElementInScope returns the index in oe of the highest element
// matching one of tags that is in scope s, or -1 if none is.
func (p *Parser) indexOfElementInScope(s scope, tags ...token.Tag) int {
	for i := len(p.oe) - 1; i >= 0; i-- {
		n := p.oe[i]
		if n.Namespace == token.HTML {
			if n.Name.In(tags...) {
				return i
			}
			switch s {
			case listItemScope:
				if n.Name.In(token.TagOl, token.TagUl) {
					return -1
				}
			case buttonScope:
				if n.Name.Is(token.TagButton) {
					return -1
				}
			case tableScope:
				if n.Name.In(token.TagHTML, token.TagTable, token.TagTemplate) {
					return -1
				}
			case selectScope:
				if !n.Name.In(token.TagOptgroup, token.TagOption) {
					return -1
				}
			}
		}
		switch s {
		case defaultScope, listItemScope, buttonScope:
			if isDefaultScopeStopTag(n) {
				return -1
			}
		}
	}
	return -1
}

// elementInScope reports whether an element matching one of tags is in
// scope s, without modifying the stack.
func (p *Parser) elementInScope(s scope, tags ...token.Tag) bool {
	return p.indexOfElementInScope(s, tags...) != -1
}

// popUntil pops the open-elements stack down to and including the
// highest element matching tags in scope s. It reports whether such an
// element was found; if not, the stack is unchanged.
func (p *Parser) popUntil(s scope, tags ...token.Tag) bool {
	if i := p.indexOfElementInScope(s, tags...); i != -1 {
		p.oe = p.oe[:i]
		return true
	}
	return false
}

// specialHTML is the HTML-namespace subset of the WHATWG "special"
// category (spec glossary, "Special element"): elements whose presence on
// the open-elements stack terminates a generic end-tag scan and several
// scope-limited walks in InBody.
var specialHTML = []token.Tag{
	token.TagAddress, token.TagApplet, token.TagArea, token.TagArticle, token.TagAside,
	token.TagBase, token.TagBasefont, token.TagBgsound, token.TagBlockquote, token.TagBody,
	token.TagBr, token.TagButton, token.TagCaption, token.TagCenter, token.TagCol,
	token.TagColgroup, token.TagDd, token.TagDetails, token.TagDir, token.TagDiv,
	token.TagDl, token.TagDt, token.TagEmbed, token.TagFieldset, token.TagFigcaption,
	token.TagFigure, token.TagFooter, token.TagForm, token.TagFrame, token.TagFrameset,
	token.TagH1, token.TagH2, token.TagH3, token.TagH4, token.TagH5, token.TagH6,
	token.TagHead, token.TagHeader, token.TagHgroup, token.TagHr, token.TagHTML,
	token.TagIframe, token.TagImg, token.TagInput, token.TagKeygen, token.TagLi,
	token.TagLink, token.TagListing, token.TagMain, token.TagMarquee, token.TagMenu,
	token.TagMenuitem, token.TagMeta, token.TagNav, token.TagNoembed, token.TagNoframes,
	token.TagNoscript, token.TagObject, token.TagOl, token.TagP, token.TagParam,
	token.TagPlaintext, token.TagPre, token.TagScript, token.TagSection, token.TagSelect,
	token.TagSource, token.TagStyle, token.TagSummary, token.TagTable, token.TagTbody,
	token.TagTd, token.TagTemplate, token.TagTextarea, token.TagTfoot, token.TagTh,
	token.TagThead, token.TagTitle, token.TagTr, token.TagTrack, token.TagUl, token.TagWbr,
	token.TagXmp,
}

var specialMathML = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true, "annotation-xml": true,
}

var specialSVG = map[string]bool{
	"foreignObject": true, "desc": true, "title": true,
}

// isSpecialElement reports whether n belongs to the WHATWG "special"
// category.
func isSpecialElement(n *dom.Node) bool {
	switch n.Namespace {
	case token.HTML:
		return n.Name.In(specialHTML...)
	case token.MathML:
		return specialMathML[n.Name.String()]
	case token.SVG:
		return specialSVG[n.Name.String()]
	default:
		return false
	}
}
