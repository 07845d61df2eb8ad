package tree

import (
	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
)

// afeEntry is one slot of the list of active formatting elements (spec
// section 3): either a formatting Element or a Marker. Markers partition
// the list so lookups and reconstruction never cross into an enclosing
// applet/object/marquee/template/td/th/caption (spec glossary, "Marker").
type afeEntry struct {
	node   *dom.Node // nil when marker
	marker bool
}

// afeList is the list of active formatting elements, grounded on the
// teacher's chtml/html/node.go nodeStack plus its scopeMarkerNode
// convention, reshaped as a dedicated slice of afeEntry instead of
// overloading *dom.Node with a marker NodeType.
type afeList []afeEntry

func (l *afeList) pushMarker() { *l = append(*l, afeEntry{marker: true}) }

func (l *afeList) push(n *dom.Node) { *l = append(*l, afeEntry{node: n}) }

func (l *afeList) top() *afeEntry {
	if i := len(*l); i > 0 {
		return &(*l)[i-1]
	}
	return nil
}

func (l *afeList) index(n *dom.Node) int {
	for i := len(*l) - 1; i >= 0; i-- {
		if !(*l)[i].marker && (*l)[i].node == n {
			return i
		}
	}
	return -1
}

func (l *afeList) insert(i int, n *dom.Node) {
	*l = append(*l, afeEntry{})
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = afeEntry{node: n}
}

func (l *afeList) remove(n *dom.Node) {
	i := l.index(n)
	if i == -1 {
		return
	}
	copy((*l)[i:], (*l)[i+1:])
	j := len(*l) - 1
	(*l)[j] = afeEntry{}
	*l = (*l)[:j]
}

// clearToLastMarker implements spec section 4.3's "clear the list of active
// formatting elements up to the last marker", invoked when entering a
// table cell/caption or the content of a template.
func (l *afeList) clearToLastMarker() {
	for {
		n := len(*l)
		if n == 0 {
			return
		}
		e := (*l)[n-1]
		*l = (*l)[:n-1]
		if e.marker {
			return
		}
	}
}

// findFormattingElement returns the last entry in l before the last marker
// (or the start of the list) whose node has the given tag name, per the
// adoption agency algorithm's "find the formatting element" step (spec
// section 4.3).
func (l afeList) findFormattingElement(name token.TagName) *dom.Node {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].marker {
			return nil
		}
		if l[i].node.Namespace == token.HTML && l[i].node.Name.EqualFold(name.String()) {
			return l[i].node
		}
	}
	return nil
}

// reconstructActiveFormattingElements implements spec section 4.3's
// "reconstruct the active formatting elements" insertion primitive,
// grounded on the teacher's chtml/html/parse.go
// reconstructActiveFormattingElements.
func (p *Parser) reconstructActiveFormattingElements() {
	top := p.afe.top()
	if top == nil {
		return
	}
	if top.marker || p.oe.index(top.node) != -1 {
		return
	}
	i := len(p.afe) - 1
	for {
		e := p.afe[i]
		if e.marker || p.oe.index(e.node) != -1 {
			break
		}
		if i == 0 {
			i = -1
			break
		}
		i--
	}
	for {
		i++
		clone := p.doc.CloneElement(p.afe[i].node)
		p.insertNode(clone)
		p.afe[i].node = clone
		if i == len(p.afe)-1 {
			break
		}
	}
}

// addFormattingElement pushes the element just opened onto both the
// open-elements stack (already done by the caller) and the active
// formatting list, applying the Noah's Ark clause: at most three identical
// (same name, namespace, attribute set) formatting elements may sit
// between the last marker and the end of the list.
func (p *Parser) addFormattingElement(n *dom.Node) {
	identical := 0
findIdentical:
	for i := len(p.afe) - 1; i >= 0; i-- {
		e := p.afe[i]
		if e.marker {
			break
		}
		if e.node.Namespace != n.Namespace || !e.node.Name.EqualFold(n.Name.String()) {
			continue
		}
		if len(e.node.Attr) != len(n.Attr) {
			continue
		}
		for _, a := range e.node.Attr {
			found := false
			for _, b := range n.Attr {
				if a.Name == b.Name && a.Namespace == b.Namespace && a.Value == b.Value {
					found = true
					break
				}
			}
			if !found {
				continue findIdentical
			}
		}
		identical++
		if identical >= 3 {
			p.afe.remove(e.node)
		}
	}
	p.afe.push(n)
}
