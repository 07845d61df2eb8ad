package dom

import "github.com/dpotapov/html5parser/token"

// QuirksMode records the document-wide legacy-compatibility flag derived
// from the DOCTYPE token (spec section 4.3, "Quirks classification").
type QuirksMode uint8

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "no-quirks"
	}
}

// Document is the tree this parser builds: a single *Node of type
// DocumentNode, plus the element arena every *Node in the tree was
// allocated from (design notes section 9 — an arena-owned tree avoids
// needing reference counting even though the open-elements stack, the
// active-formatting list and each node's Parent pointer can all reference
// the same *Node at once).
type Document struct {
	root   *Node
	arena  []*Node
	quirks QuirksMode
}

// NewDocument returns an empty Document: a DocumentNode with no children.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.newNode(DocumentNode)
	return d
}

// Root returns the underlying #document Node (the parent of everything
// else in the tree).
func (d *Document) Root() *Node { return d.root }

// QuirksMode returns the document's quirks classification.
func (d *Document) QuirksMode() QuirksMode { return d.quirks }

// SetQuirksMode records the document's quirks classification. It is
// write-once in practice (the Initial insertion mode sets it at most
// once per spec section 4.3) but is not itself enforced here; the tree
// constructor owns that invariant.
func (d *Document) SetQuirksMode(q QuirksMode) { d.quirks = q }

// DocumentElement returns the document's single root Element (the <html>
// node), or nil if none has been inserted yet.
func (d *Document) DocumentElement() *Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode {
			return c
		}
	}
	return nil
}

// DocumentType returns the document's DoctypeNode, or nil if none was set.
func (d *Document) DocumentType() *Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == DoctypeNode {
			return c
		}
	}
	return nil
}

// newNode allocates a Node of the given type into the document's arena.
// Every node constructor in this package funnels through here so the
// arena always reflects every live node the document owns.
func (d *Document) newNode(t NodeType) *Node {
	n := &Node{Type: t}
	d.arena = append(d.arena, n)
	return n
}

// NewElement allocates an HTML-namespace element with the given tag name.
func (d *Document) NewElement(name token.TagName) *Node {
	n := d.newNode(ElementNode)
	n.Name = name
	n.Namespace = token.HTML
	return n
}

// NewElementNS allocates an element in the given namespace.
func (d *Document) NewElementNS(name token.TagName, ns token.Namespace) *Node {
	n := d.NewElement(name)
	n.Namespace = ns
	return n
}

// NewText allocates a text node.
func (d *Document) NewText(data string) *Node {
	n := d.newNode(TextNode)
	n.Data = data
	return n
}

// NewComment allocates a comment node.
func (d *Document) NewComment(data string) *Node {
	n := d.newNode(CommentNode)
	n.Data = data
	return n
}

// NewProcessingInstruction allocates a processing-instruction node.
func (d *Document) NewProcessingInstruction(target, data string) *Node {
	n := d.newNode(ProcessingInstructionNode)
	n.Target = target
	n.Data = data
	return n
}

// NewDoctype allocates a DoctypeNode carrying the given name and
// identifiers (empty string if absent, per spec section 3).
func (d *Document) NewDoctype(name, publicID, systemID string) *Node {
	n := d.newNode(DoctypeNode)
	n.Data = name
	n.PublicID = publicID
	n.SystemID = systemID
	return n
}

// CloneElement returns an unattached copy of an ElementNode from this
// document's arena, suitable for the adoption agency's "clone the
// formatting element" step (spec section 4.3).
func (d *Document) CloneElement(n *Node) *Node {
	c := clone(n)
	d.arena = append(d.arena, c)
	return c
}

// NewDocumentFragment allocates a standalone DocumentFragmentNode, used as
// the context root for fragment parsing (see dom.Fragment in fragment.go).
func (d *Document) NewDocumentFragment() *Node {
	return d.newNode(DocumentFragmentNode)
}
