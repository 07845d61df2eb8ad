// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
// Copyright 2024 Daniel Potapov
//  - Replaced x/net/html.Node's byte-atom-keyed Data/DataAtom pair with
//    this module's own token.TagName, and added the Document-owned arena
//    described in the design notes (section 4.4/9): every *Node reachable
//    from a *Document was allocated by that Document and never by another
//    owner, so the tree constructor can freely hand the same pointer to
//    the open-elements stack, the active-formatting list and a parent's
//    child list at once.

// Package dom implements the tree the parser builds: Document, Element,
// Text, Comment, ProcessingInstruction, DocumentType and DocumentFragment
// (spec section 3), modeled as a single linked Node type so that the tree
// constructor's reparenting operations (adoption agency, foster parenting)
// can move subtrees without caring which DOM interface a node implements.
package dom

import "github.com/dpotapov/html5parser/token"

// NodeType distinguishes the different shapes a Node can take.
type NodeType uint8

const (
	// DocumentNode is the root of every tree this package builds. Its
	// children are, in order: pre-doctype Comment/ProcessingInstruction
	// nodes, at most one DoctypeNode, between-doctype-and-root nodes, at
	// most one root ElementNode, and post-root nodes (spec section 3).
	DocumentNode NodeType = iota
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
	ProcessingInstructionNode
	DocumentFragmentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "#document"
	case DoctypeNode:
		return "#doctype"
	case ElementNode:
		return "element"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case ProcessingInstructionNode:
		return "#processing-instruction"
	case DocumentFragmentNode:
		return "#document-fragment"
	default:
		return "#unknown"
	}
}

// Node is the single concrete tree node type this DOM uses for every node
// shape. Only the fields relevant to Type carry meaning; unused fields are
// zero.
type Node struct {
	Type      NodeType
	Namespace token.Namespace

	// Parent/FirstChild/LastChild/PrevSibling/NextSibling form the usual
	// doubly linked sibling list. Parent is nil for the Document node and
	// for any node not currently attached to a tree (e.g. a node lifted
	// mid-adoption-agency before it is reattached).
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	// Name is meaningful for ElementNode.
	Name token.TagName

	// Attr is meaningful for ElementNode.
	Attr []token.Attribute

	// Data holds: the doctype name for DoctypeNode, the text for
	// TextNode/CommentNode, and the character data for
	// ProcessingInstructionNode (Target carries the PI target in that
	// case).
	Data string

	// Target is meaningful for ProcessingInstructionNode only.
	Target string

	// PublicID/SystemID are meaningful for DoctypeNode only.
	PublicID, SystemID string
}

// AppendChild adds child as the last child of n. It panics if child already
// has a parent or siblings, matching the x/net/html.Node contract this type
// is modeled on.
func (n *Node) AppendChild(child *Node) {
	if child.Parent != nil || child.PrevSibling != nil || child.NextSibling != nil {
		panic("dom: AppendChild called for a Node with an existing parent or sibling")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
	child.Parent = n
	child.PrevSibling = last
}

// RemoveChild removes child from n's children. It panics if child's parent
// is not n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dom: RemoveChild called for a Node that is not a child of n")
	}
	if n.FirstChild == child {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PrevSibling = child.PrevSibling
	}
	if n.LastChild == child {
		n.LastChild = child.PrevSibling
	}
	if child.PrevSibling != nil {
		child.PrevSibling.NextSibling = child.NextSibling
	}
	child.Parent = nil
	child.PrevSibling = nil
	child.NextSibling = nil
}

// InsertBefore inserts newChild as a child of n, immediately before
// oldChild in n's children. If oldChild is nil, newChild is appended to the
// end of n's children.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("dom: InsertBefore called for a Node with an existing parent or sibling")
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev, next = n.LastChild, nil
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// Children returns n's children as a slice, in document order. It
// allocates; hot paths in the tree constructor walk the linked list
// directly instead.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// clone returns a new Node with the same type, name, namespace and
// attributes as n, with no parent, siblings or children. Used by the
// adoption agency algorithm (spec section 4.3) to "clone the formatting
// element".
func clone(n *Node) *Node {
	m := &Node{
		Type:      n.Type,
		Namespace: n.Namespace,
		Name:      n.Name,
		Attr:      append([]token.Attribute(nil), n.Attr...),
		Data:      n.Data,
		Target:    n.Target,
		PublicID:  n.PublicID,
		SystemID:  n.SystemID,
	}
	return m
}

// ReparentChildren moves every child of src to be a child of dst, in order.
// Used by the adoption agency algorithm's furthest-block handling (spec
// section 4.3, adoptionAgency step 16).
func ReparentChildren(dst, src *Node) {
	for {
		child := src.FirstChild
		if child == nil {
			return
		}
		src.RemoveChild(child)
		dst.AppendChild(child)
	}
}
