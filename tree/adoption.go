package tree

import (
	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
)

// adoptionAgency implements spec section 4.3's adoption agency algorithm,
// grounded line-for-line on the teacher's chtml/html/parse.go
// inBodyEndTagFormatting (itself x/net/html's translation of the WHATWG
// steps), adapted from *html.Node/nodeStack onto *dom.Node/afeList.
func (p *Parser) adoptionAgency(name token.TagName) {
	// Steps 1-2: if the current node matches and isn't a formatting
	// element, just pop it.
	if cur := p.current(); cur.Namespace == token.HTML && cur.Name.EqualFold(name.String()) && p.afe.index(cur) == -1 {
		p.oe.pop()
		return
	}

	// Steps 3-5: outer loop, at most 8 iterations.
	for i := 0; i < 8; i++ {
		// Step 6: find the formatting element.
		formattingElement := p.afe.findFormattingElement(name)
		if formattingElement == nil {
			p.anyOtherEndTag(name)
			return
		}

		// Step 7: ignore the tag if the formatting element is not on the
		// stack of open elements.
		feIndex := p.oe.index(formattingElement)
		if feIndex == -1 {
			p.afe.remove(formattingElement)
			return
		}

		// Step 8: ignore the tag if the formatting element is not in scope.
		if !p.elementInScope(defaultScope, formattingElement.Name.ID()) {
			return
		}

		// Step 9 (parse error) is a diagnostic only; no behavior change.

		// Steps 10-11: find the furthest block, the topmost special
		// element above the formatting element on the stack.
		var furthestBlock *dom.Node
		for _, e := range p.oe[feIndex:] {
			if isSpecialElement(e) {
				furthestBlock = e
				break
			}
		}
		if furthestBlock == nil {
			e := p.oe.pop()
			for e != formattingElement {
				e = p.oe.pop()
			}
			p.afe.remove(e)
			return
		}

		// Steps 12-13: common ancestor and bookmark.
		var commonAncestor *dom.Node
		if feIndex > 0 {
			commonAncestor = p.oe[feIndex-1]
		} else {
			commonAncestor = p.doc.Root()
		}
		bookmark := p.afe.index(formattingElement)

		// Step 14: inner loop, find lastNode to reparent.
		lastNode := furthestBlock
		node := furthestBlock
		x := p.oe.index(node)
		j := 0
		for {
			j++
			x--
			node = p.oe[x]
			if node == formattingElement {
				break
			}
			if ni := p.afe.index(node); j > 3 && ni > -1 {
				p.afe.remove(node)
				if ni <= bookmark {
					bookmark--
				}
				continue
			}
			if p.afe.index(node) == -1 {
				p.oe.remove(node)
				continue
			}
			clone := p.doc.CloneElement(node)
			p.afe[p.afe.index(node)].node = clone
			p.oe[p.oe.index(node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = p.afe.index(node) + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		// Step 15: reparent lastNode under the common ancestor, or
		// foster-parent it for a misnested table ancestor.
		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		if commonAncestor.Namespace == token.HTML && commonAncestor.Name.In(
			token.TagTable, token.TagTbody, token.TagTfoot, token.TagThead, token.TagTr) {
			p.fosterParent(lastNode)
		} else {
			commonAncestor.AppendChild(lastNode)
		}

		// Steps 16-18: move the furthest block's children under a clone
		// of the formatting element, and attach the clone to the
		// furthest block.
		clone := p.doc.CloneElement(formattingElement)
		dom.ReparentChildren(clone, furthestBlock)
		furthestBlock.AppendChild(clone)

		// Step 19: fix up the active formatting list.
		if oldLoc := p.afe.index(formattingElement); oldLoc != -1 && oldLoc < bookmark {
			bookmark--
		}
		p.afe.remove(formattingElement)
		p.afe.insert(bookmark, clone)

		// Step 20: fix up the open-elements stack.
		p.oe.remove(formattingElement)
		p.oe.insert(p.oe.index(furthestBlock)+1, clone)
	}
}

// anyOtherEndTag implements the "any other end tag" scan InBody uses both
// as the adoption agency's fallback and for end tags outside the
// formatting set: walk the stack top-down, popping through the first
// element with a matching name, or stop (and report a parse error) at the
// first Special element encountered first.
func (p *Parser) anyOtherEndTag(name token.TagName) {
	for i := len(p.oe) - 1; i >= 0; i-- {
		n := p.oe[i]
		if n.Namespace == token.HTML && n.Name.EqualFold(name.String()) {
			p.oe = p.oe[:i]
			return
		}
		if isSpecialElement(n) {
			p.recordError(UnexpectedEndTag, "in-body")
			return
		}
	}
}
