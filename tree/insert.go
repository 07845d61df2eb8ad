package tree

import (
	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/dpotapov/html5parser/tokenizer"
)

// current returns the current node: the top of the open-elements stack, or
// the document's root Node before anything has been pushed.
func (p *Parser) current() *dom.Node {
	if n := p.oe.top(); n != nil {
		return n
	}
	return p.doc.Root()
}

// adjustedCurrentNode implements the "adjusted current node" the dispatcher
// uses (spec section 4.3): the context element for a fragment parse when
// the stack holds exactly one node, otherwise the current node. This
// module's Parser never runs a fragment parse with only one stack entry
// from outside tree.ParseFragment, so this just forwards to current for a
// normal document parse; ParseFragment seeds the stack accordingly.
func (p *Parser) adjustedCurrentNode() *dom.Node {
	if p.fragmentContext != nil && len(p.oe) == 1 {
		return p.fragmentContext
	}
	return p.current()
}

// shouldFosterParent reports whether the next inserted node must be foster
// parented (spec section 4.3, "appropriate place for inserting a node"):
// only while foster parenting is active and the current node is a table,
// tbody, tfoot, thead or tr.
func (p *Parser) shouldFosterParent() bool {
	if !p.fosterParenting {
		return false
	}
	n := p.current()
	return n.Namespace == token.HTML && n.Name.In(token.TagTable, token.TagTbody, token.TagTfoot, token.TagThead, token.TagTr)
}

// fosterParent implements spec section 4.3's foster-parenting hook: the
// node is spliced in immediately before the nearest open table (or inside
// the nearest open template, if it opened more recently than any open
// table), grounded on the teacher's chtml/html/parse.go fosterParent
// adapted from *html.Node onto *dom.Node.
func (p *Parser) fosterParent(n *dom.Node) {
	var table, parent, prev, template *dom.Node
	var tableIdx int
	for i := len(p.oe) - 1; i >= 0; i-- {
		if p.oe[i].Namespace == token.HTML && p.oe[i].Name.Is(token.TagTable) {
			table = p.oe[i]
			tableIdx = i
			break
		}
	}

	var templateIdx int
	for j := len(p.oe) - 1; j >= 0; j-- {
		if p.oe[j].Namespace == token.HTML && p.oe[j].Name.Is(token.TagTemplate) {
			template = p.oe[j]
			templateIdx = j
			break
		}
	}

	if template != nil && (table == nil || templateIdx > tableIdx) {
		template.AppendChild(n)
		return
	}

	if table == nil {
		parent = p.oe[0]
	} else {
		parent = table.Parent
	}
	if parent == nil {
		parent = p.oe[tableIdx-1]
	}

	if table != nil {
		prev = table.PrevSibling
	} else {
		prev = parent.LastChild
	}
	if prev != nil && prev.Type == dom.TextNode && n.Type == dom.TextNode {
		prev.Data += n.Data
		return
	}

	parent.InsertBefore(n, table)
}

// insertNode implements "insert a node at the appropriate place" (spec
// section 4.3): foster parented if shouldFosterParent, otherwise appended
// to the current node's children. Element nodes are pushed onto the
// open-elements stack.
func (p *Parser) insertNode(n *dom.Node) {
	if p.shouldFosterParent() {
		p.fosterParent(n)
	} else {
		p.current().AppendChild(n)
	}
	if n.Type == dom.ElementNode {
		p.oe.push(n)
	}
}

// insertHTMLElement implements "insert an HTML element for a token" (spec
// section 4.3): allocate an element in the HTML namespace from the
// token's name and attributes, insert it, and return it.
func (p *Parser) insertHTMLElement(t token.Token) *dom.Node {
	n := p.doc.NewElement(t.Name)
	n.Attr = append([]token.Attribute(nil), t.Attrs...)
	p.insertNode(n)
	return n
}

// insertForeignElement mirrors insertHTMLElement but for an element in a
// non-HTML namespace, used by the limited MathML/SVG handling InBody
// carries (spec section 4.3's InBody row lists math/svg among the start
// tags that "transition to their respective modes"). The element is
// tagged with its namespace; while a non-self-closing <math>/<svg> element
// is the current node, the dispatcher routes the next token to the
// foreign-content extension point, which raises a fatal state-transition
// error.
func (p *Parser) insertForeignElement(t token.Token, ns token.Namespace) *dom.Node {
	n := p.doc.NewElementNS(t.Name, ns)
	n.Attr = append([]token.Attribute(nil), t.Attrs...)
	p.insertNode(n)
	return n
}

// insertComment implements "insert a comment" at the appropriate place.
func (p *Parser) insertComment(data string) {
	n := p.doc.NewComment(data)
	if p.shouldFosterParent() {
		p.fosterParent(n)
	} else {
		p.current().AppendChild(n)
	}
}

// insertCharacter implements spec section 4.3's "insert a character":
// target the appropriate place, coalescing into a preceding Text node
// sibling when one already exists there.
func (p *Parser) insertCharacter(s string) {
	if s == "" {
		return
	}
	if p.shouldFosterParent() {
		p.fosterParent(p.doc.NewText(s))
		return
	}
	parent := p.current()
	if last := parent.LastChild; last != nil && last.Type == dom.TextNode {
		last.Data += s
		return
	}
	parent.AppendChild(p.doc.NewText(s))
}

// generateImpliedEndTags pops elements off the open-elements stack while
// the current node's name is one of {dd, dt, li, optgroup, option, p, rb,
// rp, rt, rtc}, optionally leaving one excluded name alone (spec section
// 4.3).
func (p *Parser) generateImpliedEndTags(except token.Tag) {
	for {
		n := p.current()
		if n.Namespace != token.HTML {
			return
		}
		if !n.Name.In(token.TagDd, token.TagDt, token.TagLi, token.TagOptgroup,
			token.TagOption, token.TagP, token.TagRb, token.TagRp, token.TagRt, token.TagRtc) {
			return
		}
		if except != token.TagOther && n.Name.Is(except) {
			return
		}
		if len(p.oe) == 0 {
			return
		}
		p.oe.pop()
	}
}

// genericRawTextOrRCDATAParse implements spec section 4.3's "Generic
// RCDATA / RAWTEXT parse": insert the element for the token, switch the
// tokenizer into the given content state, remember the mode to return to,
// and enter Text mode.
func (p *Parser) genericRawTextOrRCDATAParse(t token.Token, state tokenizer.State) *dom.Node {
	n := p.insertHTMLElement(t)
	p.tok.SetLastStartTag(t.Name)
	p.tok.SetState(state)
	p.originalMode = p.mode
	p.mode = textMode
	return n
}
