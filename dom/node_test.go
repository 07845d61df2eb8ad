package dom

import (
	"testing"

	"github.com/dpotapov/html5parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildLinksSiblings(t *testing.T) {
	d := NewDocument()
	html := d.NewElement(token.Of(token.TagHTML))
	d.Root().AppendChild(html)

	a := d.NewText("a")
	b := d.NewText("b")
	html.AppendChild(a)
	html.AppendChild(b)

	require.Equal(t, a, html.FirstChild)
	require.Equal(t, b, html.LastChild)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PrevSibling)
	assert.Equal(t, []*Node{a, b}, html.Children())
}

func TestRemoveChildUnlinksMiddleNode(t *testing.T) {
	d := NewDocument()
	p := d.NewElement(token.Of(token.TagP))
	a, b, c := d.NewText("a"), d.NewText("b"), d.NewText("c")
	p.AppendChild(a)
	p.AppendChild(b)
	p.AppendChild(c)

	p.RemoveChild(b)

	assert.Equal(t, []*Node{a, c}, p.Children())
	assert.Equal(t, c, a.NextSibling)
	assert.Equal(t, a, c.PrevSibling)
	assert.Nil(t, b.Parent)
}

func TestInsertBeforeAtFrontAndEnd(t *testing.T) {
	d := NewDocument()
	table := d.NewElement(token.Of(token.TagTable))
	caption := d.NewText("caption")
	table.AppendChild(caption)

	first := d.NewText("first")
	table.InsertBefore(first, caption)
	assert.Equal(t, []*Node{first, caption}, table.Children())

	last := d.NewText("last")
	table.InsertBefore(last, nil)
	assert.Equal(t, []*Node{first, caption, last}, table.Children())
}

func TestCloneElementCopiesAttributesNotTree(t *testing.T) {
	d := NewDocument()
	div := d.NewElement(token.Of(token.TagDiv))
	div.Attr = []token.Attribute{{Name: "class", Value: "x"}}
	child := d.NewText("hi")
	div.AppendChild(child)

	clone := d.CloneElement(div)

	require.Len(t, clone.Attr, 1)
	assert.Equal(t, "class", clone.Attr[0].Name)
	assert.Nil(t, clone.FirstChild)
	assert.Nil(t, clone.Parent)

	clone.Attr[0].Value = "y"
	assert.Equal(t, "x", div.Attr[0].Value, "clone must not alias the source attribute slice")
}

func TestReparentChildrenMovesInOrder(t *testing.T) {
	d := NewDocument()
	src := d.NewElement(token.Of(token.TagB))
	dst := d.NewElement(token.Of(token.TagI))
	a, b := d.NewText("a"), d.NewText("b")
	src.AppendChild(a)
	src.AppendChild(b)

	ReparentChildren(dst, src)

	assert.Nil(t, src.FirstChild)
	assert.Equal(t, []*Node{a, b}, dst.Children())
}

func TestDocumentElementAndDocumentType(t *testing.T) {
	d := NewDocument()
	assert.Nil(t, d.DocumentElement())
	assert.Nil(t, d.DocumentType())

	dt := d.NewDoctype("html", "", "")
	d.Root().AppendChild(dt)
	html := d.NewElement(token.Of(token.TagHTML))
	d.Root().AppendChild(html)

	assert.Equal(t, dt, d.DocumentType())
	assert.Equal(t, html, d.DocumentElement())
}

func TestQuirksModeDefaultsToNoQuirks(t *testing.T) {
	d := NewDocument()
	assert.Equal(t, NoQuirks, d.QuirksMode())
	d.SetQuirksMode(Quirks)
	assert.Equal(t, Quirks, d.QuirksMode())
}
