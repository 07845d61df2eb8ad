package dom

import (
	"testing"

	"github.com/dpotapov/html5parser/token"
	"github.com/stretchr/testify/assert"
)

func TestDumpIndentsByDepth(t *testing.T) {
	d := NewDocument()
	html := d.NewElement(token.Of(token.TagHTML))
	d.Root().AppendChild(html)
	body := d.NewElement(token.Of(token.TagBody))
	html.AppendChild(body)
	body.AppendChild(d.NewText("hi"))

	out := String(d.Root())

	assert.Contains(t, out, "#document\n")
	assert.Contains(t, out, "  <html>\n")
	assert.Contains(t, out, "    <body>\n")
	assert.Contains(t, out, "      \"hi\"\n")
}

func TestFragmentChildrenReflectsRoot(t *testing.T) {
	f := NewFragment(token.Of(token.TagBody))
	child := f.Document().NewText("x")
	f.Root.AppendChild(child)

	assert.Equal(t, []*Node{child}, f.Children())
}
