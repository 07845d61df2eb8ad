package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *dom.Document {
	t.Helper()
	p := New(strings.NewReader(html))
	require.NoError(t, p.Run())
	return p.Document()
}

func findFirst(n *dom.Node, tag token.Tag) *dom.Node {
	if n.Type == dom.ElementNode && n.Name.Is(tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findFirst(c, tag); f != nil {
			return f
		}
	}
	return nil
}

func textContent(n *dom.Node) string {
	var b strings.Builder
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// nodeSummary flattens a *dom.Node subtree into a plain, acyclic value so
// it can be compared with cmp.Diff: dom.Node's Parent/PrevSibling
// pointers make the tree itself unsuitable for direct structural
// comparison.
type nodeSummary struct {
	Tag      string
	Text     string
	Children []nodeSummary
}

func summarize(n *dom.Node) nodeSummary {
	s := nodeSummary{}
	switch n.Type {
	case dom.ElementNode:
		s.Tag = n.Name.String()
	case dom.TextNode, dom.CommentNode:
		s.Text = n.Data
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.Children = append(s.Children, summarize(c))
	}
	return s
}

func TestParseProducesExpectedTreeShape(t *testing.T) {
	doc := parse(t, `<ul><li>one</li><li>two</li></ul>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)

	want := nodeSummary{
		Tag: "body",
		Children: []nodeSummary{
			{Tag: "ul", Children: []nodeSummary{
				{Tag: "li", Children: []nodeSummary{{Text: "one"}}},
				{Tag: "li", Children: []nodeSummary{{Text: "two"}}},
			}},
		},
	}
	if diff := cmp.Diff(want, summarize(body)); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMinimalDocumentSynthesizesHeadAndBody(t *testing.T) {
	doc := parse(t, `<p>hi</p>`)

	html := doc.DocumentElement()
	require.NotNil(t, html)
	assert.True(t, html.Name.Is(token.TagHTML))

	head := findFirst(html, token.TagHead)
	require.NotNil(t, head)
	body := findFirst(html, token.TagBody)
	require.NotNil(t, body)

	p := findFirst(body, token.TagP)
	require.NotNil(t, p)
	assert.Equal(t, "hi", textContent(p))
}

func TestParseDoctypeSetsNoQuirksMode(t *testing.T) {
	doc := parse(t, `<!DOCTYPE html><html><head></head><body></body></html>`)
	assert.Equal(t, dom.NoQuirks, doc.QuirksMode())
}

func TestParseMissingDoctypeSetsQuirksMode(t *testing.T) {
	doc := parse(t, `<p>hi</p>`)
	assert.Equal(t, dom.Quirks, doc.QuirksMode())
}

func TestParseLegacyPublicIDSetsQuirksMode(t *testing.T) {
	doc := parse(t, `<!DOCTYPE html PUBLIC "-//IETF//DTD HTML 2.0//EN"><p>hi</p>`)
	assert.Equal(t, dom.Quirks, doc.QuirksMode())
}

func TestParseTitleUsesRCDATA(t *testing.T) {
	doc := parse(t, `<html><head><title>a &amp; b &lt;not a tag&gt;</title></head><body></body></html>`)
	title := findFirst(doc.Root(), token.TagTitle)
	require.NotNil(t, title)
	assert.Equal(t, "a & b <not a tag>", textContent(title))
}

func TestParseImplicitlyClosesPOnBlockElement(t *testing.T) {
	doc := parse(t, `<p>one<div>two</div>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)

	children := body.Children()
	require.Len(t, children, 2)
	assert.True(t, children[0].Name.Is(token.TagP))
	assert.True(t, children[1].Name.Is(token.TagDiv))
}

func TestParseMisnestedFormattingElementsRunsAdoptionAgency(t *testing.T) {
	doc := parse(t, `<p>1<b>2<i>3</b>4</i>5</p>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)

	// The adoption agency algorithm splits the <i> across the </b>
	// boundary; the net effect is that all five characters still appear,
	// in order, and at least one <i> element survives.
	assert.Equal(t, "12345", textContent(body))
	italics := 0
	var count func(*dom.Node)
	count = func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.Name.Is(token.TagI) {
			italics++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			count(c)
		}
	}
	count(body)
	assert.GreaterOrEqual(t, italics, 1)
}

func TestParseSeparateAnchorsBothSurvive(t *testing.T) {
	doc := parse(t, `<a href="/a">x</a><div><a href="/b">y</a></div>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)

	var anchors []*dom.Node
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.Name.Is(token.TagA) {
			anchors = append(anchors, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)
	require.Len(t, anchors, 2)
}

func TestParseTableWithCaptionUsesInCaptionMode(t *testing.T) {
	doc := parse(t, `<table><caption>Totals</caption></table>`)
	caption := findFirst(doc.Root(), token.TagCaption)
	require.NotNil(t, caption)
	assert.Equal(t, "Totals", textContent(caption))

	table := findFirst(doc.Root(), token.TagTable)
	require.NotNil(t, table)
	assert.Equal(t, caption, table.FirstChild)
}

func TestParseTableFosterParentsStrayText(t *testing.T) {
	doc := parse(t, `<table>stray<tr><td>cell</td></tr></table>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)

	table := findFirst(doc.Root(), token.TagTable)
	require.NotNil(t, table)

	// "stray" is foster parented out of the table, so it must not appear
	// as a descendant of the table element.
	assert.NotContains(t, textContent(table), "stray")
	assert.Contains(t, textContent(body), "stray")
}

func TestParseTableWhitespaceStaysInTable(t *testing.T) {
	doc := parse(t, "<table>\n  <tr><td>x</td></tr></table>")
	table := findFirst(doc.Root(), token.TagTable)
	require.NotNil(t, table)
	assert.Contains(t, textContent(table), "x")
}

func TestParseColumnGroupInsertsColElements(t *testing.T) {
	doc := parse(t, `<table><colgroup><col><col></colgroup></table>`)
	colgroup := findFirst(doc.Root(), token.TagColgroup)
	require.NotNil(t, colgroup)
	cols := colgroup.Children()
	require.Len(t, cols, 2)
	assert.True(t, cols[0].Name.Is(token.TagCol))
}

func TestParseUnsupportedTableBodyModeReturnsStateTransitionError(t *testing.T) {
	p := New(strings.NewReader(`<table><tbody><tr><td>cell</td></tr></tbody></table>`))
	err := p.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStateTransition))
}

func TestParseVoidElementsDoNotNest(t *testing.T) {
	doc := parse(t, `<body><img src="a.png">text</body>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)
	img := findFirst(body, token.TagImg)
	require.NotNil(t, img)
	assert.Nil(t, img.FirstChild)
}

func TestParseCommentsBeforeHTMLAttachToDocument(t *testing.T) {
	doc := parse(t, `<!-- top --><html><!-- inner --><body></body></html>`)
	first := doc.Root().FirstChild
	require.NotNil(t, first)
	assert.Equal(t, dom.CommentNode, first.Type)
	assert.Equal(t, " top ", first.Data)
}

func TestParseFragmentInTableContextStartsInTableMode(t *testing.T) {
	frag, err := ParseFragment(strings.NewReader(`<tr><td>x</td></tr>`), token.Of(token.TagTable))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStateTransition))
	assert.Nil(t, frag)
}

func TestParseFragmentInBodyContext(t *testing.T) {
	frag, err := ParseFragment(strings.NewReader(`<b>hi</b>`), token.Of(token.TagBody))
	require.NoError(t, err)
	require.NotNil(t, frag)

	children := frag.Children()
	require.Len(t, children, 1)
	assert.True(t, children[0].Name.Is(token.TagB))
	assert.Equal(t, "hi", textContent(children[0]))
}

func TestParseAfterBodyTextReprocessesIntoBody(t *testing.T) {
	doc := parse(t, `<html><body>x</body>more</html>`)
	body := findFirst(doc.Root(), token.TagBody)
	require.NotNil(t, body)
	assert.Contains(t, textContent(body), "more")
}
