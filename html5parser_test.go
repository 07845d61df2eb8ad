package html5parser

import (
	"strings"
	"testing"

	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReturnsFinishedDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<title>hi</title><p>text</p>`))
	require.NoError(t, err)

	var title *dom.Node
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.Name.Is(token.TagTitle) {
			title = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Root())
	require.NotNil(t, title)
}

func TestParseWithScriptingEnabledOption(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<noscript><p>x</p></noscript>`), WithScriptingEnabled(true))
	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestParseFragmentReturnsTopLevelNodes(t *testing.T) {
	frag, err := ParseFragment(strings.NewReader(`<li>one</li><li>two</li>`), token.Of(token.TagUl))
	require.NoError(t, err)
	require.Len(t, frag.Children(), 2)
}

func TestParsePropagatesFatalStateTransitionError(t *testing.T) {
	_, err := Parse(strings.NewReader(`<select><option>a</option></select>`))
	assert.Error(t, err)
}
