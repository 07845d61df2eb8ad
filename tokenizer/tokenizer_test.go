package tokenizer

import (
	"strings"
	"testing"

	"github.com/dpotapov/html5parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, input string) []token.Token {
	t.Helper()
	tok := New(strings.NewReader(input))
	var out []token.Token
	for {
		tt, err := tok.Next()
		require.NoError(t, err)
		out = append(out, tt)
		if tt.Kind == token.KindEOF {
			return out
		}
	}
}

func TestTokenizeSimpleElement(t *testing.T) {
	toks := collectTokens(t, `<p class="greet">hi</p>`)

	require.Len(t, toks, 4)
	assert.Equal(t, token.KindStartTag, toks[0].Kind)
	assert.True(t, toks[0].Name.Is(token.TagP))
	v, ok := toks[0].Attr("class")
	require.True(t, ok)
	assert.Equal(t, "greet", v)

	assert.Equal(t, token.KindCharacters, toks[1].Kind)
	assert.Equal(t, "hi", toks[1].Text)

	assert.Equal(t, token.KindEndTag, toks[2].Kind)
	assert.True(t, toks[2].Name.Is(token.TagP))

	assert.Equal(t, token.KindEOF, toks[3].Kind)
}

func TestTokenizeSelfClosingVoidElement(t *testing.T) {
	toks := collectTokens(t, `<br/>`)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.True(t, toks[0].Name.Is(token.TagBr))
	assert.True(t, toks[0].SelfClosing)
}

func TestTokenizeComment(t *testing.T) {
	toks := collectTokens(t, `<!-- note -->`)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.KindComment, toks[0].Kind)
	assert.Equal(t, " note ", toks[0].Data)
}

func TestTokenizeDoctype(t *testing.T) {
	toks := collectTokens(t, `<!DOCTYPE html>`)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.KindDoctype, toks[0].Kind)
	assert.Equal(t, "html", toks[0].DoctypeName)
	assert.False(t, toks[0].ForceQuirks)
}

func TestTokenizeNamedCharacterReference(t *testing.T) {
	toks := collectTokens(t, `a&amp;b`)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.KindCharacters, toks[0].Kind)
	assert.Equal(t, "a&b", toks[0].Text)
}

func TestTokenizeDuplicateAttributesKeepFirst(t *testing.T) {
	toks := collectTokens(t, `<div id="a" id="b"></div>`)
	require.GreaterOrEqual(t, len(toks), 1)
	require.Len(t, toks[0].Attrs, 1)
	assert.Equal(t, "a", toks[0].Attrs[0].Value)
}

func TestWithCoalesceCharactersDisabled(t *testing.T) {
	tok := New(strings.NewReader("ab"), WithCoalesceCharacters(false))
	first, err := tok.Next()
	require.NoError(t, err)
	assert.Equal(t, token.KindCharacter, first.Kind)
	assert.Equal(t, 'a', first.Char)
}

func TestWithInitialStateRCDATA(t *testing.T) {
	tok := New(strings.NewReader("<b>&amp;</b>"), WithInitialState(RcData), WithLastStartTag(token.Of(token.TagTitle)))
	tt, err := tok.Next()
	require.NoError(t, err)
	// In RCDATA, "<b>" is not a tag: it's literal text, and character
	// references still resolve.
	assert.Equal(t, token.KindCharacters, tt.Kind)
	assert.Contains(t, tt.Text, "<b>")
}

func TestNextReturnsEOFRepeatedly(t *testing.T) {
	tok := New(strings.NewReader(""))
	first, err := tok.Next()
	require.NoError(t, err)
	assert.Equal(t, token.KindEOF, first.Kind)
	second, err := tok.Next()
	require.NoError(t, err)
	assert.Equal(t, token.KindEOF, second.Kind)
}

func TestAppropriateEndTagForScript(t *testing.T) {
	toks := collectTokens(t, `<script>var x = 1;</script>`)
	// Without the tree constructor switching content states, "<script>"
	// content is tokenized as ordinary Data, so this only exercises the
	// Data-state path end to end.
	require.NotEmpty(t, toks)
	assert.True(t, toks[0].Name.Is(token.TagScript))
}
