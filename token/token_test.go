package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartTagDedupesAttributesFirstWins(t *testing.T) {
	attrs := []Attribute{
		{Name: "class", Value: "a"},
		{Name: "id", Value: "x"},
		{Name: "class", Value: "b"},
	}
	tok := NewStartTag(NewTagName("div"), attrs, false)

	require.Len(t, tok.Attrs, 2)
	v, ok := tok.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestNewStartTagFinalizesTagName(t *testing.T) {
	tok := NewStartTag(Other("p"), nil, false)
	assert.True(t, tok.Name.Is(TagP))
}

func TestTokenAttrMissing(t *testing.T) {
	tok := NewStartTag(Of(TagInput), nil, false)
	_, ok := tok.Attr("type")
	assert.False(t, ok)
}

func TestIsCharacterLike(t *testing.T) {
	assert.True(t, NewCharacter('x').IsCharacterLike())
	assert.True(t, NewCharacters("abc").IsCharacterLike())
	assert.False(t, NewComment("c").IsCharacterLike())
	assert.False(t, EOFToken.IsCharacterLike())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "StartTag", KindStartTag.String())
	assert.Equal(t, "EOF", KindEOF.String())
}
