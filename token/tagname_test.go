package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTagNamePromotesKnownNames(t *testing.T) {
	tn := NewTagName("div")
	assert.True(t, tn.Is(TagDiv))
	assert.False(t, tn.IsOther())
	assert.Equal(t, "div", tn.String())
}

func TestNewTagNameLeavesUnknownNamesOther(t *testing.T) {
	tn := NewTagName("my-widget")
	assert.True(t, tn.IsOther())
	assert.Equal(t, "my-widget", tn.String())
	assert.Equal(t, TagOther, tn.ID())
}

func TestTagNameOfRoundTripsThroughString(t *testing.T) {
	tn := Of(TagTable)
	assert.Equal(t, "table", tn.String())
	assert.True(t, tn.Is(TagTable))
}

func TestTagNameIn(t *testing.T) {
	tn := Of(TagH3)
	assert.True(t, tn.In(TagH1, TagH2, TagH3))
	assert.False(t, tn.In(TagH4, TagH5, TagH6))
}

func TestTagNameOtherFinalizePromotes(t *testing.T) {
	tn := Other("big")
	assert.True(t, tn.IsOther())
	assert.True(t, tn.Finalize().Is(TagBig))
}

func TestTagNameOtherNeverMatchesOtherInAList(t *testing.T) {
	tn := NewTagName("my-widget")
	assert.False(t, tn.Is(TagOther))
	assert.False(t, tn.In(TagOther, TagDiv))
}

func TestTagNameEqualFoldIgnoresCase(t *testing.T) {
	tn := Of(TagBody)
	assert.True(t, tn.EqualFold("BODY"))
	assert.True(t, tn.EqualFold("body"))
	assert.False(t, tn.EqualFold("head"))
}
