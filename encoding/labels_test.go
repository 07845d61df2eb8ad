package encoding

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupResolvesKnownLabel(t *testing.T) {
	enc, canonical, ok := Lookup("latin1")
	require.True(t, ok)
	assert.NotNil(t, enc)
	assert.Equal(t, "windows-1252", canonical)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	_, lower, ok := Lookup("utf-8")
	require.True(t, ok)
	_, upper, ok := Lookup("UTF-8")
	require.True(t, ok)
	assert.Equal(t, lower, upper)
}

func TestLookupUnknownLabelFails(t *testing.T) {
	_, _, ok := Lookup("not-a-real-encoding")
	assert.False(t, ok)
}

func TestSniffDetectsUTF8BOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<p>hi</p>")...)
	_, canonical, certain := Sniff(content, "")
	assert.True(t, certain)
	assert.Equal(t, "utf-8", canonical)
}

func TestNewDecodingReaderPassesThroughUTF8(t *testing.T) {
	r, err := NewDecodingReader(strings.NewReader("<p>hi</p>"), "text/html; charset=utf-8")
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(out))
}
