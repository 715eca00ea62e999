package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedToNative(t *testing.T) {
	native, err := unifiedToNative("1F600")
	require.NoError(t, err)
	assert.Equal(t, "😀", native)

	native, err = unifiedToNative("1F468-200D-1F466")
	require.NoError(t, err)
	assert.Equal(t, "👨‍👦", native)

	// Case-insensitive hex.
	native, err = unifiedToNative("1f44b")
	require.NoError(t, err)
	assert.Equal(t, "👋", native)

	_, err = unifiedToNative("not-hex")
	assert.Error(t, err)
}

func TestTitleize(t *testing.T) {
	assert.Equal(t, "Grinning Face", titleize("GRINNING FACE"))
	assert.Equal(t, "First Place Medal", titleize("first_place medal"))
	assert.Equal(t, "", titleize(""))
}

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "cafe", stripDiacritics("café"))
	assert.Equal(t, "pinata", stripDiacritics("piñata"))
	assert.Equal(t, "plain", stripDiacritics("plain"))
}

func TestUnderscoreFirstHyphenOnly(t *testing.T) {
	assert.Equal(t, "high_five", underscoreFirstHyphen("high-five"))
	// Only the first hyphen after a word character is converted.
	assert.Equal(t, "a_b-c", underscoreFirstHyphen("a-b-c"))
	// A leading hyphen has no word character before it; the underscore does.
	assert.Equal(t, "-__", underscoreFirstHyphen("-_-"))
	assert.Equal(t, "plain", underscoreFirstHyphen("plain"))
}

func TestSplitKeyword(t *testing.T) {
	assert.Equal(t, []string{"high", "five"}, splitKeyword("high_five"))
	assert.Equal(t, []string{"a", "b", "c"}, splitKeyword("a|b c"))
	assert.Equal(t, []string{"one"}, splitKeyword("one"))
}
