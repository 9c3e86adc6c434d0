package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetSize_DerivedFromMetadata(t *testing.T) {
	var wantCols, wantRows int
	for _, e := range metadataEntries() {
		if e.SheetX+1 > wantCols {
			wantCols = e.SheetX + 1
		}
		if e.SheetY+1 > wantRows {
			wantRows = e.SheetY + 1
		}
	}

	cols, rows := SheetSize()
	assert.Equal(t, wantCols, cols)
	assert.Equal(t, wantRows, rows)
	assert.Greater(t, cols, 0)
	assert.Greater(t, rows, 0)
}

func TestSpriteFor_Known(t *testing.T) {
	s := SpriteFor("\U0001F680") // rocket
	require.NotNil(t, s)

	cols, rows := SheetSize()
	assert.Equal(t, cols, s.Cols)
	assert.Equal(t, rows, s.Rows)
	assert.Less(t, s.Col, cols)
	assert.Less(t, s.Row, rows)
}

func TestSpriteFor_SelectorFallback(t *testing.T) {
	// The heart is keyed with its variation selector; both forms of
	// the glyph must resolve to the same cell.
	withVS := SpriteFor("❤️")
	require.NotNil(t, withVS)

	// The umbrella is keyed without one.
	bare := SpriteFor("☔")
	require.NotNil(t, bare)
	withSelector := SpriteFor("☔️")
	require.NotNil(t, withSelector)
	assert.Equal(t, *bare, *withSelector)
}

func TestSpriteFor_ZWJSequence(t *testing.T) {
	s := SpriteFor("\U0001F468‍\U0001F469‍\U0001F466")
	require.NotNil(t, s, "multi-codepoint glyphs address a single cell")
}

func TestSpriteFor_Unknown(t *testing.T) {
	assert.Nil(t, SpriteFor("\U0001FAE0"))
	assert.Nil(t, SpriteFor("plain"))
}
