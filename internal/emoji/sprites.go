package emoji

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jhalstead/marktree/internal/tree"
)

// The sprite metadata table is static configuration generated from the
// emoji-datasource sheet and embedded at build time. A missing or
// unparsable table is a build defect, hence the panic on first use.
//
//go:embed assets/emoji.json
var spriteMetadata []byte

type metadataEntry struct {
	Unified    string   `json:"unified"`
	SheetX     int      `json:"sheetX"`
	SheetY     int      `json:"sheetY"`
	Shortcodes []string `json:"shortcodes"`
}

type spriteTable struct {
	cells map[string]tree.Sprite // unified key -> cell, with sheet dims filled in
	cols  int
	rows  int
}

// sprites builds the coordinate table exactly once. The sheet's
// dimensions are derived from the maximum coordinates present in the
// metadata, not hardcoded.
var sprites = sync.OnceValue(func() *spriteTable {
	entries := metadataEntries()

	t := &spriteTable{cells: make(map[string]tree.Sprite, len(entries))}
	for _, e := range entries {
		if e.SheetX+1 > t.cols {
			t.cols = e.SheetX + 1
		}
		if e.SheetY+1 > t.rows {
			t.rows = e.SheetY + 1
		}
	}
	for _, e := range entries {
		t.cells[strings.ToLower(e.Unified)] = tree.Sprite{
			Col:  e.SheetX,
			Row:  e.SheetY,
			Cols: t.cols,
			Rows: t.rows,
		}
	}
	return t
})

var metadataEntries = sync.OnceValue(func() []metadataEntry {
	var entries []metadataEntry
	if err := json.Unmarshal(spriteMetadata, &entries); err != nil {
		panic(fmt.Sprintf("emoji: embedded sprite metadata is invalid: %v", err))
	}
	return entries
})

// SpriteFor returns the sprite cell for a glyph, or nil when the glyph
// is not in the sheet. Glyphs without a cell render as native glyphs.
func SpriteFor(glyph string) *tree.Sprite {
	t := sprites()
	if cell, ok := t.cells[unifiedKey(glyph, true)]; ok {
		return &cell
	}
	// The datasource keys some glyphs without the emoji variation
	// selector; retry with selectors stripped.
	if cell, ok := t.cells[unifiedKey(glyph, false)]; ok {
		return &cell
	}
	return nil
}

// SheetSize returns the derived column and row count of the sheet.
func SheetSize() (cols, rows int) {
	t := sprites()
	return t.cols, t.rows
}

// unifiedKey formats a glyph as the datasource's unified key: lowercase
// hex code points joined by dashes. When keepSelectors is false,
// variation selectors are omitted from the key.
func unifiedKey(glyph string, keepSelectors bool) string {
	var parts []string
	for _, r := range glyph {
		if !keepSelectors && (r == vs15 || r == vs16) {
			continue
		}
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}
	return strings.Join(parts, "-")
}

// glyphForUnified reconstructs a glyph string from a unified key.
// Returns "" for malformed keys.
func glyphForUnified(unified string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(unified), "-") {
		v, err := strconv.ParseInt(part, 16, 32)
		if err != nil {
			return ""
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}
