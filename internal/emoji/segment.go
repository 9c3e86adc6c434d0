// Package emoji splits message text into literal runs and indivisible
// emoji glyph units, substitutes :shortcodes:, and maps glyphs to
// cells of a shared sprite sheet.
//
// A glyph unit is one extended grapheme cluster recognized as emoji:
// a regional-indicator flag pair, a keycap sequence, or a pictographic
// cluster including variation selectors, skin-tone modifiers and
// zero-width-joiner chains. Multi-codepoint glyphs are never split.
package emoji

import (
	"github.com/rivo/uniseg"

	"github.com/jhalstead/marktree/internal/tree"
)

// Segment is one run of input text: either a literal text run or a
// single emoji glyph unit. Concatenating segment Text values in order
// reproduces the input exactly.
type Segment struct {
	Text  string
	Glyph bool
}

// Segments splits text into alternating literal and glyph segments.
func Segments(text string) []Segment {
	var segs []Segment
	var literal []byte

	flush := func() {
		if len(literal) > 0 {
			segs = append(segs, Segment{Text: string(literal)})
			literal = literal[:0]
		}
	}

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		if isGlyphUnit(gr.Runes()) {
			flush()
			segs = append(segs, Segment{Text: cluster, Glyph: true})
			continue
		}
		literal = append(literal, cluster...)
	}
	flush()
	return segs
}

// Leaves converts text into renderable leaves: plain text nodes and
// emoji nodes carrying a sprite reference when the glyph is present in
// the sprite table.
func Leaves(text string) []*tree.Node {
	segs := Segments(text)
	out := make([]*tree.Node, 0, len(segs))
	for _, seg := range segs {
		if !seg.Glyph {
			out = append(out, tree.NewText(seg.Text))
			continue
		}
		out = append(out, &tree.Node{
			Kind:   tree.Emoji,
			Text:   seg.Text,
			Sprite: SpriteFor(seg.Text),
		})
	}
	return out
}

const (
	riFirst = 0x1F1E6 // regional indicator A
	riLast  = 0x1F1FF // regional indicator Z
	vs15    = 0xFE0E
	vs16    = 0xFE0F
	keycap  = 0x20E3 // combining enclosing keycap
)

// isGlyphUnit reports whether one grapheme cluster is an emoji glyph
// unit. The cluster boundaries themselves come from uniseg, so ZWJ
// chains, flag pairs and modifier sequences arrive as single clusters.
func isGlyphUnit(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}

	// Two regional indicators form a flag.
	if len(runes) == 2 && isRegionalIndicator(runes[0]) && isRegionalIndicator(runes[1]) {
		return true
	}

	// Keycap sequences: 0-9, # or * plus the enclosing keycap, with an
	// optional variation selector in between. A bare digit is text.
	if runes[len(runes)-1] == keycap && isKeycapBase(runes[0]) {
		return true
	}

	return isPictographic(runes[0])
}

func isRegionalIndicator(r rune) bool {
	return r >= riFirst && r <= riLast
}

func isKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// pictographicRanges approximates the Extended_Pictographic property
// for the planes emoji actually occupy. Ordered by low bound.
var pictographicRanges = [...]struct{ lo, hi rune }{
	{0x00A9, 0x00A9}, // copyright
	{0x00AE, 0x00AE}, // registered
	{0x203C, 0x203C}, // double exclamation
	{0x2049, 0x2049}, // exclamation question
	{0x2122, 0x2122}, // trade mark
	{0x2139, 0x2139}, // information
	{0x2194, 0x21AA}, // arrows
	{0x231A, 0x231B}, // watch, hourglass
	{0x2328, 0x2328}, // keyboard
	{0x23CF, 0x23FA}, // media controls
	{0x24C2, 0x24C2}, // circled M
	{0x25AA, 0x25FE}, // geometric shapes
	{0x2600, 0x27BF}, // misc symbols, dingbats
	{0x2934, 0x2935}, // arrow hooks
	{0x2B00, 0x2BFF}, // arrows, stars
	{0x3030, 0x3030}, // wavy dash
	{0x303D, 0x303D}, // part alternation mark
	{0x3297, 0x3299}, // circled ideographs
	{0x1F000, 0x1FAFF},
}

func isPictographic(r rune) bool {
	for _, rng := range pictographicRanges {
		if r < rng.lo {
			return false
		}
		if r <= rng.hi {
			return true
		}
	}
	return false
}
