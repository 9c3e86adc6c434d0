package emoji

import (
	"regexp"
	"strings"
	"sync"

	kemoji "github.com/kyokomi/emoji/v2"
)

var shortcodePattern = regexp.MustCompile(`:[a-zA-Z0-9_+-]+:`)

// shortcodes maps lowercased shortcode names to glyphs. Built once
// from the standard code map merged with the sprite metadata's own
// shortcode lists, then read-only.
var shortcodes = sync.OnceValue(func() map[string]string {
	table := make(map[string]string, 2048)
	for code, glyph := range kemoji.CodeMap() {
		name := strings.ToLower(strings.Trim(code, ":"))
		table[name] = strings.TrimSpace(glyph)
	}
	for _, e := range metadataEntries() {
		glyph := glyphForUnified(e.Unified)
		if glyph == "" {
			continue
		}
		for _, sc := range e.Shortcodes {
			table[strings.ToLower(sc)] = glyph
		}
	}
	return table
})

// Caret is a selection range in byte offsets into the text it refers
// to. A collapsed caret has Start == End.
type Caret struct {
	Start int
	End   int
}

// Expand replaces every known :shortcode: in text with its glyph.
// Unknown shortcodes are left untouched.
func Expand(text string) string {
	expanded, _ := ExpandWithCaret(text, Caret{})
	return expanded
}

// ExpandWithCaret expands shortcodes and remaps a caret across the
// substitutions. For each replaced match: a position at or before the
// match start is unchanged, a position at or after the match end
// shifts by the glyph/shortcode length delta, and a position strictly
// inside the match lands immediately after the inserted glyph. The
// caret therefore never ends up inside a glyph.
func ExpandWithCaret(text string, caret Caret) (string, Caret) {
	matches := appliedMatches(text)
	if len(matches) == 0 {
		return text, caret
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.start])
		b.WriteString(m.glyph)
		last = m.end
	}
	b.WriteString(text[last:])

	return b.String(), Caret{
		Start: remap(caret.Start, matches),
		End:   remap(caret.End, matches),
	}
}

type appliedMatch struct {
	start, end int
	glyph      string
}

// appliedMatches finds the shortcode occurrences that resolve to a
// glyph, in order.
func appliedMatches(text string) []appliedMatch {
	table := shortcodes()
	var out []appliedMatch
	for _, loc := range shortcodePattern.FindAllStringIndex(text, -1) {
		name := strings.ToLower(text[loc[0]+1 : loc[1]-1])
		glyph, ok := table[name]
		if !ok {
			continue
		}
		out = append(out, appliedMatch{start: loc[0], end: loc[1], glyph: glyph})
	}
	return out
}

func remap(pos int, matches []appliedMatch) int {
	shift := 0
	for _, m := range matches {
		switch {
		case pos <= m.start:
			return pos + shift
		case pos >= m.end:
			shift += len(m.glyph) - (m.end - m.start)
		default:
			return m.start + shift + len(m.glyph)
		}
	}
	return pos + shift
}
