package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single", input: "ship it :rocket:", want: "ship it \U0001F680"},
		{name: "multiple", input: ":fire::rocket:", want: "\U0001F525\U0001F680"},
		{name: "unknown left alone", input: "hello :not_a_real_code:", want: "hello :not_a_real_code:"},
		{name: "case folded", input: ":ROCKET:", want: "\U0001F680"},
		{name: "no shortcodes", input: "plain text", want: "plain text"},
		{name: "lone colons", input: "a : b : c", want: "a : b : c"},
		{name: "metadata alias", input: ":+1:", want: "\U0001F44D"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.input))
		})
	}
}

func TestExpandWithCaret(t *testing.T) {
	// ":fire:" is 6 bytes and expands to a 4-byte glyph (delta -2).
	const input = "ab :fire: cd"
	const glyphLen = len("\U0001F525")

	tests := []struct {
		name string
		pos  int
		want int
	}{
		{name: "before match unchanged", pos: 2, want: 2},
		{name: "at match start unchanged", pos: 3, want: 3},
		{name: "inside match lands after glyph", pos: 5, want: 3 + glyphLen},
		{name: "at match end shifts by delta", pos: 9, want: 3 + glyphLen},
		{name: "after match shifts by delta", pos: 11, want: 11 + glyphLen - 6},
		{name: "end of text shifts by delta", pos: len(input), want: len(input) + glyphLen - 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded, caret := ExpandWithCaret(input, Caret{Start: tt.pos, End: tt.pos})
			assert.Equal(t, "ab \U0001F525 cd", expanded)
			assert.Equal(t, tt.want, caret.Start)
			assert.Equal(t, tt.want, caret.End)
		})
	}
}

func TestExpandWithCaret_Selection(t *testing.T) {
	// Selection spanning a match: start collapses forward past the
	// glyph, end shifts by the delta.
	input := "x :rocket: y"
	expanded, caret := ExpandWithCaret(input, Caret{Start: 4, End: 11})

	assert.Equal(t, "x \U0001F680 y", expanded)
	glyphEnd := 2 + len("\U0001F680")
	assert.Equal(t, glyphEnd, caret.Start)
	assert.Equal(t, 11+len("\U0001F680")-8, caret.End)
}

func TestExpandWithCaret_MultipleMatches(t *testing.T) {
	// Position after both matches accumulates both deltas.
	input := ":fire: and :rocket: end"
	pos := len(input)
	expanded, caret := ExpandWithCaret(input, Caret{Start: pos, End: pos})

	want := "\U0001F525 and \U0001F680 end"
	assert.Equal(t, want, expanded)
	assert.Equal(t, len(want), caret.Start)
}

func TestExpandWithCaret_NoMatches(t *testing.T) {
	expanded, caret := ExpandWithCaret("nothing here", Caret{Start: 4, End: 4})
	assert.Equal(t, "nothing here", expanded)
	assert.Equal(t, 4, caret.Start)
}
