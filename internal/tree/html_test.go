package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML_Paragraph(t *testing.T) {
	root := NewContainer(Document)
	para := NewContainer(Paragraph)
	para.Append(NewText("hello"))
	root.Append(para)

	assert.Equal(t, "<p>hello</p>", root.HTML())
}

func TestHTML_EscapesText(t *testing.T) {
	root := NewContainer(Document)
	para := NewContainer(Paragraph)
	para.Append(NewText(`<script>alert("x")</script>`))
	root.Append(para)

	out := root.HTML()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestHTML_AnchorAttributes(t *testing.T) {
	root := NewContainer(Document)
	a := &Node{Kind: Anchor, Href: "https://example.com/x"}
	a.Append(NewText("link"))
	root.Append(a)

	out := root.HTML()
	assert.Contains(t, out, `href="https://example.com/x"`)
	// The policy enforces its own rel tokens; presence is what matters.
	assert.Contains(t, out, "rel=")
	assert.Contains(t, out, ">link</a>")
}

func TestHTML_EmojiSpriteCell(t *testing.T) {
	root := NewContainer(Document)
	root.Append(&Node{
		Kind:   Emoji,
		Text:   "\U0001F680",
		Sprite: &Sprite{Col: 20, Row: 39, Cols: 61, Rows: 59},
	})

	out := root.HTML()
	assert.Contains(t, out, `class="emoji"`)
	assert.Contains(t, out, `data-sprite-col="20"`)
	assert.Contains(t, out, `data-sprite-row="39"`)
	assert.Contains(t, out, "\U0001F680")
}

func TestHTML_CodeBlockWithHighlighting(t *testing.T) {
	block := &Node{Kind: CodeBlock, Language: "go"}
	block.Append(
		&Node{Kind: CodeLabel, Text: "go"},
		&Node{Kind: HighlightSpan, Classes: []string{"hl-keyword"}, Children: []*Node{NewText("func")}},
		NewText(" main() {}"),
	)
	root := NewContainer(Document)
	root.Append(block)

	out := root.HTML()
	assert.Contains(t, out, `<pre><code class="language-go">`)
	assert.Contains(t, out, `<span class="hl-keyword">func</span>`)
	assert.NotContains(t, out, ">go<", "the label node is folded into the class, not emitted as text")
}

func TestHTML_HeadingLevels(t *testing.T) {
	for level, kind := range map[int]Kind{1: Heading1, 4: Heading4, 6: Heading6} {
		h := NewContainer(kind)
		h.Append(NewText("t"))
		root := NewContainer(Document)
		root.Append(h)

		out := root.HTML()
		assert.Contains(t, out, "<h", "level %d", level)
		assert.Equal(t, kind, HeadingKind(level))
	}
}

func TestHTML_Lists(t *testing.T) {
	item := NewContainer(ListItem)
	item.Append(NewText("a"))
	list := NewContainer(OrderedList)
	list.Append(item)
	root := NewContainer(Document)
	root.Append(list)

	assert.Equal(t, "<ol><li>a</li></ol>", root.HTML())
}

func TestPlainText(t *testing.T) {
	para := NewContainer(Paragraph)
	strong := NewContainer(Strong)
	strong.Append(NewText("bold"))
	para.Append(NewText("a "), strong, &Node{Kind: LineBreak}, NewText("b"))

	assert.Equal(t, "a bold\nb", para.PlainText())
}

func TestHeadingKind_Clamps(t *testing.T) {
	assert.Equal(t, Heading1, HeadingKind(0))
	assert.Equal(t, Heading1, HeadingKind(1))
	assert.Equal(t, Heading3, HeadingKind(3))
	assert.Equal(t, Heading6, HeadingKind(6))
	assert.Equal(t, Heading6, HeadingKind(9))
}
