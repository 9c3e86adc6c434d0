package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalstead/marktree/internal/tree"
)

// stubHighlighter returns a canned node tree, standing in for a
// third-party collaborator.
type stubHighlighter struct {
	nodes []*Node
}

func (s stubHighlighter) Highlight(language, code string) []*Node { return s.nodes }

func span(class string, children ...*Node) *Node {
	return &Node{
		Type:       "element",
		TagName:    "span",
		Properties: map[string]any{"className": []string{class}},
		Children:   children,
	}
}

func textNode(s string) *Node { return &Node{Type: "text", Value: s} }

func flattenedText(nodes []*tree.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.PlainText())
	}
	return b.String()
}

func TestAdapter_ChromaGoKeyword(t *testing.T) {
	out := NewAdapter(nil).Render("go", "package main\n\nfunc main() {}\n")

	var sawKeyword bool
	for _, n := range out {
		if n.Kind == tree.HighlightSpan {
			require.NotEmpty(t, n.Classes)
			if n.Classes[0] == "hl-keyword" {
				sawKeyword = true
			}
		}
	}
	assert.True(t, sawKeyword)
	assert.Equal(t, "package main\n\nfunc main() {}\n", flattenedText(out),
		"flattening must preserve the code text")
}

func TestAdapter_RogueElementUnwrapped(t *testing.T) {
	stub := stubHighlighter{nodes: []*Node{
		{
			Type:       "element",
			TagName:    "script",
			Properties: map[string]any{"src": "https://evil.test/x.js"},
			Children:   []*Node{textNode("harmless()")},
		},
	}}

	out := NewAdapter(stub).Render("javascript", "ignored")

	require.Len(t, out, 1)
	assert.Equal(t, tree.Text, out[0].Kind, "script element must be discarded structurally")
	assert.Equal(t, "harmless()", out[0].Text)
}

func TestAdapter_NonConformingClassesDropped(t *testing.T) {
	stub := stubHighlighter{nodes: []*Node{
		{
			Type:    "element",
			TagName: "span",
			Properties: map[string]any{
				"className": []any{"hl-keyword", "onclick", "HL-KEYWORD", "hl-", 42},
				"style":     "position:fixed",
			},
			Children: []*Node{textNode("func")},
		},
	}}

	out := NewAdapter(stub).Render("go", "ignored")

	require.Len(t, out, 1)
	require.Equal(t, tree.HighlightSpan, out[0].Kind)
	assert.Equal(t, []string{"hl-keyword"}, out[0].Classes)
}

func TestAdapter_ClasslessSpanUnwrapped(t *testing.T) {
	stub := stubHighlighter{nodes: []*Node{
		span("not-conforming", textNode("x")),
	}}

	out := NewAdapter(stub).Render("go", "ignored")

	require.Len(t, out, 1)
	assert.Equal(t, tree.Text, out[0].Kind)
}

func TestAdapter_MalformedNodesDiscarded(t *testing.T) {
	stub := stubHighlighter{nodes: []*Node{
		nil,
		{Type: "comment", Value: "<!-- -->"},
		{Type: "element", TagName: "span", Properties: nil, Children: []*Node{textNode("kept")}},
		textNode(" tail"),
	}}

	out := NewAdapter(stub).Render("go", "ignored")

	assert.Equal(t, "kept tail", flattenedText(out))
}

func TestAdapter_DeepNestingCapped(t *testing.T) {
	// Build a span chain far deeper than the cap; the text must
	// survive even though the structure is discarded.
	leaf := textNode("deep")
	n := leaf
	for i := 0; i < maxFlattenDepth*2; i++ {
		n = span("hl-name", n)
	}
	stub := stubHighlighter{nodes: []*Node{n}}

	out := NewAdapter(stub).Render("go", "ignored")

	assert.Equal(t, "deep", flattenedText(out))
}

func TestChromaHighlighter_UnknownLexerFallsBack(t *testing.T) {
	out := ChromaHighlighter{}.Highlight("definitely-not-registered", "raw text")

	require.Len(t, out, 1)
	assert.Equal(t, "text", out[0].Type)
	assert.Equal(t, "raw text", out[0].Value)
}
