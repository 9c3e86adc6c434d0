package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Node is the raw output shape of a highlighting collaborator: a tree
// of text nodes and tagged element nodes. The shape mirrors what
// generic highlighters emit and is treated as untrusted; the adapter
// type-guards every field before use.
type Node struct {
	Type       string         // "text" or "element"
	Value      string         // text nodes only
	TagName    string         // element nodes only
	Properties map[string]any // element nodes only; "className" may hold class tokens
	Children   []*Node
}

// Highlighter produces a node tree for source code in a registered
// grammar. Implementations may be third-party; their output is never
// trusted as-is.
type Highlighter interface {
	Highlight(language, code string) []*Node
}

// ChromaHighlighter is the default collaborator, backed by chroma
// lexers. It emits one classed span element per styled token and bare
// text nodes for everything else.
type ChromaHighlighter struct{}

func (ChromaHighlighter) Highlight(language, code string) []*Node {
	lexer := lexers.Get(language)
	if lexer == nil {
		return []*Node{{Type: "text", Value: code}}
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []*Node{{Type: "text", Value: code}}
	}

	var out []*Node
	for _, tok := range it.Tokens() {
		class := classFor(tok.Type)
		if class == "" {
			out = append(out, &Node{Type: "text", Value: tok.Value})
			continue
		}
		out = append(out, &Node{
			Type:       "element",
			TagName:    "span",
			Properties: map[string]any{"className": []string{class}},
			Children:   []*Node{{Type: "text", Value: tok.Value}},
		})
	}
	return out
}

// classFor maps a chroma token type to a highlighting class, or "" for
// tokens that render as plain text.
func classFor(t chroma.TokenType) string {
	switch t.SubCategory() {
	case chroma.LiteralString:
		return "hl-string"
	case chroma.LiteralNumber:
		return "hl-number"
	}
	switch t.Category() {
	case chroma.Keyword:
		return "hl-keyword"
	case chroma.Comment:
		return "hl-comment"
	case chroma.Name:
		return "hl-name"
	case chroma.Operator:
		return "hl-operator"
	case chroma.Punctuation:
		return "hl-punctuation"
	case chroma.Literal:
		return "hl-literal"
	}
	return ""
}

// joinText concatenates the text content of a node subtree. Used by
// tests and by the adapter when discarding structure.
func joinText(nodes []*Node) string {
	var b strings.Builder
	stack := make([]*Node, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if n.Type == "text" {
			b.WriteString(n.Value)
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return b.String()
}
