package highlight

import (
	"regexp"

	"github.com/jhalstead/marktree/internal/emoji"
	"github.com/jhalstead/marktree/internal/tree"
)

// classPattern is the only class shape allowed through from a
// collaborator. Anything else is dropped.
var classPattern = regexp.MustCompile(`^hl-[a-z][a-z0-9-]*$`)

// maxFlattenDepth caps how deep a collaborator tree is walked. A
// misbehaving highlighter nesting beyond this renders as bare text.
const maxFlattenDepth = 64

// Adapter reduces a collaborator's arbitrary output tree to the two
// node kinds the message tree accepts from it: text leaves and classed
// highlight spans.
type Adapter struct {
	hl Highlighter
}

// NewAdapter wraps a collaborator. A nil collaborator falls back to
// the chroma-backed default.
func NewAdapter(hl Highlighter) *Adapter {
	if hl == nil {
		hl = ChromaHighlighter{}
	}
	return &Adapter{hl: hl}
}

// Render highlights code in an already-resolved language and returns
// the flattened, allowlisted node sequence.
func (a *Adapter) Render(language, code string) []*tree.Node {
	return flatten(a.hl.Highlight(language, code), 0)
}

func flatten(nodes []*Node, depth int) []*tree.Node {
	var out []*tree.Node
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Type {
		case "text":
			out = append(out, emoji.Leaves(n.Value)...)
		case "element":
			if depth >= maxFlattenDepth {
				// Too deep to trust the structure; keep the text.
				if s := joinText([]*Node{n}); s != "" {
					out = append(out, emoji.Leaves(s)...)
				}
				continue
			}
			children := flatten(n.Children, depth+1)
			classes := conformingClasses(n.Properties)
			if n.TagName != "span" || len(classes) == 0 {
				// Unknown wrapper, or a span carrying nothing we
				// recognize: discard the element, keep its children.
				out = append(out, children...)
				continue
			}
			span := &tree.Node{Kind: tree.HighlightSpan, Classes: classes}
			span.Children = children
			out = append(out, span)
		}
		// Nodes with any other Type value are discarded outright.
	}
	return out
}

// conformingClasses extracts className tokens from an untrusted
// properties bag, keeping only tokens that match classPattern. The bag
// comes from a third-party collaborator, so every shape is checked.
func conformingClasses(props map[string]any) []string {
	if props == nil {
		return nil
	}
	var out []string
	keep := func(v any) {
		if s, ok := v.(string); ok && classPattern.MatchString(s) {
			out = append(out, s)
		}
	}
	switch v := props["className"].(type) {
	case string:
		keep(v)
	case []string:
		for _, s := range v {
			keep(s)
		}
	case []any:
		for _, e := range v {
			keep(e)
		}
	}
	return out
}
