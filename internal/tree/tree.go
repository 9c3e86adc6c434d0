// Package tree holds the renderable node model produced by rendering a
// token stream. A tree is immutable once returned by the renderer.
package tree

// Kind identifies one node variant.
type Kind string

// Container kinds.
const (
	Document      Kind = "document"
	Paragraph     Kind = "paragraph"
	Heading1      Kind = "heading1"
	Heading2      Kind = "heading2"
	Heading3      Kind = "heading3"
	Heading4      Kind = "heading4"
	Heading5      Kind = "heading5"
	Heading6      Kind = "heading6"
	Emphasis      Kind = "emphasis"
	Strong        Kind = "strong"
	Anchor        Kind = "anchor"
	UnorderedList Kind = "unordered_list"
	OrderedList   Kind = "ordered_list"
	ListItem      Kind = "list_item"
)

// Leaf and code kinds.
const (
	Text          Kind = "text"
	Emoji         Kind = "emoji"
	LineBreak     Kind = "line_break"
	CodeSpan      Kind = "code_span"
	CodeBlock     Kind = "code_block"
	CodeLabel     Kind = "code_label"
	HighlightSpan Kind = "highlight_span"
)

// Sprite addresses one fixed-size cell of the shared emoji sheet.
type Sprite struct {
	Col  int `json:"col"`
	Row  int `json:"row"`
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Node is one node of the rendered tree. Only the fields relevant to
// its Kind are set.
type Node struct {
	Kind Kind `json:"kind"`

	// Text holds literal content for text, emoji, code_span and
	// code_label nodes.
	Text string `json:"text,omitempty"`
	// Href is set on anchors; it is always the sanitizer's normalized
	// string form, never the raw token value.
	Href string `json:"href,omitempty"`
	// Language is the resolved grammar name on code_block nodes; empty
	// when the fence was unlabeled or its label did not resolve.
	Language string `json:"language,omitempty"`
	// Classes holds the allowlisted highlighting classes on
	// highlight_span nodes.
	Classes []string `json:"classes,omitempty"`
	// Sprite is set on emoji nodes present in the sprite table.
	Sprite *Sprite `json:"sprite,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// NewContainer returns an empty container node of the given kind.
func NewContainer(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewText returns a literal text leaf.
func NewText(s string) *Node {
	return &Node{Kind: Text, Text: s}
}

// Append adds children to the node in insertion order.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// HeadingKind maps a level in 1..6 to its heading kind. Levels outside
// the range clamp to the nearest bound.
func HeadingKind(level int) Kind {
	switch {
	case level <= 1:
		return Heading1
	case level >= 6:
		return Heading6
	default:
		return [...]Kind{Heading2, Heading3, Heading4, Heading5}[level-2]
	}
}

// HeadingLevels lists heading kinds from deepest to shallowest, the
// order an ambiguous heading_end token probes them in.
var HeadingLevels = [...]Kind{Heading6, Heading5, Heading4, Heading3, Heading2, Heading1}

// PlainText concatenates the literal content of the subtree, in order.
// Emoji glyphs contribute their glyph text, breaks a newline.
func (n *Node) PlainText() string {
	var b []byte
	n.appendPlain(&b)
	return string(b)
}

func (n *Node) appendPlain(b *[]byte) {
	switch n.Kind {
	case Text, Emoji, CodeSpan, CodeLabel:
		*b = append(*b, n.Text...)
	case LineBreak:
		*b = append(*b, '\n')
	}
	for _, c := range n.Children {
		c.appendPlain(b)
	}
}
