// Package render converts an ordered token stream into a renderable
// tree. The renderer is a stack automaton: explicit container stack,
// no recursion, so nesting depth is bounded by input length rather
// than by the call stack. It is total over its input; hostile or
// truncated streams degrade to plainer trees instead of failing.
package render

import (
	"github.com/jhalstead/marktree/internal/emoji"
	"github.com/jhalstead/marktree/internal/highlight"
	"github.com/jhalstead/marktree/internal/safelink"
	"github.com/jhalstead/marktree/internal/token"
	"github.com/jhalstead/marktree/internal/tree"
)

// Stats counts the degradations a render applied. All zero for a
// well-formed stream.
type Stats struct {
	// UnmatchedCloses counts end tokens that found no open container
	// of their kind and were dropped.
	UnmatchedCloses int
	// AutoClosed counts containers closed implicitly, either by an end
	// token matching below them or by the end-of-stream drain.
	AutoClosed int
	// RejectedLinks counts link_start tokens whose target failed
	// sanitization and rendered as plain inline content.
	RejectedLinks int
}

// Renderer renders token streams. A zero-value Renderer is not usable;
// construct with New.
type Renderer struct {
	adapter *highlight.Adapter
}

// New returns a Renderer using the given highlighting collaborator,
// or the chroma-backed default when hl is nil.
func New(hl highlight.Highlighter) *Renderer {
	return &Renderer{adapter: highlight.NewAdapter(hl)}
}

// container is a node under construction on the stack.
type container struct {
	kind     tree.Kind
	href     string
	children []*tree.Node
}

type stack struct {
	items []*container
	stats Stats
}

// Render consumes the token stream and returns a fully closed,
// single-rooted tree. It never fails: unmatched closes are no-ops,
// bad links lose their anchor, unterminated containers are drained.
func (r *Renderer) Render(tokens []token.Token) (*tree.Node, Stats) {
	s := &stack{items: []*container{{kind: tree.Document}}}

	for _, t := range tokens {
		switch t.Type {
		case token.ParagraphStart:
			s.push(tree.Paragraph, "")
		case token.ParagraphEnd:
			s.close(tree.Paragraph)

		case token.HeadingStart:
			s.push(tree.HeadingKind(t.Level), "")
		case token.HeadingEnd:
			// The token does not carry its level; probe deepest first.
			matched := false
			for _, kind := range tree.HeadingLevels {
				if s.closeOne(kind) {
					matched = true
					break
				}
			}
			if !matched {
				s.stats.UnmatchedCloses++
			}

		case token.ListStart:
			if t.Ordered {
				s.push(tree.OrderedList, "")
			} else {
				s.push(tree.UnorderedList, "")
			}
		case token.ListEnd:
			// The token does not say which list kind it closes; at
			// most one of the two probes can match.
			if !s.closeOne(tree.UnorderedList) && !s.closeOne(tree.OrderedList) {
				s.stats.UnmatchedCloses++
			}

		case token.ListItemStart:
			s.push(tree.ListItem, "")
		case token.ListItemEnd:
			s.close(tree.ListItem)

		case token.EmphasisStart:
			s.push(tree.Emphasis, "")
		case token.EmphasisEnd:
			s.close(tree.Emphasis)

		case token.StrongStart:
			s.push(tree.Strong, "")
		case token.StrongEnd:
			s.close(tree.Strong)

		case token.LinkStart:
			if u := safelink.Normalize(t.Href); u != nil {
				s.push(tree.Anchor, u.String())
			} else {
				// No container is pushed: the link's children render
				// as plain inline content and the matching link_end
				// becomes a no-op.
				s.stats.RejectedLinks++
			}
		case token.LinkEnd:
			s.close(tree.Anchor)

		case token.Text:
			s.appendLeaves(emoji.Leaves(t.Text))

		case token.Code:
			span := &tree.Node{Kind: tree.CodeSpan}
			span.Children = emoji.Leaves(t.Text)
			s.appendLeaves([]*tree.Node{span})

		case token.SoftBreak, token.HardBreak:
			s.appendLeaves([]*tree.Node{{Kind: tree.LineBreak}})

		case token.FencedCode:
			s.appendLeaves([]*tree.Node{r.fencedBlock(t)})
		}
		// Unknown token types cannot appear here; the token codec
		// rejects them at the boundary.
	}

	// Drain everything still open so the tree is fully closed no
	// matter how the stream ended.
	for len(s.items) > 1 {
		s.closeTop()
		s.stats.AutoClosed++
	}

	root := &tree.Node{Kind: tree.Document, Children: s.items[0].children}
	return root, s.stats
}

// fencedBlock builds a code-block node: a language label child (empty
// text when the fence was unlabeled or its label did not resolve)
// followed by highlighted spans or raw text.
func (r *Renderer) fencedBlock(t token.Token) *tree.Node {
	lang := highlight.ResolveLanguage(t.Language)

	block := &tree.Node{Kind: tree.CodeBlock, Language: lang}
	block.Append(&tree.Node{Kind: tree.CodeLabel, Text: lang})
	if lang == "" {
		block.Append(tree.NewText(t.CodeText))
		return block
	}
	block.Append(r.adapter.Render(lang, t.CodeText)...)
	return block
}

// push opens a new container on the stack.
func (s *stack) push(kind tree.Kind, href string) {
	s.items = append(s.items, &container{kind: kind, href: href})
}

// close is closeOne plus unmatched-close accounting, for end tokens
// that are not ambiguous.
func (s *stack) close(kind tree.Kind) {
	if !s.closeOne(kind) {
		s.stats.UnmatchedCloses++
	}
}

// closeOne closes the nearest open container of the given kind,
// implicitly closing everything above it first. Returns false, with
// no change, when no container of that kind is open.
func (s *stack) closeOne(kind tree.Kind) bool {
	match := -1
	for i := len(s.items) - 1; i > 0; i-- {
		if s.items[i].kind == kind {
			match = i
			break
		}
	}
	if match == -1 {
		return false
	}
	for len(s.items) > match {
		if len(s.items)-1 > match {
			s.stats.AutoClosed++
		}
		s.closeTop()
	}
	return true
}

// closeTop pops the top container, converts it to a node and appends
// it to the new top. The root container is never popped.
func (s *stack) closeTop() {
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	node := &tree.Node{Kind: top.kind, Href: top.href, Children: top.children}
	parent := s.items[len(s.items)-1]
	parent.children = append(parent.children, node)
}

// appendLeaves adds rendered leaves to the open container.
func (s *stack) appendLeaves(leaves []*tree.Node) {
	top := s.items[len(s.items)-1]
	top.children = append(top.children, leaves...)
}
