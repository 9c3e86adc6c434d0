// Package tokenizer turns raw markdown source into the token stream
// the renderer consumes. Parsing is delegated to goldmark; this
// package walks the resulting AST and flattens it into the token
// union, dropping or degrading any construct outside it (raw HTML is
// dropped, images degrade to their alt text, blockquotes to their
// content).
package tokenizer

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jhalstead/marktree/internal/token"
)

// Tokenize parses markdown source and emits the renderer's token
// stream. The error only reflects an internal walk failure; malformed
// markdown is not an error, goldmark always produces a tree.
func Tokenize(source []byte) ([]token.Token, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	w := &walker{source: source}
	if err := ast.Walk(doc, w.visit); err != nil {
		return nil, err
	}
	return w.tokens, nil
}

type walker struct {
	source []byte
	tokens []token.Token
}

func (w *walker) emit(t token.Token) {
	w.tokens = append(w.tokens, t)
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Paragraph:
		if entering {
			w.emit(token.Token{Type: token.ParagraphStart})
		} else {
			w.emit(token.Token{Type: token.ParagraphEnd})
		}

	case *ast.TextBlock:
		// Tight list-item content; render inline without a paragraph.

	case *ast.Heading:
		if entering {
			w.emit(token.NewHeadingStart(n.Level))
		} else {
			w.emit(token.Token{Type: token.HeadingEnd})
		}

	case *ast.List:
		if entering {
			w.emit(token.NewListStart(n.IsOrdered()))
		} else {
			w.emit(token.Token{Type: token.ListEnd})
		}

	case *ast.ListItem:
		if entering {
			w.emit(token.Token{Type: token.ListItemStart})
		} else {
			w.emit(token.Token{Type: token.ListItemEnd})
		}

	case *ast.Emphasis:
		typ := token.EmphasisStart
		end := token.EmphasisEnd
		if n.Level >= 2 {
			typ = token.StrongStart
			end = token.StrongEnd
		}
		if entering {
			w.emit(token.Token{Type: typ})
		} else {
			w.emit(token.Token{Type: end})
		}

	case *ast.Link:
		if entering {
			w.emit(token.NewLinkStart(string(n.Destination)))
		} else {
			w.emit(token.Token{Type: token.LinkEnd})
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			label := string(n.Label(w.source))
			href := url
			if n.AutoLinkType == ast.AutoLinkEmail {
				href = "mailto:" + url
			}
			w.emit(token.NewLinkStart(href))
			w.emit(token.NewText(label))
			w.emit(token.Token{Type: token.LinkEnd})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			if s := string(n.Segment.Value(w.source)); s != "" {
				w.emit(token.NewText(s))
			}
			if n.HardLineBreak() {
				w.emit(token.Token{Type: token.HardBreak})
			} else if n.SoftLineBreak() {
				w.emit(token.Token{Type: token.SoftBreak})
			}
		}

	case *ast.String:
		if entering && len(n.Value) > 0 {
			w.emit(token.NewText(string(n.Value)))
		}

	case *ast.CodeSpan:
		if entering {
			var buf []byte
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf = append(buf, t.Segment.Value(w.source)...)
				}
			}
			w.emit(token.NewCode(string(buf)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		if entering {
			w.emit(token.NewFencedCode(string(n.Language(w.source)), w.lines(n)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			w.emit(token.NewFencedCode("", w.lines(n)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		// No image token; keep the alt text as plain content.

	case *ast.Blockquote:
		// No blockquote token; the quoted paragraphs flow through.

	case *ast.ThematicBreak:
		// Dropped: nothing in the token union represents it.

	case *ast.HTMLBlock, *ast.RawHTML:
		// User-authored HTML never reaches the renderer.
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// lines joins a block node's line segments into one string.
func (w *walker) lines(n ast.Node) string {
	var out []byte
	l := n.Lines()
	for i := 0; i < l.Len(); i++ {
		seg := l.At(i)
		out = append(out, seg.Value(w.source)...)
	}
	return string(out)
}
