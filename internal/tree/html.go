package tree

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// classAttrPattern admits the class values this package emits: emoji
// markers, highlighting spans and fence language labels.
var classAttrPattern = regexp.MustCompile(`^(emoji|hl-[a-z][a-z0-9-]*|language-[a-z0-9+#.-]+)( (emoji|hl-[a-z][a-z0-9-]*))*$`)

// htmlPolicy is applied to every HTML rendering before it leaves this
// package. The tree itself only produces markup the policy admits; the
// policy is the backstop in case a future node kind forgets that.
var htmlPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classAttrPattern).OnElements("span", "code", "pre")
	p.AllowAttrs("target").OnElements("a")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowDataAttributes()
	return p
})

// HTML renders the tree as sanitized HTML.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return htmlPolicy().Sanitize(b.String())
}

func (n *Node) writeHTML(b *strings.Builder) {
	switch n.Kind {
	case Document:
		n.writeChildren(b)
	case Paragraph:
		n.writeWrapped(b, "p")
	case Heading1, Heading2, Heading3, Heading4, Heading5, Heading6:
		tag := "h" + string(n.Kind[len(n.Kind)-1])
		n.writeWrapped(b, tag)
	case Emphasis:
		n.writeWrapped(b, "em")
	case Strong:
		n.writeWrapped(b, "strong")
	case UnorderedList:
		n.writeWrapped(b, "ul")
	case OrderedList:
		n.writeWrapped(b, "ol")
	case ListItem:
		n.writeWrapped(b, "li")
	case Anchor:
		fmt.Fprintf(b, `<a href="%s" rel="noopener noreferrer" target="_blank">`, html.EscapeString(n.Href))
		n.writeChildren(b)
		b.WriteString("</a>")
	case Text:
		b.WriteString(html.EscapeString(n.Text))
	case Emoji:
		if n.Sprite != nil {
			fmt.Fprintf(b, `<span class="emoji" data-sprite-col="%d" data-sprite-row="%d">`,
				n.Sprite.Col, n.Sprite.Row)
		} else {
			b.WriteString(`<span class="emoji">`)
		}
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</span>")
	case LineBreak:
		b.WriteString("<br/>")
	case CodeSpan:
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(n.Text))
		n.writeChildren(b)
		b.WriteString("</code>")
	case CodeBlock:
		if n.Language != "" {
			fmt.Fprintf(b, `<pre><code class="language-%s">`, html.EscapeString(n.Language))
		} else {
			b.WriteString("<pre><code>")
		}
		for _, c := range n.Children {
			if c.Kind == CodeLabel {
				continue
			}
			c.writeHTML(b)
		}
		b.WriteString("</code></pre>")
	case HighlightSpan:
		fmt.Fprintf(b, `<span class="%s">`, html.EscapeString(strings.Join(n.Classes, " ")))
		b.WriteString(html.EscapeString(n.Text))
		n.writeChildren(b)
		b.WriteString("</span>")
	case CodeLabel:
		// Only meaningful inside code blocks, where it is folded into
		// the class attribute.
	}
}

func (n *Node) writeWrapped(b *strings.Builder, tag string) {
	b.WriteString("<" + tag + ">")
	n.writeChildren(b)
	b.WriteString("</" + tag + ">")
}

func (n *Node) writeChildren(b *strings.Builder) {
	for _, c := range n.Children {
		c.writeHTML(b)
	}
}
