package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhalstead/marktree/internal/tree"
)

// Terminal styles for the tree writer.
var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	strongStyle   = lipgloss.NewStyle().Bold(true)
	emphasisStyle = lipgloss.NewStyle().Italic(true)
	anchorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	hrefStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	// Highlighting class colors; anything unlisted renders unstyled.
	classStyles = map[string]lipgloss.Style{
		"hl-keyword":     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		"hl-string":      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		"hl-comment":     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		"hl-number":      lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		"hl-name":        lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		"hl-operator":    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		"hl-punctuation": lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		"hl-literal":     lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
	}
)

// renderANSI writes the tree as styled terminal text. Block nodes are
// separated by blank lines; inline styling nests through lipgloss.
func renderANSI(root *tree.Node) string {
	var blocks []string
	for _, child := range root.Children {
		blocks = append(blocks, ansiBlock(child))
	}
	out := strings.Join(blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out
}

func ansiBlock(n *tree.Node) string {
	switch n.Kind {
	case tree.Heading1, tree.Heading2, tree.Heading3,
		tree.Heading4, tree.Heading5, tree.Heading6:
		return headingStyle.Render(ansiInline(n.Children))
	case tree.UnorderedList:
		return ansiList(n, false)
	case tree.OrderedList:
		return ansiList(n, true)
	case tree.CodeBlock:
		return ansiCodeBlock(n)
	default:
		return ansiInline(n.Children)
	}
}

func ansiList(n *tree.Node, ordered bool) string {
	var lines []string
	num := 1
	for _, item := range n.Children {
		if item.Kind != tree.ListItem {
			continue
		}
		marker := "• "
		if ordered {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		body := ansiInline(item.Children)
		// Nested lists inside an item come out as their own blocks.
		for _, c := range item.Children {
			if c.Kind == tree.UnorderedList || c.Kind == tree.OrderedList {
				body = strings.TrimRight(body, "\n")
				body += "\n" + indent(ansiBlock(c), "  ")
			}
		}
		lines = append(lines, marker+body)
	}
	return strings.Join(lines, "\n")
}

func ansiCodeBlock(n *tree.Node) string {
	var label string
	var body strings.Builder
	for _, c := range n.Children {
		switch c.Kind {
		case tree.CodeLabel:
			if c.Text != "" {
				label = labelStyle.Render(c.Text)
			}
		default:
			body.WriteString(ansiInline([]*tree.Node{c}))
		}
	}
	code := indent(strings.TrimRight(body.String(), "\n"), "    ")
	if label == "" {
		return code
	}
	return label + "\n" + code
}

func ansiInline(nodes []*tree.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case tree.Text, tree.Emoji:
			b.WriteString(n.Text)
		case tree.LineBreak:
			b.WriteString("\n")
		case tree.Emphasis:
			b.WriteString(emphasisStyle.Render(ansiInline(n.Children)))
		case tree.Strong:
			b.WriteString(strongStyle.Render(ansiInline(n.Children)))
		case tree.Anchor:
			b.WriteString(anchorStyle.Render(ansiInline(n.Children)))
			b.WriteString(hrefStyle.Render(" (" + n.Href + ")"))
		case tree.CodeSpan:
			b.WriteString(codeStyle.Render(plainInline(n)))
		case tree.HighlightSpan:
			text := ansiInline(n.Children)
			if len(n.Classes) > 0 {
				if style, ok := classStyles[n.Classes[0]]; ok {
					text = style.Render(text)
				}
			}
			b.WriteString(text)
		case tree.Paragraph:
			b.WriteString(ansiInline(n.Children))
		case tree.UnorderedList, tree.OrderedList, tree.CodeBlock:
			// Handled by the block writer; see ansiList.
		default:
			b.WriteString(ansiInline(n.Children))
		}
	}
	return b.String()
}

func plainInline(n *tree.Node) string {
	if n.Text != "" {
		return n.Text
	}
	return n.PlainText()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
