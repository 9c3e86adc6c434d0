// Package token defines the ordered event stream a message renderer
// consumes. Tokens are produced by a tokenizer (or arrive pre-tokenized
// over the wire) and are consumed exactly once, in order.
package token

// Type identifies one token variant.
type Type string

// Token types. Start/end pairs delimit containers; the rest are leaves.
const (
	ParagraphStart Type = "paragraph_start"
	ParagraphEnd   Type = "paragraph_end"
	HeadingStart   Type = "heading_start"
	HeadingEnd     Type = "heading_end"
	ListStart      Type = "list_start"
	ListEnd        Type = "list_end"
	ListItemStart  Type = "list_item_start"
	ListItemEnd    Type = "list_item_end"
	EmphasisStart  Type = "emphasis_start"
	EmphasisEnd    Type = "emphasis_end"
	StrongStart    Type = "strong_start"
	StrongEnd      Type = "strong_end"
	LinkStart      Type = "link_start"
	LinkEnd        Type = "link_end"
	Text           Type = "text"
	Code           Type = "code"
	FencedCode     Type = "fenced_code"
	SoftBreak      Type = "soft_break"
	HardBreak      Type = "hard_break"
)

// Token is one tagged event in the stream. Only the fields relevant to
// its Type are meaningful; the rest stay zero.
type Token struct {
	Type Type

	// Level is set for heading_start (1..6).
	Level int
	// Ordered is set for list_start.
	Ordered bool
	// Href is set for link_start.
	Href string
	// Text is set for text and code tokens.
	Text string
	// Language and CodeText are set for fenced_code. Language may be
	// empty for an unlabeled fence.
	Language string
	CodeText string
}

// Constructors for the common variants, used by tokenizers and tests.

func NewText(s string) Token            { return Token{Type: Text, Text: s} }
func NewCode(s string) Token            { return Token{Type: Code, Text: s} }
func NewLinkStart(href string) Token    { return Token{Type: LinkStart, Href: href} }
func NewHeadingStart(level int) Token   { return Token{Type: HeadingStart, Level: level} }
func NewListStart(ordered bool) Token   { return Token{Type: ListStart, Ordered: ordered} }
func NewFencedCode(lang, code string) Token {
	return Token{Type: FencedCode, Language: lang, CodeText: code}
}
