package token

import (
	"encoding/json"
	"fmt"
)

// wireToken is the JSON shape of a single token. Pointer fields let the
// decoder tell "absent" from "empty" when validating.
type wireToken struct {
	Type     string  `json:"type"`
	Level    *int    `json:"level,omitempty"`
	Ordered  *bool   `json:"ordered,omitempty"`
	Href     *string `json:"href,omitempty"`
	Text     *string `json:"text,omitempty"`
	Language *string `json:"language,omitempty"`
	Code     *string `json:"code,omitempty"`
}

// DecodeStream parses a JSON array of tokens. The stream arrives from
// an external producer, so every field is validated before use; a
// malformed token fails with its position rather than a silent zero
// value.
func DecodeStream(data []byte) ([]Token, error) {
	var wire []wireToken
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode token stream: %w", err)
	}

	tokens := make([]Token, 0, len(wire))
	for i, w := range wire {
		tok, err := w.validate()
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (w wireToken) validate() (Token, error) {
	switch Type(w.Type) {
	case ParagraphStart, ParagraphEnd, HeadingEnd, ListEnd,
		ListItemStart, ListItemEnd, EmphasisStart, EmphasisEnd,
		StrongStart, StrongEnd, LinkEnd, SoftBreak, HardBreak:
		return Token{Type: Type(w.Type)}, nil

	case HeadingStart:
		if w.Level == nil || *w.Level < 1 || *w.Level > 6 {
			return Token{}, fmt.Errorf("heading_start: level must be 1..6")
		}
		return Token{Type: HeadingStart, Level: *w.Level}, nil

	case ListStart:
		if w.Ordered == nil {
			return Token{}, fmt.Errorf("list_start: missing ordered flag")
		}
		return Token{Type: ListStart, Ordered: *w.Ordered}, nil

	case LinkStart:
		if w.Href == nil {
			return Token{}, fmt.Errorf("link_start: missing href")
		}
		return Token{Type: LinkStart, Href: *w.Href}, nil

	case Text, Code:
		if w.Text == nil {
			return Token{}, fmt.Errorf("%s: missing text", w.Type)
		}
		return Token{Type: Type(w.Type), Text: *w.Text}, nil

	case FencedCode:
		if w.Code == nil {
			return Token{}, fmt.Errorf("fenced_code: missing code")
		}
		tok := Token{Type: FencedCode, CodeText: *w.Code}
		if w.Language != nil {
			tok.Language = *w.Language
		}
		return tok, nil

	case "":
		return Token{}, fmt.Errorf("missing type")
	default:
		return Token{}, fmt.Errorf("unknown type %q", w.Type)
	}
}

// EncodeStream renders tokens back to the JSON wire form.
func EncodeStream(tokens []Token) ([]byte, error) {
	wire := make([]wireToken, 0, len(tokens))
	for _, t := range tokens {
		wire = append(wire, t.toWire())
	}
	return json.MarshalIndent(wire, "", "  ")
}

func (t Token) toWire() wireToken {
	w := wireToken{Type: string(t.Type)}
	switch t.Type {
	case HeadingStart:
		level := t.Level
		w.Level = &level
	case ListStart:
		ordered := t.Ordered
		w.Ordered = &ordered
	case LinkStart:
		href := t.Href
		w.Href = &href
	case Text, Code:
		text := t.Text
		w.Text = &text
	case FencedCode:
		code := t.CodeText
		w.Code = &code
		if t.Language != "" {
			lang := t.Language
			w.Language = &lang
		}
	}
	return w
}
