package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhalstead/marktree/internal/config"
	"github.com/jhalstead/marktree/internal/emoji"
	"github.com/jhalstead/marktree/internal/render"
	"github.com/jhalstead/marktree/internal/token"
	"github.com/jhalstead/marktree/internal/tokenizer"
	"github.com/jhalstead/marktree/internal/tree"
)

// RenderCmd renders a message to its safe tree form.
type RenderCmd struct {
	MessageInput
	Format string `help:"Output format." default:"json" enum:"json,html,ansi"`
	Full   bool   `help:"With --format html, wrap the fragment in a standalone page using the configured sprite sheet."`
}

func (cmd *RenderCmd) Run(globals *Globals) error {
	root, _, err := renderInput(&cmd.MessageInput, globals)
	if err != nil {
		return err
	}

	switch cmd.Format {
	case "html":
		if cmd.Full {
			cfg, _ := config.Load()
			fmt.Fprintln(os.Stdout, htmlPage(root, cfg))
		} else {
			fmt.Fprintln(os.Stdout, root.HTML())
		}
	case "ansi":
		fmt.Fprint(os.Stdout, renderANSI(root))
	default:
		b, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(b))
	}
	return nil
}

// renderInput resolves the command input, tokenizes it if needed and
// renders the tree. Shared by render and preview.
func renderInput(in *MessageInput, globals *Globals) (*tree.Node, render.Stats, error) {
	text, err := in.Resolve()
	if err != nil {
		return nil, render.Stats{}, err
	}

	var tokens []token.Token
	if in.Tokens {
		tokens, err = token.DecodeStream([]byte(text))
		if err != nil {
			return nil, render.Stats{}, newCLIError(ExitInvalidInput, "invalid_tokens", err.Error())
		}
	} else {
		tokens, err = tokenizer.Tokenize([]byte(text))
		if err != nil {
			return nil, render.Stats{}, fmt.Errorf("tokenize: %w", err)
		}
	}

	root, stats := render.New(nil).Render(tokens)

	logger := globals.Logger()
	if stats.UnmatchedCloses > 0 || stats.RejectedLinks > 0 || stats.AutoClosed > 0 {
		logger.Debug("degraded rendering",
			"unmatched_closes", stats.UnmatchedCloses,
			"auto_closed", stats.AutoClosed,
			"rejected_links", stats.RejectedLinks)
	}

	return root, stats, nil
}

// htmlPage wraps a rendered fragment in a minimal standalone page.
// The emoji cells reference the configured sprite sheet; without one,
// native glyphs carry the rendering.
func htmlPage(root *tree.Node, cfg config.Config) string {
	cols, rows := emoji.SheetSize()
	style := ""
	if cfg.SpriteSheetURL != "" && cfg.EmojiMode == config.EmojiSprite {
		style = fmt.Sprintf(
			"span.emoji{display:inline-block;width:1.25em;height:1.25em;color:transparent;"+
				"background-image:url(%q);background-size:%d00%% %d00%%}",
			cfg.SpriteSheetURL, cols, rows)
	}
	return "<!doctype html>\n<html><head><meta charset=\"utf-8\"><style>" + style +
		"</style></head>\n<body>" + root.HTML() + "</body></html>"
}
