package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhalstead/marktree/internal/emoji"
)

// EmojifyCmd expands :shortcode: sequences in text, optionally
// remapping a caret position across the substitutions.
type EmojifyCmd struct {
	Text   string `arg:"" optional:"" help:"Text to expand (or pipe via stdin)."`
	Cursor int    `help:"Caret byte offset to remap across substitutions." default:"-1"`
}

func (cmd *EmojifyCmd) Run(globals *Globals) error {
	text := cmd.Text
	if text == "" {
		var err error
		text, err = readStdin()
		if err != nil {
			return err
		}
	}

	if cmd.Cursor < 0 {
		fmt.Fprintln(os.Stdout, emoji.Expand(text))
		return nil
	}

	if cmd.Cursor > len(text) {
		return newCLIError(ExitInvalidInput, "invalid_cursor",
			fmt.Sprintf("Cursor %d is past the end of the text (%d bytes).", cmd.Cursor, len(text)))
	}

	expanded, caret := emoji.ExpandWithCaret(text, emoji.Caret{Start: cmd.Cursor, End: cmd.Cursor})
	if globals.JSON {
		out := struct {
			Text   string `json:"text"`
			Cursor int    `json:"cursor"`
		}{Text: expanded, Cursor: caret.Start}
		b, _ := json.Marshal(out)
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}
	fmt.Fprintln(os.Stdout, expanded)
	fmt.Fprintf(os.Stdout, "cursor: %d\n", caret.Start)
	return nil
}
