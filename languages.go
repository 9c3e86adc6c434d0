package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jhalstead/marktree/internal/highlight"
)

// LanguagesCmd lists the registered highlighting grammars and their
// shorthand aliases.
type LanguagesCmd struct{}

func (cmd *LanguagesCmd) Run(globals *Globals) error {
	grammars := highlight.Registered()
	aliases := highlight.Aliases()

	if globals.JSON {
		out := struct {
			Grammars []string          `json:"grammars"`
			Aliases  map[string]string `json:"aliases"`
		}{Grammars: grammars, Aliases: aliases}
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}

	shorthands := make(map[string][]string)
	for alias, canonical := range aliases {
		shorthands[canonical] = append(shorthands[canonical], alias)
	}
	for _, g := range grammars {
		line := g
		if s := shorthands[g]; len(s) > 0 {
			sort.Strings(s)
			line += "  (aliases:"
			for _, a := range s {
				line += " " + a
			}
			line += ")"
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
