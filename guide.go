package main

import (
	_ "embed"
	"fmt"
)

//go:embed marktree.guide.md
var guideContent string

// GuideCmd prints the token stream reference to stdout.
type GuideCmd struct{}

func (cmd *GuideCmd) Run(globals *Globals) error {
	fmt.Print(guideContent)
	return nil
}
