package main

import (
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// Globals holds flags shared across all commands.
type Globals struct {
	JSON    bool `help:"Output JSON for LLM/script consumption." short:"j"`
	Verbose bool `help:"Log rendering diagnostics to stderr." short:"v"`
}

// Logger returns the CLI logger, at debug level when --verbose is set.
// The rendering core itself never logs; diagnostics surface here only.
func (g *Globals) Logger() *log.Logger {
	logger := log.New(os.Stderr)
	if g.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// CLI is the root command structure for marktree.
type CLI struct {
	Globals

	Render    RenderCmd    `cmd:"" help:"Render a message to a safe tree (JSON, HTML or ANSI)."`
	Preview   PreviewCmd   `cmd:"" help:"Render a message and page it in the terminal."`
	Open      OpenCmd      `cmd:"" help:"Confirm and open a link found in a message."`
	Emojify   EmojifyCmd   `cmd:"" help:"Expand :shortcodes: in text."`
	Languages LanguagesCmd `cmd:"" help:"List registered highlighting grammars."`
	Guide     GuideCmd     `cmd:"" help:"Print the token stream reference for producers of pre-tokenized messages."`
	Init      InitCmd      `cmd:"" help:"Configure emoji rendering (interactive setup)."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("marktree"),
		kong.Description("Render user-authored markdown messages into a safe tree."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		// Ctrl+C / Ctrl+D — exit silently.
		if isUserAbort(err) {
			os.Exit(0)
		}

		var cliErr *CLIError
		if ok := asCLIError(err, &cliErr); ok {
			if cli.JSON {
				printErrorJSON(cliErr.Message, cliErr.Code)
			} else {
				printErrorHuman(cliErr.Message)
			}
			os.Exit(cliErr.ExitCode)
		}
		if cli.JSON {
			printErrorJSON(err.Error(), "runtime_error")
		} else {
			printErrorHuman(err.Error())
		}
		os.Exit(1)
	}
}

// isUserAbort returns true for errors caused by the user
// quitting an interactive prompt (Ctrl+C, Ctrl+D).
func isUserAbort(err error) bool {
	if errors.Is(err, huh.ErrUserAborted) {
		return true
	}
	// huh wraps bubbletea errors as "huh: <err>"
	if strings.Contains(err.Error(), "user aborted") {
		return true
	}
	return false
}
