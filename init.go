package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/jhalstead/marktree/internal/config"
	"github.com/jhalstead/marktree/internal/safelink"
)

// InitCmd configures emoji rendering interactively or via flags.
type InitCmd struct {
	EmojiMode string `help:"Emoji rendering mode (skips interactive prompt)." enum:"native,sprite," default:""`
	SheetURL  string `help:"Sprite sheet URL (required for sprite mode)."`
}

func (cmd *InitCmd) Run(globals *Globals) error {
	// Non-interactive: mode passed as a flag.
	if cmd.EmojiMode != "" {
		cfg := config.Config{EmojiMode: cmd.EmojiMode, SpriteSheetURL: strings.TrimSpace(cmd.SheetURL)}
		return cmd.store(globals, cfg)
	}

	if config.Exists() {
		return cmd.handleExisting(globals)
	}
	return cmd.interactive(globals)
}

func (cmd *InitCmd) handleExisting(globals *Globals) error {
	var choice string
	err := runField(
		huh.NewSelect[string]().
			Title("marktree is already configured.").
			Options(
				huh.NewOption("Show current configuration", "show"),
				huh.NewOption("Reconfigure", "overwrite"),
				huh.NewOption("Exit", "exit"),
			).
			Value(&choice),
	)
	if err != nil {
		return err
	}

	switch choice {
	case "show":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Println("  emoji mode: " + cfg.EmojiMode)
		if cfg.SpriteSheetURL != "" {
			fmt.Println("  sprite sheet: " + cfg.SpriteSheetURL)
		}
		return nil
	case "overwrite":
		return cmd.interactive(globals)
	default:
		return nil
	}
}

func (cmd *InitCmd) interactive(globals *Globals) error {
	fmt.Println()
	fmt.Println("  Welcome to marktree!")
	fmt.Println("  Let's set up emoji rendering.")
	fmt.Println()

	var mode string
	err := runField(
		huh.NewSelect[string]().
			Title("How should emoji render in HTML output?").
			Options(
				huh.NewOption("Native glyphs (platform font)", config.EmojiNative),
				huh.NewOption("Sprite sheet cells", config.EmojiSprite),
			).
			Value(&mode),
	)
	if err != nil {
		return err
	}

	cfg := config.Config{EmojiMode: mode}
	if mode == config.EmojiSprite {
		var sheetURL string
		err = runField(
			huh.NewInput().
				Title("Sprite sheet URL:").
				Placeholder("https://cdn.example.com/emoji-sheet.png").
				Validate(validateSheetURL).
				Value(&sheetURL),
		)
		if err != nil {
			return err
		}
		cfg.SpriteSheetURL = strings.TrimSpace(sheetURL)
	}

	return cmd.store(globals, cfg)
}

func (cmd *InitCmd) store(globals *Globals, cfg config.Config) error {
	if cfg.EmojiMode == config.EmojiSprite {
		if err := validateSheetURL(cfg.SpriteSheetURL); err != nil {
			return newCLIError(ExitInvalidInput, "invalid_url", err.Error())
		}
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if globals.JSON {
		printSuccessJSON("configured")
	} else {
		printSuccessHuman("Configuration saved.")
	}
	return nil
}

// validateSheetURL holds the sheet asset to the same policy message
// links get: https only, no userinfo, non-empty host.
func validateSheetURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("sprite sheet URL cannot be empty")
	}
	u := safelink.Normalize(s)
	if u == nil || u.Scheme != "https" {
		return fmt.Errorf("sprite sheet URL must be a plain https URL")
	}
	return nil
}

// runField wraps a single huh field in a form that supports
// Ctrl+C and Ctrl+D for quitting, with bottom margin styling.
func runField(field huh.Field) error {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"))

	t := huh.ThemeBase()
	t.Focused.Base = t.Focused.Base.MarginBottom(1)
	t.Blurred.Base = t.Blurred.Base.MarginBottom(1)

	return huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithKeyMap(km).
		WithTheme(t).
		Run()
}
