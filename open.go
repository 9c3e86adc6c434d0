package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/huh"

	"github.com/jhalstead/marktree/internal/safelink"
)

// OpenCmd is the confirm-before-navigate surface for message links:
// it shows the decoded destination, asks for an explicit second
// action, then re-validates the stored URL immediately before
// launching the browser.
type OpenCmd struct {
	URL string `arg:"" help:"Link target captured from a rendered message."`
	Yes bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (cmd *OpenCmd) Run(globals *Globals) error {
	u := safelink.Normalize(cmd.URL)
	if u == nil {
		return newCLIError(ExitLinkRejected, "link_rejected",
			fmt.Sprintf("Link %q is not allowed by the link policy.", cmd.URL))
	}

	desc := safelink.Describe(u)
	if !cmd.Yes {
		fmt.Println()
		fmt.Println("  Destination: " + desc.Destination)
		if desc.Host != "" {
			fmt.Println("  Host:        " + desc.Host)
		}
		fmt.Println()

		var confirmed bool
		err := runField(
			huh.NewConfirm().
				Title("Open this link in your browser?").
				Affirmative("Open").
				Negative("Cancel").
				Value(&confirmed),
		)
		if err != nil {
			return err
		}
		if !confirmed {
			if globals.JSON {
				printSuccessJSON("cancelled")
			}
			return nil
		}
	}

	// Re-validate the stored raw value rather than trusting the check
	// made at render time; nothing between render and click is relied
	// on.
	u = safelink.Normalize(cmd.URL)
	if u == nil {
		return newCLIError(ExitLinkRejected, "link_rejected",
			"Link failed re-validation and was not opened.")
	}

	if err := launchBrowser(u.String()); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	if globals.JSON {
		printSuccessJSON("opened")
	} else {
		printSuccessHuman("Opened " + u.String())
	}
	return nil
}

// launchBrowser opens the URL in a new browser context. The URL has
// already passed the link policy.
func launchBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
