package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// PreviewCmd renders a message as ANSI and pages it.
type PreviewCmd struct {
	MessageInput
}

func (cmd *PreviewCmd) Run(globals *Globals) error {
	root, _, err := renderInput(&cmd.MessageInput, globals)
	if err != nil {
		return err
	}

	content := renderANSI(root)

	// Not a terminal (piped output): print and be done.
	fi, statErr := os.Stdout.Stat()
	if statErr == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		fmt.Fprint(os.Stdout, content)
		return nil
	}

	p := tea.NewProgram(newPreviewModel(content), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type previewModel struct {
	viewport viewport.Model
	content  string
	ready    bool
}

func newPreviewModel(content string) previewModel {
	return previewModel{content: content}
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View() + "\n(q to quit)"
}
