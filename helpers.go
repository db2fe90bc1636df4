package main

import (
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"lair/internal/logger"
)

// launchEditor hands the terminal to the configured editor for path and
// resumes the TUI when it exits. ExecProcess restores normal terminal
// mode before spawning and reacquires the alternate screen afterwards,
// on every exit path.
func (m *model) launchEditor(path string) tea.Cmd {
	editor := m.settings.Editor
	if editor == "" {
		editor = "nvim"
	}

	logger.Info("Opening %s with %s", path, editor)
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// openWithSystem opens path with the system default application
func (m *model) openWithSystem(path string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Run(path); err != nil {
			logger.Warn("Could not open %s: %v", path, err)
		}
		return nil
	}
}

// copyPath puts path on the system clipboard
func (m *model) copyPath(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		m.setStatus(fmt.Sprintf("Failed to copy: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Copied: %s", path))
}
