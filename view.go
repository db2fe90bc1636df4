package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)

	exitDialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)

	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.screen {
	case screenBrowsing:
		return m.renderBrowsingScreen()
	case screenEditing:
		return m.renderDialog("New Note", m.noteNameInput.View(), "Enter: Create & Edit | Esc: Cancel")
	case screenCreatingFolder:
		return m.renderDialog("New Folder", m.folderNameInput.View(), "Enter: Create Folder | Esc: Cancel")
	case screenSettings:
		return m.renderSettingsScreen()
	case screenExiting:
		return m.renderExitingScreen()
	default:
		return m.renderMainScreen()
	}
}

func (m *model) renderHeader(title string) string {
	return headerStyle.Width(m.safeWidth()).Render(title)
}

func (m *model) renderFooter(help string) string {
	footer := footerStyle.Width(m.safeWidth()).Render(help)
	if m.statusMsg != "" {
		return statusStyle.Padding(0, 1).Render(m.statusMsg) + "\n" + footer
	}
	return "\n" + footer
}

func (m *model) renderMainScreen() string {
	header := m.renderHeader("LAIR - Note Management")

	options := []string{
		"(N) New Note",
		"(B) Browse Notes",
		"(S) Settings",
		"(Q) Quit",
	}
	body := strings.Join(options, "\n")
	if m.currentFile != "" {
		body += "\n\n" + labelStyle.Render("Last note: "+m.currentFile)
	}

	content := lipgloss.Place(
		m.safeWidth(), m.safeHeight()-4,
		lipgloss.Center, lipgloss.Center,
		dialogStyle.Render(body),
	)

	footer := m.renderFooter("Press 'N' for new note, 'B' to browse, 'Q' to quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m *model) renderBrowsingScreen() string {
	title := "Browse Notes"
	if m.gitBranch != "" {
		title = fmt.Sprintf("Browse Notes (git: %s)", m.gitBranch)
	}
	header := m.renderHeader(title)

	var lines []string
	if m.filterEditing || m.filterInput.Value() != "" {
		lines = append(lines, "Filter: "+m.filterInput.View())
	}

	visible := m.listHeight()
	end := m.scrollOffset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.scrollOffset; i < end; i++ {
		line := m.rows[i].Display
		if m.scanFailed {
			line = errorStyle.Render(line)
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(m.rows) > end {
		lines = append(lines, footerStyle.Render(fmt.Sprintf("  ... %d more", len(m.rows)-end)))
	}

	list := lipgloss.NewStyle().
		Height(visible + 1).
		Width(m.safeWidth()).
		Render(strings.Join(lines, "\n"))

	footer := m.renderFooter("↑↓ Navigate | Space/→ Expand | Enter: Open | N: New Note | F: New Folder | /: Filter | Esc: Back | Q: Quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, list, footer)
}

func (m *model) renderDialog(title, input, help string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		activeLabelStyle.Render(title),
		"",
		input,
	)

	content := lipgloss.Place(
		m.safeWidth(), m.safeHeight()-4,
		lipgloss.Center, lipgloss.Center,
		dialogStyle.Render(body),
	)

	header := m.renderHeader("LAIR - Note Management")
	footer := m.renderFooter(help)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m *model) renderSettingsScreen() string {
	header := m.renderHeader("Settings")

	labels := [fieldCount]string{"Notes Directory:", "Editor:", "File Format:"}
	var fields []string
	for i := range m.settingsInputs {
		label := labelStyle.Render(labels[i])
		if i == m.activeField {
			label = activeLabelStyle.Render(labels[i])
		}
		fields = append(fields, lipgloss.JoinVertical(lipgloss.Left, label, m.settingsInputs[i].View(), ""))
	}

	content := lipgloss.Place(
		m.safeWidth(), m.safeHeight()-4,
		lipgloss.Center, lipgloss.Center,
		dialogStyle.Render(strings.Join(fields, "\n")),
	)

	help := "↑↓ Navigate | Enter: Edit | Esc: Back"
	if m.activeField != fieldNone {
		help = "Type to edit | Enter: Save | Esc: Cancel"
	}
	footer := m.renderFooter(help)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m *model) renderExitingScreen() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		"Are you sure you want to exit?",
		"",
		"(Y) Yes    (N) No",
	)

	content := lipgloss.Place(
		m.safeWidth(), m.safeHeight()-4,
		lipgloss.Center, lipgloss.Center,
		exitDialogStyle.Render(body),
	)

	header := m.renderHeader("LAIR - Note Management")
	footer := m.renderFooter("Press 'Y' to quit, 'N' to stay")
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
