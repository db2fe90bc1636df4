package main

import (
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lair/internal/browse"
	"lair/internal/config"
	"lair/internal/fileops"
	"lair/internal/logger"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("LAIR - Note Management")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			// A missing editor is not fatal; the TUI keeps running
			logger.Error("Editor %q failed: %v", m.settings.Editor, msg.err)
			m.setStatus("Could not launch editor: " + m.settings.Editor)
		}
		if m.screen == screenBrowsing {
			m.refreshBrowse()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenMain:
			return m.updateMainScreen(msg)
		case screenBrowsing:
			return m.updateBrowsingScreen(msg)
		case screenEditing:
			return m.updateEditingScreen(msg)
		case screenCreatingFolder:
			return m.updateCreatingFolderScreen(msg)
		case screenSettings:
			return m.updateSettingsScreen(msg)
		case screenExiting:
			return m.updateExitingScreen(msg)
		}
	}

	return m, nil
}

func (m *model) updateMainScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q":
		m.screen = screenExiting
	case "n", "N":
		m.enterEditing("")
	case "b", "B":
		m.enterBrowsing()
	case "s", "S":
		m.enterSettings()
	}
	return m, nil
}

func (m *model) updateBrowsingScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter query is being edited most keys go to the input
	if m.filterEditing {
		return m.updateBrowseFilter(msg)
	}

	switch msg.String() {
	case "esc":
		m.clearFilter()
		m.screen = screenMain
	case "q":
		m.screen = screenExiting
	case "up", "k":
		m.cursor = browse.StepUp(m.cursor, len(m.rows))
		m.clampScroll()
	case "down", "j":
		m.cursor = browse.StepDown(m.cursor, len(m.rows))
		m.clampScroll()
	case " ", "right":
		if row, ok := m.selectedRow(); ok && row.IsDir() {
			m.expansion.Toggle(row.Path)
			m.refreshBrowse()
		}
	case "enter":
		if row, ok := m.selectedRow(); ok && row.IsFile {
			m.currentFile = row.Path
			return m, m.launchEditor(row.Path)
		}
	case "n":
		m.enterEditing(m.resolveSelectedDirectory())
	case "f":
		m.enterCreatingFolder(m.resolveSelectedDirectory())
	case "/":
		m.filterEditing = true
		m.filterInput.Focus()
	case "y":
		if row, ok := m.selectedRow(); ok && row.Path != "" {
			m.copyPath(row.Path)
		}
	case "o":
		if row, ok := m.selectedRow(); ok && row.IsFile {
			return m, m.openWithSystem(row.Path)
		}
	}
	return m, nil
}

func (m *model) updateBrowseFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearFilter()
		m.applyFilter()
		return m, nil
	case "enter":
		// Keep the query, move focus back to the list
		m.filterEditing = false
		m.filterInput.Blur()
		return m, nil
	case "up":
		m.cursor = browse.StepUp(m.cursor, len(m.rows))
		m.clampScroll()
		return m, nil
	case "down":
		m.cursor = browse.StepDown(m.cursor, len(m.rows))
		m.clampScroll()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *model) updateEditingScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path, err := fileops.CreateNote(
			m.settings.NotesDirectory,
			m.noteNameInput.Value(),
			m.settings.DefaultFileFormat,
			m.targetDir,
		)
		if err != nil {
			// Stay on the dialog so the user can retry or cancel
			logger.Error("Note creation failed: %v", err)
			m.setStatus("Could not create note: " + err.Error())
			return m, nil
		}
		m.currentFile = path
		m.leaveEditing()
		return m, m.launchEditor(path)
	case "esc":
		m.leaveEditing()
		return m, nil
	}

	return m.updateNameInput(&m.noteNameInput, msg)
}

func (m *model) updateCreatingFolderScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		parent := m.targetDir
		if parent == "" {
			parent = m.resolveSelectedDirectory()
		}
		if _, err := fileops.CreateFolder(parent, m.folderNameInput.Value()); err != nil {
			logger.Error("Folder creation failed: %v", err)
			m.setStatus("Could not create folder: " + err.Error())
			return m, nil
		}
		m.leaveCreatingFolder()
		return m, nil
	case "esc":
		m.leaveCreatingFolder()
		return m, nil
	}

	return m.updateNameInput(&m.folderNameInput, msg)
}

func (m *model) updateSettingsScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		// First field stays first: cycling clamps, no wraparound
		if m.activeField == fieldNone || m.activeField == 0 {
			m.focusSettingsField(0)
		} else {
			m.focusSettingsField(m.activeField - 1)
		}
		return m, nil
	case "down":
		if m.activeField == fieldNone {
			m.focusSettingsField(0)
		} else if m.activeField < fieldCount-1 {
			m.focusSettingsField(m.activeField + 1)
		}
		return m, nil
	case "enter":
		if m.activeField == fieldNone {
			m.focusSettingsField(0)
			return m, nil
		}
		// Persist all three fields and save
		m.settings.NotesDirectory = m.settingsInputs[fieldNotesDirectory].Value()
		m.settings.Editor = m.settingsInputs[fieldEditor].Value()
		m.settings.DefaultFileFormat = m.settingsInputs[fieldFileFormat].Value()
		if err := config.Save(m.settings); err != nil {
			// In-memory settings stay authoritative for the session
			logger.Warn("Settings save failed: %v", err)
			m.setStatus("Warning: could not save settings")
		} else {
			m.setStatus("Settings saved")
		}
		m.focusSettingsField(fieldNone)
		return m, nil
	case "esc":
		if m.activeField != fieldNone {
			// Discard edits, reload from the persisted values
			m.resetSettingsInputs()
			m.focusSettingsField(fieldNone)
		} else {
			m.screen = screenMain
		}
		return m, nil
	}

	if m.activeField == fieldNone {
		return m, nil
	}

	key, ok := filterKeyRunes(msg, m.settingsFieldRune)
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.settingsInputs[m.activeField], cmd = m.settingsInputs[m.activeField].Update(key)
	return m, cmd
}

func (m *model) updateExitingScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, tea.Quit
	case "n", "N", "esc":
		m.screen = screenMain
	}
	return m, nil
}

// updateNameInput feeds a key to a name buffer, dropping runes outside
// the allowed set (letters, digits, space, '-', '_', '.')
func (m *model) updateNameInput(input *textinput.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, ok := filterKeyRunes(msg, isNameRune)
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(key)
	return m, cmd
}

// settingsFieldRune reports whether r may be typed into the active
// settings field: the file-format field is alphanumeric only, the path
// and editor fields take any printable rune
func (m *model) settingsFieldRune(r rune) bool {
	if m.activeField == fieldFileFormat {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return !unicode.IsControl(r)
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == ' ' || r == '-' || r == '_' || r == '.'
}

// filterKeyRunes strips disallowed runes from a key message before it
// reaches a textinput. Non-rune keys (backspace, arrows) pass through
// untouched; a rune key with nothing left is dropped entirely.
func filterKeyRunes(msg tea.KeyMsg, allowed func(rune) bool) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return msg, true
	}
	runes := msg.Runes
	if msg.Type == tea.KeySpace {
		runes = []rune{' '}
	}
	kept := make([]rune, 0, len(runes))
	for _, r := range runes {
		if allowed(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msg, false
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: kept}, true
}
