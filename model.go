package main

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"lair/internal/browse"
	"lair/internal/config"
	"lair/internal/git"
	"lair/internal/logger"
	"lair/internal/search"
)

// editorFinishedMsg arrives when the external editor process exits and
// the TUI has reacquired the terminal
type editorFinishedMsg struct{ err error }

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 12
	uiOverhead        = 8 // Header (3) + footer (3) + status (1) + list border (1)
)

const statusDuration = 3 * time.Second

type screen int

const (
	screenMain screen = iota
	screenBrowsing
	screenEditing
	screenCreatingFolder
	screenSettings
	screenExiting
)

// Settings field indices; fieldNone means no field is being edited
const (
	fieldNone           = -1
	fieldNotesDirectory = 0
	fieldEditor         = 1
	fieldFileFormat     = 2
	fieldCount          = 3
)

type model struct {
	screen   screen
	settings *config.Settings

	// Browsing state
	projection   browse.Projection
	expansion    browse.Expansion
	rows         []browse.Row // visible rows: projection, or filter results
	cursor       int          // index into rows, browse.NoSelection when empty
	scrollOffset int
	scanFailed   bool
	gitBranch    string

	// Where a new note/folder should land, carried from Browsing into
	// Editing/CreatingFolder; always cleared on the way back
	targetDir string

	currentFile string

	// Input buffers
	noteNameInput   textinput.Model
	folderNameInput textinput.Model
	settingsInputs  [fieldCount]textinput.Model
	activeField     int
	filterInput     textinput.Model
	filterEditing   bool

	statusMsg    string
	statusExpiry time.Time

	width  int
	height int
}

func initialModel() model {
	settings := config.Load()

	noteName := textinput.New()
	noteName.Placeholder = "Enter note name..."
	noteName.CharLimit = 128
	noteName.Width = 40

	folderName := textinput.New()
	folderName.Placeholder = "Enter folder name (empty for timestamp)..."
	folderName.CharLimit = 128
	folderName.Width = 40

	filter := textinput.New()
	filter.Placeholder = "Filter notes..."
	filter.CharLimit = 128
	filter.Width = 40

	m := model{
		screen:          screenMain,
		settings:        settings,
		expansion:       browse.NewExpansion(),
		cursor:          browse.NoSelection,
		activeField:     fieldNone,
		noteNameInput:   noteName,
		folderNameInput: folderName,
		filterInput:     filter,
	}

	labels := [fieldCount]string{"Notes directory", "Editor", "File format"}
	for i := range m.settingsInputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 256
		ti.Width = 40
		m.settingsInputs[i] = ti
	}
	m.resetSettingsInputs()

	return m
}

// refreshBrowse re-derives the visible row list from a fresh scan. The
// view is never patched incrementally; after any filesystem mutation or
// expansion change this is the single way the list gets updated.
func (m *model) refreshBrowse() {
	entries, err := browse.Scan(m.settings.NotesDirectory)
	if err != nil {
		logger.Error("Scan of %s failed: %v", m.settings.NotesDirectory, err)
		m.projection = browse.ErrorProjection("cannot read notes directory")
		m.scanFailed = true
		m.rows = m.projection.Rows
		m.cursor = browse.NoSelection
		m.scrollOffset = 0
		return
	}

	m.scanFailed = false
	m.projection = browse.Project(m.settings.NotesDirectory, entries, m.expansion)
	m.applyFilter()
}

// applyFilter recomputes the visible rows from the current projection
// and filter query, then re-clamps cursor and scroll
func (m *model) applyFilter() {
	if m.scanFailed {
		return
	}
	if query := m.filterInput.Value(); query != "" {
		m.rows = search.FilterRows(query, m.projection.Rows)
	} else {
		m.rows = m.projection.Rows
	}
	m.cursor = browse.ClampIndex(m.cursor, len(m.rows))
	m.clampScroll()
}

func (m *model) clampScroll() {
	visible := m.listHeight()
	if m.scrollOffset > len(m.rows)-visible {
		m.scrollOffset = len(m.rows) - visible
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if m.cursor >= 0 {
		if m.cursor < m.scrollOffset {
			m.scrollOffset = m.cursor
		}
		if m.cursor >= m.scrollOffset+visible {
			m.scrollOffset = m.cursor - visible + 1
		}
	}
}

func (m *model) listHeight() int {
	h := m.safeHeight() - uiOverhead
	if h < 3 {
		h = 3
	}
	return h
}

func (m *model) safeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) safeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}

// selectedRow returns the row under the cursor, if any
func (m *model) selectedRow() (browse.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return browse.Row{}, false
	}
	return m.rows[m.cursor], true
}

// resolveSelectedDirectory determines where a new note or folder
// triggered from the browsing screen should land: the selected
// directory, else the parent of the selected file, else the notes root
func (m *model) resolveSelectedDirectory() string {
	if row, ok := m.selectedRow(); ok {
		if row.IsDir() {
			return row.Path
		}
		if row.Path != "" {
			return filepath.Dir(row.Path)
		}
	}
	return m.settings.NotesDirectory
}

// Screen transitions. Each helper fully specifies the destination
// state: payload and buffers are reset here, never left behind.

func (m *model) enterBrowsing() {
	m.cursor = browse.NoSelection
	m.scrollOffset = 0
	m.clearFilter()
	m.refreshBrowse()
	m.gitBranch = git.GetBranch(m.settings.NotesDirectory)
	m.screen = screenBrowsing
}

func (m *model) enterEditing(targetDir string) {
	m.targetDir = targetDir
	m.noteNameInput.SetValue("")
	m.noteNameInput.Focus()
	m.screen = screenEditing
}

// leaveEditing returns from the note-name dialog: back to Browsing when
// the note was targeted at a browsed directory, else back to Main
func (m *model) leaveEditing() {
	fromBrowse := m.targetDir != ""
	m.targetDir = ""
	m.noteNameInput.SetValue("")
	m.noteNameInput.Blur()
	if fromBrowse {
		m.refreshBrowse()
		m.screen = screenBrowsing
	} else {
		m.screen = screenMain
	}
}

func (m *model) enterCreatingFolder(targetDir string) {
	m.targetDir = targetDir
	m.folderNameInput.SetValue("")
	m.folderNameInput.Focus()
	m.screen = screenCreatingFolder
}

func (m *model) leaveCreatingFolder() {
	m.targetDir = ""
	m.folderNameInput.SetValue("")
	m.folderNameInput.Blur()
	m.refreshBrowse()
	m.screen = screenBrowsing
}

func (m *model) enterSettings() {
	m.resetSettingsInputs()
	m.activeField = fieldNone
	m.screen = screenSettings
}

// resetSettingsInputs discards any edits and reloads the buffers from
// the current in-memory settings
func (m *model) resetSettingsInputs() {
	m.settingsInputs[fieldNotesDirectory].SetValue(m.settings.NotesDirectory)
	m.settingsInputs[fieldEditor].SetValue(m.settings.Editor)
	m.settingsInputs[fieldFileFormat].SetValue(m.settings.DefaultFileFormat)
}

// focusSettingsField moves editing focus to the given field, or blurs
// everything for fieldNone
func (m *model) focusSettingsField(field int) {
	m.activeField = field
	for i := range m.settingsInputs {
		if i == field {
			m.settingsInputs[i].Focus()
		} else {
			m.settingsInputs[i].Blur()
		}
	}
}

func (m *model) clearFilter() {
	m.filterInput.SetValue("")
	m.filterInput.Blur()
	m.filterEditing = false
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(statusDuration)
}
