package config

import (
	"os"
	"path/filepath"
	"testing"

	"lair/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Disable()
	os.Exit(m.Run())
}

func setTestHome(t *testing.T) string {
	t.Helper()
	homeDir := filepath.Join(t.TempDir(), "home")
	os.MkdirAll(homeDir, 0755)
	t.Setenv("HOME", homeDir)
	return homeDir
}

func TestLoadDefaults(t *testing.T) {
	homeDir := setTestHome(t)

	settings := Load()
	if settings == nil {
		t.Fatal("Load() returned nil")
	}

	if settings.NotesDirectory != filepath.Join(homeDir, "notes") {
		t.Errorf("NotesDirectory = %s, want %s", settings.NotesDirectory, filepath.Join(homeDir, "notes"))
	}
	if settings.Editor != "nvim" {
		t.Errorf("Editor = %s, want nvim", settings.Editor)
	}
	if settings.DefaultFileFormat != "md" {
		t.Errorf("DefaultFileFormat = %s, want md", settings.DefaultFileFormat)
	}

	// First load persists the defaults so the user has a file to edit
	settingsPath, err := GetSettingsPath()
	if err != nil {
		t.Fatalf("GetSettingsPath failed: %v", err)
	}
	if _, err := os.Stat(settingsPath); err != nil {
		t.Errorf("defaults were not persisted: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	setTestHome(t)

	settings := &Settings{
		NotesDirectory:    "/tmp/my-notes",
		Editor:            "vim",
		DefaultFileFormat: "txt",
	}

	if err := Save(settings); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load()
	if loaded.NotesDirectory != settings.NotesDirectory {
		t.Errorf("NotesDirectory = %s, want %s", loaded.NotesDirectory, settings.NotesDirectory)
	}
	if loaded.Editor != settings.Editor {
		t.Errorf("Editor = %s, want %s", loaded.Editor, settings.Editor)
	}
	if loaded.DefaultFileFormat != settings.DefaultFileFormat {
		t.Errorf("DefaultFileFormat = %s, want %s", loaded.DefaultFileFormat, settings.DefaultFileFormat)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	setTestHome(t)

	settingsPath, err := GetSettingsPath()
	if err != nil {
		t.Fatalf("GetSettingsPath failed: %v", err)
	}
	os.MkdirAll(filepath.Dir(settingsPath), 0755)
	os.WriteFile(settingsPath, []byte("{not json"), 0644)

	// A corrupt file must fall back to defaults, not fail
	settings := Load()
	if settings.Editor != "nvim" {
		t.Errorf("Editor = %s, want default nvim", settings.Editor)
	}
}

func TestLoadPartialFile(t *testing.T) {
	setTestHome(t)

	settingsPath, err := GetSettingsPath()
	if err != nil {
		t.Fatalf("GetSettingsPath failed: %v", err)
	}
	os.MkdirAll(filepath.Dir(settingsPath), 0755)
	os.WriteFile(settingsPath, []byte(`{"editor": "hx"}`), 0644)

	settings := Load()
	if settings.Editor != "hx" {
		t.Errorf("Editor = %s, want hx", settings.Editor)
	}
	// Missing fields are filled in from defaults
	if settings.DefaultFileFormat != "md" {
		t.Errorf("DefaultFileFormat = %s, want default md", settings.DefaultFileFormat)
	}
	if settings.NotesDirectory == "" {
		t.Error("NotesDirectory not defaulted")
	}
}
