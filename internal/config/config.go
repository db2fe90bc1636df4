package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lair/internal/logger"
)

// Settings holds all lair configuration
type Settings struct {
	NotesDirectory    string `json:"notes_directory"`
	Editor            string `json:"editor"`
	DefaultFileFormat string `json:"default_file_format"`
}

// Defaults returns the out-of-the-box settings
func Defaults() *Settings {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		homeDir = "."
	}
	return &Settings{
		NotesDirectory:    filepath.Join(homeDir, "notes"),
		Editor:            "nvim",
		DefaultFileFormat: "md",
	}
}

// Load reads settings from ~/.config/lair/settings.json.
// It never fails outward: a missing or corrupt file falls back to defaults,
// which are best-effort persisted so the user has a file to edit.
func Load() *Settings {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		logger.Error("Failed to resolve settings path: %v", err)
		return Defaults()
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		defaults := Defaults()
		if err := Save(defaults); err != nil {
			logger.Warn("Failed to save default settings: %v", err)
		}
		return defaults
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		logger.Warn("Failed to parse settings file %s: %v, using defaults", settingsPath, err)
		return Defaults()
	}

	// Fill in anything missing from an older or hand-edited file
	defaults := Defaults()
	if settings.NotesDirectory == "" {
		settings.NotesDirectory = defaults.NotesDirectory
	}
	if settings.Editor == "" {
		settings.Editor = defaults.Editor
	}
	if settings.DefaultFileFormat == "" {
		settings.DefaultFileFormat = defaults.DefaultFileFormat
	}

	return settings
}

// Save writes settings to ~/.config/lair/settings.json
func Save(settings *Settings) error {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		logger.Error("Failed to resolve settings path: %v", err)
		return fmt.Errorf("cannot resolve settings path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(settingsPath), err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal settings: %v", err)
		return fmt.Errorf("cannot marshal settings: %w", err)
	}

	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		logger.Error("Failed to write settings file %s: %v", settingsPath, err)
		return fmt.Errorf("cannot write settings file: %w", err)
	}

	return nil
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "lair", "settings.json"), nil
}
