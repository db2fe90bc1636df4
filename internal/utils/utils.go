package utils

import (
	"path/filepath"
	"strings"
)

// FileIcon returns an emoji icon for a note based on its extension
func FileIcon(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".md", ".markdown":
		return "📝"
	case ".txt", ".log":
		return "📄"
	case ".org", ".rst", ".adoc":
		return "📃"
	case ".json", ".yaml", ".yml", ".toml":
		return "📋"
	case ".pdf":
		return "📕"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg":
		return "🖼️"
	default:
		return "📄"
	}
}
