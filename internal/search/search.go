package search

import (
	"path/filepath"

	"github.com/sahilm/fuzzy"

	"lair/internal/browse"
)

// rowSource adapts projected rows to the fuzzy matcher, matching on the
// file or folder name rather than the decorated display text
type rowSource []browse.Row

func (s rowSource) String(i int) string {
	return filepath.Base(s[i].Path)
}

func (s rowSource) Len() int {
	return len(s)
}

// FilterRows returns the navigable rows whose name fuzzy-matches query,
// best matches first. Header rows never match. An empty query returns
// rows unchanged.
func FilterRows(query string, rows []browse.Row) []browse.Row {
	if query == "" {
		return rows
	}

	// Headers carry no path and are excluded from matching
	candidates := make(rowSource, 0, len(rows))
	for _, row := range rows {
		if row.Path != "" {
			candidates = append(candidates, row)
		}
	}

	matches := fuzzy.FindFrom(query, candidates)

	filtered := make([]browse.Row, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, candidates[match.Index])
	}
	return filtered
}
