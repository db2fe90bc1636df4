package browse

import (
	"path/filepath"
	"sort"
	"strings"

	"lair/internal/utils"
)

// Row is one line of the browsing list. Path is empty only for header
// rows (the root label and error rows), which are not navigable.
type Row struct {
	Display string
	IsFile  bool
	Path    string
}

// IsDir reports whether the row denotes a real directory
func (r Row) IsDir() bool {
	return r.Path != "" && !r.IsFile
}

// Projection is the ordered, flattened view of the notes tree. Row order
// is deterministic for a given (entries, expansion) pair: siblings sort
// lexicographically by path, and an expanded directory's children follow
// it immediately, depth-first.
type Projection struct {
	Rows []Row
}

// Len returns the number of rows
func (p Projection) Len() int {
	return len(p.Rows)
}

// PathAt returns the path behind row index i, or "" for headers and
// out-of-range indices
func (p Projection) PathAt(i int) string {
	if i < 0 || i >= len(p.Rows) {
		return ""
	}
	return p.Rows[i].Path
}

// Project computes the visible rows for the scanned entries under root,
// honoring the expansion set. The first row is always the root header.
func Project(root string, entries []Entry, exp Expansion) Projection {
	root = filepath.Clean(root)

	// Group visible entries by their immediate parent
	children := make(map[string][]Entry)
	for _, entry := range entries {
		if !visible(entry.Path, root, exp) {
			continue
		}
		parent := filepath.Dir(filepath.Clean(entry.Path))
		children[parent] = append(children[parent], entry)
	}
	for parent := range children {
		sort.Slice(children[parent], func(i, j int) bool {
			return children[parent][i].Path < children[parent][j].Path
		})
	}

	p := Projection{Rows: []Row{{Display: "📂 Root"}}}
	p.addDirectory(root, exp, children, 1)
	return p
}

// addDirectory emits sorted rows for one directory level, recursing into
// expanded subdirectories immediately after their own row
func (p *Projection) addDirectory(dir string, exp Expansion, children map[string][]Entry, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, child := range children[filepath.Clean(dir)] {
		name := filepath.Base(child.Path)

		if child.IsDir {
			expanded := exp.Expanded(child.Path)
			indicator := "▶"
			if expanded {
				indicator = "▼"
			}
			p.Rows = append(p.Rows, Row{
				Display: indent + indicator + " 📁 " + name,
				IsFile:  false,
				Path:    child.Path,
			})
			if expanded {
				p.addDirectory(child.Path, exp, children, depth+1)
			}
		} else {
			p.Rows = append(p.Rows, Row{
				Display: indent + utils.FileIcon(name) + " " + name,
				IsFile:  true,
				Path:    child.Path,
			})
		}
	}
}

// ErrorProjection is shown when the notes root cannot be scanned: a
// single non-navigable row carrying the error label
func ErrorProjection(label string) Projection {
	return Projection{Rows: []Row{{Display: "⚠ " + label}}}
}
