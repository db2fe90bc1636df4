// Package browse turns the notes directory tree into the flat, ordered
// list of rows shown on the browsing screen, honoring which folders the
// user has expanded.
package browse

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"lair/internal/logger"
)

// Entry is one filesystem object under the notes root
type Entry struct {
	Path  string
	IsDir bool
}

// Scan walks root recursively and returns every descendant file and
// directory, excluding root itself. Output order is unspecified; Project
// re-sorts. Fails if root does not exist or cannot be read.
func Scan(root string) ([]Entry, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read notes directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("notes directory %s is not a directory", root)
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if filepath.Clean(path) == root {
				return err
			}
			// Unreadable subdirectory: skip it rather than losing the whole tree
			logger.Warn("Skipping unreadable path %s: %v", path, err)
			return nil
		}
		if filepath.Clean(path) == root {
			return nil
		}
		entries = append(entries, Entry{Path: path, IsDir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read notes directory %s: %w", root, err)
	}

	return entries, nil
}

// Expansion is the set of directories the user has explicitly opened.
// Membership only affects the visibility of a directory's descendants,
// never its own row.
type Expansion map[string]struct{}

// NewExpansion returns an empty expansion set
func NewExpansion() Expansion {
	return make(Expansion)
}

// Toggle flips membership for path: expanded folders collapse, collapsed
// folders expand. This is the only mutator of the set.
func (e Expansion) Toggle(path string) {
	path = filepath.Clean(path)
	if _, ok := e[path]; ok {
		delete(e, path)
	} else {
		e[path] = struct{}{}
	}
}

// Expanded reports whether path is in the set
func (e Expansion) Expanded(path string) bool {
	_, ok := e[filepath.Clean(path)]
	return ok
}

// visible reports whether path should appear in the projection: every
// ancestor directory up to but excluding root must be expanded.
func visible(path, root string, exp Expansion) bool {
	path = filepath.Clean(path)
	if path == root {
		return false
	}

	for current := filepath.Dir(path); ; current = filepath.Dir(current) {
		if current == root {
			return true
		}
		if !exp.Expanded(current) {
			return false
		}
		if current == filepath.Dir(current) {
			// Hit the filesystem root without meeting the notes root;
			// path is outside the tree
			return false
		}
	}
}
