package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CreateNote creates an empty note file and returns its full path.
//
// When targetDir is set the note lands directly inside it; otherwise it
// goes into a date-stamped subfolder of notesDir (YY-MM-DD). An empty
// name yields a timestamp-based filename; otherwise the trimmed name is
// used, with the configured extension appended unless already present.
// The containing directory is created if absent. An existing file with
// the same name is never truncated.
func CreateNote(notesDir, name, format, targetDir string) (string, error) {
	now := time.Now()

	dir := targetDir
	if dir == "" {
		dir = filepath.Join(notesDir, now.Format("06-01-02"))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	fileName := strings.TrimSpace(name)
	if fileName == "" {
		fileName = fmt.Sprintf("notes-%s.%s", now.Format("06-01-02_15-04-05"), format)
	} else if !strings.HasSuffix(fileName, "."+format) {
		fileName = fileName + "." + format
	}

	path := filepath.Join(dir, fileName)

	// Create empty file only if it doesn't already exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("cannot create note %s: %w", path, err)
		}
		file.Close()
	}

	return path, nil
}

// CreateFolder creates a folder under parent and returns its full path.
// An empty name yields a minute-resolution timestamp name. Creation is
// recursive and idempotent: an already-existing path is not an error.
func CreateFolder(parent, name string) (string, error) {
	folderName := strings.TrimSpace(name)
	if folderName == "" {
		folderName = time.Now().Format("2006-01-02_15-04")
	}

	path := filepath.Join(parent, folderName)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("cannot create folder %s: %w", path, err)
	}

	return path, nil
}
