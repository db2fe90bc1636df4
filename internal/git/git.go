package git

import (
	"os/exec"
	"strings"
)

// GetBranch returns the current git branch of dir, or "" when dir is not
// inside a repository (many people keep their notes under git)
func GetBranch(dir string) string {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(output))
}
