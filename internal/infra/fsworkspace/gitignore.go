package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const gitignoreHeader = "# pizzadough"

// Saved plans, logs and local env overrides stay out of version control.
var gitignoreEntries = []string{
	"plans/",
	".pizzadough/",
	".env",
}

func ensureGitignore(root string) error {
	p := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	merged, changed := mergeGitignore(string(b))
	if !changed {
		return nil
	}
	return os.WriteFile(p, []byte(merged), 0o644)
}

// mergeGitignore appends the missing pizzadough entries to existing, under
// the header. It reports false when nothing was missing.
func mergeGitignore(existing string) (string, bool) {
	seen := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			seen[t] = true
		}
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !seen[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return existing, false
	}

	var sb strings.Builder
	if existing != "" {
		sb.WriteString(existing)
		if !strings.HasSuffix(existing, "\n") {
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	if !seen[gitignoreHeader] {
		sb.WriteString(gitignoreHeader + "\n")
	}
	for _, e := range missing {
		sb.WriteString(e + "\n")
	}
	return sb.String(), true
}
