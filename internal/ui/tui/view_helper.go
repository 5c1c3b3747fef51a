package tui

import (
	"path/filepath"
	"strings"
)

const maxRowWidth = 60

// clampString cuts s to at most n runes, the last one being an ellipsis.
func clampString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// relPath shows a profile path relative to the workspace root when it lives
// inside it.
func relPath(root, path string) string {
	out := path
	if root != "" {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			out = rel
		}
	}
	return clampString(out, maxRowWidth)
}

// statusWidth is the room left for a toast or problem line.
func (m model) statusWidth() int {
	if m.width <= 4 {
		return maxRowWidth * 2
	}
	return m.width - 4
}
