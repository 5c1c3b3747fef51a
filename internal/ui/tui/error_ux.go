package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage maps an error to a one-line toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Timed out computing the plan"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch domain.KindOf(err) {

		case domain.KindInvalidParams:
			n := len(domain.Problems(err))
			if n == 1 {
				return "Invalid parameters (1 problem)"
			}
			if n > 1 {
				return "Invalid parameters (" + strconv.Itoa(n) + " problems)"
			}
			return "Invalid parameters"

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "profilestore") {
				if oe.Path != "" {
					return "Profile not found: " + filepath.Base(oe.Path)
				}
				return "Profile not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid file " + base + " at line " + line
			}
			if looksLikeParseProblem(err.Error()) {
				return "Invalid file " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeParseProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid file at line " + line
		}
		return "Invalid file"
	}

	return "Unexpected error (see logs)"
}

func looksLikeParseProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") ||
		strings.Contains(ls, "did not find expected") ||
		strings.Contains(ls, "cannot unmarshal") ||
		strings.Contains(ls, "invalid character")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
