package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

const opFindRoot = "workspacefinder.findroot"

// Finder walks up from a directory until it meets a pizzadough.yaml.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{Op: opFindRoot, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: opFindRoot, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	marker := f.ConfigFile
	if marker == "" {
		marker = ConfigFile
	}

	for {
		if isFile(filepath.Join(dir, marker)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &domain.OpError{Op: opFindRoot, Kind: domain.KindNotFound, Path: startDir, Err: domain.ErrNotFound}
		}
		dir = parent
	}
}

// A directory named like the marker does not make a workspace.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
