package fsworkspace

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

// Workspace layout, relative to the root.
var layout = []string{
	"profiles",
	"plans",
	".pizzadough/logs",
}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init creates the layout, the .gitignore block and the starter files
// (pizzadough.yaml plus sample profiles). Existing starter files are kept
// unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, rel := range layout {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return initErr("fsworkspace.mkdir", dir, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return initErr("fsworkspace.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, templatesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(templatesDir, filepath.FromSlash(p))
		dst := filepath.Join(root, rel)
		if err := writeTemplate(p, dst, force); err != nil {
			return initErr("fsworkspace.template", dst, err)
		}
		return nil
	})
}

func writeTemplate(src, dst string, force bool) error {
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}
	b, err := fs.ReadFile(templatesFS, path.Clean(src))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

func initErr(op, p string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: p, Err: err}
}
