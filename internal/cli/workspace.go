package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/infra/planstore"
	"github.com/aalvaropc/pizzadough/internal/infra/profilestore"
	"github.com/aalvaropc/pizzadough/internal/infra/workspacefinder"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

// workspaceCtx is everything a command needs from the current workspace.
// Outside a workspace the working directory stands in for the root and the
// default config applies.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	profiles *profilestore.Store
	plans    *planstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(root); err != nil {
		return nil, err
	}
	cfg = workspacefinder.ApplyEnv(cfg, os.LookupEnv)

	return &workspaceCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		profiles: profilestore.New(profilestore.WithProfilesDir(cfg.Paths.ProfilesDir)),
		plans:    planstore.NewJSONStore(root, cfg),
	}, nil
}

// resolveWorkspaceRoot returns an explicit --workspace (which must hold a
// pizzadough.yaml), else the nearest workspace above the working directory,
// else the working directory itself with found=false.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		if !fileExists(filepath.Join(abs, workspacefinder.ConfigFile)) {
			return "", false, &domain.OpError{
				Op:   "cli.workspace",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  fmt.Errorf("%w: no %s (tip: run `pizzadough init --path %s`)", domain.ErrNotFound, workspacefinder.ConfigFile, w),
			}
		}
		return abs, true, nil
	}

	if root, ok := findWorkspace(); ok {
		return root, true, nil
	}
	return workingDir(), false, nil
}

func findWorkspace() (string, bool) {
	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(workingDir())
	if err != nil || root == "" {
		return "", false
	}
	return root, true
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	abs, err := filepath.Abs(wd)
	if err != nil {
		return wd
	}
	return abs
}

// loadDotEnv reads <root>/.env if present. Variables already set win.
func loadDotEnv(root string) error {
	err := godotenv.Load(filepath.Join(root, ".env"))
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &domain.OpError{
		Op:   "cli.dotenv",
		Kind: domain.KindInvalidConfig,
		Path: filepath.Join(root, ".env"),
		Err:  err,
	}
}

// resolveProfile maps a profile name or path to a file path. Names are only
// looked up in the profiles dir inside a workspace.
func (ws *workspaceCtx) resolveProfile(nameOrPath string) string {
	in := strings.TrimSpace(nameOrPath)
	if in == "" {
		return ""
	}
	if ws.found {
		return ws.profiles.Resolve(ws.root, in)
	}
	if filepath.IsAbs(in) {
		return filepath.Clean(in)
	}
	return filepath.Join(ws.root, in)
}

// defaultProfile is the configured default profile path, or "".
func (ws *workspaceCtx) defaultProfile() string {
	if !ws.found {
		return ""
	}
	return ws.resolveProfile(ws.cfg.Defaults.Profile)
}

// defaultParams loads the default profile over domain.DefaultParams.
func (ws *workspaceCtx) defaultParams() (domain.Params, error) {
	path := ws.defaultProfile()
	if path == "" {
		return domain.DefaultParams(), nil
	}
	return ws.profiles.LoadProfile(path)
}

func profileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
