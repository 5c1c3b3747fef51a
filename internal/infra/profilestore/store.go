package profilestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

// Store reads and writes profile documents. The format follows the file
// extension: .yaml/.yml use YAML, anything else JSON.
type Store struct {
	profilesDir string
}

type Option func(*Store)

func WithProfilesDir(dir string) Option {
	return func(s *Store) { s.profilesDir = dir }
}

func New(opts ...Option) *Store {
	s := &Store{profilesDir: "profiles"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ProfileStore = (*Store)(nil)

// LoadProfile reads a profile and layers it over domain.DefaultParams, so
// documents may omit keys.
func (s *Store) LoadProfile(path string) (domain.Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Params{}, &domain.OpError{
			Op:   "profilestore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	p := domain.DefaultParams()
	if isYAML(path) {
		err = yaml.Unmarshal(b, &p)
	} else {
		err = json.Unmarshal(b, &p)
	}
	if err != nil {
		return domain.Params{}, &domain.OpError{
			Op:   "profilestore.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	yeast, err := domain.ParseYeastKind(string(p.Yeast))
	if err != nil {
		return domain.Params{}, invalidField(path, "yeast", err.Error())
	}
	p.Yeast = yeast
	p.Start = strings.TrimSpace(p.Start)

	return p, nil
}

// SaveProfile writes p atomically (tmp file then rename).
func (s *Store) SaveProfile(path string, p domain.Params) error {
	var (
		b   []byte
		err error
	)
	if isYAML(path) {
		b, err = yaml.Marshal(p)
	} else {
		b, err = json.MarshalIndent(p, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return &domain.OpError{
			Op:   "profilestore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "profilestore.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "profilestore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "profilestore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// ListProfiles returns the profile documents under <root>/<profilesDir>.
func (s *Store) ListProfiles(root string) ([]domain.ProfileRef, error) {
	dir := filepath.Join(root, s.profilesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "profilestore.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ProfileRef
	for _, e := range entries {
		if e.IsDir() || !hasProfileExt(e.Name()) {
			continue
		}
		name := e.Name()
		refs = append(refs, domain.ProfileRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Resolve maps a profile argument to a file path. Paths (anything with a
// separator) are taken relative to root; bare names are looked up in the
// profiles dir as name, name.json, name.yaml, name.yml. When nothing exists
// the JSON candidate is returned so saving a new profile works by name.
func (s *Store) Resolve(root, nameOrPath string) string {
	in := strings.TrimSpace(nameOrPath)
	if in == "" {
		return ""
	}

	if strings.Contains(in, "/") || strings.Contains(in, string(filepath.Separator)) {
		if filepath.IsAbs(in) {
			return filepath.Clean(in)
		}
		return filepath.Join(root, in)
	}

	dir := filepath.Join(root, s.profilesDir)
	if hasProfileExt(in) {
		return filepath.Join(dir, in)
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		p := filepath.Join(dir, in+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, in+".json")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func hasProfileExt(name string) bool {
	return isYAML(name) || strings.EqualFold(filepath.Ext(name), ".json")
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "profilestore.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
