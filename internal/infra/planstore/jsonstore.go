package planstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

const defaultPlansDir = "plans"

type JSONStore struct {
	rootDir      string
	plansDirName string
	writeIndex   bool
	now          func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: plans/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	plansDir := cfg.Paths.PlansDir
	if strings.TrimSpace(plansDir) == "" {
		plansDir = defaultPlansDir
	}

	s := &JSONStore{
		rootDir:      root,
		plansDirName: plansDir,
		writeIndex:   cfg.Plans.Index,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.PlanStore = (*JSONStore)(nil)

func (s *JSONStore) SavePlan(plan domain.Plan) (string, error) {
	dir := filepath.Join(s.rootDir, s.plansDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "planstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := plan.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := plan
	if toSave.CreatedAt.IsZero() {
		toSave.CreatedAt = ts
	}

	namePart := plan.Name
	if strings.TrimSpace(namePart) == "" && plan.ProfilePath != "" {
		namePart = strings.TrimSuffix(filepath.Base(plan.ProfilePath), filepath.Ext(plan.ProfilePath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "plan"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	id, path := uniqueName(dir, base)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "planstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "planstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "planstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

// uniqueName appends _2, _3, ... until the file name is free.
func uniqueName(dir, base string) (string, string) {
	id := base
	for n := 2; ; n++ {
		path := filepath.Join(dir, id+".json")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return id, path
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

func (s *JSONStore) appendIndex(dir, id, filename string, plan domain.Plan) error {
	type idx struct {
		ID          string           `json:"id"`
		File        string           `json:"file"`
		Profile     string           `json:"profile,omitempty"`
		Yeast       domain.YeastKind `json:"yeast"`
		TotalDoughG float64          `json:"total_dough_g"`
		CreatedAt   time.Time        `json:"created_at"`
		BakeAt      time.Time        `json:"bake_at"`
	}
	line, err := json.Marshal(idx{
		ID:          id,
		File:        filename,
		Profile:     plan.ProfilePath,
		Yeast:       plan.Params.Yeast,
		TotalDoughG: plan.Params.TotalDoughG(),
		CreatedAt:   plan.CreatedAt,
		BakeAt:      plan.Schedule.End(),
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
