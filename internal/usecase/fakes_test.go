package usecase

import (
	"errors"
	"sort"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

type fakeProfileStore struct {
	profiles map[string]domain.Params
	saved    map[string]domain.Params
	saveErr  error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles: map[string]domain.Params{},
		saved:    map[string]domain.Params{},
	}
}

func (f *fakeProfileStore) LoadProfile(path string) (domain.Params, error) {
	p, ok := f.profiles[path]
	if !ok {
		return domain.Params{}, &domain.OpError{
			Op:   "fake.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  domain.ErrNotFound,
		}
	}
	return p, nil
}

func (f *fakeProfileStore) SaveProfile(path string, p domain.Params) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[path] = p
	return nil
}

func (f *fakeProfileStore) ListProfiles(string) ([]domain.ProfileRef, error) {
	out := make([]domain.ProfileRef, 0, len(f.profiles))
	for k := range f.profiles {
		out = append(out, domain.ProfileRef{Name: k, Path: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakePlanStore struct {
	saved []domain.Plan
	err   error
}

func (f *fakePlanStore) SavePlan(p domain.Plan) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, p)
	return "plan-1", nil
}

var errBoom = errors.New("boom")
