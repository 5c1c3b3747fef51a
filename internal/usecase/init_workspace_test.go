package usecase

import (
	"testing"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

func TestInitWorkspace_DelegatesToInitializer(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/pizza", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/tmp/pizza" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}

	fi.err = errBoom
	if err := NewInitWorkspace(fi).Execute(".", false); err != errBoom {
		t.Fatalf("expected errBoom, got %v", err)
	}
}
