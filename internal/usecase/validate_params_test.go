package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

func TestValidateParams_OK(t *testing.T) {
	store := newFakeProfileStore()
	store.profiles["p.yaml"] = domain.DefaultParams()

	p, err := NewValidateParams(store).Execute(context.Background(), "p.yaml", domain.ParamOverrides{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p != domain.DefaultParams() {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestValidateParams_ReportsEveryProblem(t *testing.T) {
	o := domain.ParamOverrides{
		W:     ptr(100),
		Balls: ptr(0),
	}

	p, err := NewValidateParams(newFakeProfileStore()).Execute(context.Background(), "", o)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !domain.IsKind(err, domain.KindInvalidParams) {
		t.Fatalf("expected KindInvalidParams, got %v", err)
	}
	for _, want := range []string{"w must be between", "balls must be >= 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
	if p.W != 100 {
		t.Fatalf("expected resolved params to be returned, got W=%d", p.W)
	}
}

func TestValidateParams_FridgeBudget(t *testing.T) {
	o := domain.ParamOverrides{
		TotalHours:  ptr(10.0),
		FridgeHours: ptr(8.0),
		WarmupHours: ptr(2.0),
	}

	_, err := NewValidateParams(newFakeProfileStore()).Execute(context.Background(), "", o)
	if err == nil || !strings.Contains(err.Error(), "must be < total-hours") {
		t.Fatalf("expected fridge budget error, got %v", err)
	}
}
