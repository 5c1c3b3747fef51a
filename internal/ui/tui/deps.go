package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
	"github.com/aalvaropc/pizzadough/internal/usecase"
)

// Planner computes a plan; usecase.PlanDough satisfies it.
type Planner interface {
	Execute(ctx context.Context, req usecase.PlanRequest) (domain.Plan, string, error)
}

type Deps struct {
	Planner  Planner
	Profiles ports.ProfileStore

	// Root is where profiles are listed from.
	Root string
	// Defaults prefill the form; ProfilePath is the profile they came from.
	Defaults    domain.Params
	ProfilePath string
	SavePlans   bool

	Logger *slog.Logger
	Debug  bool
}
