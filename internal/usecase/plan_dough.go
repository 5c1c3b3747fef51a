package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

// PlanRequest describes one calculation. Overrides win over the profile, which
// wins over domain.DefaultParams.
type PlanRequest struct {
	Name            string
	ProfilePath     string
	Overrides       domain.ParamOverrides
	SaveProfilePath string
	SavePlan        bool
}

type PlanDough struct {
	profiles ports.ProfileStore
	plans    ports.PlanStore
	log      *slog.Logger
	now      func() time.Time
}

type PlanOption func(*PlanDough)

// WithPlanStore enables PlanRequest.SavePlan.
func WithPlanStore(s ports.PlanStore) PlanOption {
	return func(uc *PlanDough) { uc.plans = s }
}

func WithLogger(l *slog.Logger) PlanOption {
	return func(uc *PlanDough) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) PlanOption {
	return func(uc *PlanDough) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewPlanDough(profiles ports.ProfileStore, opts ...PlanOption) *PlanDough {
	uc := &PlanDough{
		profiles: profiles,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the computed plan and, when it was persisted, the id of the
// saved artifact. Nothing is returned on a validation failure.
func (uc *PlanDough) Execute(ctx context.Context, req PlanRequest) (domain.Plan, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Plan{}, "", err
	}

	params, err := resolve(uc.profiles, req.ProfilePath, req.Overrides)
	if err != nil {
		return domain.Plan{}, "", err
	}

	if req.SaveProfilePath != "" {
		if err := uc.profiles.SaveProfile(req.SaveProfilePath, params); err != nil {
			return domain.Plan{}, "", err
		}
		uc.log.Info("profile.saved", "path", req.SaveProfilePath)
	}

	if err := params.Validate(); err != nil {
		uc.log.Debug("plan.invalid", "err", err)
		return domain.Plan{}, "", err
	}

	if err := ctx.Err(); err != nil {
		return domain.Plan{}, "", err
	}

	now := uc.now()
	start, err := domain.StartTime(now, params.Start)
	if err != nil {
		return domain.Plan{}, "", &domain.OpError{Op: "usecase.plan", Kind: domain.KindInvalidParams, Err: err}
	}

	plan := domain.ComputePlan(params, start)
	plan.Name = req.Name
	plan.ProfilePath = req.ProfilePath
	plan.CreatedAt = now

	uc.log.Info("plan.computed",
		"yeast", string(params.Yeast),
		"yeast_pct", plan.YeastPercent,
		"total_dough_g", params.TotalDoughG(),
		"fridge", params.UsesFridge(),
	)

	if !req.SavePlan {
		return plan, "", nil
	}
	if uc.plans == nil {
		uc.log.Warn("plan.save_skipped", "reason", "no plan store")
		return plan, "", nil
	}

	id, err := uc.plans.SavePlan(plan)
	if err != nil {
		return domain.Plan{}, "", err
	}
	uc.log.Info("plan.saved", "id", id)
	return plan, id, nil
}

func resolve(profiles ports.ProfileStore, profilePath string, o domain.ParamOverrides) (domain.Params, error) {
	if profilePath == "" {
		return domain.ResolveParams(nil, o), nil
	}
	if profiles == nil {
		return domain.Params{}, &domain.OpError{
			Op:   "usecase.resolve",
			Kind: domain.KindInvalidConfig,
			Path: profilePath,
			Err:  domain.ErrInvalidConfig,
		}
	}
	p, err := profiles.LoadProfile(profilePath)
	if err != nil {
		return domain.Params{}, err
	}
	return domain.ResolveParams(&p, o), nil
}
