package usecase

import (
	"context"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/ports"
)

// ValidateParams resolves parameters the same way PlanDough does and checks
// them without computing anything.
type ValidateParams struct {
	profiles ports.ProfileStore
}

func NewValidateParams(profiles ports.ProfileStore) *ValidateParams {
	return &ValidateParams{profiles: profiles}
}

func (uc *ValidateParams) Execute(ctx context.Context, profilePath string, o domain.ParamOverrides) (domain.Params, error) {
	if err := ctx.Err(); err != nil {
		return domain.Params{}, err
	}

	p, err := resolve(uc.profiles, profilePath, o)
	if err != nil {
		return domain.Params{}, err
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
