package ports

import "github.com/aalvaropc/pizzadough/internal/domain"

// PlanStore persists computed plans so a bake can be looked up later.
type PlanStore interface {
	SavePlan(plan domain.Plan) (id string, err error)
}
