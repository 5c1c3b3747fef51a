package domain

import "time"

// Plan is the full result of one calculation.
type Plan struct {
	Name           string      `json:"name,omitempty"`
	ProfilePath    string      `json:"profile_path,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	Params         Params      `json:"params"`
	EffectiveHours float64     `json:"effective_hours"`
	YeastPercent   float64     `json:"yeast_percent"`
	Ingredients    Ingredients `json:"ingredients"`
	Timeline       Timeline    `json:"timeline"`
	Schedule       Schedule    `json:"schedule"`
}

// ComputePlan runs both models over already validated params.
func ComputePlan(p Params, start time.Time) Plan {
	in := p.IngredientsInput()
	tl := PlanTimeline(p.TotalHours, p.TempC, p.FridgeHours, p.WarmupHours)

	return Plan{
		Params:         p,
		EffectiveHours: in.EffectiveHours,
		YeastPercent:   YeastPercent(in.Yeast, in.TempC, in.W, in.EffectiveHours),
		Ingredients:    ComputeIngredients(in),
		Timeline:       tl,
		Schedule:       BuildSchedule(tl, start),
	}
}
