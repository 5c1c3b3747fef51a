package domain

// IngredientsInput is everything the ingredient model needs.
// Ranges are not enforced here; see Params.Validate.
type IngredientsInput struct {
	// TotalDoughG is the sum of all balls, in grams.
	TotalDoughG float64
	// Hydration is water as a fraction of flour (0.75 = 75%).
	Hydration float64
	// SaltPerKg is grams of salt per kg of flour.
	SaltPerKg float64
	Yeast     YeastKind
	TempC     float64
	// W is the flour strength index.
	W int
	// EffectiveHours counts fridge time slower than room time.
	EffectiveHours float64
}

// Ingredients are masses in grams.
type Ingredients struct {
	FlourG float64 `json:"flour_g"`
	WaterG float64 `json:"water_g"`
	SaltG  float64 `json:"salt_g"`
	YeastG float64 `json:"yeast_g"`
	// StarterTotalG is reserved for a sourdough variant and is always 0.
	StarterTotalG float64 `json:"starter_total_g"`
}

func (i Ingredients) Total() float64 {
	return i.FlourG + i.WaterG + i.SaltG + i.YeastG
}

// ComputeIngredients back-solves flour from the total dough mass:
// dough = flour * (1 + hydration + salt + yeast).
func ComputeIngredients(in IngredientsInput) Ingredients {
	saltPct := in.SaltPerKg / 1000
	yeastPct := YeastPercent(in.Yeast, in.TempC, in.W, in.EffectiveHours)

	flour := in.TotalDoughG / (1 + in.Hydration + saltPct + yeastPct)

	return Ingredients{
		FlourG:        flour,
		WaterG:        flour * in.Hydration,
		SaltG:         flour * saltPct,
		YeastG:        flour * yeastPct,
		StarterTotalG: 0,
	}
}
