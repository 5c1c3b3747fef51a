package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeIngredients_DrySums(t *testing.T) {
	out := ComputeIngredients(IngredientsInput{
		TotalDoughG:    560,
		Hydration:      0.75,
		SaltPerKg:      20,
		Yeast:          YeastDry,
		TempC:          25,
		W:              270,
		EffectiveHours: 11,
	})

	assert.InDelta(t, 560.0, out.Total(), 0.2)
	assert.InDelta(t, 0.75*out.FlourG, out.WaterG, 1e-9)
	assert.InDelta(t, 0.02*out.FlourG, out.SaltG, 1e-9)
	assert.Zero(t, out.StarterTotalG)

	yeastPct := EstimateYeastPercentDry(25, 270, 11)
	assert.InDelta(t, yeastPct*out.FlourG, out.YeastG, 1e-9)
}

func TestComputeIngredients_FreshUsesTripleYeast(t *testing.T) {
	in := IngredientsInput{
		TotalDoughG:    1000,
		Hydration:      0.65,
		SaltPerKg:      25,
		Yeast:          YeastFresh,
		TempC:          20,
		W:              300,
		EffectiveHours: 8,
	}
	out := ComputeIngredients(in)

	assert.InDelta(t, 1000.0, out.Total(), 1e-6)
	want := 3 * EstimateYeastPercentDry(20, 300, 8) * out.FlourG
	assert.InDelta(t, want, out.YeastG, 1e-9)

	in.Yeast = YeastDry
	dry := ComputeIngredients(in)
	assert.Greater(t, dry.FlourG, out.FlourG, "more yeast leaves less room for flour")
}

func TestComputeIngredients_SumsAcrossGrid(t *testing.T) {
	for _, total := range []float64{150, 560, 1800} {
		for _, h := range []float64{0.55, 0.7, 0.85} {
			for _, salt := range []float64{0, 20, 30} {
				for _, kind := range []YeastKind{YeastDry, YeastFresh} {
					out := ComputeIngredients(IngredientsInput{
						TotalDoughG:    total,
						Hydration:      h,
						SaltPerKg:      salt,
						Yeast:          kind,
						TempC:          22,
						W:              280,
						EffectiveHours: 10,
					})
					assert.InDelta(t, total, out.Total(), 1e-6)
				}
			}
		}
	}
}
