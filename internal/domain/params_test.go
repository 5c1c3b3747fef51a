package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultParamsAreValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestApply_OnlySetFieldsWin(t *testing.T) {
	base := DefaultParams()
	base.W = 300
	base.Hydration = 0.7

	got := base.Apply(ParamOverrides{
		TempC: ptr(21.5),
		Balls: ptr(6),
		Yeast: ptr(YeastFresh),
		Start: ptr(" 18:30 "),
	})

	assert.Equal(t, 300, got.W)
	assert.Equal(t, 0.7, got.Hydration)
	assert.Equal(t, 21.5, got.TempC)
	assert.Equal(t, 6, got.Balls)
	assert.Equal(t, YeastFresh, got.Yeast)
	assert.Equal(t, "18:30", got.Start)

	// Apply returns a copy.
	assert.Equal(t, 25.0, base.TempC)
}

func TestApply_ExplicitDefaultStillOverridesProfile(t *testing.T) {
	profile := DefaultParams()
	profile.Hydration = 0.65
	profile.Yeast = YeastFresh

	// The user explicitly passes the built-in defaults; they must win.
	got := ResolveParams(&profile, ParamOverrides{
		Hydration: ptr(0.75),
		Yeast:     ptr(YeastDry),
	})

	assert.Equal(t, 0.75, got.Hydration)
	assert.Equal(t, YeastDry, got.Yeast)
}

func TestResolveParams_NoProfileUsesDefaults(t *testing.T) {
	got := ResolveParams(nil, ParamOverrides{W: ptr(320)})

	want := DefaultParams()
	want.W = 320
	assert.Equal(t, want, got)
}

func TestParamOverrides_IsZero(t *testing.T) {
	assert.True(t, ParamOverrides{}.IsZero())
	assert.False(t, ParamOverrides{FridgeHours: ptr(0.0)}.IsZero())
}

func TestTotalDoughG(t *testing.T) {
	p := DefaultParams()
	p.Balls = 4
	p.BallWeightG = 250
	assert.Equal(t, 1000.0, p.TotalDoughG())
}

func TestIngredientsInput_UsesEffectiveHours(t *testing.T) {
	p := DefaultParams()
	p.TotalHours = 24
	p.FridgeHours = 16
	p.FridgeFactor = 0.25

	in := p.IngredientsInput()
	assert.InDelta(t, 12.0, in.EffectiveHours, 1e-9)
	assert.Equal(t, p.TotalDoughG(), in.TotalDoughG)
}

func TestValidate_Rules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		want   string
	}{
		{"w low", func(p *Params) { p.W = 150 }, "w must be between"},
		{"w high", func(p *Params) { p.W = 500 }, "w must be between"},
		{"hydration low", func(p *Params) { p.Hydration = 0.5 }, "hydration must be between"},
		{"hydration high", func(p *Params) { p.Hydration = 0.9 }, "hydration must be between"},
		{"total zero", func(p *Params) { p.TotalHours = 0 }, "total-hours must be > 0"},
		{"negative fridge", func(p *Params) { p.FridgeHours = -1 }, "must be >= 0"},
		{"negative warmup", func(p *Params) { p.WarmupHours = -1 }, "must be >= 0"},
		{"fridge too long", func(p *Params) { p.FridgeHours = 9 }, "must be < total-hours"},
		{"balls", func(p *Params) { p.Balls = 0 }, "balls must be >= 1"},
		{"ball weight", func(p *Params) { p.BallWeightG = 0 }, "ball-weight must be > 0"},
		{"salt", func(p *Params) { p.SaltPerKg = -2 }, "salt-per-kg"},
		{"yeast", func(p *Params) { p.Yeast = "sourdough" }, "yeast must be dry or fresh"},
		{"start", func(p *Params) { p.Start = "25:00" }, "start hour out of range"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := DefaultParams()
			c.mutate(&p)

			err := p.Validate()
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidParams))
			assert.True(t, errors.Is(err, ErrInvalidParams))
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestValidate_WarmupWithoutFridgeIsIgnored(t *testing.T) {
	p := DefaultParams()
	p.TotalHours = 2
	p.WarmupHours = 3

	assert.NoError(t, p.Validate())
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	p := DefaultParams()
	p.W = 100
	p.Hydration = 1.2
	p.Balls = 0

	err := p.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"w must be", "hydration must be", "balls must be"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
	assert.Len(t, Problems(err), 3)
}

func TestProblems_NonValidationError(t *testing.T) {
	assert.Nil(t, Problems(nil))
	assert.Nil(t, Problems(errors.New("other")))
}

func TestValidate_FridgeBoundary(t *testing.T) {
	p := DefaultParams()
	p.TotalHours = 24
	p.FridgeHours = 20
	p.WarmupHours = 3.5
	assert.NoError(t, p.Validate())

	p.WarmupHours = 4
	assert.Error(t, p.Validate())
}
