package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Params is the effective parameter set of a dough plan. It is also the
// profile document persisted by ports.ProfileStore, so field tags keep the
// flat key names used by existing profile files.
type Params struct {
	W            int       `json:"w" yaml:"w"`
	TempC        float64   `json:"temp" yaml:"temp"`
	Yeast        YeastKind `json:"yeast" yaml:"yeast"`
	Hydration    float64   `json:"hydration" yaml:"hydration"`
	SaltPerKg    float64   `json:"salt_per_kg" yaml:"salt_per_kg"`
	BallWeightG  float64   `json:"ball_weight" yaml:"ball_weight"`
	Balls        int       `json:"balls" yaml:"balls"`
	TotalHours   float64   `json:"total_hours" yaml:"total_hours"`
	FridgeHours  float64   `json:"fridge_hours" yaml:"fridge_hours"`
	WarmupHours  float64   `json:"warmup_hours" yaml:"warmup_hours"`
	FridgeFactor float64   `json:"fridge_factor" yaml:"fridge_factor"`
	// Start is a wall-clock "HH:MM"; empty means now.
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
}

// Accepted parameter ranges.
const (
	MinW         = 200
	MaxW         = 450
	MinHydration = 0.55
	MaxHydration = 0.85
)

// DefaultParams mirrors the CLI defaults. W sits at the yeast model's
// calibration point.
func DefaultParams() Params {
	return Params{
		W:            260,
		TempC:        25,
		Yeast:        YeastDry,
		Hydration:    0.75,
		SaltPerKg:    20,
		BallWeightG:  280,
		Balls:        2,
		TotalHours:   11,
		FridgeHours:  0,
		WarmupHours:  3,
		FridgeFactor: 0.25,
	}
}

// ParamOverrides carries values the user set explicitly. A nil field means
// "not provided", which is different from "provided the default value".
type ParamOverrides struct {
	W            *int
	TempC        *float64
	Yeast        *YeastKind
	Hydration    *float64
	SaltPerKg    *float64
	BallWeightG  *float64
	Balls        *int
	TotalHours   *float64
	FridgeHours  *float64
	WarmupHours  *float64
	FridgeFactor *float64
	Start        *string
}

// IsZero reports whether no override is set.
func (o ParamOverrides) IsZero() bool {
	return o == ParamOverrides{}
}

// Apply returns a copy of p with every set override written over it.
func (p Params) Apply(o ParamOverrides) Params {
	out := p
	setInt(&out.W, o.W)
	setFloat(&out.TempC, o.TempC)
	if o.Yeast != nil {
		out.Yeast = *o.Yeast
	}
	setFloat(&out.Hydration, o.Hydration)
	setFloat(&out.SaltPerKg, o.SaltPerKg)
	setFloat(&out.BallWeightG, o.BallWeightG)
	setInt(&out.Balls, o.Balls)
	setFloat(&out.TotalHours, o.TotalHours)
	setFloat(&out.FridgeHours, o.FridgeHours)
	setFloat(&out.WarmupHours, o.WarmupHours)
	setFloat(&out.FridgeFactor, o.FridgeFactor)
	if o.Start != nil {
		out.Start = strings.TrimSpace(*o.Start)
	}
	return out
}

// ResolveParams layers defaults < profile < overrides.
func ResolveParams(profile *Params, o ParamOverrides) Params {
	base := DefaultParams()
	if profile != nil {
		base = *profile
	}
	return base.Apply(o)
}

// TotalDoughG is the dough mass of all balls together.
func (p Params) TotalDoughG() float64 {
	return float64(p.Balls) * p.BallWeightG
}

// UsesFridge reports whether the plan includes a cold retard.
func (p Params) UsesFridge() bool {
	return p.FridgeHours > 0
}

// IngredientsInput maps params onto the ingredient model input.
func (p Params) IngredientsInput() IngredientsInput {
	return IngredientsInput{
		TotalDoughG:    p.TotalDoughG(),
		Hydration:      p.Hydration,
		SaltPerKg:      p.SaltPerKg,
		Yeast:          p.Yeast,
		TempC:          p.TempC,
		W:              p.W,
		EffectiveHours: EffectiveHours(p.TotalHours, p.FridgeHours, p.FridgeFactor),
	}
}

// Validate checks every rule and reports all violations at once.
func (p Params) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if p.W < MinW || p.W > MaxW {
		add("w must be between %d and %d (got %d)", MinW, MaxW, p.W)
	}
	if !finite(p.TempC) {
		add("temp must be a finite number")
	}
	if !p.Yeast.Valid() {
		add("yeast must be dry or fresh (got %q)", p.Yeast)
	}
	if !(p.Hydration >= MinHydration && p.Hydration <= MaxHydration) {
		add("hydration must be between %.2f and %.2f (got %g)", MinHydration, MaxHydration, p.Hydration)
	}
	if !(p.SaltPerKg >= 0) || !finite(p.SaltPerKg) {
		add("salt-per-kg must be >= 0 (got %g)", p.SaltPerKg)
	}
	if p.Balls < 1 {
		add("balls must be >= 1 (got %d)", p.Balls)
	}
	if !(p.BallWeightG > 0) || !finite(p.BallWeightG) {
		add("ball-weight must be > 0 (got %g)", p.BallWeightG)
	}
	if !(p.TotalHours > 0) || !finite(p.TotalHours) {
		add("total-hours must be > 0 (got %g)", p.TotalHours)
	}
	if !(p.FridgeHours >= 0) || !(p.WarmupHours >= 0) {
		add("fridge-hours and warmup-hours must be >= 0")
	} else if p.FridgeHours > 0 && p.FridgeHours+p.WarmupHours >= p.TotalHours {
		add("sum of fridge-hours and warmup-hours must be < total-hours")
	}
	if !finite(p.FridgeFactor) {
		add("fridge-factor must be a finite number")
	}
	if p.Start != "" {
		if _, _, err := ParseClock(p.Start); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &OpError{
		Op:   "params.validate",
		Kind: KindInvalidParams,
		Err:  &ValidationError{Problems: problems},
	}
}

// ValidationError lists every rule a parameter set breaks.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidParams.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParams }

// Problems returns the individual validation messages carried by err, or nil.
func Problems(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Problems
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
