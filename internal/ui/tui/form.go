package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

type field int

const (
	fieldW field = iota
	fieldTemp
	fieldYeast
	fieldHydration
	fieldSaltPerKg
	fieldBallWeight
	fieldBalls
	fieldTotalHours
	fieldFridgeHours
	fieldWarmupHours
	fieldFridgeFactor
	fieldStart
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"W (flour strength)",
	"Room temp (°C)",
	"Yeast",
	"Hydration",
	"Salt (g/kg)",
	"Ball weight (g)",
	"Balls",
	"Total hours",
	"Fridge hours",
	"Warmup hours",
	"Fridge factor",
	"Start (HH:MM)",
}

func (f field) label() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldLabels[f]
}

// formValues is p as text, one entry per field.
func formValues(p domain.Params) [fieldCount]string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return [fieldCount]string{
		fieldW:            strconv.Itoa(p.W),
		fieldTemp:         num(p.TempC),
		fieldYeast:        string(p.Yeast),
		fieldHydration:    num(p.Hydration),
		fieldSaltPerKg:    num(p.SaltPerKg),
		fieldBallWeight:   num(p.BallWeightG),
		fieldBalls:        strconv.Itoa(p.Balls),
		fieldTotalHours:   num(p.TotalHours),
		fieldFridgeHours:  num(p.FridgeHours),
		fieldWarmupHours:  num(p.WarmupHours),
		fieldFridgeFactor: num(p.FridgeFactor),
		fieldStart:        p.Start,
	}
}

// parseForm reads every non-empty field as an override. Empty fields fall
// back to the active profile. Text that is not a number is reported per field.
func parseForm(values [fieldCount]string) (domain.ParamOverrides, []string) {
	var o domain.ParamOverrides
	var problems []string

	intField := func(f field) *int {
		s := strings.TrimSpace(values[f])
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %q is not a whole number", f.label(), s))
			return nil
		}
		return &v
	}
	floatField := func(f field) *float64 {
		s := strings.TrimSpace(values[f])
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %q is not a number", f.label(), s))
			return nil
		}
		return &v
	}

	o.W = intField(fieldW)
	o.TempC = floatField(fieldTemp)
	if s := strings.TrimSpace(values[fieldYeast]); s != "" {
		k, err := domain.ParseYeastKind(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", fieldYeast.label(), err))
		} else {
			o.Yeast = &k
		}
	}
	o.Hydration = floatField(fieldHydration)
	o.SaltPerKg = floatField(fieldSaltPerKg)
	o.BallWeightG = floatField(fieldBallWeight)
	o.Balls = intField(fieldBalls)
	o.TotalHours = floatField(fieldTotalHours)
	o.FridgeHours = floatField(fieldFridgeHours)
	o.WarmupHours = floatField(fieldWarmupHours)
	o.FridgeFactor = floatField(fieldFridgeFactor)

	// An empty start means "now" and must override a profile start time.
	start := strings.TrimSpace(values[fieldStart])
	o.Start = &start

	return o, problems
}

func toggleYeast(s string) string {
	if k, err := domain.ParseYeastKind(s); err == nil && k == domain.YeastFresh {
		return string(domain.YeastDry)
	}
	return string(domain.YeastFresh)
}
