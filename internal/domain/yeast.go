package domain

import (
	"fmt"
	"math"
	"strings"
)

// YeastKind selects the leavening agent.
type YeastKind string

const (
	YeastDry   YeastKind = "dry"
	YeastFresh YeastKind = "fresh"
)

// FreshToDryRatio is how much more fresh yeast is needed than dry yeast for
// the same leavening at the same conditions.
const FreshToDryRatio = 3.0

// Calibration point of the yeast model: 0.35% dry yeast at 25°C, W=260, 12h.
const (
	baseYeastPercent = 0.0035
	refTempC         = 25.0
	refW             = 260.0
	refHours         = 12.0

	minYeastPercent = 0.0005 // 0.05%
	maxYeastPercent = 0.015  // 1.5%

	minFridgeFactor = 0.05
	maxFridgeFactor = 0.5
)

// ParseYeastKind accepts "dry" or "fresh", case-insensitively.
func ParseYeastKind(s string) (YeastKind, error) {
	switch YeastKind(strings.ToLower(strings.TrimSpace(s))) {
	case YeastDry:
		return YeastDry, nil
	case YeastFresh:
		return YeastFresh, nil
	default:
		return "", fmt.Errorf("unsupported yeast %q (expected dry|fresh)", s)
	}
}

func (k YeastKind) Valid() bool {
	return k == YeastDry || k == YeastFresh
}

// Label is the human name used in tables.
func (k YeastKind) Label() string {
	if k == YeastFresh {
		return "Fresh yeast"
	}
	return "Dry yeast"
}

// EffectiveHours counts room hours fully and fridge hours at fridgeFactor
// speed. fridgeHours is clamped to [0, totalHours] and fridgeFactor to
// [0.05, 0.5].
func EffectiveHours(totalHours, fridgeHours, fridgeFactor float64) float64 {
	fridge := clamp(fridgeHours, 0, math.Max(totalHours, 0))
	rf := clamp(fridgeFactor, minFridgeFactor, maxFridgeFactor)
	return (totalHours - fridge) + fridge*rf
}

// EstimateYeastPercentDry returns dry yeast as a fraction of flour mass
// (0.0035 = 0.35%). Temperature follows Q10≈2 per 10°C, flour strength has a
// mild effect and time is inversely proportional. The result is clamped to
// [0.05%, 1.5%].
func EstimateYeastPercentDry(tempC float64, w int, effectiveHours float64) float64 {
	fTemp := math.Pow(2, (refTempC-tempC)/10)
	fW := math.Pow(float64(w)/refW, 0.2)
	// Zero hours gives +Inf here, which the clamp turns into the upper bound.
	fTime := refHours / effectiveHours

	return clamp(baseYeastPercent*fTemp*fW*fTime, minYeastPercent, maxYeastPercent)
}

// YeastPercent is the working yeast fraction for kind.
func YeastPercent(kind YeastKind, tempC float64, w int, effectiveHours float64) float64 {
	dry := EstimateYeastPercentDry(tempC, w, effectiveHours)
	if kind == YeastFresh {
		return dry * FreshToDryRatio
	}
	return dry
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
