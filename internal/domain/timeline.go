package domain

import "math"

// Timeline holds phase durations in hours.
type Timeline struct {
	BulkH   float64 `json:"bulk_h"`
	FridgeH float64 `json:"fridge_h"`
	WarmupH float64 `json:"warmup_h"`
	ProofH  float64 `json:"proof_h"`
}

func (t Timeline) Total() float64 {
	return t.BulkH + t.FridgeH + t.WarmupH + t.ProofH
}

func (t Timeline) HasFridge() bool {
	return t.FridgeH > 0
}

const (
	noFridgeBulkShare = 0.55
	shiftPerDegree    = 0.05
	maxShiftH         = 1.0
	maxShiftShare     = 0.2

	fridgeBulkShare    = 0.35
	fridgeBulkStep     = 0.01
	fridgeBulkShareMin = 0.20
	fridgeBulkShareMax = 0.60
)

// TimelineNoFridge splits totalHours into bulk/proof around 55/45. Warm dough
// moves up to an hour from bulk to proof, cold dough the other way, never more
// than 20% of the phase it is taken from.
func TimelineNoFridge(totalHours, tempC float64) Timeline {
	bulk := totalHours * noFridgeBulkShare
	proof := totalHours - bulk

	switch {
	case tempC > refTempC:
		delta := clamp((tempC-refTempC)*shiftPerDegree, 0, maxShiftH)
		adjust := math.Min(delta, bulk*maxShiftShare)
		bulk -= adjust
		proof += adjust
	case tempC < refTempC:
		delta := clamp((refTempC-tempC)*shiftPerDegree, 0, maxShiftH)
		adjust := math.Min(delta, proof*maxShiftShare)
		bulk += adjust
		proof -= adjust
	}

	return Timeline{BulkH: bulk, ProofH: proof}
}

// TimelineWithFridge reserves fridgeHours and warmupHours and splits what is
// left between bulk and proof with a temperature-adjusted bulk share.
//
// If fridgeHours+warmupHours >= totalHours, bulk and proof collapse to 0 and
// the phases no longer sum to totalHours. Params.Validate rejects that input.
func TimelineWithFridge(totalHours, tempC, fridgeHours, warmupHours float64) Timeline {
	remaining := math.Max(totalHours-fridgeHours-warmupHours, 0)
	ratio := tempAdjustRatio(tempC, fridgeBulkShare, fridgeBulkStep, fridgeBulkShareMin, fridgeBulkShareMax)
	bulk := remaining * ratio

	return Timeline{
		BulkH:   bulk,
		FridgeH: math.Max(fridgeHours, 0),
		WarmupH: math.Max(warmupHours, 0),
		ProofH:  remaining - bulk,
	}
}

// PlanTimeline picks the fridge variant when fridgeHours > 0.
func PlanTimeline(totalHours, tempC, fridgeHours, warmupHours float64) Timeline {
	if fridgeHours > 0 {
		return TimelineWithFridge(totalHours, tempC, fridgeHours, warmupHours)
	}
	return TimelineNoFridge(totalHours, tempC)
}

func tempAdjustRatio(tempC, base, step, lo, hi float64) float64 {
	switch {
	case tempC > refTempC:
		return math.Max(base-(tempC-refTempC)*step, lo)
	case tempC < refTempC:
		return math.Min(base+(refTempC-tempC)*step, hi)
	default:
		return base
	}
}
