package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineNoFridge_BaselineSplit(t *testing.T) {
	tl := TimelineNoFridge(11, 25)

	assert.InDelta(t, 6.05, tl.BulkH, 1e-9)
	assert.InDelta(t, 4.95, tl.ProofH, 1e-9)
	assert.Zero(t, tl.FridgeH)
	assert.Zero(t, tl.WarmupH)
	assert.False(t, tl.HasFridge())
}

func TestTimelineNoFridge_HotShiftsBulkToProof(t *testing.T) {
	tl := TimelineNoFridge(10, 35)

	// (35-25)*0.05 = 0.5h, below both caps.
	assert.InDelta(t, 5.0, tl.BulkH, 1e-9)
	assert.InDelta(t, 5.0, tl.ProofH, 1e-9)
}

func TestTimelineNoFridge_ShiftCappedAtOneHour(t *testing.T) {
	tl := TimelineNoFridge(20, 60)

	assert.InDelta(t, 10.0, tl.BulkH, 1e-9)
	assert.InDelta(t, 10.0, tl.ProofH, 1e-9)
}

func TestTimelineNoFridge_ColdShiftCappedByProofShare(t *testing.T) {
	tl := TimelineNoFridge(10, 5)

	// delta = 1.0h, proof = 4.5h, 20% of proof = 0.9h.
	assert.InDelta(t, 6.4, tl.BulkH, 1e-9)
	assert.InDelta(t, 3.6, tl.ProofH, 1e-9)
}

func TestTimelineNoFridge_HotShiftCappedByBulkShare(t *testing.T) {
	tl := TimelineNoFridge(2, 45)

	// bulk = 1.1h, 20% = 0.22h < 1.0h.
	assert.InDelta(t, 0.88, tl.BulkH, 1e-9)
	assert.InDelta(t, 1.12, tl.ProofH, 1e-9)
}

func TestTimelineNoFridge_AlwaysPartitionsTotal(t *testing.T) {
	for _, total := range []float64{0.5, 4, 11, 24, 72} {
		for temp := -5.0; temp <= 45; temp += 2.5 {
			tl := TimelineNoFridge(total, temp)
			assert.InDelta(t, total, tl.BulkH+tl.ProofH, 1e-9)
			assert.Zero(t, tl.FridgeH)
			assert.Zero(t, tl.WarmupH)
			assert.GreaterOrEqual(t, tl.BulkH, 0.0)
			assert.GreaterOrEqual(t, tl.ProofH, 0.0)
		}
	}
}

func TestTimelineWithFridge_Scenario(t *testing.T) {
	tl := TimelineWithFridge(12, 25, 4, 3)

	assert.InDelta(t, 12.0, tl.Total(), 1e-9)
	assert.Equal(t, 4.0, tl.FridgeH)
	assert.Equal(t, 3.0, tl.WarmupH)
	assert.InDelta(t, 1.75, tl.BulkH, 1e-9)
	assert.InDelta(t, 3.25, tl.ProofH, 1e-9)
	assert.True(t, tl.HasFridge())
}

func TestTimelineWithFridge_TemperatureAdjustsBulkShare(t *testing.T) {
	hot := TimelineWithFridge(12, 30, 4, 3)
	assert.InDelta(t, 5*0.30, hot.BulkH, 1e-9)

	cold := TimelineWithFridge(12, 20, 4, 3)
	assert.InDelta(t, 5*0.40, cold.BulkH, 1e-9)

	veryHot := TimelineWithFridge(12, 45, 4, 3)
	assert.InDelta(t, 5*0.20, veryHot.BulkH, 1e-9)

	veryCold := TimelineWithFridge(12, -10, 4, 3)
	assert.InDelta(t, 5*0.60, veryCold.BulkH, 1e-9)
}

func TestTimelineWithFridge_PartitionsTotal(t *testing.T) {
	for _, total := range []float64{6, 12, 24, 48} {
		for _, fridge := range []float64{0.5, 2, 4} {
			for _, warmup := range []float64{0, 1, 1.5} {
				if fridge+warmup >= total {
					continue
				}
				for temp := 0.0; temp <= 40; temp += 5 {
					tl := TimelineWithFridge(total, temp, fridge, warmup)
					assert.InDelta(t, total, tl.Total(), 1e-9)
				}
			}
		}
	}
}

func TestTimelineWithFridge_DegenerateCollapses(t *testing.T) {
	tl := TimelineWithFridge(5, 25, 4, 3)

	assert.Zero(t, tl.BulkH)
	assert.Zero(t, tl.ProofH)
	assert.Equal(t, 4.0, tl.FridgeH)
	assert.Equal(t, 3.0, tl.WarmupH)
	assert.InDelta(t, 7.0, tl.Total(), 1e-9)
}

func TestTimelineWithFridge_NegativeInputsFloored(t *testing.T) {
	tl := TimelineWithFridge(10, 25, -1, -2)

	assert.Zero(t, tl.FridgeH)
	assert.Zero(t, tl.WarmupH)
}

func TestPlanTimeline_SelectsVariant(t *testing.T) {
	assert.Equal(t, TimelineNoFridge(11, 25), PlanTimeline(11, 25, 0, 3))
	assert.Equal(t, TimelineWithFridge(24, 22, 16, 3), PlanTimeline(24, 22, 16, 3))
}
