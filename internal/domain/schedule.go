package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PhaseKind names a step of the dough workflow.
type PhaseKind string

const (
	PhaseBulk   PhaseKind = "bulk"
	PhaseFridge PhaseKind = "fridge"
	PhaseWarmup PhaseKind = "warmup"
	PhaseProof  PhaseKind = "proof"
)

func (k PhaseKind) Label() string {
	switch k {
	case PhaseBulk:
		return "Bulk rise (whole dough)"
	case PhaseFridge:
		return "Fridge (covered)"
	case PhaseWarmup:
		return "Warmup (bench rest)"
	case PhaseProof:
		return "Final proof (balls)"
	default:
		return string(k)
	}
}

// Phase is one timeline step projected onto the wall clock.
type Phase struct {
	Kind  PhaseKind `json:"kind"`
	Hours float64   `json:"hours"`
	Ends  time.Time `json:"ends"`
}

// Schedule is a timeline anchored at a start time.
type Schedule struct {
	Start  time.Time `json:"start"`
	Phases []Phase   `json:"phases"`
}

// End is when the last phase finishes, or Start for an empty schedule.
func (s Schedule) End() time.Time {
	if len(s.Phases) == 0 {
		return s.Start
	}
	return s.Phases[len(s.Phases)-1].Ends
}

// BuildSchedule lays the phases of tl end to end from start. Durations are
// rounded to whole minutes; fridge and warmup only appear when non-zero.
func BuildSchedule(tl Timeline, start time.Time) Schedule {
	s := Schedule{Start: start, Phases: make([]Phase, 0, 4)}
	cur := start

	add := func(kind PhaseKind, hours float64) {
		cur = cur.Add(time.Duration(math.Round(hours*60)) * time.Minute)
		s.Phases = append(s.Phases, Phase{Kind: kind, Hours: hours, Ends: cur})
	}

	add(PhaseBulk, tl.BulkH)
	if tl.FridgeH > 0 {
		add(PhaseFridge, tl.FridgeH)
	}
	if tl.WarmupH > 0 {
		add(PhaseWarmup, tl.WarmupH)
	}
	add(PhaseProof, tl.ProofH)

	return s
}

// ParseClock parses a 24h "HH:MM" time of day.
func ParseClock(hhmm string) (int, int, error) {
	in := strings.TrimSpace(hhmm)
	hs, ms, ok := strings.Cut(in, ":")
	if !ok || len(ms) != 2 || hs == "" || len(hs) > 2 {
		return 0, 0, fmt.Errorf("start must be HH:MM (got %q)", hhmm)
	}

	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("start hour out of range (got %q)", hhmm)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("start minute out of range (got %q)", hhmm)
	}
	return h, m, nil
}

// StartTime returns now when hhmm is empty, otherwise today's date (in now's
// location) at hhmm.
func StartTime(now time.Time, hhmm string) (time.Time, error) {
	if strings.TrimSpace(hhmm) == "" {
		return now, nil
	}
	h, m, err := ParseClock(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := now.Date()
	return time.Date(y, mo, d, h, m, 0, 0, now.Location()), nil
}
