// Package render turns computed plans into terminal or machine output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// ParseFormat accepts pretty|json; empty means pretty.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", s)
	}
}

type Renderer struct {
	width   int
	heading lipgloss.Style
	header  lipgloss.Style
	faint   lipgloss.Style
	border  lipgloss.Style
}

type Option func(*Renderer)

// WithWidth caps table width. 0 disables the cap.
func WithWidth(w int) Option {
	return func(r *Renderer) {
		if w >= 0 {
			r.width = w
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:   TerminalWidth(),
		heading: lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		faint:   lipgloss.NewStyle().Faint(true),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TerminalWidth reports the width of stdout, or 0 when it is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 0
}

// Write renders plan to w. id is the saved plan id, if any.
func (r *Renderer) Write(w io.Writer, plan domain.Plan, id string, f Format) error {
	switch f {
	case FormatJSON:
		b, err := MarshalPlan(plan)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatPretty, "":
		out := r.Pretty(plan)
		if id != "" {
			out += fmt.Sprintf("\nPlan saved: %s\n", id)
		}
		_, err := io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", f)
	}
}

// MarshalPlan is the stable JSON document of a plan, newline terminated.
func MarshalPlan(plan domain.Plan) ([]byte, error) {
	b, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Pretty is the human report: ingredients table, timeline and notes.
func (r *Renderer) Pretty(plan domain.Plan) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.heading.Render("=== Ingredients summary ==="))
	b.WriteString("\n")
	b.WriteString(r.IngredientsTable(plan))
	b.WriteString("\n\n")

	b.WriteString(r.heading.Render("=== Timeline ==="))
	b.WriteString("\n")
	b.WriteString(r.Timeline(plan))

	b.WriteString("\nNotes:\n")
	for _, n := range Notes(plan.Params) {
		b.WriteString("• ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	return b.String()
}

// Timeline lists each phase with its duration and, when the plan is anchored
// to a start time, the wall-clock time it ends.
func (r *Renderer) Timeline(plan domain.Plan) string {
	tl := plan.Timeline
	var b strings.Builder

	line := func(label string, hours float64, kind domain.PhaseKind) {
		b.WriteString(fmt.Sprintf("- %-25s %.1f h", label+":", hours))
		if end, ok := phaseEnd(plan.Schedule, kind); ok {
			b.WriteString(" → ~end at ")
			b.WriteString(FormatClock(end))
		}
		b.WriteString("\n")
	}

	line(domain.PhaseBulk.Label(), tl.BulkH, domain.PhaseBulk)
	if tl.HasFridge() {
		line(domain.PhaseFridge.Label(), tl.FridgeH, domain.PhaseFridge)
		line(domain.PhaseWarmup.Label(), tl.WarmupH, domain.PhaseWarmup)
	}
	line(domain.PhaseProof.Label(), tl.ProofH, domain.PhaseProof)
	b.WriteString(fmt.Sprintf("- %-25s %.1f h\n", "Total:", tl.Total()))

	return b.String()
}

// Notes are the caveats printed under every plan.
func Notes(p domain.Params) []string {
	notes := []string{
		"Yeast amounts are heuristic (Q10≈2/10°C; mild W effect). Fridge counted at configurable factor.",
		"If dough rises too fast in warm conditions (>27°C), shorten bulk or reduce yeast slightly.",
	}
	if p.TempC > 27 {
		notes = append(notes, fmt.Sprintf("Room is at %.1f°C: watch the bulk rise closely.", p.TempC))
	}
	return notes
}

// FormatGrams rounds to 0.1 g and drops the decimal when it is zero.
func FormatGrams(x float64) string {
	v := math.Round(x*10) / 10
	if math.Abs(v-math.Round(v)) < 1e-9 {
		return fmt.Sprintf("%.0f g", v)
	}
	return fmt.Sprintf("%.1f g", v)
}

func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

func phaseEnd(s domain.Schedule, kind domain.PhaseKind) (time.Time, bool) {
	if s.Start.IsZero() {
		return time.Time{}, false
	}
	for _, ph := range s.Phases {
		if ph.Kind == kind {
			return ph.Ends, true
		}
	}
	return time.Time{}, false
}
