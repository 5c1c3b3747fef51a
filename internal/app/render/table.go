package render

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

// IngredientsTable renders the ingredient masses of plan.
func (r *Renderer) IngredientsTable(plan domain.Plan) string {
	p := plan.Params
	ing := plan.Ingredients

	yeastNote := "~% of flour (estimate)"
	if p.Yeast == domain.YeastFresh {
		yeastNote = fmt.Sprintf("~%g× dry yeast", domain.FreshToDryRatio)
	}

	rows := [][]string{
		{"Balls", fmt.Sprintf("%d × %.0f g", p.Balls, p.BallWeightG), ""},
		{"Flour", FormatGrams(ing.FlourG), fmt.Sprintf("W=%d | H=%.0f%%", p.W, p.Hydration*100)},
		{"Water", FormatGrams(ing.WaterG), ""},
		{"Salt", FormatGrams(ing.SaltG), fmt.Sprintf("%.1f g/kg", p.SaltPerKg)},
		{p.Yeast.Label(), FormatGrams(ing.YeastG), yeastNote},
	}

	return r.table([]string{"Ingredient", "Amount", "Notes"}, rows)
}

// ParamsTable renders a parameter set as key/value rows, in profile key order.
func (r *Renderer) ParamsTable(p domain.Params) string {
	start := p.Start
	if start == "" {
		start = "now"
	}

	rows := [][]string{
		{"w", fmt.Sprintf("%d", p.W)},
		{"temp", fmt.Sprintf("%g °C", p.TempC)},
		{"yeast", string(p.Yeast)},
		{"hydration", fmt.Sprintf("%g", p.Hydration)},
		{"salt_per_kg", fmt.Sprintf("%g", p.SaltPerKg)},
		{"ball_weight", fmt.Sprintf("%g g", p.BallWeightG)},
		{"balls", fmt.Sprintf("%d", p.Balls)},
		{"total_hours", fmt.Sprintf("%g h", p.TotalHours)},
		{"fridge_hours", fmt.Sprintf("%g h", p.FridgeHours)},
		{"warmup_hours", fmt.Sprintf("%g h", p.WarmupHours)},
		{"fridge_factor", fmt.Sprintf("%g", p.FridgeFactor)},
		{"start", start},
	}
	return r.table([]string{"Key", "Value"}, rows)
}

// ProfilesTable lists profile refs sorted by name.
func (r *Renderer) ProfilesTable(refs []domain.ProfileRef, root string) string {
	sorted := append([]domain.ProfileRef(nil), refs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	rows := make([][]string, 0, len(sorted))
	for _, ref := range sorted {
		rows = append(rows, []string{ref.Name, relTo(root, ref.Path)})
	}
	return r.table([]string{"Profile", "Path"}, rows)
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...)

	out := t.String()
	if r.width > 0 && lipgloss.Width(out) > r.width {
		out = t.Width(r.width).String()
	}
	return out
}

func relTo(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
