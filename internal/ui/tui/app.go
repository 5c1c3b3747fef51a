package tui

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/pizzadough/internal/app/render"
	"github.com/aalvaropc/pizzadough/internal/domain"
)

type screen int

const (
	screenForm screen = iota
	screenProfiles
)

type profileItem struct {
	ref  domain.ProfileRef
	root string
}

func (p profileItem) Title() string       { return p.ref.Name }
func (p profileItem) Description() string { return relPath(p.root, p.ref.Path) }
func (p profileItem) FilterValue() string { return p.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	inputs   []textinput.Model
	focus    field
	profiles list.Model
	result   viewport.Model

	profilePath string
	savePlan    bool
	running     bool

	plan     *domain.Plan
	planID   string
	problems []string
	toast    string

	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Defaults == (domain.Params{}) {
		deps.Defaults = domain.DefaultParams()
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 12
		inputs[i] = ti
	}
	inputs[fieldStart].Placeholder = "now"
	inputs[fieldYeast].Placeholder = "space to toggle"

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Profiles"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:       DefaultTheme(),
		deps:        deps,
		scr:         screenForm,
		inputs:      inputs,
		profiles:    l,
		result:      viewport.New(0, 0),
		profilePath: deps.ProfilePath,
		savePlan:    deps.SavePlans,
	}
	m.fill(deps.Defaults)
	m.setFocus(fieldW)
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m *model) fill(p domain.Params) {
	values := formValues(p)
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
	}
}

func (m model) values() [fieldCount]string {
	var out [fieldCount]string
	for i := range m.inputs {
		out[i] = m.inputs[i].Value()
	}
	return out
}

func (m *model) setFocus(f field) tea.Cmd {
	if f < 0 {
		f = fieldCount - 1
	}
	if f >= fieldCount {
		f = 0
	}
	m.focus = f

	var cmd tea.Cmd
	for i := range m.inputs {
		if field(i) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m *model) resize() {
	m.profiles.SetSize(max(m.width-8, 20), max(m.height-10, 5))
	m.result.Width = max(m.resultWidth(), 20)
	m.result.Height = max(m.height-12, 5)
	if m.plan != nil {
		m.result.SetContent(m.renderPlan())
	}
}

func (m model) resultWidth() int {
	if m.width == 0 {
		return 0
	}
	// the form card takes roughly 44 columns
	return m.width - 52
}

func (m model) renderPlan() string {
	if m.plan == nil {
		return ""
	}
	r := render.New(render.WithWidth(max(m.resultWidth(), 0)))
	return strings.TrimLeft(r.Pretty(*m.plan), "\n")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case planDoneMsg:
		m.running = false
		if msg.err != nil {
			m.plan = nil
			m.planID = ""
			m.problems = domain.Problems(msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		plan := msg.plan
		m.plan = &plan
		m.planID = msg.id
		m.problems = nil
		m.toast = "Plan computed"
		if msg.id != "" {
			m.toast = "Plan saved: " + msg.id
		}
		m.result.SetContent(m.renderPlan())
		m.result.GotoTop()
		return m, nil

	case profilesLoadedMsg:
		if msg.err != nil && !domain.IsKind(msg.err, domain.KindNotFound) {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		if len(msg.refs) == 0 {
			m.toast = "No profiles found (run pizzadough init)"
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, profileItem{ref: r, root: msg.root})
		}
		cmd := m.profiles.SetItems(items)
		m.scr = screenProfiles
		return m, cmd

	case profileLoadedMsg:
		m.scr = screenForm
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.fill(msg.params)
		m.profilePath = msg.path
		m.plan = nil
		m.problems = nil
		m.toast = "Loaded profile " + profileLabel(msg.path)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenProfiles {
			return m.updateProfiles(msg)
		}
		return m.updateForm(msg)
	}

	if m.scr == screenProfiles {
		var cmd tea.Cmd
		m.profiles, cmd = m.profiles.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) updateProfiles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.profiles.FilterState() == list.Filtering {
			break
		}
		m.scr = screenForm
		return m, nil
	case "enter":
		if m.profiles.FilterState() == list.Filtering {
			break
		}
		it, ok := m.profiles.SelectedItem().(profileItem)
		if !ok {
			return m, nil
		}
		return m, cmdLoadProfile(m.deps, it.ref.Path)
	}

	var cmd tea.Cmd
	m.profiles, cmd = m.profiles.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.plan != nil || m.toast != "" || len(m.problems) > 0 {
			m.plan = nil
			m.planID = ""
			m.problems = nil
			m.toast = ""
			return m, nil
		}
		return m, tea.Quit

	case "tab", "down":
		return m, m.setFocus(m.focus + 1)

	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)

	case "enter":
		if m.running {
			return m, nil
		}
		overrides, problems := parseForm(m.values())
		if len(problems) > 0 {
			m.problems = problems
			m.toast = "Invalid parameters"
			return m, nil
		}
		m.running = true
		m.toast = "Computing…"
		return m, cmdComputePlan(m.deps, formRequest(m.profilePath, overrides, m.savePlan))

	case "ctrl+s":
		m.savePlan = !m.savePlan
		if m.savePlan {
			m.toast = "Plans will be saved"
		} else {
			m.toast = "Plans will not be saved"
		}
		return m, nil

	case "ctrl+r":
		m.fill(m.deps.Defaults)
		m.profilePath = m.deps.ProfilePath
		m.plan = nil
		m.problems = nil
		m.toast = "Form reset"
		return m, nil

	case "ctrl+p":
		return m, cmdLoadProfiles(m.deps)

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}

	if m.focus == fieldYeast {
		if s := msg.String(); s == " " || s == "space" {
			m.inputs[fieldYeast].SetValue(toggleYeast(m.inputs[fieldYeast].Value()))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	profile := "defaults"
	if m.profilePath != "" {
		profile = profileLabel(m.profilePath)
	}
	save := "off"
	if m.savePlan {
		save = "on"
	}
	header := m.theme.Title.Render("pizzadough") + "\n" +
		m.theme.Subtitle.Render("Pizza dough planner: ingredients and fermentation timeline") + "\n" +
		m.theme.Help.Render(fmt.Sprintf("Profile: %s • Save plans: %s", profile, save)) + "\n"

	if m.scr == screenProfiles {
		help := m.theme.Help.Render("↑/↓ navigate • enter load • / search • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.profiles.View()) + "\n" + help)
	}

	form := m.theme.Card.Render(m.formView())

	body := form
	if m.plan != nil {
		res := m.theme.Card.Render(m.result.View())
		if m.width == 0 || m.resultWidth() >= 40 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, form, " ", res)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, form, res)
		}
	}

	var status strings.Builder
	if m.toast != "" {
		status.WriteString(m.theme.Toast.Render(clampString(m.toast, m.statusWidth())))
		status.WriteString("\n")
	}
	for _, p := range m.problems {
		status.WriteString(m.theme.Error.Render(clampString("  • "+p, m.statusWidth())))
		status.WriteString("\n")
	}

	help := m.theme.Help.Render("tab/shift+tab move • space toggle yeast • enter compute • ctrl+s save plans • ctrl+p profiles • ctrl+r reset • pgup/pgdown scroll • esc clear/quit")
	return wrap.Render(header + "\n" + body + "\n" + status.String() + help)
}

func (m model) formView() string {
	var b strings.Builder
	for i := range m.inputs {
		f := field(i)
		label := m.theme.Label.Render(f.label())
		if f == m.focus {
			label = m.theme.Focused.Render(f.label())
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		if i < len(m.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func profileLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
