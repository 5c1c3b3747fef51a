package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/usecase"
)

const planTimeout = 10 * time.Second

func cmdComputePlan(deps Deps, req usecase.PlanRequest) tea.Cmd {
	return func() tea.Msg {
		if deps.Planner == nil {
			return planDoneMsg{err: errors.New("planner is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), planTimeout)
		defer cancel()

		plan, id, err := deps.Planner.Execute(ctx, req)
		if err != nil {
			deps.Logger.Warn("tui.plan.failed", "err", err, "profile", req.ProfilePath)
		} else if deps.Debug {
			deps.Logger.Debug("tui.plan.ok", "saved_id", id, "yeast_pct", plan.YeastPercent)
		}
		return planDoneMsg{plan: plan, id: id, err: err}
	}
}

func cmdLoadProfiles(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Profiles == nil {
			return profilesLoadedMsg{root: deps.Root, err: errors.New("profile store is nil")}
		}
		refs, err := deps.Profiles.ListProfiles(deps.Root)
		return profilesLoadedMsg{root: deps.Root, refs: refs, err: err}
	}
}

func cmdLoadProfile(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Profiles == nil {
			return profileLoadedMsg{path: path, err: errors.New("profile store is nil")}
		}
		p, err := deps.Profiles.LoadProfile(path)
		if err != nil {
			return profileLoadedMsg{path: path, err: err}
		}
		return profileLoadedMsg{path: path, params: p}
	}
}

// formRequest turns the form into a plan request over the active profile.
func formRequest(profilePath string, o domain.ParamOverrides, save bool) usecase.PlanRequest {
	return usecase.PlanRequest{
		ProfilePath: profilePath,
		Overrides:   o,
		SavePlan:    save,
	}
}
