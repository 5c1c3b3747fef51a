package tui

import "github.com/aalvaropc/pizzadough/internal/domain"

type planDoneMsg struct {
	plan domain.Plan
	id   string
	err  error
}

type profilesLoadedMsg struct {
	root string
	refs []domain.ProfileRef
	err  error
}

type profileLoadedMsg struct {
	path   string
	params domain.Params
	err    error
}
