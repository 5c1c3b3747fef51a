package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in the planner screens from tearing down the
// terminal. The failing update is dropped and the form is shown again.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) report(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"screen", int(s.m.scr),
		"profile", s.m.profilePath,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.update", r)
			s.m.scr = screenForm
			s.m.running = false
			s.m.toast = panicToast
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}
