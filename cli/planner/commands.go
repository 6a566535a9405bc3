package planner

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tripgpt/internal/api"
)

type sendDoneMsg struct{ err error }
type loadDoneMsg struct{ err error }
type refreshDoneMsg struct{ err error }
type deleteDoneMsg struct {
	title string
	err   error
}

func (m *Model) sendMessage() tea.Cmd {
	userInput := strings.TrimSpace(m.textarea.Value())
	if userInput == "" {
		return nil
	}

	m.history.Add(userInput)
	m.historyNavigating = false
	m.textarea.Reset()

	m.sending = true
	m.recalculateLayout()
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()

	controller := m.controller
	ctx := m.ctx
	return func() tea.Msg {
		err := controller.SendMessage(ctx, userInput)
		return sendDoneMsg{err: err}
	}
}

func (m *Model) loadTrip(planID int64) tea.Cmd {
	m.loading = true
	controller := m.controller
	ctx := m.ctx
	return func() tea.Msg {
		return loadDoneMsg{err: controller.LoadTrip(ctx, planID)}
	}
}

func (m *Model) refreshPlans() tea.Cmd {
	controller := m.controller
	ctx := m.ctx
	return func() tea.Msg {
		return refreshDoneMsg{err: controller.Refresh(ctx)}
	}
}

// restoreTrip resumes the last active trip, if any.
func (m *Model) restoreTrip() tea.Cmd {
	m.loading = true
	controller := m.controller
	ctx := m.ctx
	return func() tea.Msg {
		return loadDoneMsg{err: controller.Restore(ctx)}
	}
}

func (m *Model) deleteTrip(planID int64, title string) tea.Cmd {
	controller := m.controller
	ctx := m.ctx
	return func() tea.Msg {
		return deleteDoneMsg{title: title, err: controller.DeleteTrip(ctx, planID)}
	}
}

// expiredSession reports whether the cached token was rejected, in which
// case the planner exits so the user can log back in.
func expiredSession(err error) bool {
	return api.IsSessionExpired(err) || api.IsUnauthenticated(err)
}
