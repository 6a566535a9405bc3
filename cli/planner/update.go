package planner

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"
)

type KeyMap struct {
	CycleFocus           key.Binding
	NewTrip              key.Binding
	CopyItinerary        key.Binding
	PreviousHistoryEntry key.Binding
	NextHistoryEntry     key.Binding
}

var keyMap = KeyMap{
	CycleFocus: key.NewBinding(
		key.WithKeys("tab"),
	),
	NewTrip: key.NewBinding(
		key.WithKeys("ctrl+t"),
	),
	CopyItinerary: key.NewBinding(
		key.WithKeys("alt+w"),
	),
	PreviousHistoryEntry: key.NewBinding(
		key.WithKeys("alt+p"),
	),
	NextHistoryEntry: key.NewBinding(
		key.WithKeys("alt+n"),
	),
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	cmds = append(cmds, alertCmd)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyMap.CycleFocus):
			if m.focusedComponent == FocusTextarea {
				m.focusedComponent = FocusSidebar
				m.textarea.Blur()
			} else {
				m.focusedComponent = FocusTextarea
				m.searching = false
				m.textarea.Focus()
			}
			return m, nil

		case key.Matches(msg, keyMap.NewTrip):
			if !m.sending {
				m.controller.StartNewTrip()
				m.err = nil
				m.renderer.Reset()
				m.viewport.SetContent(m.renderMessages())
				return m, nil
			}

		case key.Matches(msg, keyMap.CopyItinerary):
			if trip := m.controller.Trip(); trip != nil && trip.Content != "" {
				clipboard.Write(clipboard.FmtText, []byte(trip.Content))
				cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Itinerary copied!"))
				return m, tea.Batch(cmds...)
			}

		case key.Matches(msg, keyMap.PreviousHistoryEntry):
			if m.focusedComponent == FocusTextarea && !m.sending {
				if entry, ok := m.history.Previous(m.textarea.Value()); ok {
					m.historyNavigating = true
					m.textarea.SetValue(entry)
				}
				return m, nil
			}

		case key.Matches(msg, keyMap.NextHistoryEntry):
			if m.focusedComponent == FocusTextarea && !m.sending && m.historyNavigating {
				if entry, ok := m.history.Next(); ok {
					m.textarea.SetValue(entry)
				}
				return m, nil
			}
		}

		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyCtrlJ:
			if !m.sending && m.textarea.Value() != "" {
				return m, m.sendMessage()
			}
		}

		if m.focusedComponent == FocusSidebar {
			return m.updateSidebar(msg, cmds)
		}

		if m.historyNavigating {
			switch msg.Type {
			case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
				m.history.Reset()
				m.historyNavigating = false
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()

	case sendDoneMsg:
		m.sending = false
		if msg.err != nil {
			if expiredSession(msg.err) {
				m.err = msg.err
				m.quitting = true
				return m, tea.Quit
			}
			log.Warn("send failed", "error", msg.err)
		}
		m.renderer.Reset()
		m.recalculateLayout()
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
		return m, tea.Batch(cmds...)

	case loadDoneMsg:
		m.loading = false
		if msg.err != nil && !expiredSession(msg.err) {
			m.err = msg.err
		} else if expiredSession(msg.err) {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.renderer.Reset()
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
		return m, tea.Batch(cmds...)

	case refreshDoneMsg:
		if msg.err != nil {
			log.Warn("refreshing plans", "error", msg.err)
		}
		m.clampSidebarIndex()
		return m, tea.Batch(cmds...)

	case deleteDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Batch(cmds...)
		}
		m.clampSidebarIndex()
		m.viewport.SetContent(m.renderMessages())
		cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Deleted "+msg.title))
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.focusedComponent == FocusTextarea && !m.sending {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.adjustTextareaHeight()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focusedComponent == FocusTextarea && !m.sending {
			switch msg.String() {
			case "j", "k", "g", "G", "u", "d", "b", "ctrl+u", "ctrl+d", "f", " ":
				// Don't pass vim navigation keys to viewport while typing
			default:
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				cmds = append(cmds, cmd)
			}
		} else {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateSidebar handles keys while the sidebar is focused.
func (m *Model) updateSidebar(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	// A pending delete only accepts y/n/esc.
	if m.confirmDelete != nil {
		switch msg.String() {
		case "y", "Y":
			plan := m.confirmDelete
			m.confirmDelete = nil
			return m, m.deleteTrip(plan.ID, plan.Title)
		case "n", "N", "esc":
			m.confirmDelete = nil
		}
		return m, tea.Batch(cmds...)
	}

	if m.searching {
		switch msg.Type {
		case tea.KeyRunes:
			m.searchQuery += string(msg.Runes)
			m.clampSidebarIndex()
			return m, nil
		case tea.KeyBackspace:
			if m.searchQuery != "" {
				m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			}
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.searchQuery = ""
			m.clampSidebarIndex()
			return m, nil
		case tea.KeyEnter:
			m.searching = false
			return m, nil
		}
		return m, tea.Batch(cmds...)
	}

	switch msg.String() {
	case "up", "k":
		if m.sidebarIndex > 0 {
			m.sidebarIndex--
		}
	case "down", "j":
		if m.sidebarIndex < len(m.sidebarEntries())-1 {
			m.sidebarIndex++
		}
	case "enter":
		if entry, ok := m.selectedEntry(); ok && !m.sending {
			return m, m.loadTrip(entry.plan.ID)
		}
	case "p":
		if entry, ok := m.selectedEntry(); ok {
			m.controller.TogglePin(entry.plan.ID)
			m.clampSidebarIndex()
		}
	case "d":
		if entry, ok := m.selectedEntry(); ok {
			m.confirmDelete = entry.plan
		}
	case "r":
		return m, m.refreshPlans()
	case "/":
		m.searching = true
		m.searchQuery = ""
	}
	return m, tea.Batch(cmds...)
}
