// Package planner implements the interactive trip-planning TUI.
package planner

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"tripgpt/cli/planner/styles"
	"tripgpt/internal/api"
	"tripgpt/internal/debug"
	"tripgpt/internal/history"
	"tripgpt/internal/markdown"
	"tripgpt/internal/session"
)

const (
	FocusTextarea FocusedComponent = iota
	FocusSidebar
)

var log *slog.Logger

type FocusedComponent int

// sidebarEntry is one selectable row of the sidebar.
type sidebarEntry struct {
	plan   *api.TravelPlan
	pinned bool
}

// Model is the Bubble Tea model for the planner.
type Model struct {
	// Core dependencies
	ctx        context.Context
	controller *session.Controller

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	// UI state
	width            int
	height           int
	ready            bool
	sending          bool
	loading          bool
	err              error
	quitting         bool
	focusedComponent FocusedComponent

	// Sidebar state
	sidebarIndex  int
	searching     bool
	searchQuery   string
	confirmDelete *api.TravelPlan

	// Alert notifications.
	alert bubbleup.AlertModel

	// Input history
	history           *history.History
	historyNavigating bool
}

// New creates a new planner model.
func New(ctx context.Context, controller *session.Controller) (*Model, error) {
	log = debug.GetLogger()

	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Describe your trip... (Ctrl+J to send, Tab for sidebar, Ctrl+T for new trip, Ctrl+C to quit)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(styles.DefaultTextareaWidth)
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	// Create spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	alert := bubbleup.NewAlertModel(25, true, 1)

	renderer, err := markdown.NewRenderer(styles.DefaultTextareaWidth)
	if err != nil {
		return nil, err
	}

	m := &Model{
		ctx:              ctx,
		controller:       controller,
		textarea:         ta,
		spinner:          sp,
		renderer:         renderer,
		history:          history.New(),
		alert:            *alert,
		focusedComponent: FocusTextarea,
	}
	return m, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.refreshPlans(),
		m.restoreTrip(),
	)
}

// sidebarEntries derives the selectable rows: pinned plans first, then the
// remaining recents, both filtered by the current search query.
func (m *Model) sidebarEntries() []sidebarEntry {
	recent := m.controller.Recent()
	pins := m.controller.Pins()

	var entries []sidebarEntry
	for _, plan := range filteredPinned(recent, pins, m.searchQuery) {
		entries = append(entries, sidebarEntry{plan: plan, pinned: true})
	}
	for _, plan := range filteredRecent(recent, pins, m.searchQuery) {
		entries = append(entries, sidebarEntry{plan: plan})
	}
	return entries
}

// selectedEntry returns the sidebar row under the cursor.
func (m *Model) selectedEntry() (sidebarEntry, bool) {
	entries := m.sidebarEntries()
	if m.sidebarIndex < 0 || m.sidebarIndex >= len(entries) {
		return sidebarEntry{}, false
	}
	return entries[m.sidebarIndex], true
}

// clampSidebarIndex keeps the cursor within the entry list as it changes.
func (m *Model) clampSidebarIndex() {
	entries := m.sidebarEntries()
	if m.sidebarIndex >= len(entries) {
		m.sidebarIndex = len(entries) - 1
	}
	if m.sidebarIndex < 0 {
		m.sidebarIndex = 0
	}
}
