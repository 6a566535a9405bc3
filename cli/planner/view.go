package planner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripgpt/cli/planner/styles"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	sidebar := m.renderSidebar()
	transcript := styles.ViewportStyle.Render(m.viewport.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, transcript))
	b.WriteString("\n")

	if m.sending {
		b.WriteString(fmt.Sprintf("%s Planning...\n", m.spinner.View()))
	} else if m.loading {
		b.WriteString(fmt.Sprintf("%s Loading trip...\n", m.spinner.View()))
	} else {
		b.WriteString(styles.TextAreaStyle.Render(m.textarea.View()))
		b.WriteString("\n")
	}

	if m.confirmDelete != nil {
		b.WriteString(styles.ConfirmStyle.Render(
			fmt.Sprintf("Delete %q? Press Y to confirm, N to cancel", m.confirmDelete.Title)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	return m.alert.Render(b.String())
}

func (m *Model) renderTitle() string {
	title := " ✈️  New Trip "
	if trip := m.controller.Trip(); trip != nil {
		title = fmt.Sprintf(" ✈️  %s │ 📍 %s │ %d days ", trip.Title, trip.Destination, trip.DurationDays)
	}
	return styles.TitleStyle.Width(m.width).Render(title)
}

func (m *Model) renderMessages() string {
	var b strings.Builder

	turns := m.controller.Conversation()
	if len(turns) == 0 {
		return styles.HelpStyle.Render("Describe your trip to get started.")
	}

	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if turn.IsUser {
			b.WriteString(styles.UserMessageStyle.Render(turn.Message))
			continue
		}
		rendered := m.renderer.Render(i, turn.Message)
		b.WriteString(styles.AssistantMessageStyle.Render(rendered))
	}
	return b.String()
}

func (m *Model) renderSidebar() string {
	var b strings.Builder

	if m.searching || m.searchQuery != "" {
		b.WriteString(styles.SidebarSearchStyle.Render("🔍 " + m.searchQuery))
		b.WriteString("\n")
	}

	entries := m.sidebarEntries()
	if len(entries) == 0 {
		b.WriteString(styles.SidebarItemStyle.Render("No plans yet"))
	}

	inPinned := false
	for i, entry := range entries {
		if entry.pinned && !inPinned {
			b.WriteString(styles.SidebarHeadingStyle.Render("Pinned"))
			b.WriteString("\n")
			inPinned = true
		}
		if !entry.pinned && (i == 0 || inPinned) {
			if inPinned {
				b.WriteString("\n")
			}
			b.WriteString(styles.SidebarHeadingStyle.Render("Recent"))
			b.WriteString("\n")
			inPinned = false
		}

		label := styles.Truncate(entry.plan.Title, styles.TruncateLength)
		style := styles.SidebarItemStyle
		if i == m.sidebarIndex && m.focusedComponent == FocusSidebar {
			style = styles.SidebarSelectedStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}

	if m.focusedComponent == FocusSidebar {
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("enter load · p pin · d delete · / search · r refresh"))
		return styles.SidebarFocusedStyle.Height(m.viewport.Height).Render(b.String())
	}
	return styles.SidebarStyle.Height(m.viewport.Height).Render(b.String())
}
