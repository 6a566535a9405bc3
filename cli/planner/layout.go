package planner

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"tripgpt/cli/planner/styles"
)

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	content := m.textarea.Value()
	lineCount := strings.Count(content, "\n") + 1

	newHeight := lineCount
	if newHeight < styles.MinTextareaHeight {
		newHeight = styles.MinTextareaHeight
	}
	if newHeight > styles.MaxTextareaHeight {
		newHeight = styles.MaxTextareaHeight
	}

	oldHeight := m.textarea.Height()
	if oldHeight != newHeight {
		m.textarea.SetHeight(newHeight)

		heightDiff := newHeight - oldHeight

		m.recalculateLayout()

		if heightDiff != 0 && m.ready {
			m.viewport.LineDown(heightDiff)
		}
	}
}

// recalculateLayout adjusts viewport and textarea dimensions based on current state.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	viewportHeight := m.height - styles.HeaderHeight
	if !m.sending {
		viewportHeight -= m.textarea.Height() + styles.TextAreaStyle.GetVerticalFrameSize()
	}
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	viewportWidth := m.width - styles.SidebarWidth - styles.SidebarStyle.GetHorizontalFrameSize()
	if viewportWidth < 1 {
		viewportWidth = 1
	}
	rendererWidth := viewportWidth - styles.MessageHorizontalFrameSize()
	m.renderer.SetWidth(rendererWidth)

	textareaWidth := m.width - styles.TextAreaStyle.GetHorizontalFrameSize()
	m.textarea.SetWidth(textareaWidth)

	if !m.ready {
		m.viewport = viewport.New(viewportWidth, viewportHeight)
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
		m.ready = true
	} else {
		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
		m.viewport.SetContent(m.renderMessages())
	}
}
