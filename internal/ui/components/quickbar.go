// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtualesq/lexterm/internal/session"
	"github.com/virtualesq/lexterm/internal/ui/styles"
)

// =============================================================================
// QUICK QUESTION BAR - One-keystroke preset questions
// =============================================================================

// QuickBar renders the row of preset legal questions shown above the input.
// Left/right moves the highlight; Pick returns the highlighted preset's key.
type QuickBar struct {
	questions []session.QuickQuestion
	cursor    int
	Width     int
	Focused   bool
}

// NewQuickBar creates a QuickBar over the preset question catalog.
func NewQuickBar() *QuickBar {
	return &QuickBar{
		questions: session.QuickQuestions(),
		Width:     80,
	}
}

// SetWidth updates the available width.
func (q *QuickBar) SetWidth(width int) {
	q.Width = width
}

// Next moves the highlight right, wrapping at the end.
func (q *QuickBar) Next() {
	if len(q.questions) == 0 {
		return
	}
	q.cursor = (q.cursor + 1) % len(q.questions)
}

// Prev moves the highlight left, wrapping at the start.
func (q *QuickBar) Prev() {
	if len(q.questions) == 0 {
		return
	}
	q.cursor = (q.cursor - 1 + len(q.questions)) % len(q.questions)
}

// Pick returns the key of the highlighted preset.
func (q *QuickBar) Pick() string {
	if len(q.questions) == 0 {
		return ""
	}
	return q.questions[q.cursor].Key
}

// View renders the quick question chips.
func (q *QuickBar) View() string {
	if len(q.questions) == 0 {
		return ""
	}

	chip := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(styles.TextSecondary).
		Background(styles.SurfaceDim)

	active := chip.
		Foreground(styles.TextPrimary).
		Background(styles.Overlay).
		Bold(true)

	chips := make([]string, 0, len(q.questions))
	for i, question := range q.questions {
		style := chip
		if q.Focused && i == q.cursor {
			style = active
		}
		chips = append(chips, style.Render(question.Label))
	}

	row := strings.Join(chips, " ")
	label := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Quick: ")
	return lipgloss.NewStyle().MaxWidth(q.Width).Render(label + row)
}
