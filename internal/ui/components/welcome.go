// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtualesq/lexterm/internal/ui/styles"
)

// =============================================================================
// WELCOME PANEL
// =============================================================================

// Welcome is the panel shown above an empty transcript. It names the app,
// states the disclaimer, and points at the quick question bar.
type Welcome struct {
	version string
	origin  string
	width   int
}

// NewWelcome creates a welcome panel.
func NewWelcome(version, origin string) Welcome {
	return Welcome{
		version: version,
		origin:  origin,
		width:   80,
	}
}

// SetWidth updates the panel width.
func (w *Welcome) SetWidth(width int) {
	w.width = width
}

// View renders the welcome panel centered in the available width.
func (w Welcome) View() string {
	width := w.width
	if width < 40 {
		width = 40
	}

	boxWidth := 56
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Purple).
		Render("lexterm " + w.version)

	lines := []string{
		title,
		"",
		"Ask anything about Korean law. Answers cover",
		"investment, labor, IP, ESG, and corporate topics.",
		"",
		lipgloss.NewStyle().Foreground(styles.TextMuted).Render(fmt.Sprintf("backend: %s", w.origin)),
		"",
		lipgloss.NewStyle().Foreground(styles.TextSecondary).Render("Type a question, or press tab for quick questions."),
		"",
		lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).
			Render("General information only. Not legal advice."),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(1, 3).
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
}
