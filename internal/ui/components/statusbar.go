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
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusSending
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusSending:
		return "Waiting for reply..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status. Shapes stay distinct from
// colors so the bar reads correctly for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusSending:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar showing state, the API origin, and
// keyboard shortcuts.
type StatusBar struct {
	Status        Status
	Origin        string
	Width         int
	ShowShortcuts bool
	MessageCount  int
}

// NewStatusBar creates a StatusBar with default values.
func NewStatusBar(origin string) *StatusBar {
	return &StatusBar{
		Status:        StatusReady,
		Origin:        origin,
		Width:         80,
		ShowShortcuts: true,
	}
}

// SetWidth updates the available width.
func (b *StatusBar) SetWidth(width int) {
	b.Width = width
}

// View renders the status bar.
func (b *StatusBar) View() string {
	width := b.Width
	if width < 40 {
		width = 40
	}

	statusStyle := lipgloss.NewStyle().Foreground(styles.Emerald)
	if b.Status == StatusError {
		statusStyle = statusStyle.Foreground(styles.Rose)
	} else if b.Status == StatusSending {
		statusStyle = statusStyle.Foreground(styles.Amber)
	}
	left := statusStyle.Render(b.Status.Icon() + " " + b.Status.String())

	center := b.Origin
	if b.MessageCount > 0 {
		center = fmt.Sprintf("%s | %d msgs", b.Origin, b.MessageCount)
	}
	origin := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(center)

	var right string
	if b.ShowShortcuts {
		right = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Render("tab: quick questions | /help: commands | ctrl+c: quit")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(origin) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	half := gap / 2

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(styles.SurfaceDim).
		Render(left + strings.Repeat(" ", half) + origin + strings.Repeat(" ", gap-half) + right)
}
