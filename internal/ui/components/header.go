// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with jurisdiction context
// =============================================================================

// Header is the title bar showing the app name, the active jurisdiction
// profile, and backend connectivity.
type Header struct {
	Title     string
	Country   legalapi.Country
	UserType  legalapi.UserType
	Width     int
	Connected bool
	Checked   bool // false until the first health probe completes
}

// NewHeader creates a Header with default values.
func NewHeader() *Header {
	return &Header{
		Title:    "lexterm",
		Country:  legalapi.CountryGeneral,
		UserType: legalapi.UserTypeIndividual,
		Width:    80,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetProfile updates the jurisdiction profile shown on the right.
func (h *Header) SetProfile(country legalapi.Country, userType legalapi.UserType) {
	h.Country = country
	h.UserType = userType
}

// SetConnected records the result of a health probe.
func (h *Header) SetConnected(connected bool) {
	h.Connected = connected
	h.Checked = true
}

// connectionBadge renders the backend connectivity indicator.
func (h *Header) connectionBadge() string {
	if !h.Checked {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Render(styles.StatusIndicators.Pending + " probing")
	}
	if h.Connected {
		return lipgloss.NewStyle().Foreground(styles.Emerald).Render(styles.StatusIndicators.Success + " online")
	}
	return lipgloss.NewStyle().Foreground(styles.Rose).Render(styles.StatusIndicators.Error + " offline")
}

// View renders the header bar.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Purple).
		Render(h.Title)

	subtitle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render("Korean legal assistant")

	left := title + " " + subtitle

	profile := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Render(fmt.Sprintf("%s / %s", strings.ToUpper(string(h.Country)), h.UserType))

	right := profile + "  " + h.connectionBadge()

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	bar := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(styles.SurfaceDim).
		Render(left + strings.Repeat(" ", gap) + right)

	rule := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(strings.Repeat("─", width))

	return bar + "\n" + rule
}
