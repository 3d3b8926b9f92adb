// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// THEME SELECTION
// =============================================================================

// ApplyTheme pins the light/dark variant every AdaptiveColor resolves to.
// "auto" keeps Lip Gloss's terminal background detection.
func ApplyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

// IsDark reports the active background variant after theme selection.
func IsDark() bool {
	return lipgloss.HasDarkBackground()
}
