// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestRenderHelpersIncludeShapeIndicators(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
		{"info", RenderInfo, StatusIndicators.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("message")
			if !strings.Contains(out, tt.indicator) {
				t.Errorf("output %q missing indicator %q", out, tt.indicator)
			}
			if !strings.Contains(out, "message") {
				t.Errorf("output %q missing the message", out)
			}
		})
	}
}

func TestApplyThemePinsBackground(t *testing.T) {
	initial := IsDark()
	defer func() {
		if initial {
			ApplyTheme("dark")
		} else {
			ApplyTheme("light")
		}
	}()

	ApplyTheme("dark")
	if !IsDark() {
		t.Error("dark theme should pin a dark background")
	}

	ApplyTheme("light")
	if IsDark() {
		t.Error("light theme should pin a light background")
	}

	// auto keeps whatever was detected or previously pinned.
	ApplyTheme("auto")
	if IsDark() {
		t.Error("auto must not override the current variant")
	}
}

func TestStatusIndicatorsAreASCII(t *testing.T) {
	for _, s := range []string{
		StatusIndicators.Success, StatusIndicators.Error, StatusIndicators.Warning,
		StatusIndicators.Info, StatusIndicators.Pending, StatusIndicators.Active,
	} {
		for _, r := range s {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", s, r)
			}
		}
	}
}
