// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the lexterm TUI:
// the header bar, chat bubbles, the quick question bar, the thinking spinner,
// and the bottom status bar. Components are pure render helpers plus small
// Bubble Tea models; none of them talk to the network.
package components
