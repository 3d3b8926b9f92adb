// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversational view for the lexterm TUI.
//
// The view is a Bubble Tea model wrapping a session.Session. One question is
// in flight at a time; completions carry the exchange sequence number they
// belong to, and the session drops any completion from a superseded exchange.
// Layout: header, transcript viewport, quick question bar, input, status bar.
package chat
