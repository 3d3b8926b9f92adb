// lexterm - A terminal client for Korean legal information.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtualesq/lexterm/internal/cli"
	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/ui/chat"
	"github.com/virtualesq/lexterm/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.Default()
	}
	config.SetGlobal(cfg)
	styles.ApplyTheme(cfg.UI.Theme)

	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdLaws:
		cli.HandleLaws(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(1)
	}
}

// runTUI starts the full-screen chat interface.
func runTUI(args cli.Args) {
	cfg := config.Global()

	// CLI flags override the config profile for this run.
	if args.Country != "" {
		if strings.EqualFold(args.Country, "general") {
			cfg.Chat.Country = "general"
		} else {
			cfg.Chat.Country = strings.ToUpper(args.Country)
		}
	}
	if args.UserType != "" {
		cfg.Chat.UserType = strings.ToLower(args.UserType)
	}
	if args.APIURL != "" {
		cfg.API.URL = args.APIURL
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	clientCfg := legalapi.DefaultConfig()
	clientCfg.BaseURL = cfg.API.URL
	clientCfg.ChatTimeout = time.Duration(cfg.API.ChatTimeoutMs) * time.Millisecond
	clientCfg.ProbeTimeout = time.Duration(cfg.API.ProbeTimeoutMs) * time.Millisecond
	client := legalapi.NewClientWithConfig(clientCfg)

	// Reload the global config live when the file changes on disk.
	if watcher, err := config.NewWatcher(nil); err == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	m := chat.New(cfg, client, Version)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
