// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration command handler for the lexterm CLI.
//
// Handles "lexterm config [show|set|path]":
//   lexterm config                 Show current configuration
//   lexterm config show            Same
//   lexterm config set KEY VALUE   Set a value and save
//   lexterm config path            Print the config file location
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/virtualesq/lexterm/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) {
	switch args.Subcommand {
	case "", "show":
		showConfig()
	case "set":
		setConfig(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			fmt.Fprintln(os.Stderr, styled(errorStyle, err.Error()))
			os.Exit(1)
		}
		fmt.Println(path)
	default:
		fmt.Fprintln(os.Stderr, styled(errorStyle, "Unknown config subcommand: "+args.Subcommand))
		fmt.Fprintln(os.Stderr, "Usage: lexterm config [show|set KEY VALUE|path]")
		os.Exit(1)
	}
}

func showConfig() {
	cfg := config.Global()

	fmt.Println(styled(headingStyle, "API"))
	fmt.Printf("  api.url               %s\n", cfg.API.URL)
	fmt.Printf("  api.chat_timeout_ms   %d\n", cfg.API.ChatTimeoutMs)
	fmt.Printf("  api.probe_timeout_ms  %d\n", cfg.API.ProbeTimeoutMs)

	fmt.Println(styled(headingStyle, "Chat"))
	fmt.Printf("  chat.country          %s\n", cfg.Chat.Country)
	fmt.Printf("  chat.user_type        %s\n", cfg.Chat.UserType)
	fmt.Printf("  chat.welcome_enabled  %t\n", cfg.Chat.WelcomeEnabled)
	fmt.Printf("  chat.history_enabled  %t\n", cfg.Chat.HistoryEnabled)

	fmt.Println(styled(headingStyle, "UI"))
	fmt.Printf("  ui.theme              %s\n", cfg.UI.Theme)
	fmt.Printf("  ui.show_disclaimer    %t\n", cfg.UI.ShowDisclaimer)

	fmt.Println(styled(headingStyle, "Export"))
	fmt.Printf("  export.format         %s\n", cfg.Export.Format)
	fmt.Printf("  export.dir            %s\n", cfg.Export.Dir)

	fmt.Println(styled(headingStyle, "Catalog"))
	fmt.Printf("  catalog.cache_enabled %t\n", cfg.Catalog.CacheEnabled)
	fmt.Printf("  catalog.ttl_hours     %d\n", cfg.Catalog.TTLHours)
}

// setConfig applies one key=value change, validates, and saves.
func setConfig(key, value string) {
	if key == "" || value == "" {
		fmt.Fprintln(os.Stderr, styled(errorStyle, "Usage: lexterm config set KEY VALUE"))
		os.Exit(1)
	}

	cfg := config.Global()

	if err := applyConfigKey(cfg, key, value); err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, err.Error()))
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, "Invalid value: "+err.Error()))
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, "Could not save config: "+err.Error()))
		os.Exit(1)
	}

	config.SetGlobal(cfg)
	fmt.Println(styled(commandStyle, key + " = " + value))
}

func applyConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "api.url":
		cfg.API.URL = value
	case "api.chat_timeout_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", key)
		}
		cfg.API.ChatTimeoutMs = n
	case "api.probe_timeout_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", key)
		}
		cfg.API.ProbeTimeoutMs = n
	case "chat.country":
		cfg.Chat.Country = value
	case "chat.user_type":
		cfg.Chat.UserType = value
	case "chat.welcome_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		cfg.Chat.WelcomeEnabled = b
	case "chat.history_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		cfg.Chat.HistoryEnabled = b
	case "ui.theme":
		cfg.UI.Theme = value
	case "export.format":
		cfg.Export.Format = value
	case "export.dir":
		cfg.Export.Dir = value
	case "catalog.cache_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		cfg.Catalog.CacheEnabled = b
	case "catalog.ttl_hours":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", key)
		}
		cfg.Catalog.TTLHours = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
