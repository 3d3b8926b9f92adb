// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
)

func defaultTestConfig() *config.Config {
	return config.Default()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgs(nil)
	if cmd != CmdTUI {
		t.Errorf("parseArgs(nil) = %d, want CmdTUI", cmd)
	}
}

func TestParseSubcommands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"tui"}, CmdTUI},
		{[]string{"ask", "hello"}, CmdAsk},
		{[]string{"chat"}, CmdChat},
		{[]string{"laws"}, CmdLaws},
		{[]string{"status"}, CmdStatus},
		{[]string{"s"}, CmdStatus},
		{[]string{"config"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"v"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"--help"}, CmdHelp},
	}
	for _, tt := range tests {
		cmd, _ := parseArgs(tt.argv)
		if cmd != tt.want {
			t.Errorf("parseArgs(%v) = %d, want %d", tt.argv, cmd, tt.want)
		}
	}
}

func TestParseAskCollectsQuery(t *testing.T) {
	cmd, args := parseArgs([]string{"ask", "What", "is", "the", "minimum", "wage?"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %d, want CmdAsk", cmd)
	}
	if args.Query != "What is the minimum wage?" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseBareQueryBecomesAsk(t *testing.T) {
	cmd, args := parseArgs([]string{"Do I need a visa?"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %d, want CmdAsk", cmd)
	}
	if args.Query == "" {
		t.Error("bare query should be kept as the ask query")
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgs([]string{"--country", "UAE", "--usertype", "sme", "--json", "ask", "question"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %d, want CmdAsk", cmd)
	}
	if args.Country != "UAE" {
		t.Errorf("country = %q, want UAE", args.Country)
	}
	if args.UserType != "sme" {
		t.Errorf("usertype = %q, want sme", args.UserType)
	}
	if !args.JSON {
		t.Error("JSON flag not parsed")
	}
}

func TestParseAPIURLFlag(t *testing.T) {
	_, args := parseArgs([]string{"--api-url", "http://10.0.0.5:8000", "status"})
	if args.APIURL != "http://10.0.0.5:8000" {
		t.Errorf("api url = %q", args.APIURL)
	}
}

func TestParseLawsTopicAndRefresh(t *testing.T) {
	cmd, args := parseArgs([]string{"laws", "--refresh", "labor"})
	if cmd != CmdLaws {
		t.Fatalf("cmd = %d, want CmdLaws", cmd)
	}
	if !args.Refresh {
		t.Error("refresh flag not parsed")
	}
	if args.Topic != "labor" {
		t.Errorf("topic = %q, want labor", args.Topic)
	}
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgs([]string{"config", "set", "api.url", "http://localhost:9000"})
	if cmd != CmdConfig {
		t.Fatalf("cmd = %d, want CmdConfig", cmd)
	}
	if args.Subcommand != "set" || args.ConfigKey != "api.url" || args.ConfigVal != "http://localhost:9000" {
		t.Errorf("config args = %+v", args)
	}
}

func TestParseConfigDefaultsToShow(t *testing.T) {
	_, args := parseArgs([]string{"config"})
	if args.Subcommand != "show" {
		t.Errorf("subcommand = %q, want show", args.Subcommand)
	}
}

func TestNormalizeCountryCLI(t *testing.T) {
	tests := []struct {
		in   string
		want legalapi.Country
	}{
		{"usa", legalapi.CountryUSA},
		{"UK", legalapi.CountryUK},
		{"GENERAL", legalapi.CountryGeneral},
	}
	for _, tt := range tests {
		if got := normalizeCountry(tt.in); got != tt.want {
			t.Errorf("normalizeCountry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyConfigKeyRejectsUnknown(t *testing.T) {
	cfg := defaultTestConfig()
	if err := applyConfigKey(cfg, "nope.nothing", "1"); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestApplyConfigKeyParsesTypes(t *testing.T) {
	cfg := defaultTestConfig()

	if err := applyConfigKey(cfg, "api.chat_timeout_ms", "90000"); err != nil {
		t.Fatalf("set timeout: %v", err)
	}
	if cfg.API.ChatTimeoutMs != 90000 {
		t.Errorf("timeout = %d", cfg.API.ChatTimeoutMs)
	}

	if err := applyConfigKey(cfg, "chat.welcome_enabled", "false"); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	if cfg.Chat.WelcomeEnabled {
		t.Error("welcome_enabled should be false")
	}

	if err := applyConfigKey(cfg, "api.chat_timeout_ms", "soon"); err == nil {
		t.Error("non-integer timeout should be rejected")
	}
}
