// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.API.URL != "http://localhost:8000" {
		t.Errorf("api url = %q", cfg.API.URL)
	}
	if cfg.API.ChatTimeoutMs != 60000 {
		t.Errorf("chat timeout = %d, want 60000", cfg.API.ChatTimeoutMs)
	}
	if cfg.Chat.Country != "general" || cfg.Chat.UserType != "individual" {
		t.Errorf("chat defaults = %+v", cfg.Chat)
	}
}

func TestLoadFromPathFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := []byte("[api]\nurl = \"https://legal-api.example.com\"\n")
	if err := os.WriteFile(path, partial, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.API.URL != "https://legal-api.example.com" {
		t.Errorf("api url = %q", cfg.API.URL)
	}
	if cfg.API.ChatTimeoutMs != 60000 {
		t.Errorf("missing timeout should default, got %d", cfg.API.ChatTimeoutMs)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("missing theme should default, got %q", cfg.UI.Theme)
	}
}

func TestLoadFromPathJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"chat": {"country": "UK", "user_type": "sme"}}`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Chat.Country != "UK" || cfg.Chat.UserType != "sme" {
		t.Errorf("chat = %+v", cfg.Chat)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LEXTERM_API_URL", "https://hosted.example.com")
	t.Setenv("LEXTERM_COUNTRY", "UAE")
	t.Setenv("LEXTERM_TIMEOUT_MS", "90000")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.URL != "https://hosted.example.com" {
		t.Errorf("api url = %q", cfg.API.URL)
	}
	if cfg.Chat.Country != "UAE" {
		t.Errorf("country = %q", cfg.Chat.Country)
	}
	if cfg.API.ChatTimeoutMs != 90000 {
		t.Errorf("timeout = %d", cfg.API.ChatTimeoutMs)
	}
}

func TestApplyEnvOverridesIgnoresBadTimeout(t *testing.T) {
	t.Setenv("LEXTERM_TIMEOUT_MS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.ChatTimeoutMs != 60000 {
		t.Errorf("bad timeout override applied: %d", cfg.API.ChatTimeoutMs)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative api url", func(c *Config) { c.API.URL = "localhost:8000" }},
		{"non-http scheme", func(c *Config) { c.API.URL = "ftp://example.com" }},
		{"tiny chat timeout", func(c *Config) { c.API.ChatTimeoutMs = 100 }},
		{"unknown country", func(c *Config) { c.Chat.Country = "France" }},
		{"unknown user type", func(c *Config) { c.Chat.UserType = "robot" }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }},
		{"unknown export format", func(c *Config) { c.Export.Format = "pdf" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

// TestConfig_ConcurrentAccess checks that Global and SetGlobal are safe under
// concurrent use. Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
