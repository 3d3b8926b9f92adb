// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for lexterm.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.lexterm/config.toml
//   - ~/.lexterm/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/virtualesq/lexterm/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete lexterm configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Backend connection
	API APIConfig `toml:"api" json:"api"`

	// Chat defaults
	Chat ChatConfig `toml:"chat" json:"chat"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Transcript export
	Export ExportConfig `toml:"export" json:"export"`

	// English-law catalog cache
	Catalog CatalogConfig `toml:"catalog" json:"catalog"`
}

// APIConfig contains backend connection configuration.
type APIConfig struct {
	// URL is the backend origin (default: http://localhost:8000)
	URL string `toml:"url" json:"url"`
	// ChatTimeoutMs bounds one chat exchange (default: 60000)
	ChatTimeoutMs int `toml:"chat_timeout_ms" json:"chat_timeout_ms"`
	// ProbeTimeoutMs bounds health and catalog requests (default: 10000)
	ProbeTimeoutMs int `toml:"probe_timeout_ms" json:"probe_timeout_ms"`
}

// ChatConfig contains chat session defaults.
type ChatConfig struct {
	// Country is the default jurisdiction context: USA, UAE, UK, general
	Country string `toml:"country" json:"country"`
	// UserType is the default asker profile: individual, sme, corporate
	UserType string `toml:"user_type" json:"user_type"`
	// WelcomeEnabled seeds a welcome message at session start
	WelcomeEnabled bool `toml:"welcome_enabled" json:"welcome_enabled"`
	// HistoryEnabled persists REPL input history (not the conversation)
	HistoryEnabled bool `toml:"history_enabled" json:"history_enabled"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode uses a more compact UI layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// ShowDisclaimer renders the backend's legal disclaimer under answers
	ShowDisclaimer bool `toml:"show_disclaimer" json:"show_disclaimer"`
}

// ExportConfig contains transcript export configuration.
type ExportConfig struct {
	// Format is the default export format: "md", "json", "txt"
	Format string `toml:"format" json:"format"`
	// Dir is where transcripts are written (empty = current directory)
	Dir string `toml:"dir" json:"dir"`
}

// CatalogConfig contains English-law catalog cache configuration.
type CatalogConfig struct {
	// CacheEnabled keeps a local copy of the catalog for offline browsing
	CacheEnabled bool `toml:"cache_enabled" json:"cache_enabled"`
	// TTLHours is how long a cached catalog is considered fresh
	TTLHours int `toml:"ttl_hours" json:"ttl_hours"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		API: APIConfig{
			URL:            "http://localhost:8000",
			ChatTimeoutMs:  60000,
			ProbeTimeoutMs: 10000,
		},

		Chat: ChatConfig{
			Country:        "general",
			UserType:       "individual",
			WelcomeEnabled: true,
			HistoryEnabled: true,
		},

		UI: UIConfig{
			Theme:          "dark",
			CompactMode:    false,
			ShowDisclaimer: true,
		},

		Export: ExportConfig{
			Format: "md",
			Dir:    "",
		},

		Catalog: CatalogConfig{
			CacheEnabled: true,
			TTLHours:     24,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the lexterm configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lexterm"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions checks and fixes permissions on config files.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}

	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	// A .env in the working directory mirrors how the backend is configured.
	// Missing file is fine.
	_ = godotenv.Load()

	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	cfg, err = finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if filepath.Ext(path) == ".json" {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	if cfg.API.URL == "" {
		cfg.API.URL = defaults.API.URL
	}
	if cfg.API.ChatTimeoutMs == 0 {
		cfg.API.ChatTimeoutMs = defaults.API.ChatTimeoutMs
	}
	if cfg.API.ProbeTimeoutMs == 0 {
		cfg.API.ProbeTimeoutMs = defaults.API.ProbeTimeoutMs
	}

	if cfg.Chat.Country == "" {
		cfg.Chat.Country = defaults.Chat.Country
	}
	if cfg.Chat.UserType == "" {
		cfg.Chat.UserType = defaults.Chat.UserType
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	if cfg.Export.Format == "" {
		cfg.Export.Format = defaults.Export.Format
	}

	if cfg.Catalog.TTLHours == 0 {
		cfg.Catalog.TTLHours = defaults.Catalog.TTLHours
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies LEXTERM_* environment variables over the loaded
// values. The API origin is the main one: deployments point the client at a
// hosted backend without touching the config file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LEXTERM_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("LEXTERM_COUNTRY"); v != "" {
		c.Chat.Country = v
	}
	if v := os.Getenv("LEXTERM_USER_TYPE"); v != "" {
		c.Chat.UserType = v
	}
	if v := os.Getenv("LEXTERM_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.API.ChatTimeoutMs = ms
		}
	}
	if v := os.Getenv("LEXTERM_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "api.url", Message: "must be an absolute http(s) URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "api.url", Message: "scheme must be http or https"}
	}

	if c.API.ChatTimeoutMs < 1000 {
		return ValidationError{Field: "api.chat_timeout_ms", Message: "must be at least 1000"}
	}
	if c.API.ProbeTimeoutMs < 500 {
		return ValidationError{Field: "api.probe_timeout_ms", Message: "must be at least 500"}
	}

	switch c.Chat.Country {
	case "USA", "UAE", "UK", "general":
	default:
		return ValidationError{Field: "chat.country", Message: "must be USA, UAE, UK or general"}
	}

	switch c.Chat.UserType {
	case "individual", "sme", "corporate":
	default:
		return ValidationError{Field: "chat.user_type", Message: "must be individual, sme or corporate"}
	}

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return ValidationError{Field: "ui.theme", Message: "must be dark, light or auto"}
	}

	switch c.Export.Format {
	case "md", "json", "txt":
	default:
		return ValidationError{Field: "export.format", Message: "must be md, json or txt"}
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# lexterm configuration file")
	fmt.Fprintln(file, "# Generated by lexterm - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file atomically with 0600
// permissions.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil || cfg == nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the global config so tests start clean.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}
