// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog keeps a local copy of the backend's English-law catalog so
// `lexterm laws` still works while the backend is down or waking up.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrEmpty = errors.New("catalog cache is empty")
)

// =============================================================================
// STORE
// =============================================================================

// Store is the SQLite-backed catalog cache. It holds only the public statute
// catalog; conversation history is never written here.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the cache database path under the config directory.
func DefaultPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.db"), nil
}

// Open opens (and if needed creates) the cache database at path.
func Open(path string) (*Store, error) {
	if err := config.EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog cache: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", p, err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS english_laws (
		topic      TEXT NOT NULL,
		name_kr    TEXT NOT NULL,
		name_en    TEXT NOT NULL,
		url        TEXT NOT NULL,
		fetched_at INTEGER NOT NULL,
		PRIMARY KEY (topic, name_kr)
	);
	CREATE INDEX IF NOT EXISTS idx_english_laws_topic ON english_laws(topic);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// REFRESH AND READ
// =============================================================================

// Replace swaps the cached catalog for the freshly fetched one in a single
// transaction.
func (s *Store) Replace(ctx context.Context, lawsByTopic map[string][]legalapi.EnglishLaw) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM english_laws"); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO english_laws (topic, name_kr, name_en, url, fetched_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for topic, laws := range lawsByTopic {
		for _, law := range laws {
			if _, err := stmt.ExecContext(ctx, topic, law.NameKr, law.NameEn, law.URL, now); err != nil {
				return fmt.Errorf("failed to insert %s/%s: %w", topic, law.NameKr, err)
			}
		}
	}

	return tx.Commit()
}

// Topics returns the cached topic names in sorted order.
func (s *Store) Topics(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT topic FROM english_laws ORDER BY topic")
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, ErrEmpty
	}
	return topics, nil
}

// Laws returns the cached entries for one topic.
func (s *Store) Laws(ctx context.Context, topic string) ([]legalapi.EnglishLaw, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name_kr, name_en, url FROM english_laws WHERE topic = ? ORDER BY name_en", topic)
	if err != nil {
		return nil, fmt.Errorf("failed to query laws: %w", err)
	}
	defer rows.Close()

	var laws []legalapi.EnglishLaw
	for rows.Next() {
		var law legalapi.EnglishLaw
		if err := rows.Scan(&law.NameKr, &law.NameEn, &law.URL); err != nil {
			return nil, err
		}
		laws = append(laws, law)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(laws) == 0 {
		return nil, ErrEmpty
	}
	return laws, nil
}

// All returns the whole cached catalog grouped by topic.
func (s *Store) All(ctx context.Context) (map[string][]legalapi.EnglishLaw, error) {
	topics, err := s.Topics(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]legalapi.EnglishLaw, len(topics))
	for _, topic := range topics {
		laws, err := s.Laws(ctx, topic)
		if err != nil {
			return nil, err
		}
		out[topic] = laws
	}
	return out, nil
}

// FetchedAt returns when the cache was last refreshed.
func (s *Store) FetchedAt(ctx context.Context) (time.Time, error) {
	var unix sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT MAX(fetched_at) FROM english_laws").Scan(&unix)
	if err != nil {
		return time.Time{}, err
	}
	if !unix.Valid {
		return time.Time{}, ErrEmpty
	}
	return time.Unix(unix.Int64, 0), nil
}

// Fresh reports whether the cache was refreshed within ttl.
func (s *Store) Fresh(ctx context.Context, ttl time.Duration) bool {
	fetched, err := s.FetchedAt(ctx)
	if err != nil {
		return false
	}
	return time.Since(fetched) < ttl
}

// SortedTopics is a convenience for deterministic rendering of a fetched
// (not cached) catalog response.
func SortedTopics(lawsByTopic map[string][]legalapi.EnglishLaw) []string {
	topics := make([]string, 0, len(lawsByTopic))
	for t := range lawsByTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}
