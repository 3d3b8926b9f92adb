// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// laws.go - English-law listing command handler for the lexterm CLI.
//
// Handles "lexterm laws [topic]". Listings come from the local sqlite cache
// when it is fresh; otherwise the full catalog is fetched from the backend
// and the cache is replaced. --refresh forces a fetch.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/virtualesq/lexterm/internal/catalog"
	"github.com/virtualesq/lexterm/internal/config"
	"github.com/virtualesq/lexterm/internal/legalapi"
	"github.com/virtualesq/lexterm/internal/session"
)

// HandleLaws lists english-law translations, optionally filtered by topic.
func HandleLaws(args Args) {
	cfg := config.Global()
	client, _, _ := buildClient(args)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lawsByTopic, fromCache, err := loadCatalog(ctx, cfg, client, args.Refresh)
	if err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, session.Diagnose(err, client.BaseURL())))
		os.Exit(1)
	}

	if args.Topic != "" {
		filtered := map[string][]legalapi.EnglishLaw{}
		if laws, ok := lawsByTopic[args.Topic]; ok {
			filtered[args.Topic] = laws
		}
		lawsByTopic = filtered
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(lawsByTopic)
		return
	}

	if len(lawsByTopic) == 0 {
		fmt.Println(styled(infoStyle, "No english-law listings found."))
		return
	}

	for _, topic := range catalog.SortedTopics(lawsByTopic) {
		fmt.Println(styled(headingStyle, topic))
		for _, law := range lawsByTopic[topic] {
			name := law.NameEn
			if name == "" {
				name = law.NameKr
			}
			fmt.Println("  " + name)
			fmt.Println("    " + styled(mutedStyle, law.URL))
		}
		fmt.Println()
	}

	if !args.Quiet {
		source := "backend"
		if fromCache {
			source = "local cache"
		}
		fmt.Println(styled(mutedStyle, "Source: "+source))
	}
}

// loadCatalog reads the sqlite cache when fresh, falling back to the
// backend. A successful fetch replaces the cache.
func loadCatalog(ctx context.Context, cfg *config.Config, client *legalapi.Client, refresh bool) (map[string][]legalapi.EnglishLaw, bool, error) {
	var store *catalog.Store
	if cfg.Catalog.CacheEnabled {
		if path, err := catalog.DefaultPath(); err == nil {
			if s, err := catalog.Open(path); err == nil {
				store = s
				defer store.Close()
			}
		}
	}

	ttl := time.Duration(cfg.Catalog.TTLHours) * time.Hour
	if store != nil && !refresh && store.Fresh(ctx, ttl) {
		if lawsByTopic, err := store.All(ctx); err == nil {
			return lawsByTopic, true, nil
		}
	}

	resp, err := client.EnglishLawCatalog(ctx)
	if err != nil {
		// Stale cache beats no data when the backend is down.
		if store != nil {
			if lawsByTopic, cacheErr := store.All(ctx); cacheErr == nil {
				return lawsByTopic, true, nil
			}
		}
		return nil, false, err
	}

	if store != nil {
		if err := store.Replace(ctx, resp.LawsByTopic); err != nil && !quietCacheErrors {
			fmt.Fprintln(os.Stderr, styled(warningStyle, "Could not update law cache: "+err.Error()))
		}
	}
	return resp.LawsByTopic, false, nil
}

// quietCacheErrors suppresses cache write warnings, set by tests.
var quietCacheErrors = false
