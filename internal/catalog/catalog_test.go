// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualesq/lexterm/internal/legalapi"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleCatalog() map[string][]legalapi.EnglishLaw {
	return map[string][]legalapi.EnglishLaw{
		"labor": {
			{NameKr: "근로기준법", NameEn: "Labor Standards Act", URL: "https://www.law.go.kr/영문법령/근로기준법"},
			{NameKr: "최저임금법", NameEn: "Minimum Wage Act", URL: "https://www.law.go.kr/영문법령/최저임금법"},
		},
		"visa": {
			{NameKr: "출입국관리법", NameEn: "Immigration Control Act", URL: "https://www.law.go.kr/영문법령/출입국관리법"},
		},
	}
}

func TestReplaceAndRead(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, sampleCatalog()))

	topics, err := store.Topics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"labor", "visa"}, topics)

	laws, err := store.Laws(ctx, "labor")
	require.NoError(t, err)
	require.Len(t, laws, 2)
	assert.Equal(t, "Labor Standards Act", laws[0].NameEn)
	assert.Equal(t, "근로기준법", laws[0].NameKr)
}

func TestReplaceSwapsWholeCatalog(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, sampleCatalog()))
	require.NoError(t, store.Replace(ctx, map[string][]legalapi.EnglishLaw{
		"tax": {{NameKr: "법인세법", NameEn: "Corporate Tax Act", URL: "https://www.law.go.kr/영문법령/법인세법"}},
	}))

	topics, err := store.Topics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tax"}, topics)

	_, err = store.Laws(ctx, "labor")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestEmptyCache(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Topics(ctx)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = store.FetchedAt(ctx)
	assert.ErrorIs(t, err, ErrEmpty)

	assert.False(t, store.Fresh(ctx, time.Hour))
}

func TestFreshness(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, sampleCatalog()))

	assert.True(t, store.Fresh(ctx, time.Hour))
	assert.False(t, store.Fresh(ctx, 0))

	fetched, err := store.FetchedAt(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), fetched, time.Minute)
}

func TestAllGroupsByTopic(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, sampleCatalog()))

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Len(t, all["labor"], 2)
}

func TestSortedTopics(t *testing.T) {
	got := SortedTopics(sampleCatalog())
	assert.Equal(t, []string{"labor", "visa"}, got)
}
