package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifesim/internal/config"
	"lifesim/internal/sim"
)

func record(ending string, at time.Time) Record {
	return NewRecord(sim.Summary{
		Ending:     config.Ending{ID: ending, Title: ending},
		Stats:      map[string]int{"health": 3},
		TotalYears: 70,
	}, 69, 42, at)
}

func TestNewRecord_CopiesSummaryFields(t *testing.T) {
	at := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.FixedZone("x", 3600))
	r := record("scholar", at)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "scholar", r.EndingID)
	assert.Equal(t, 69, r.Age)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, time.UTC, r.CreatedAt.Location())
	assert.NotEqual(t, r.ID, record("scholar", at).ID)
}

func TestMemoryStore_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Now()
	first := record("a", now)
	second := record("b", now.Add(time.Minute))
	require.NoError(t, s.Add(ctx, first))
	require.NoError(t, s.Add(ctx, second))

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	one, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, second.ID, one[0].ID)
}

func TestMemoryStore_GetRemoveClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := record("a", time.Now())
	require.NoError(t, s.Add(ctx, r))
	assert.ErrorIs(t, s.Add(ctx, r), ErrAlreadyExists)

	got, err := s.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	require.NoError(t, s.Remove(ctx, r.ID))
	_, err = s.Get(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Remove(ctx, r.ID), ErrNotFound)

	require.NoError(t, s.Add(ctx, record("b", time.Now())))
	require.NoError(t, s.Clear(ctx))
	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}
