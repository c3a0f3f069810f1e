package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/scribeflow/scribeflow/test/database"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewManager(client.Client)
}

func TestManager_EnsureEntryIdempotent(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	first, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 45000)
	require.NoError(t, err)

	second, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 45000)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestManager_AvailableAndConsume(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 100)
	require.NoError(t, err)

	available, err := m.Available(ctx, "alice", "deepgram", "file", 60)
	require.NoError(t, err)
	assert.True(t, available)

	require.NoError(t, m.Consume(ctx, "alice", "deepgram", "file", 60))

	// 40s left in the window.
	available, err = m.Available(ctx, "alice", "deepgram", "file", 60)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = m.Available(ctx, "alice", "deepgram", "file", 40)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestManager_ConjunctiveWindows(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	// Generous monthly allowance, tight daily one: the tighter window rules.
	_, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 100000)
	require.NoError(t, err)
	_, err = m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowDay, 50)
	require.NoError(t, err)

	available, err := m.Available(ctx, "alice", "deepgram", "file", 60)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = m.Available(ctx, "alice", "deepgram", "file", 30)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestManager_UserLaneIndependentOfGlobal(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 1000)
	require.NoError(t, err)
	_, err = m.EnsureEntry(ctx, "alice", "deepgram", "file", WindowMonth, 10)
	require.NoError(t, err)

	// alice's personal lane blocks her even though the global pool has room.
	available, err := m.Available(ctx, "alice", "deepgram", "file", 60)
	require.NoError(t, err)
	assert.False(t, available)

	// bob has no personal lane; only the global pool applies.
	available, err = m.Available(ctx, "bob", "deepgram", "file", 60)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestManager_RemainingFraction(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 100)
	require.NoError(t, err)
	require.NoError(t, m.Consume(ctx, OwnerGlobal, "deepgram", "file", 25))

	frac, err := m.RemainingFraction(ctx, "deepgram", "file")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, frac, 1e-9)
}

func TestManager_RefreshResetsConsumption(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.EnsureEntry(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, 100)
	require.NoError(t, err)
	require.NoError(t, m.Consume(ctx, OwnerGlobal, "deepgram", "file", 100))

	available, err := m.Available(ctx, "alice", "deepgram", "file", 1)
	require.NoError(t, err)
	assert.False(t, available)

	newQuota := 200.0
	entry, err := m.Refresh(ctx, OwnerGlobal, "deepgram", "file", WindowMonth, &newQuota, true)
	require.NoError(t, err)
	assert.Equal(t, 200.0, entry.QuotaSeconds)
	assert.Zero(t, entry.UsedSeconds)

	available, err = m.Available(ctx, "alice", "deepgram", "file", 150)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestManager_RefreshCreatesMissingLane(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	// 10 hours granted on a lane nobody seeded.
	grant := 10.0 * 3600
	entry, err := m.Refresh(ctx, OwnerGlobal, "whisper", "file", WindowMonth, &grant, true)
	require.NoError(t, err)
	assert.Equal(t, 36000.0, entry.QuotaSeconds)
	assert.Zero(t, entry.UsedSeconds)
	assert.Equal(t, "active", string(entry.Status))

	// A second refresh updates the same lane instead of duplicating it.
	raised := 72000.0
	updated, err := m.Refresh(ctx, OwnerGlobal, "whisper", "file", WindowMonth, &raised, false)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, updated.ID)
	assert.Equal(t, 72000.0, updated.QuotaSeconds)

	lanes, err := m.List(ctx, OwnerGlobal)
	require.NoError(t, err)
	assert.Len(t, lanes, 1)
}

func TestWindowBoundsRollover(t *testing.T) {
	now := time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC)

	start, end := WindowBounds(WindowDay, now)
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), start)
	require.NotNil(t, end)
	assert.True(t, Expired(end, now.AddDate(0, 0, 1)))
	assert.False(t, Expired(end, now))

	_, end = WindowBounds(WindowTotal, now)
	assert.Nil(t, end)
	assert.False(t, Expired(end, now.AddDate(10, 0, 0)))
}
