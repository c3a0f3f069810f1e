package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowBoundsDay(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	start, end := WindowBounds(WindowDay, now)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), *end)
}

func TestWindowBoundsMonth(t *testing.T) {
	now := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	start, end := WindowBounds(WindowMonth, now)

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), *end)
}

func TestWindowBoundsHonorsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	// 03:00 on the 16th local time is still the 15th in UTC.
	now := time.Date(2026, 3, 16, 3, 0, 0, 0, loc)

	start, _ := WindowBounds(WindowDay, now)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestWindowBoundsTotal(t *testing.T) {
	_, end := WindowBounds(WindowTotal, time.Now())
	assert.Nil(t, end)
}

func TestExpired(t *testing.T) {
	end := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	assert.False(t, Expired(&end, end.Add(-time.Second)))
	assert.True(t, Expired(&end, end))
	assert.True(t, Expired(&end, end.Add(time.Hour)))
	assert.False(t, Expired(nil, end.AddDate(10, 0, 0)))
}
