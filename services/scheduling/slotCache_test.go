package scheduling

import (
	"context"
	"testing"
	"time"

	"mediflow/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*SlotCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &SlotCache{Client: client, TTL: ttl}, mr
}

func testKey() SlotCacheKey {
	return SlotCacheKey{
		FacilityID:      "fac-1",
		Date:            "2026-03-10",
		DurationMinutes: 45,
		PractitionerID:  "p1",
		Mode:            models.ModeNewUser,
	}
}

func TestSlotCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()
	key := testKey()

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok, "empty cache must miss")

	slots := []models.Slot{{Start: at(9, 0), End: at(9, 45), PractitionerID: "p1"}}
	cache.Put(ctx, key, slots)

	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(at(9, 0)))
	assert.True(t, got[0].End.Equal(at(9, 45)))
	assert.Equal(t, "p1", got[0].PractitionerID)
}

func TestSlotCacheEmptyResultIsCacheable(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()
	key := testKey()

	cache.Put(ctx, key, []models.Slot{})

	got, ok := cache.Get(ctx, key)
	require.True(t, ok, "an empty slot list is a valid cached value, not a miss")
	assert.Empty(t, got)
}

func TestSlotCacheOverwrite(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()
	key := testKey()

	cache.Put(ctx, key, []models.Slot{{Start: at(9, 0), End: at(9, 45), PractitionerID: "p1"}})
	cache.Put(ctx, key, []models.Slot{{Start: at(11, 0), End: at(11, 45), PractitionerID: "p1"}})

	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	require.Len(t, got, 1, "last write wins, values are replaced not merged")
	assert.True(t, got[0].Start.Equal(at(11, 0)))
}

func TestSlotCacheEvict(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()
	key := testKey()

	cache.Put(ctx, key, []models.Slot{{Start: at(9, 0), End: at(9, 45), PractitionerID: "p1"}})
	cache.Evict(ctx, key)

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok)
}

func TestSlotCacheTTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()
	key := testKey()

	cache.Put(ctx, key, []models.Slot{{Start: at(9, 0), End: at(9, 45), PractitionerID: "p1"}})

	mr.FastForward(11 * time.Minute)

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok, "entry must expire after the configured TTL")
}

func TestSlotCacheKeyDistinguishesAllComponents(t *testing.T) {
	base := testKey()

	variants := []SlotCacheKey{
		{FacilityID: "fac-2", Date: base.Date, DurationMinutes: base.DurationMinutes, PractitionerID: base.PractitionerID, Mode: base.Mode},
		{FacilityID: base.FacilityID, Date: "2026-03-11", DurationMinutes: base.DurationMinutes, PractitionerID: base.PractitionerID, Mode: base.Mode},
		{FacilityID: base.FacilityID, Date: base.Date, DurationMinutes: 30, PractitionerID: base.PractitionerID, Mode: base.Mode},
		{FacilityID: base.FacilityID, Date: base.Date, DurationMinutes: base.DurationMinutes, PractitionerID: models.AnyPractitioner, Mode: base.Mode},
		{FacilityID: base.FacilityID, Date: base.Date, DurationMinutes: base.DurationMinutes, PractitionerID: base.PractitionerID, Mode: models.ModeReturningUser},
	}
	for _, v := range variants {
		assert.NotEqual(t, base.String(), v.String())
	}
}

func TestKeyForQueryDefaultsToAnyPractitioner(t *testing.T) {
	q := models.SlotQuery{
		FacilityID:      "fac-1",
		Date:            algebraDay,
		DurationMinutes: 45,
		Mode:            models.ModeReturningUser,
	}
	assert.Equal(t, models.AnyPractitioner, KeyForQuery(q).PractitionerID)
}
