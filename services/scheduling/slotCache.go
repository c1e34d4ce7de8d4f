package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mediflow/models"
	"mediflow/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotCacheKey is the composite key a computed slot list is stored under.
// One key identifies one deterministic computation, so cached values are
// always fully replaced, never merged.
type SlotCacheKey struct {
	FacilityID      string
	Date            string // YYYY-MM-DD
	DurationMinutes int
	PractitionerID  string // concrete id, or models.AnyPractitioner
	Mode            models.BookingMode
}

// KeyForQuery derives the cache key for a slot query.
func KeyForQuery(q models.SlotQuery) SlotCacheKey {
	practitioner := q.TargetPractitionerID
	if practitioner == "" {
		practitioner = models.AnyPractitioner
	}
	return SlotCacheKey{
		FacilityID:      q.FacilityID,
		Date:            q.Date.Format("2006-01-02"),
		DurationMinutes: q.DurationMinutes,
		PractitionerID:  practitioner,
		Mode:            q.Mode,
	}
}

func (k SlotCacheKey) String() string {
	return fmt.Sprintf("slots:%s:%s:%d:%s:%s", k.FacilityID, k.Date, k.DurationMinutes, k.PractitionerID, k.Mode)
}

// SlotCache memoizes computed slot lists in Redis. Writes overwrite
// unconditionally; eviction is caller-driven, with an optional TTL for
// long-running deployments (zero TTL disables expiry).
type SlotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// Get returns the cached slots for a key, and whether the key was present.
func (c *SlotCache) Get(ctx context.Context, key SlotCacheKey) ([]models.Slot, bool) {
	logger := utils.GetLogger()

	raw, err := c.Client.Get(ctx, key.String()).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("SlotCache: read failed, treating as miss", zap.String("key", key.String()), zap.Error(err))
		return nil, false
	}

	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		logger.Warn("SlotCache: corrupt entry, treating as miss", zap.String("key", key.String()), zap.Error(err))
		return nil, false
	}
	return slots, true
}

// Put stores the slots for a key, replacing any previous value.
func (c *SlotCache) Put(ctx context.Context, key SlotCacheKey, slots []models.Slot) {
	logger := utils.GetLogger()

	payload, err := json.Marshal(slots)
	if err != nil {
		logger.Error("SlotCache: failed to marshal slots", zap.String("key", key.String()), zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, key.String(), payload, c.TTL).Err(); err != nil {
		logger.Warn("SlotCache: write failed", zap.String("key", key.String()), zap.Error(err))
	}
}

// Evict removes a key so the next query recomputes.
func (c *SlotCache) Evict(ctx context.Context, key SlotCacheKey) {
	if err := c.Client.Del(ctx, key.String()).Err(); err != nil {
		utils.GetLogger().Warn("SlotCache: evict failed", zap.String("key", key.String()), zap.Error(err))
	}
}
