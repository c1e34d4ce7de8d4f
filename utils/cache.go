// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"mediflow/config"

	"github.com/go-redis/redis/v8"
)

// SlotCacheClient is the Redis client backing the computed-slot cache.
var SlotCacheClient *redis.Client

// InitSlotCache initializes the Redis client for the slot cache (using DB
// from AppConfig dedicated to computed availability results).
func InitSlotCache() {
	SlotCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSlotCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SlotCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Slot Cache): %v", err)
	}
}

// GetSlotCacheClient returns the slot cache client.
func GetSlotCacheClient() *redis.Client {
	if SlotCacheClient == nil {
		InitSlotCache()
	}
	return SlotCacheClient
}
