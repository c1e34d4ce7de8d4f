package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mediflow/config"
	"mediflow/services/scheduling"
	"mediflow/services/tasks"

	"github.com/hibiken/asynq"
)

// InitRefreshWorker runs the slot-refresh worker in background. Each task
// evicts one cached slot key and recomputes it through the engine, so a
// "refresh" action never blocks the booking UI on the recomputation.
func InitRefreshWorker(engine scheduling.SchedulingEngine, cache *scheduling.SlotCache) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRefreshSlots, handleRefreshTask(engine, cache))

	// Start async worker with retry logic
	go func() {
		log.Println("[SlotRefreshWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SlotRefreshWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SlotRefreshWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRefreshTask(engine scheduling.SchedulingEngine, cache *scheduling.SlotCache) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RefreshSlotsPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SlotRefreshWorker] 🔴 Invalid payload: %v", err)
			return err
		}

		query, err := p.Query()
		if err != nil {
			log.Printf("[SlotRefreshWorker] 🔴 Invalid refresh date %q: %v", p.Date, err)
			return err
		}

		key := scheduling.KeyForQuery(query)
		log.Printf("[SlotRefreshWorker] ♻️ Recomputing %s", key)

		cache.Evict(ctx, key)
		if _, err := engine.ComputeAvailableSlots(ctx, query); err != nil {
			log.Printf("[SlotRefreshWorker] ❌ Recompute failed for %s: %v", key, err)
			return err
		}
		return nil
	}
}
