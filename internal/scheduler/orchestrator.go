package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/cache"
	"github.com/Vicentealoise3/strike-latino-2a/internal/service"
)

// PayloadStore is the cache surface the orchestrator writes refreshed
// payloads to.
type PayloadStore interface {
	StorePayload(ctx context.Context, p *cache.Payload, ttl time.Duration) error
}

// Broadcaster pushes a refreshed payload to live subscribers.
type Broadcaster interface {
	BroadcastPayload(data []byte)
}

// Config holds scheduler configuration.
type Config struct {
	RefreshInterval time.Duration // Default: 5m
	PayloadTTL      time.Duration // 0 = keep the last snapshot forever
	MaxRetries      int           // Default: 3
	RetryDelay      time.Duration // Default: 5s
}

// DefaultConfig returns default scheduler configuration.
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval: 5 * time.Minute,
		PayloadTTL:      0,
		MaxRetries:      3,
		RetryDelay:      5 * time.Second,
	}
}

// Orchestrator recomputes the standings payload on a timer, stores it in the
// cache, and broadcasts it to subscribers.
type Orchestrator struct {
	svc         *service.Service
	store       PayloadStore
	broadcaster Broadcaster
	config      *Config
	cancel      context.CancelFunc
}

// NewOrchestrator creates a new refresh orchestrator.
func NewOrchestrator(svc *service.Service, store PayloadStore, broadcaster Broadcaster, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Orchestrator{
		svc:         svc,
		store:       store,
		broadcaster: broadcaster,
		config:      config,
	}
}

// Start runs the refresh loop until the context is cancelled. The first
// refresh runs immediately so the API has something to serve at startup.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Printf("→ Payload refresh started (interval: %v)", o.config.RefreshInterval)

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	consecutiveErrors := 0

	o.refreshWithRetry(ctx, &consecutiveErrors)

	for {
		select {
		case <-ctx.Done():
			log.Println("→ Payload refresh stopped")
			return
		case <-ticker.C:
			o.refreshWithRetry(ctx, &consecutiveErrors)
		}
	}
}

// refreshWithRetry runs one refresh cycle with bounded retries. When the
// cycle still fails the previous cached snapshot keeps serving; after
// repeated failures an extra delay damps the upstream pressure.
func (o *Orchestrator) refreshWithRetry(ctx context.Context, consecutiveErrors *int) {
	const maxConsecutiveErrors = 5

	var err error
	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		err = o.refresh(ctx)
		if err == nil {
			*consecutiveErrors = 0
			return
		}

		log.Printf("  Refresh attempt %d/%d failed: %v", attempt, o.config.MaxRetries, err)

		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	*consecutiveErrors++
	log.Printf("  All %d refresh attempts failed. Consecutive errors: %d/%d",
		o.config.MaxRetries, *consecutiveErrors, maxConsecutiveErrors)

	if *consecutiveErrors >= maxConsecutiveErrors {
		log.Printf("  High error rate detected, backing off before the next cycle...")
		select {
		case <-ctx.Done():
		case <-time.After(20 * time.Second):
		}
	}
}

// refresh computes both reports, stores the payload, and broadcasts it.
func (o *Orchestrator) refresh(ctx context.Context) error {
	start := time.Now()

	rows := o.svc.ComputeRows(ctx)
	gamesToday, err := o.svc.GamesToday(ctx)
	if err != nil {
		return fmt.Errorf("computing today's games: %w", err)
	}

	payload := &cache.Payload{
		Standings:  rows,
		GamesToday: gamesToday,
		LastUpdate: time.Now().Format("2006-01-02 15:04:05"),
	}

	if err := o.store.StorePayload(ctx, payload, o.config.PayloadTTL); err != nil {
		return fmt.Errorf("caching payload: %w", err)
	}

	if o.broadcaster != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
		o.broadcaster.BroadcastPayload(data)
	}

	log.Printf("✓ Payload refreshed: %d rows, %d games today (%v)",
		len(rows), len(gamesToday), time.Since(start).Round(time.Millisecond))
	return nil
}

// Stop gracefully stops the refresh loop.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
}
