package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vicentealoise3/strike-latino-2a/internal/api/rest"
	"github.com/Vicentealoise3/strike-latino-2a/internal/api/websocket"
	"github.com/Vicentealoise3/strike-latino-2a/internal/cache"
	"github.com/Vicentealoise3/strike-latino-2a/internal/config"
	"github.com/Vicentealoise3/strike-latino-2a/internal/ingest/theshow"
	"github.com/Vicentealoise3/strike-latino-2a/internal/league"
	"github.com/Vicentealoise3/strike-latino-2a/internal/scheduler"
	"github.com/Vicentealoise3/strike-latino-2a/internal/service"
)

const serviceName = "strike-latino"

func main() {
	log.Printf("Starting %s - Liga Strike Latino standings service", serviceName)

	cfg := config.Default()
	cfg.SetMode(getEnv("RUN_MODE", cfg.Mode))
	if base := os.Getenv("API_BASE"); base != "" {
		cfg.APIBase = base
	}
	if dir := os.Getenv("DUMP_DIR"); dir != "" {
		cfg.DumpDir = dir
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("✓ Configuration loaded (mode: %s, window: %s)", cfg.Mode, cfg.Profile.DayWindowMode)

	lg := league.New(cfg)
	client := theshow.NewClient(cfg)
	svc, err := service.New(cfg, lg, client)
	if err != nil {
		log.Fatalf("Failed to create service: %v", err)
	}
	log.Printf("✓ Aggregation service ready (%d entrants)", len(lg.Entrants()))

	// Redis holds the computed payload between refreshes
	redisURL := getEnv("REDIS_URL", "redis://localhost:6379")
	var redisCache *cache.RedisCache
	maxRetries := 10
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(redisURL)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
	}
	defer redisCache.Close()

	log.Println("✓ Connected to Redis")

	// WebSocket server pushes every refreshed payload to subscribers
	wsPort := getEnv("WS_PORT", "8081")
	wsServer := websocket.NewServer(redisCache)
	go func() {
		if err := wsServer.Start(wsPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()
	log.Printf("✓ WebSocket server listening on :%s", wsPort)

	// Background refresh keeps the cached payload current
	schedulerConfig := scheduler.DefaultConfig()
	if interval := os.Getenv("REFRESH_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			log.Fatalf("Invalid REFRESH_INTERVAL %q: %v", interval, err)
		}
		schedulerConfig.RefreshInterval = d
	}

	sched := scheduler.NewOrchestrator(svc, redisCache, wsServer, schedulerConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sched.Start(ctx)
	log.Println("✓ Refresh scheduler started")

	restPort := getEnv("REST_PORT", "8080")
	restServer := rest.NewServer(restPort, redisCache, svc)
	go func() {
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()
	log.Printf("✓ REST API server listening on :%s", restPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
