package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-revenue/config"
	httpLayer "partner-revenue/http"
	"partner-revenue/repository"
	"partner-revenue/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := repository.NewRedisCache(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisCache.Close()
		cache = redisCache
		log.Println("Using Redis projection cache")
	} else {
		memoryCache := repository.NewMemoryCache()
		defer memoryCache.Stop()
		cache = memoryCache
		log.Println("PARTNER_REVENUE_REDIS_URL not set, using in-memory projection cache")
	}

	projectionService := service.NewProjectionService(cache, cfg.CacheTTL, cfg.MaxPeriods)
	projectionHandler := httpLayer.NewProjectionHandler(projectionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/projection",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(projectionHandler.Project),
		),
	)

	mux.Handle(
		"/projection/tiers",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(projectionHandler.Tiers),
		),
	)

	mux.HandleFunc("/healthz", httpLayer.Health)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Partner revenue projector listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
