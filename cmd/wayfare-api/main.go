// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	httptransport "wayfare/internal/http"
	"wayfare/internal/infra"
	"wayfare/internal/maps"
	"wayfare/internal/modules/planner"
	"wayfare/internal/modules/trips"
	"wayfare/internal/modules/usage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiPlanner(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	// Geocode caching is optional; without Redis every lookup hits the API.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = infra.NewRedis(cfg.Redis.Addr)
	}

	geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey, redisClient)
	if err != nil {
		log.Fatalf("geocoder init: %v", err)
	}

	plannerSvc := planner.NewService(provider, geocoder, cfg.Planner.RadiusKm)

	// Persistence and quotas are optional; without a DSN the planner runs
	// stateless and /api/trips answers 503.
	var (
		tripSvc  *trips.Service
		usageSvc *usage.Service
	)
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		tripSvc = trips.NewService(trips.NewPostgresStore(dbPool))
		usageSvc = usage.NewService(usage.NewStore(dbPool, cfg.Planner.MonthlyQuota))
	}

	handler := httptransport.NewRouter(plannerSvc, tripSvc, usageSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
