// README: Entry point; loads config, wires the tagger, resolvers and HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tripsense/internal/ai"
	"tripsense/internal/config"
	httptransport "tripsense/internal/http"
	"tripsense/internal/infra"
	"tripsense/internal/maps"
	"tripsense/internal/modules/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tagger, err := ai.NewGeminiTagger(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer tagger.Close()

	geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}
	places, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}
	router, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	cachedGeocoder := maps.NewCachedGeocoder(geocoder, redisClient, cfg.Redis.CacheTTL)

	tripSvc := trip.NewService(tagger, cachedGeocoder, places, router, cfg.Resolver)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(tripSvc)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
