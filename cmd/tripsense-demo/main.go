// README: Demo CLI; runs sample queries through the pipeline and prints results.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"tripsense/internal/ai"
	"tripsense/internal/config"
	"tripsense/internal/maps"
	"tripsense/internal/modules/trip"
)

var queries = []string{
	"Plan a trip from Dallas to Austin with a stop at a Walmart and a coffee shop.",
	"Navigate from New York to Philadelphia and avoid highways, stop at a gas station and pharmacy.",
	"Drive from San Francisco to Napa Valley with scenic views and a night stay in Sonoma.",
	"Plan a long road trip from New York to Los Angeles with rest stops every 300 miles and a night stay in Chicago and Denver.",
	"Find the shortest route from my house to the airport with a quick stop at a nearby ATM.",
	"Show me a scenic drive from San Francisco to Yosemite National Park with a stop at a famous viewpoint.",
	"Navigate from Dallas to Austin avoiding tolls and highways, prefer fuel-efficient route with EV charging every 150 miles.",
	"I need to urgently reach a hospital from my office due to heavy snow and avoid traffic.",
	"Plan a trip from Seattle to Portland, include scenic views, parking availability near downtown, and rest stops every 100 miles.",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

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

	svc := trip.NewService(tagger, geocoder, places, router, cfg.Resolver)

	for _, q := range queries {
		fmt.Printf("\nQuery: %s\n", q)

		result, err := svc.Plan(ctx, q)
		if err != nil {
			log.Printf("plan: %v", err)
			continue
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Printf("marshal: %v", err)
			continue
		}
		fmt.Println(string(out))

		if result.End != nil {
			fmt.Println("Directions:", directionsLink(result))
		}
	}
}

// directionsLink builds a Google Maps directions URL from the assembled
// result, using the first candidate place of each waypoint when available.
func directionsLink(res *trip.Result) string {
	v := url.Values{}
	v.Set("api", "1")
	v.Set("origin", res.Start.Position.String())
	v.Set("destination", res.End.Position.String())

	var stops []string
	for _, wp := range res.Waypoints {
		if len(wp.Places) > 0 {
			stops = append(stops, wp.Places[0].Position.String())
		}
	}
	if len(stops) > 0 {
		v.Set("waypoints", strings.Join(stops, "|"))
	}
	return "https://www.google.com/maps/dir/?" + v.Encode()
}
