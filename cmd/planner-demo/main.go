// README: One-shot planning demo against the live Gemini and Geocoding APIs.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"wayfare/internal/ai"
	"wayfare/internal/maps"
	"wayfare/internal/modules/planner"
)

func main() {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}
	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if mapsKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiPlanner(ctx, geminiKey)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer provider.Close()

	geocoder, err := maps.NewGeocodeService(mapsKey, nil)
	if err != nil {
		log.Fatalf("Failed to initialize geocoder: %v", err)
	}

	svc := planner.NewService(provider, geocoder, 55)

	destination := "Kyoto"
	if len(os.Args) > 1 {
		destination = os.Args[1]
	}

	req := planner.TripRequest{
		To:        destination,
		Days:      "weekend",
		Budget:    "mid-range",
		Interests: []string{"food", "history"},
	}
	fmt.Printf("Planning a weekend in %s...\n\n", destination)

	itinerary, err := svc.Plan(ctx, req)
	if err != nil {
		log.Fatalf("Error planning trip: %v", err)
	}

	for _, day := range itinerary {
		fmt.Printf("Day %d: %s — %s [%s]\n", day.Day, day.Title, day.Subtitle, day.Color)
		for _, stop := range day.Stops {
			fmt.Printf("  %s  %s (%.4f, %.4f)\n", stop.Time, stop.Name, stop.Lat, stop.Lng)
		}
		fmt.Printf("  travel: %s, cost: %s\n\n", day.TotalTravelTime, day.EstimatedCost)
	}
}
