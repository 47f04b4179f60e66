// README: Planner service — draft, verify, correct-once, assemble.
package planner

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/maps"
)

const modelCallTimeout = 60 * time.Second

// dayColors is the fixed palette assigned to days by position.
var dayColors = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#9b59b6", "#f39c12", "#1abc9c", "#e91e63",
}

// Geocoder resolves free-text locations to anchors. A nil anchor means the
// location could not be resolved and geographic enforcement is skipped.
type Geocoder interface {
	LookupPair(ctx context.Context, origin, destination string) (*maps.GeoAnchor, *maps.GeoAnchor)
}

// Service orchestrates itinerary generation: geocode, classify, prompt,
// generate, verify geography, and repair at most once.
type Service struct {
	provider ai.ItineraryProvider
	geocoder Geocoder
	radiusKm float64
}

func NewService(provider ai.ItineraryProvider, geocoder Geocoder, radiusKm float64) *Service {
	return &Service{provider: provider, geocoder: geocoder, radiusKm: radiusKm}
}

// Plan produces a finalized itinerary for the request.
// Generation errors from the provider carry their own status codes and are
// returned untouched; the repair loop only ever triggers on the geographic
// check, and only for single-destination trips with a resolved anchor.
func (s *Service) Plan(ctx context.Context, req TripRequest) ([]DayPlan, error) {
	if strings.TrimSpace(req.To) == "" {
		return nil, ai.NewPlannerError(http.StatusBadRequest, "a destination is required")
	}
	if (req.StartDate == "") != (req.EndDate == "") {
		return nil, ai.NewPlannerError(http.StatusBadRequest, "start and end dates must be provided together")
	}

	originAnchor, destAnchor := s.geocoder.LookupPair(ctx, req.From, req.To)
	kind := ClassifyTrip(req.From, req.To, originAnchor, destAnchor)

	systemPrompt, userPrompt := ComposePrompts(req, kind, destAnchor, s.radiusKm)
	days, err := s.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	if kind == TripSingleDestination && destAnchor != nil {
		outliers := findOutliers(days, destAnchor, s.radiusKm)
		if len(outliers) > 0 {
			log.Printf("planner: %d stop(s) outside %.0f km of %s, regenerating", len(outliers), s.radiusKm, destAnchor.Name)
			corrSystem, corrUser := ComposeCorrectionPrompts(req, kind, destAnchor, s.radiusKm, outliers)
			days, err = s.generate(ctx, corrSystem, corrUser)
			if err != nil {
				return nil, err
			}
			if remaining := findOutliers(days, destAnchor, s.radiusKm); len(remaining) > 0 {
				log.Printf("planner: correction still has %d stop(s) out of range", len(remaining))
				return nil, ai.NewPlannerError(http.StatusInternalServerError,
					"could not build a geographically consistent itinerary for %q, try a more specific destination", req.To)
			}
		}
	}

	return AssembleItinerary(days), nil
}

func (s *Service) generate(ctx context.Context, systemPrompt, userPrompt string) ([]ai.GeneratedDay, error) {
	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()
	return s.provider.GenerateItinerary(ctx, systemPrompt, userPrompt)
}

// AssembleItinerary finalizes generated days: colors cycle through the
// palette by position, independent of the model's day numbering.
func AssembleItinerary(days []ai.GeneratedDay) []DayPlan {
	plans := make([]DayPlan, 0, len(days))
	for i, d := range days {
		stops := d.Stops
		if stops == nil {
			stops = []ai.GeneratedStop{}
		}
		plans = append(plans, DayPlan{
			Day:             d.Day,
			Title:           d.Title,
			Subtitle:        d.Subtitle,
			TotalTravelTime: d.TotalTravelTime,
			EstimatedCost:   d.EstimatedCost,
			Stops:           stops,
			Color:           dayColors[i%len(dayColors)],
		})
	}
	return plans
}
