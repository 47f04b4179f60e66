// README: Prompt composer — turns a trip request into system/user prompts.
package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"wayfare/internal/maps"
)

// maxOutliersInCorrection caps how many flagged stops the correction prompt
// names, to keep it focused on the worst offenders.
const maxOutliersInCorrection = 4

// ComposePrompts builds the system and user prompts for an itinerary draft.
// The geographic constraint is phrased as a hard rule when an anchor exists;
// with no anchor the prompt falls back to a generic consistency instruction.
func ComposePrompts(req TripRequest, kind TripKind, dest *maps.GeoAnchor, radiusKm float64) (string, string) {
	days := req.Days.Resolve()

	var sys strings.Builder
	sys.WriteString("You are an expert travel planner. Produce realistic, geographically consistent day-by-day itineraries.\n")
	sys.WriteString("Rules:\n")
	sys.WriteString("- Every stop must be a real, currently operating place with accurate coordinates.\n")
	sys.WriteString("- Order stops within a day to minimize backtracking.\n")
	sys.WriteString("- Times, opening hours, costs and travel times must be plausible for the location.\n")
	sys.WriteString("- Stop ids use the form d{day}s{index} and are unique across the itinerary.\n")

	switch {
	case kind == TripSingleDestination && dest != nil:
		fmt.Fprintf(&sys, "- HARD CONSTRAINT: every stop must lie within %.0f km of %s (%.4f, %.4f). Do not include day trips beyond this radius.\n",
			radiusKm, dest.Name, dest.Lat, dest.Lng)
	case kind == TripRoute:
		sys.WriteString("- This is a point-to-point route. Stops must progress along a sensible corridor from the origin to the destination, without detours away from it.\n")
	default:
		sys.WriteString("- Keep all stops geographically consistent with the stated destination; never place a stop in a different city or region.\n")
	}

	var usr strings.Builder
	if kind == TripRoute && strings.TrimSpace(req.From) != "" {
		fmt.Fprintf(&usr, "Plan a %d-day trip from %s to %s.\n", days, strings.TrimSpace(req.From), strings.TrimSpace(req.To))
	} else {
		fmt.Fprintf(&usr, "Plan a %d-day trip in %s.\n", days, strings.TrimSpace(req.To))
	}
	if dest != nil {
		fmt.Fprintf(&usr, "The destination resolves to %s.\n", dest.Name)
	}
	if req.StartDate != "" && req.EndDate != "" {
		fmt.Fprintf(&usr, "Travel dates: %s to %s. Account for weekdays, weekends and seasonal closures on these dates.\n", req.StartDate, req.EndDate)
	}
	if req.Budget != "" {
		fmt.Fprintf(&usr, "Budget: %s.\n", req.Budget)
	}
	if req.Mode != "" {
		fmt.Fprintf(&usr, "Primary mode of transport: %s.\n", req.Mode)
	}
	if req.Pace != "" {
		fmt.Fprintf(&usr, "Pace: %s.\n", req.Pace)
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&usr, "Traveler interests: %s.\n", strings.Join(req.Interests, ", "))
	}
	if strings.TrimSpace(req.MustSees) != "" {
		fmt.Fprintf(&usr, "Must-see requests: %s.\n", strings.TrimSpace(req.MustSees))
	}

	if strings.TrimSpace(req.AdjustmentRequest) != "" {
		usr.WriteString("\nThe traveler already has an itinerary and wants it adjusted. Produce a complete new itinerary that applies this request while keeping everything else that still fits:\n")
		fmt.Fprintf(&usr, "Adjustment request: %s\n", strings.TrimSpace(req.AdjustmentRequest))
		if len(req.CurrentItinerary) > 0 {
			if encoded, err := json.Marshal(req.CurrentItinerary); err == nil {
				fmt.Fprintf(&usr, "Current itinerary:\n%s\n", encoded)
			}
		}
	}

	fmt.Fprintf(&usr, "\nSubmit exactly %d day(s) via the submit_itinerary function.", days)
	return sys.String(), usr.String()
}

// ComposeCorrectionPrompts extends the original system prompt with the
// concrete stops that failed the radius check, instructing a full
// regeneration rather than a patch of the offending stops. The user turn is
// unchanged.
func ComposeCorrectionPrompts(req TripRequest, kind TripKind, dest *maps.GeoAnchor, radiusKm float64, outliers []GeoOutlier) (string, string) {
	sys, usr := ComposePrompts(req, kind, dest, radiusKm)

	var b strings.Builder
	b.WriteString(sys)
	b.WriteString("\nQUALITY CONTROL FAILURE: your previous itinerary placed stops outside the allowed area")
	if dest != nil {
		fmt.Fprintf(&b, " (more than %.0f km from %s)", radiusKm, dest.Name)
	}
	b.WriteString(":\n")
	for i, o := range outliers {
		if i >= maxOutliersInCorrection {
			fmt.Fprintf(&b, "- and %d more\n", len(outliers)-maxOutliersInCorrection)
			break
		}
		fmt.Fprintf(&b, "- day %d: %s (%.0f km away)\n", o.Day, o.Name, o.DistanceKm)
	}
	b.WriteString("Regenerate the entire itinerary from scratch with every stop inside the allowed area. Do not reuse the rejected stops.")
	return b.String(), usr
}
