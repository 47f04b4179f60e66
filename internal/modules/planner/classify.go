// README: Trip classifier — single-destination versus point-to-point route.
package planner

import (
	"strings"

	"wayfare/internal/maps"
)

// TripKind is the binary trip classification driving prompt constraints and
// the radius check.
type TripKind string

const (
	TripSingleDestination TripKind = "single_destination"
	TripRoute             TripKind = "route"
)

// sameMetroRadiusKm is a deliberately generous single-metro heuristic: two
// anchors this close (e.g. neighborhoods of one city) should not produce a
// point-to-point route narrative.
const sameMetroRadiusKm = 45.0

// ClassifyTrip returns TripSingleDestination when the origin is absent, when
// origin and destination are textually equal (case-insensitive), or when both
// anchors resolved within sameMetroRadiusKm of each other. Everything else is
// a route trip.
func ClassifyTrip(from, to string, origin, destination *maps.GeoAnchor) TripKind {
	from = strings.TrimSpace(from)
	// No origin means the trip is centered on the destination.
	if from == "" {
		return TripSingleDestination
	}
	if strings.EqualFold(from, strings.TrimSpace(to)) {
		return TripSingleDestination
	}
	if origin != nil && destination != nil {
		if haversineKm(origin.Lat, origin.Lng, destination.Lat, destination.Lng) <= sameMetroRadiusKm {
			return TripSingleDestination
		}
	}
	return TripRoute
}
