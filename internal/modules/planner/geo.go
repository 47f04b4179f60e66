// README: Pure geographic helpers — haversine distance and the radius validator.
package planner

import (
	"math"

	"wayfare/internal/ai"
	"wayfare/internal/maps"
)

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// findOutliers scans every stop of every day and flags those farther than
// radiusKm from the anchor. Stops without usable coordinates are treated as
// unverifiable and skipped rather than rejected. Fully deterministic; this is
// the only check that can force a regeneration.
func findOutliers(days []ai.GeneratedDay, anchor *maps.GeoAnchor, radiusKm float64) []GeoOutlier {
	if anchor == nil {
		return nil
	}
	var outliers []GeoOutlier
	for _, day := range days {
		for _, stop := range day.Stops {
			if !verifiableCoordinate(stop.Lat, stop.Lng) {
				continue
			}
			dist := haversineKm(stop.Lat, stop.Lng, anchor.Lat, anchor.Lng)
			if dist > radiusKm {
				outliers = append(outliers, GeoOutlier{
					Day:        day.Day,
					Name:       stop.Name,
					DistanceKm: dist,
				})
			}
		}
	}
	return outliers
}

// verifiableCoordinate reports whether a stop's coordinates can be checked.
// A (0, 0) pair is how a missing coordinate surfaces through the schema.
func verifiableCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
