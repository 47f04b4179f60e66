// README: Geocoder adapter; resolves free-text place names to anchors via Google Geocoding.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"
)

const (
	geocodeTimeout  = 10 * time.Second
	geocodeCacheTTL = 24 * time.Hour
)

// GeoAnchor is a resolved place used as a geographic reference for
// validation. It is produced only by the GeocodeService; a nil anchor is the
// uniform "could not resolve" signal and downstream logic degrades gracefully.
type GeoAnchor struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// locationAliases normalizes common abbreviations before hitting the API.
// Matched case-insensitively against the whole input.
var locationAliases = map[string]string{
	"nyc":    "New York City, NY, USA",
	"la":     "Los Angeles, CA, USA",
	"sf":     "San Francisco, CA, USA",
	"dc":     "Washington, DC, USA",
	"philly": "Philadelphia, PA, USA",
	"vegas":  "Las Vegas, NV, USA",
	"nola":   "New Orleans, LA, USA",
	"cdmx":   "Mexico City, Mexico",
}

// anchorResultTypes are the geocoding result types accepted as anchors.
// Street addresses and POIs are too precise to anchor a whole trip.
var anchorResultTypes = map[string]bool{
	"locality":                    true,
	"sublocality":                 true,
	"postal_town":                 true,
	"neighborhood":                true,
	"colloquial_area":             true,
	"administrative_area_level_1": true,
	"administrative_area_level_2": true,
	"country":                     true,
}

// GeocodeService handles interactions with the Google Geocoding API,
// with an optional Redis cache in front of it.
type GeocodeService struct {
	client *maps.Client
	cache  *redis.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
// cache may be nil; caching is best effort.
func NewGeocodeService(apiKey string, cache *redis.Client) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, cache: cache}, nil
}

// Lookup resolves a free-text location to its single best anchor.
// It never returns an error: geocoding is best effort, and a nil anchor
// means the itinerary proceeds without geographic enforcement.
func (s *GeocodeService) Lookup(ctx context.Context, query string) *GeoAnchor {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if alias, ok := locationAliases[strings.ToLower(query)]; ok {
		query = alias
	}

	cacheKey := "geocode:" + strings.ToLower(query)
	if anchor := s.cacheGet(ctx, cacheKey); anchor != nil {
		return anchor
	}

	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  query,
		Language: "en",
	})
	if err != nil {
		log.Printf("geocode: lookup %q failed: %v", query, err)
		return nil
	}
	if len(results) == 0 {
		log.Printf("geocode: no results for %q", query)
		return nil
	}

	best := pickAnchorResult(results)
	anchor := &GeoAnchor{
		Name: best.FormattedAddress,
		Lat:  best.Geometry.Location.Lat,
		Lng:  best.Geometry.Location.Lng,
	}
	if !validCoordinate(anchor.Lat, anchor.Lng) {
		log.Printf("geocode: malformed coordinates for %q: (%f, %f)", query, anchor.Lat, anchor.Lng)
		return nil
	}

	s.cacheSet(ctx, cacheKey, anchor)
	return anchor
}

// LookupPair resolves origin and destination concurrently.
// The two lookups are independent network calls.
func (s *GeocodeService) LookupPair(ctx context.Context, origin, destination string) (*GeoAnchor, *GeoAnchor) {
	originCh := make(chan *GeoAnchor, 1)
	go func() {
		originCh <- s.Lookup(ctx, origin)
	}()
	destAnchor := s.Lookup(ctx, destination)
	return <-originCh, destAnchor
}

// pickAnchorResult returns the first result whose type is a place-level
// feature, falling back to the overall best match.
func pickAnchorResult(results []maps.GeocodingResult) maps.GeocodingResult {
	for _, r := range results {
		for _, t := range r.Types {
			if anchorResultTypes[t] {
				return r
			}
		}
	}
	return results[0]
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func (s *GeocodeService) cacheGet(ctx context.Context, key string) *GeoAnchor {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var anchor GeoAnchor
	if err := json.Unmarshal([]byte(raw), &anchor); err != nil {
		return nil
	}
	return &anchor
}

func (s *GeocodeService) cacheSet(ctx context.Context, key string, anchor *GeoAnchor) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(anchor)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, geocodeCacheTTL).Err(); err != nil {
		log.Printf("geocode: cache set failed: %v", err)
	}
}
