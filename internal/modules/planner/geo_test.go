package planner

import (
	"math"
	"testing"

	"wayfare/internal/ai"
	"wayfare/internal/maps"
)

func TestHaversineKnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolKm                  float64
	}{
		{"identical points", 47.6062, -122.3321, 47.6062, -122.3321, 0, 0.001},
		{"seattle to portland", 47.6062, -122.3321, 45.5152, -122.6784, 233, 5},
		{"paris to london", 48.8566, 2.3522, 51.5074, -0.1278, 344, 5},
		{"manhattan to brooklyn", 40.7831, -73.9712, 40.6782, -73.9442, 11.9, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := haversineKm(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.wantKm) > tc.tolKm {
				t.Errorf("haversineKm = %.2f, want %.2f ± %.2f", got, tc.wantKm, tc.tolKm)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := haversineKm(47.6062, -122.3321, 45.5152, -122.6784)
	b := haversineKm(45.5152, -122.6784, 47.6062, -122.3321)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestFindOutliers(t *testing.T) {
	seattle := &maps.GeoAnchor{Name: "Seattle, WA, USA", Lat: 47.6062, Lng: -122.3321}

	days := []ai.GeneratedDay{
		{
			Day: 1,
			Stops: []ai.GeneratedStop{
				{Name: "Pike Place Market", Lat: 47.6097, Lng: -122.3422},
				{Name: "Space Needle", Lat: 47.6205, Lng: -122.3493},
			},
		},
		{
			Day: 2,
			Stops: []ai.GeneratedStop{
				{Name: "Powell's City of Books", Lat: 45.5232, Lng: -122.6819}, // Portland
				{Name: "Missing coords", Lat: 0, Lng: 0},
			},
		},
	}

	outliers := findOutliers(days, seattle, 55)
	if len(outliers) != 1 {
		t.Fatalf("got %d outliers, want 1: %+v", len(outliers), outliers)
	}
	if outliers[0].Day != 2 || outliers[0].Name != "Powell's City of Books" {
		t.Errorf("unexpected outlier: %+v", outliers[0])
	}
	if outliers[0].DistanceKm < 200 || outliers[0].DistanceKm > 260 {
		t.Errorf("outlier distance %.1f km looks wrong", outliers[0].DistanceKm)
	}
}

func TestFindOutliersSkipsUnverifiable(t *testing.T) {
	anchor := &maps.GeoAnchor{Name: "Seattle", Lat: 47.6062, Lng: -122.3321}
	days := []ai.GeneratedDay{{
		Day: 1,
		Stops: []ai.GeneratedStop{
			{Name: "zero pair", Lat: 0, Lng: 0},
			{Name: "nan lat", Lat: math.NaN(), Lng: -122.3},
			{Name: "inf lng", Lat: 47.6, Lng: math.Inf(1)},
			{Name: "out of range", Lat: 95, Lng: 10},
		},
	}}
	if got := findOutliers(days, anchor, 55); len(got) != 0 {
		t.Errorf("expected no outliers from unverifiable stops, got %+v", got)
	}
}

func TestFindOutliersNilAnchor(t *testing.T) {
	days := []ai.GeneratedDay{{
		Day:   1,
		Stops: []ai.GeneratedStop{{Name: "Anywhere", Lat: 10, Lng: 10}},
	}}
	if got := findOutliers(days, nil, 55); got != nil {
		t.Errorf("expected nil for nil anchor, got %+v", got)
	}
}
