// README: Trip request model, duration resolution, and day plan definitions.
package planner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wayfare/internal/ai"
)

const defaultTripDays = 3

// namedDurations maps the duration enum to day counts.
var namedDurations = map[string]int{
	"day trip":  1,
	"weekend":   3,
	"full week": 7,
}

// DayInput accepts the `days` field as either a JSON number or a string
// (numeric or one of the named durations).
type DayInput string

func (d *DayInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = DayInput(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*d = DayInput(strconv.Itoa(int(n)))
		return nil
	}
	return fmt.Errorf("days must be a number or a string")
}

// Resolve maps the raw duration to a positive day count.
// Unparseable or non-positive input falls back to the default.
func (d DayInput) Resolve() int {
	s := strings.ToLower(strings.TrimSpace(string(d)))
	if n, ok := namedDurations[s]; ok {
		return n
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultTripDays
}

// TripRequest is the inbound trip planning request.
// When AdjustmentRequest is set, CurrentItinerary carries the prior result
// and the model produces a wholly new itinerary using it as context.
type TripRequest struct {
	From              string    `json:"from"`
	To                string    `json:"to"`
	Days              DayInput  `json:"days"`
	Budget            string    `json:"budget"`
	Mode              string    `json:"mode"`
	Interests         []string  `json:"interests"`
	Pace              string    `json:"pace"`
	MustSees          string    `json:"mustSees"`
	AdjustmentRequest string    `json:"adjustmentRequest,omitempty"`
	CurrentItinerary  []DayPlan `json:"currentItinerary,omitempty"`
	StartDate         string    `json:"startDate,omitempty"`
	EndDate           string    `json:"endDate,omitempty"`
}

// DayPlan is one finalized day of the itinerary. Color is assigned
// deterministically by the assembler, never by the model.
type DayPlan struct {
	Day             int                `json:"day"`
	Title           string             `json:"title"`
	Subtitle        string             `json:"subtitle"`
	TotalTravelTime string             `json:"totalTravelTime"`
	EstimatedCost   string             `json:"estimatedCost"`
	Stops           []ai.GeneratedStop `json:"stops"`
	Color           string             `json:"color"`
}

// GeoOutlier records one stop outside the permitted radius. It exists only
// to build the correction prompt and is never returned to the caller.
type GeoOutlier struct {
	Day        int
	Name       string
	DistanceKm float64
}
