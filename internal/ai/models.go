package ai

import "fmt"

// PlannerError is the single typed failure the planner surfaces across the
// HTTP boundary. Status is the HTTP status code the error maps to.
type PlannerError struct {
	Status  int
	Message string
}

func (e *PlannerError) Error() string {
	return e.Message
}

// NewPlannerError builds a PlannerError with a formatted message.
func NewPlannerError(status int, format string, args ...any) *PlannerError {
	return &PlannerError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// GeneratedStop is one activity exactly as returned by the model through the
// function-calling schema. No geographic validation has been applied yet.
type GeneratedStop struct {
	// ID follows the d{day}s{index} format and is unique across the itinerary.
	ID           string   `json:"id"`
	Time         string   `json:"time"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	OpeningHours string   `json:"openingHours"`
	Cost         string   `json:"cost"`
	TravelTime   string   `json:"travelTime,omitempty"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Tags         []string `json:"tags"`
}

// GeneratedDay is one day of the raw generated itinerary.
type GeneratedDay struct {
	Day             int             `json:"day"`
	Title           string          `json:"title"`
	Subtitle        string          `json:"subtitle"`
	TotalTravelTime string          `json:"totalTravelTime"`
	EstimatedCost   string          `json:"estimatedCost"`
	Stops           []GeneratedStop `json:"stops"`
}
