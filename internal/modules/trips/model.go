// README: Saved trip model.
package trips

import (
	"time"

	"wayfare/internal/modules/planner"
	"wayfare/internal/types"
)

// Trip is a persisted itinerary a traveler chose to keep.
type Trip struct {
	ID          types.ID          `json:"id"`
	Destination string            `json:"destination"`
	Days        int               `json:"days"`
	Itinerary   []planner.DayPlan `json:"itinerary"`
	CreatedAt   time.Time         `json:"createdAt"`
}
