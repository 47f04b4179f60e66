// README: Saved-trip handlers for save/get/list.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/planner"
	"wayfare/internal/modules/trips"
	"wayfare/internal/types"
)

type TripHandler struct {
	trips *trips.Service
}

// NewTripHandler wires trip persistence. svc may be nil when no database is
// configured; the endpoints then answer 503.
func NewTripHandler(svc *trips.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type saveTripReq struct {
	Destination string            `json:"destination"`
	Itinerary   []planner.DayPlan `json:"itinerary"`
}

// Save handles POST /api/trips.
func (h *TripHandler) Save(c *gin.Context) {
	if h.trips == nil {
		writeError(c, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	trip, err := h.trips.Save(c.Request.Context(), req.Destination, req.Itinerary)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, trip)
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	if h.trips == nil {
		writeError(c, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}
	trip, err := h.trips.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, trip)
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	if h.trips == nil {
		writeError(c, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := h.trips.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeTripError(c, err)
		return
	}
	if list == nil {
		list = []trips.Trip{}
	}
	writeJSON(c, http.StatusOK, map[string]any{"trips": list})
}
