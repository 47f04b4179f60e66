// README: Itinerary generation handler (credit-guarded planner calls).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/modules/planner"
	"wayfare/internal/modules/usage"
)

type PlannerHandler struct {
	planner *planner.Service
	usage   *usage.Service
}

// NewPlannerHandler wires the planner. usage may be nil when no database is
// configured; credits are then not enforced.
func NewPlannerHandler(plannerSvc *planner.Service, usageSvc *usage.Service) *PlannerHandler {
	return &PlannerHandler{planner: plannerSvc, usage: usageSvc}
}

// Plan handles POST /api/itinerary.
func (h *PlannerHandler) Plan(c *gin.Context) {
	var req planner.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if h.usage != nil {
		if err := h.usage.UseCredit(c.Request.Context(), c.ClientIP()); err != nil {
			if errors.Is(err, usage.ErrQuotaExhausted) {
				writeError(c, http.StatusPaymentRequired, err.Error())
				return
			}
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
	}

	itinerary, err := h.planner.Plan(c.Request.Context(), req)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"itinerary": itinerary})
}
