// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/ai"
	"wayfare/internal/modules/trips"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError maps planner failures onto HTTP statuses. PlannerError
// already carries its status (400/402/429/500); anything else is opaque.
func writePlannerError(c *gin.Context, err error) {
	var perr *ai.PlannerError
	if errors.As(err, &perr) {
		writeError(c, perr.Status, perr.Message)
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trips.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trips.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
