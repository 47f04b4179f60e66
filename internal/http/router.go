// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/handlers"
	"wayfare/internal/http/middleware"
	"wayfare/internal/modules/planner"
	"wayfare/internal/modules/trips"
	"wayfare/internal/modules/usage"
)

func NewRouter(
	plannerService *planner.Service,
	tripService *trips.Service,
	usageService *usage.Service,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())

	plannerHandler := handlers.NewPlannerHandler(plannerService, usageService)
	r.POST("/api/itinerary", plannerHandler.Plan)

	tripHandler := handlers.NewTripHandler(tripService)
	r.POST("/api/trips", tripHandler.Save)
	r.GET("/api/trips", tripHandler.List)
	r.GET("/api/trips/:id", tripHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
