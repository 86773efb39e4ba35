package http

import (
	"github.com/labstack/echo/v4"

	"github.com/lokalapp/lokal/internal/pkg/middleware"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

// RegisterRoutes mounts the ride booking routes under /v1/rides
func (h *RidesHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	group := e.Group("/v1/rides", middleware.JWTAuthMiddleware(jwtConfig))

	group.POST("/locations/pickup", h.SetPickup)
	group.POST("/locations/destination", h.SetDestination)
	group.DELETE("/locations", h.ClearLocations)

	group.POST("/search", h.SearchRides)
	group.GET("/providers", h.ListProviders)

	group.POST("/bookings", h.BookRide)
	group.GET("/active", h.GetActiveRide)
	group.GET("/history", h.RideHistory)
	group.POST("/:rideID/complete", h.CompleteRide)
	group.POST("/:rideID/cancel", h.CancelRide)
	group.POST("/:rideID/refresh-status", h.RefreshRideStatus)
}
