package http

import (
	"github.com/labstack/echo/v4"

	"github.com/lokalapp/lokal/internal/pkg/middleware"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

// RegisterRoutes mounts the mission routes under /v1/missions
func (h *MissionsHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	group := e.Group("/v1/missions", middleware.JWTAuthMiddleware(jwtConfig))

	group.GET("", h.ListMissions)
	group.POST("/events/deal-redeemed", h.DealRedeemed)
	group.POST("/events/qr-scan", h.QRScan)
}
