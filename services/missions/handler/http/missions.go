// Package http exposes the mission list and the merchant console event
// entry points over echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/middleware"
	"github.com/lokalapp/lokal/internal/utils"
	"github.com/lokalapp/lokal/services/missions"
)

// MissionsHandler handles HTTP requests for mission progress
type MissionsHandler struct {
	missionUC missions.MissionUC
}

// NewMissionsHandler creates a new missions HTTP handler
func NewMissionsHandler(missionUC missions.MissionUC) *MissionsHandler {
	return &MissionsHandler{missionUC: missionUC}
}

type dealRedeemedRequest struct {
	DealID     string `json:"deal_id"`
	MerchantID string `json:"merchant_id,omitempty"`
}

type qrScanRequest struct {
	MerchantID string `json:"merchant_id"`
}

// ListMissions returns the user's missions with current progress
func (h *MissionsHandler) ListMissions(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	userMissions, err := h.missionUC.ListMissions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list missions", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list missions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Missions", userMissions)
}

// DealRedeemed records a deal redemption reported by the merchant console
func (h *MissionsHandler) DealRedeemed(c echo.Context) error {
	var req dealRedeemedRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.DealID == "" {
		return utils.BadRequestResponse(c, "deal_id is required")
	}

	userID := middleware.UserIDFromContext(c)
	if err := h.missionUC.TrackDealRedemption(c.Request().Context(), userID, req.DealID, req.MerchantID); err != nil {
		logger.Error("Failed to track deal redemption", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to track deal redemption")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Deal redemption tracked", nil)
}

// QRScan records a merchant QR scan
func (h *MissionsHandler) QRScan(c echo.Context) error {
	var req qrScanRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.MerchantID == "" {
		return utils.BadRequestResponse(c, "merchant_id is required")
	}

	userID := middleware.UserIDFromContext(c)
	if err := h.missionUC.TrackQRScan(c.Request().Context(), userID, req.MerchantID); err != nil {
		logger.Error("Failed to track qr scan", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to track qr scan")
	}
	return utils.SuccessResponse(c, http.StatusOK, "QR scan tracked", nil)
}
