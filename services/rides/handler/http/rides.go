// Package http exposes the ride booking flow over echo.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/middleware"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/internal/utils"
	"github.com/lokalapp/lokal/services/rides"
)

// RidesHandler handles HTTP requests for the ride booking flow
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new rides HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{rideUC: rideUC}
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type bookRideRequest struct {
	ProviderID string `json:"provider_id"`
	DealID     string `json:"deal_id,omitempty"`
}

type cancelRideRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SetPickup stores the pickup location for the booking flow
func (h *RidesHandler) SetPickup(c echo.Context) error {
	return h.setLocation(c, h.rideUC.SetPickup)
}

// SetDestination stores the destination location for the booking flow
func (h *RidesHandler) SetDestination(c echo.Context) error {
	return h.setLocation(c, h.rideUC.SetDestination)
}

func (h *RidesHandler) setLocation(c echo.Context, set func(ctx context.Context, userID string, loc models.Location) error) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Latitude == 0 && req.Longitude == 0 {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	userID := middleware.UserIDFromContext(c)
	loc := models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	if err := set(c.Request().Context(), userID, loc); err != nil {
		logger.Error("Failed to store location", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to store location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location saved", loc)
}

// ClearLocations removes both selected locations
func (h *RidesHandler) ClearLocations(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if err := h.rideUC.ClearLocations(c.Request().Context(), userID); err != nil {
		logger.Error("Failed to clear locations", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to clear locations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Locations cleared", nil)
}

// SearchRides runs a provider search for the selected trip
func (h *RidesHandler) SearchRides(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	catalog, err := h.rideUC.SearchRides(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, rides.ErrMissingLocations) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Ride search failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Ride search failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Providers found", catalog)
}

// ListProviders returns the offers from the latest search
func (h *RidesHandler) ListProviders(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	providers, err := h.rideUC.ListProviders(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list providers", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list providers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Providers", providers)
}

// BookRide books the chosen provider
func (h *RidesHandler) BookRide(c echo.Context) error {
	var req bookRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.ProviderID == "" {
		return utils.BadRequestResponse(c, "provider_id is required")
	}

	userID := middleware.UserIDFromContext(c)
	ride, err := h.rideUC.BookRide(c.Request().Context(), userID, req.ProviderID, req.DealID)
	if err != nil {
		var stepErr *rides.StepError
		switch {
		case errors.Is(err, rides.ErrMissingLocations):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, rides.ErrUnknownProvider):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, rides.ErrRideInProgress):
			return utils.ConflictResponse(c, err.Error())
		case errors.As(err, &stepErr):
			logger.Error("Exchange booking failed",
				logger.String("step", stepErr.Step),
				logger.ErrorField(err))
			return utils.BadGatewayResponse(c, err.Error())
		default:
			logger.Error("Booking failed", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Booking failed")
		}
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride booked", ride)
}

// GetActiveRide returns the current active booking
func (h *RidesHandler) GetActiveRide(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	ride, err := h.rideUC.GetActiveRide(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get active ride", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get active ride")
	}
	if ride == nil {
		return utils.NotFoundResponse(c, "No active ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active ride", ride)
}

// CompleteRide finishes the active ride and archives it
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	rideID := c.Param("rideID")

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), userID, rideID)
	if err != nil {
		if errors.Is(err, rides.ErrRideNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to complete ride", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to complete ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}

// CancelRide cancels the active ride before pickup
func (h *RidesHandler) CancelRide(c echo.Context) error {
	var req cancelRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	userID := middleware.UserIDFromContext(c)
	rideID := c.Param("rideID")

	ride, err := h.rideUC.CancelRide(c.Request().Context(), userID, rideID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, rides.ErrRideNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, rides.ErrNotCancellable):
			return utils.ConflictResponse(c, err.Error())
		default:
			logger.Error("Failed to cancel ride", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to cancel ride")
		}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// RefreshRideStatus queries the exchange for the remote order state. The
// local lifecycle is timer-driven; the remote state is reported, not applied.
func (h *RidesHandler) RefreshRideStatus(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	rideID := c.Param("rideID")

	remoteStatus, err := h.rideUC.RefreshRideStatus(c.Request().Context(), userID, rideID)
	if err != nil {
		if errors.Is(err, rides.ErrRideNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to refresh ride status", logger.ErrorField(err))
		return utils.BadGatewayResponse(c, "Failed to refresh ride status")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Remote status", map[string]string{
		"remote_status": remoteStatus,
	})
}

// RideHistory lists the user's terminated rides, newest first
func (h *RidesHandler) RideHistory(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	history, err := h.rideUC.RideHistory(c.Request().Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list ride history", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list ride history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history", history)
}
