package usecase

import (
	"context"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/internal/utils"
)

// SetPickup stores the pickup point for the user's booking flow
func (uc *rideUC) SetPickup(ctx context.Context, userID string, loc models.Location) error {
	logger.Debug("Setting pickup location",
		logger.String("user_id", userID),
		logger.String("geohash", utils.EncodeLocation(loc, 7)))
	return uc.flowRepo.SetPickup(ctx, userID, &loc)
}

// SetDestination stores the destination point for the user's booking flow
func (uc *rideUC) SetDestination(ctx context.Context, userID string, loc models.Location) error {
	logger.Debug("Setting destination location",
		logger.String("user_id", userID),
		logger.String("geohash", utils.EncodeLocation(loc, 7)))
	return uc.flowRepo.SetDestination(ctx, userID, &loc)
}

// ClearLocations resets the location selection state
func (uc *rideUC) ClearLocations(ctx context.Context, userID string) error {
	return uc.flowRepo.ClearLocations(ctx, userID)
}
