package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/internal/utils"
	"github.com/lokalapp/lokal/services/rides"
)

// FallbackNotice is surfaced to the client when the demo catalog substitutes
// for live exchange offers.
const FallbackNotice = "Using demo providers: the live exchange returned no offers"

// SearchRides issues a search against the exchange and replaces the user's
// provider list with the normalized offers. A failed or empty search degrades
// to the fixed demo catalog instead of blocking the flow; only a missing
// location selection is a hard error.
func (uc *rideUC) SearchRides(ctx context.Context, userID string) (*models.ProviderCatalog, error) {
	pickup, err := uc.flowRepo.GetPickup(ctx, userID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.flowRepo.GetDestination(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pickup == nil || destination == nil {
		return nil, rides.ErrMissingLocations
	}

	transactionID := uuid.New().String()

	var offers []models.Provider
	searchErr := uc.breaker.Execute(ctx, func(ctx context.Context) error {
		var gwErr error
		offers, gwErr = uc.gw.Search(ctx, transactionID, *pickup, *destination)
		return gwErr
	})

	catalog := &models.ProviderCatalog{TransactionID: transactionID}
	if searchErr != nil || len(offers) == 0 {
		if searchErr != nil {
			logger.Warn("Exchange search failed, substituting demo catalog",
				logger.String("user_id", userID),
				logger.String("transaction_id", transactionID),
				logger.Err(searchErr))
		} else {
			logger.Warn("Exchange search returned no usable offers, substituting demo catalog",
				logger.String("user_id", userID),
				logger.String("transaction_id", transactionID))
		}
		offers = uc.fallbackCatalog(*pickup, *destination)
		catalog.Fallback = true
		catalog.Notice = FallbackNotice
	}
	catalog.Providers = offers

	if err := uc.flowRepo.SaveProviders(ctx, userID, transactionID, offers); err != nil {
		return nil, err
	}

	logger.Info("Provider catalog replaced",
		logger.String("user_id", userID),
		logger.String("transaction_id", transactionID),
		logger.Int("providers", len(offers)),
		logger.Bool("fallback", catalog.Fallback))

	return catalog, nil
}

// ListProviders returns the offers from the latest search
func (uc *rideUC) ListProviders(ctx context.Context, userID string) ([]models.Provider, error) {
	return uc.flowRepo.GetProviders(ctx, userID)
}

// fallbackCatalog builds the fixed four-entry demo catalog, priced from the
// haversine distance of the selected trip.
func (uc *rideUC) fallbackCatalog(pickup, destination models.Location) []models.Provider {
	distance := utils.CalculateDistance(pickup, destination)
	pricing := uc.cfg.Pricing

	return []models.Provider{
		{
			ID:            "namma_yatri",
			Name:          "Namma Yatri",
			Type:          models.VehicleTypeAuto,
			BasePrice:     pricing.AutoBaseFare + pricing.AutoPerKm*distance,
			EstimatedTime: utils.EstimateTravelMinutes(distance, 22) + 3,
			Rating:        4.5,
			Available:     true,
			Distance:      distance,
			Currency:      pricing.Currency,
		},
		{
			ID:            "auto_raja",
			Name:          "Auto Raja",
			Type:          models.VehicleTypeAuto,
			BasePrice:     pricing.AutoBaseFare + pricing.AutoPerKm*distance,
			EstimatedTime: utils.EstimateTravelMinutes(distance, 22) + 6,
			Rating:        4.1,
			Available:     true,
			Distance:      distance,
			Currency:      pricing.Currency,
		},
		{
			ID:            "urban_cabs",
			Name:          "Urban Cabs",
			Type:          models.VehicleTypeCar,
			BasePrice:     pricing.CarBaseFare + pricing.CarPerKm*distance,
			EstimatedTime: utils.EstimateTravelMinutes(distance, 28) + 5,
			Rating:        4.3,
			Available:     true,
			Distance:      distance,
			Currency:      pricing.Currency,
		},
		{
			ID:            "bmtc_shuttle",
			Name:          "BMTC Shuttle",
			Type:          models.VehicleTypeBus,
			BasePrice:     pricing.BusFlatFare,
			EstimatedTime: utils.EstimateTravelMinutes(distance, 18) + 10,
			Rating:        3.9,
			Available:     true,
			Distance:      distance,
			Currency:      pricing.Currency,
		},
	}
}
