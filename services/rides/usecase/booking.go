package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lokalapp/lokal/internal/pkg/constants"
	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
)

// BookRide books the chosen provider for the user's selected trip. Offers
// carrying exchange identifiers go through the select/init/confirm sequence;
// the rest are synthesized locally. Fails fast when a ride is already active.
func (uc *rideUC) BookRide(ctx context.Context, userID, providerID, dealID string) (*models.RideBooking, error) {
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

	active, err := uc.flowRepo.GetActiveRide(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, rides.ErrRideInProgress
	}

	provider, err := uc.flowRepo.GetProvider(ctx, userID, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, rides.ErrUnknownProvider
	}

	transactionID, err := uc.flowRepo.GetTransactionID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var order *models.ExchangeOrder
	integrated := provider.HasExchangeIDs() && transactionID != ""
	if integrated {
		order, err = uc.bookThroughExchange(ctx, transactionID, provider)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Info("Provider has no exchange identifiers, synthesizing booking locally",
			logger.String("user_id", userID),
			logger.String("provider_id", providerID))
	}

	details := SynthesizeBookingDetails(order)

	ride := &models.RideBooking{
		ID:            uuid.New().String(),
		UserID:        userID,
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		Type:          provider.Type,
		Pickup:        *pickup,
		Destination:   *destination,
		Price:         provider.BasePrice,
		EstimatedTime: provider.EstimatedTime,
		Status:        models.RideStatusConfirmed,
		BookedAt:      time.Now(),
		OrderID:       details.OrderID,
		DriverName:    details.DriverName,
		DriverPhone:   details.DriverPhone,
		VehicleNumber: details.VehicleNumber,
		OTP:           details.OTP,
		TrackingURL:   details.TrackingURL,
		DealID:        dealID,
	}
	if integrated {
		ride.TransactionID = transactionID
	}

	if err := uc.flowRepo.SetActiveRide(ctx, userID, ride); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishRideBooked(ctx, models.RideEvent{
		UserID:     userID,
		RideID:     ride.ID,
		ProviderID: ride.ProviderID,
		DealID:     dealID,
		Status:     ride.Status,
		Timestamp:  ride.BookedAt,
	}); err != nil {
		// Event delivery never fails the booking itself
		logger.Warn("Failed to publish "+constants.SubjectRideBooked,
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}

	if uc.cfg.Rides.AutoAdvance {
		uc.sched.Schedule(userID, ride.ID, models.RideStatusArriving, uc.cfg.Rides.ArrivingDelay)
	}

	logger.Info("Ride booked",
		logger.String("user_id", userID),
		logger.String("ride_id", ride.ID),
		logger.String("provider", ride.ProviderName),
		logger.Bool("exchange", integrated))

	return ride, nil
}

// bookThroughExchange runs the strictly ordered select, init, confirm
// sequence. Each step must succeed before the next begins; the first failure
// aborts with an error naming the step. The pauses stand in for the
// asynchronous on_select/on_init callbacks of the live network.
func (uc *rideUC) bookThroughExchange(ctx context.Context, transactionID string, provider *models.Provider) (*models.ExchangeOrder, error) {
	if err := uc.gw.Select(ctx, transactionID, provider); err != nil {
		return nil, &rides.StepError{Step: "select", Err: err}
	}
	if err := uc.pause(ctx, uc.cfg.ONDC.StepDelay); err != nil {
		return nil, err
	}

	if err := uc.gw.Init(ctx, transactionID, provider); err != nil {
		return nil, &rides.StepError{Step: "init", Err: err}
	}
	if err := uc.pause(ctx, uc.cfg.ONDC.StepDelay); err != nil {
		return nil, err
	}

	order, err := uc.gw.Confirm(ctx, transactionID, provider)
	if err != nil {
		return nil, &rides.StepError{Step: "confirm", Err: err}
	}
	return order, nil
}
