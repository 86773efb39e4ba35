package usecase

import (
	"context"
	"time"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
)

// advance is the TransitionFunc fired by the scheduler. A stale timer (ride
// finished, cancelled or replaced in the meantime) is a silent no-op.
func (uc *rideUC) advance(userID, rideID string, to models.RideStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ride, err := uc.flowRepo.GetActiveRide(ctx, userID)
	if err != nil || ride == nil || ride.ID != rideID {
		return
	}

	switch to {
	case models.RideStatusArriving:
		if ride.Status != models.RideStatusConfirmed {
			return
		}
		ride.Status = models.RideStatusArriving
		if err := uc.flowRepo.UpdateActiveRide(ctx, userID, ride); err != nil {
			logger.Error("Failed to advance ride status", logger.String("ride_id", rideID), logger.Err(err))
			return
		}
		uc.sched.Schedule(userID, rideID, models.RideStatusOngoing, uc.cfg.Rides.PickupDelay)

	case models.RideStatusOngoing:
		if ride.Status != models.RideStatusArriving {
			return
		}
		ride.Status = models.RideStatusOngoing
		if err := uc.flowRepo.UpdateActiveRide(ctx, userID, ride); err != nil {
			logger.Error("Failed to advance ride status", logger.String("ride_id", rideID), logger.Err(err))
			return
		}
		uc.sched.Schedule(userID, rideID, models.RideStatusCompleted, uc.cfg.Rides.DropDelay)

	case models.RideStatusCompleted:
		if ride.Status != models.RideStatusOngoing {
			return
		}
		if _, err := uc.CompleteRide(ctx, userID, rideID); err != nil {
			logger.Error("Failed to complete ride from scheduler", logger.String("ride_id", rideID), logger.Err(err))
		}
	}

	logger.Info("Ride status advanced",
		logger.String("user_id", userID),
		logger.String("ride_id", rideID),
		logger.String("status", string(to)))
}

// GetActiveRide returns the single active booking, or nil when there is none
func (uc *rideUC) GetActiveRide(ctx context.Context, userID string) (*models.RideBooking, error) {
	return uc.flowRepo.GetActiveRide(ctx, userID)
}

// UpdateRideStatus overwrites the active ride's status in place. A ride id
// that does not match the active ride is a no-op, state unchanged.
func (uc *rideUC) UpdateRideStatus(ctx context.Context, userID, rideID string, status models.RideStatus) error {
	ride, err := uc.flowRepo.GetActiveRide(ctx, userID)
	if err != nil {
		return err
	}
	if ride == nil || ride.ID != rideID {
		logger.Debug("Ignoring status update for non-active ride",
			logger.String("user_id", userID),
			logger.String("ride_id", rideID))
		return nil
	}

	ride.Status = status
	return uc.flowRepo.UpdateActiveRide(ctx, userID, ride)
}

// CompleteRide archives the active ride as completed, clears the active slot
// and the location selection, and publishes the completion event.
func (uc *rideUC) CompleteRide(ctx context.Context, userID, rideID string) (*models.RideBooking, error) {
	ride, err := uc.flowRepo.GetActiveRide(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ride == nil || ride.ID != rideID {
		return nil, rides.ErrRideNotFound
	}

	now := time.Now()
	ride.Status = models.RideStatusCompleted
	ride.CompletedAt = &now

	if err := uc.archiveAndClear(ctx, userID, ride); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishRideCompleted(ctx, models.RideEvent{
		UserID:     userID,
		RideID:     ride.ID,
		ProviderID: ride.ProviderID,
		DealID:     ride.DealID,
		Status:     ride.Status,
		Timestamp:  now,
	}); err != nil {
		logger.Warn("Failed to publish ride completed event",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}

	logger.Info("Ride completed",
		logger.String("user_id", userID),
		logger.String("ride_id", ride.ID))

	return ride, nil
}

// CancelRide cancels the active ride. The exchange is notified best-effort:
// a failed remote cancel is logged and local state stays authoritative.
func (uc *rideUC) CancelRide(ctx context.Context, userID, rideID, reason string) (*models.RideBooking, error) {
	ride, err := uc.flowRepo.GetActiveRide(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ride == nil || ride.ID != rideID {
		return nil, rides.ErrRideNotFound
	}
	if ride.Status != models.RideStatusConfirmed && ride.Status != models.RideStatusArriving {
		return nil, rides.ErrNotCancellable
	}

	if ride.OrderID != "" && ride.TransactionID != "" {
		if err := uc.gw.Cancel(ctx, ride.TransactionID, ride.OrderID, reason); err != nil {
			logger.Warn("Exchange cancel failed, proceeding with local cancellation",
				logger.String("ride_id", ride.ID),
				logger.String("order_id", ride.OrderID),
				logger.Err(err))
		}
	}

	now := time.Now()
	ride.Status = models.RideStatusCancelled
	ride.CompletedAt = &now

	if err := uc.archiveAndClear(ctx, userID, ride); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishRideCancelled(ctx, models.RideEvent{
		UserID:     userID,
		RideID:     ride.ID,
		ProviderID: ride.ProviderID,
		DealID:     ride.DealID,
		Status:     ride.Status,
		Timestamp:  now,
	}); err != nil {
		logger.Warn("Failed to publish ride cancelled event",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
	}

	logger.Info("Ride cancelled",
		logger.String("user_id", userID),
		logger.String("ride_id", ride.ID),
		logger.String("reason", reason))

	return ride, nil
}

// archiveAndClear moves a terminal ride into history and resets the booking
// flow state. The pending lifecycle timer for the ride is dropped.
func (uc *rideUC) archiveAndClear(ctx context.Context, userID string, ride *models.RideBooking) error {
	uc.sched.Cancel(ride.ID)

	if err := uc.histRepo.ArchiveRide(ctx, ride); err != nil {
		return err
	}
	if err := uc.flowRepo.ClearActiveRide(ctx, userID); err != nil {
		return err
	}
	return uc.flowRepo.ClearLocations(ctx, userID)
}

// RefreshRideStatus queries the exchange for the out-of-band order status.
// The remote status is reported to the caller and logged but deliberately not
// applied to the local state machine; timers remain the only driver of
// progression until a webhook integration lands.
func (uc *rideUC) RefreshRideStatus(ctx context.Context, userID, rideID string) (string, error) {
	ride, err := uc.flowRepo.GetActiveRide(ctx, userID)
	if err != nil {
		return "", err
	}
	if ride == nil || ride.ID != rideID {
		return "", rides.ErrRideNotFound
	}
	if ride.OrderID == "" || ride.TransactionID == "" {
		logger.Debug("No exchange order to refresh",
			logger.String("ride_id", rideID))
		return "", nil
	}

	remoteStatus, err := uc.gw.Status(ctx, ride.TransactionID, ride.OrderID)
	if err != nil {
		return "", err
	}

	logger.Info("Exchange reports order status",
		logger.String("ride_id", ride.ID),
		logger.String("order_id", ride.OrderID),
		logger.String("remote_status", remoteStatus),
		logger.String("local_status", string(ride.Status)))

	return remoteStatus, nil
}

// RideHistory lists the user's archived rides, most recent first
func (uc *rideUC) RideHistory(ctx context.Context, userID string, limit int) ([]*models.RideBooking, error) {
	if limit <= 0 || limit > uc.cfg.Rides.HistoryLimit {
		limit = uc.cfg.Rides.HistoryLimit
	}
	return uc.histRepo.ListRides(ctx, userID, limit)
}
