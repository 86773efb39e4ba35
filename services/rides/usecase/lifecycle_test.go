package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
)

func activeRide(status models.RideStatus) *models.RideBooking {
	return &models.RideBooking{
		ID:           "ride-1",
		UserID:       "user-1",
		ProviderID:   "namma_yatri",
		ProviderName: "Namma Yatri",
		Status:       status,
	}
}

func TestAdvance_ConfirmedToArriving(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	ride := activeRide(models.RideStatusConfirmed)
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(ride, nil)
	mockFlow.EXPECT().UpdateActiveRide(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updated *models.RideBooking) error {
			assert.Equal(t, models.RideStatusArriving, updated.Status)
			return nil
		})

	// Act
	uc.advance("user-1", "ride-1", models.RideStatusArriving)
}

func TestAdvance_StaleTimerIsNoOp(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	// The active slot holds a different ride; the timer belongs to a ride
	// that already terminated
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(activeRide(models.RideStatusConfirmed), nil)

	// Act: no update expected
	uc.advance("user-1", "ride-gone", models.RideStatusArriving)
}

func TestAdvance_SkipsOutOfOrderTransition(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	// Ongoing ride must not move back to arriving
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(activeRide(models.RideStatusOngoing), nil)

	// Act: no update expected
	uc.advance("user-1", "ride-1", models.RideStatusArriving)
}

func TestUpdateRideStatus_NonActiveRideIsNoOp(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(activeRide(models.RideStatusConfirmed), nil)

	// Act
	err := uc.UpdateRideStatus(context.Background(), "user-1", "other-ride", models.RideStatusOngoing)

	// Assert: no error and no state written
	assert.NoError(t, err)
}

func TestCompleteRide_ArchivesAndClears(t *testing.T) {
	// Arrange
	uc, mockFlow, mockHist, mockGW := newTestUC(t, testConfig())

	ride := activeRide(models.RideStatusOngoing)
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(ride, nil)
	mockHist.EXPECT().ArchiveRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, archived *models.RideBooking) error {
			assert.Equal(t, models.RideStatusCompleted, archived.Status)
			assert.NotNil(t, archived.CompletedAt)
			return nil
		})
	mockFlow.EXPECT().ClearActiveRide(gomock.Any(), "user-1").Return(nil)
	mockFlow.EXPECT().ClearLocations(gomock.Any(), "user-1").Return(nil)
	mockGW.EXPECT().PublishRideCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	completed, err := uc.CompleteRide(context.Background(), "user-1", "ride-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, completed.Status)
}

func TestCompleteRide_WrongRideID(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(activeRide(models.RideStatusOngoing), nil)

	// Act
	completed, err := uc.CompleteRide(context.Background(), "user-1", "ride-other")

	// Assert
	assert.ErrorIs(t, err, rides.ErrRideNotFound)
	assert.Nil(t, completed)
}

func TestCancelRide_BeforePickup(t *testing.T) {
	// Arrange
	uc, mockFlow, mockHist, mockGW := newTestUC(t, testConfig())

	ride := activeRide(models.RideStatusArriving)
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(ride, nil)
	mockHist.EXPECT().ArchiveRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, archived *models.RideBooking) error {
			assert.Equal(t, models.RideStatusCancelled, archived.Status)
			assert.NotNil(t, archived.CompletedAt)
			return nil
		})
	mockFlow.EXPECT().ClearActiveRide(gomock.Any(), "user-1").Return(nil)
	mockFlow.EXPECT().ClearLocations(gomock.Any(), "user-1").Return(nil)
	mockGW.EXPECT().PublishRideCancelled(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	cancelled, err := uc.CancelRide(context.Background(), "user-1", "ride-1", "changed plans")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, cancelled.Status)
}

func TestCancelRide_AfterPickupRejected(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(activeRide(models.RideStatusOngoing), nil)

	// Act
	cancelled, err := uc.CancelRide(context.Background(), "user-1", "ride-1", "too late")

	// Assert
	assert.ErrorIs(t, err, rides.ErrNotCancellable)
	assert.Nil(t, cancelled)
}

func TestCancelRide_NotifiesExchangeBestEffort(t *testing.T) {
	// Arrange
	uc, mockFlow, mockHist, mockGW := newTestUC(t, testConfig())

	ride := activeRide(models.RideStatusConfirmed)
	ride.OrderID = "ord-42"
	ride.TransactionID = "txn-9"

	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(ride, nil)
	// Remote cancel fails; the local cancellation still goes through
	mockGW.EXPECT().Cancel(gomock.Any(), "txn-9", "ord-42", "driver no-show").Return(errors.New("exchange unreachable"))
	mockHist.EXPECT().ArchiveRide(gomock.Any(), gomock.Any()).Return(nil)
	mockFlow.EXPECT().ClearActiveRide(gomock.Any(), "user-1").Return(nil)
	mockFlow.EXPECT().ClearLocations(gomock.Any(), "user-1").Return(nil)
	mockGW.EXPECT().PublishRideCancelled(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	cancelled, err := uc.CancelRide(context.Background(), "user-1", "ride-1", "driver no-show")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, cancelled.Status)
}

func TestRefreshRideStatus_ReportsWithoutApplying(t *testing.T) {
	// Arrange
	uc, mockFlow, _, mockGW := newTestUC(t, testConfig())

	ride := activeRide(models.RideStatusArriving)
	ride.OrderID = "ord-42"
	ride.TransactionID = "txn-9"

	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(ride, nil)
	mockGW.EXPECT().Status(gomock.Any(), "txn-9", "ord-42").Return("RIDE_STARTED", nil)
	// No UpdateActiveRide expectation: the remote status is never applied

	// Act
	remote, err := uc.RefreshRideStatus(context.Background(), "user-1", "ride-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "RIDE_STARTED", remote)
	assert.Equal(t, models.RideStatusArriving, ride.Status)
}

func TestRefreshRideStatus_LocalBookingHasNothingToQuery(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(activeRide(models.RideStatusConfirmed), nil)

	// Act
	remote, err := uc.RefreshRideStatus(context.Background(), "user-1", "ride-1")

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, remote)
}

func TestRideHistory_ClampsLimit(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.Rides.HistoryLimit = 50
	uc, _, mockHist, _ := newTestUC(t, cfg)

	mockHist.EXPECT().ListRides(gomock.Any(), "user-1", 50).Return([]*models.RideBooking{}, nil).Times(2)
	mockHist.EXPECT().ListRides(gomock.Any(), "user-1", 10).Return([]*models.RideBooking{}, nil)

	// Act / Assert
	_, err := uc.RideHistory(context.Background(), "user-1", 0)
	assert.NoError(t, err)
	_, err = uc.RideHistory(context.Background(), "user-1", 500)
	assert.NoError(t, err)
	_, err = uc.RideHistory(context.Background(), "user-1", 10)
	assert.NoError(t, err)
}
