package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/database"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

func newHistoryRepo(t *testing.T) (*HistoryRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "pgx")
	return NewHistoryRepo(&models.Config{}, database.NewPostgresClientFromDB(db)), mock
}

func TestHistoryRepo_ArchiveRide(t *testing.T) {
	// Arrange
	repo, mock := newHistoryRepo(t)

	completedAt := time.Now()
	ride := &models.RideBooking{
		ID:           "ride-1",
		UserID:       "user-1",
		ProviderID:   "namma_yatri",
		ProviderName: "Namma Yatri",
		Type:         models.VehicleTypeAuto,
		Pickup:       models.Location{Latitude: 12.9756, Longitude: 77.6066, Address: "MG Road"},
		Destination:  models.Location{Latitude: 12.9352, Longitude: 77.6245, Address: "Koramangala"},
		Price:        112.5,
		Status:       models.RideStatusCompleted,
		BookedAt:     completedAt.Add(-20 * time.Minute),
		CompletedAt:  &completedAt,
		DriverName:   "Ravi Kumar",
	}

	mock.ExpectExec("INSERT INTO ride_history").
		WillReturnResult(sqlmock.NewResult(1, 1))

	// Act
	err := repo.ArchiveRide(context.Background(), ride)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepo_ListRides(t *testing.T) {
	// Arrange
	repo, mock := newHistoryRepo(t)

	bookedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	completedAt := bookedAt.Add(25 * time.Minute)

	columns := []string{
		"id", "user_id", "transaction_id", "order_id", "provider_id", "provider_name",
		"vehicle_type", "pickup_lat", "pickup_lng", "pickup_address",
		"destination_lat", "destination_lng", "destination_address",
		"price", "estimated_time", "status", "booked_at", "completed_at",
		"driver_name", "driver_phone", "vehicle_number", "deal_id",
	}
	rows := sqlmock.NewRows(columns).
		AddRow("ride-2", "user-1", "txn-2", "ord-2", "urban_cabs", "Urban Cabs",
			"car", 12.9756, 77.6066, "MG Road",
			12.9352, 77.6245, "Koramangala",
			160.0, 22, "completed", bookedAt.Add(time.Hour), completedAt.Add(time.Hour),
			"Anil Reddy", "+919812345678", "KA05CD5678", nil).
		AddRow("ride-1", "user-1", nil, nil, "namma_yatri", "Namma Yatri",
			"auto", 12.9756, 77.6066, "MG Road",
			12.9352, 77.6245, "Koramangala",
			112.5, 18, "cancelled", bookedAt, completedAt,
			"Ravi Kumar", "+919811111111", "KA01AB1234", "deal-7")

	mock.ExpectQuery("SELECT (.+) FROM ride_history").
		WithArgs("user-1", 20).
		WillReturnRows(rows)

	// Act
	history, err := repo.ListRides(context.Background(), "user-1", 20)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, history, 2)

	assert.Equal(t, "ride-2", history[0].ID)
	assert.Equal(t, models.RideStatusCompleted, history[0].Status)
	assert.Equal(t, "txn-2", history[0].TransactionID)
	assert.Empty(t, history[0].DealID)

	assert.Equal(t, "ride-1", history[1].ID)
	assert.Equal(t, models.RideStatusCancelled, history[1].Status)
	assert.Empty(t, history[1].TransactionID)
	assert.Equal(t, "deal-7", history[1].DealID)
	assert.NotNil(t, history[1].CompletedAt)
	assert.Equal(t, "MG Road", history[1].Pickup.Address)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepo_ListRides_Empty(t *testing.T) {
	// Arrange
	repo, mock := newHistoryRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM ride_history").
		WithArgs("user-9", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	history, err := repo.ListRides(context.Background(), "user-9", 50)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, history)
}
