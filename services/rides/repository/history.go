package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lokalapp/lokal/internal/pkg/database"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

// HistoryRepo persists terminated rides in PostgreSQL
type HistoryRepo struct {
	cfg *models.Config
	db  *database.PostgresClient
}

// NewHistoryRepo creates a new ride history repository
func NewHistoryRepo(cfg *models.Config, db *database.PostgresClient) *HistoryRepo {
	return &HistoryRepo{
		cfg: cfg,
		db:  db,
	}
}

type historyRow struct {
	ID                 string         `db:"id"`
	UserID             string         `db:"user_id"`
	TransactionID      sql.NullString `db:"transaction_id"`
	OrderID            sql.NullString `db:"order_id"`
	ProviderID         string         `db:"provider_id"`
	ProviderName       string         `db:"provider_name"`
	Type               string         `db:"vehicle_type"`
	PickupLat          float64        `db:"pickup_lat"`
	PickupLng          float64        `db:"pickup_lng"`
	PickupAddress      string         `db:"pickup_address"`
	DestinationLat     float64        `db:"destination_lat"`
	DestinationLng     float64        `db:"destination_lng"`
	DestinationAddress string         `db:"destination_address"`
	Price              float64        `db:"price"`
	EstimatedTime      int            `db:"estimated_time"`
	Status             string         `db:"status"`
	BookedAt           time.Time      `db:"booked_at"`
	CompletedAt        sql.NullTime   `db:"completed_at"`
	DriverName         sql.NullString `db:"driver_name"`
	DriverPhone        sql.NullString `db:"driver_phone"`
	VehicleNumber      sql.NullString `db:"vehicle_number"`
	DealID             sql.NullString `db:"deal_id"`
}

// ArchiveRide inserts a terminated ride into the history table
func (r *HistoryRepo) ArchiveRide(ctx context.Context, ride *models.RideBooking) error {
	query := `
		INSERT INTO ride_history (
			id, user_id, transaction_id, order_id, provider_id, provider_name,
			vehicle_type, pickup_lat, pickup_lng, pickup_address,
			destination_lat, destination_lng, destination_address,
			price, estimated_time, status, booked_at, completed_at,
			driver_name, driver_phone, vehicle_number, deal_id
		) VALUES (
			:id, :user_id, :transaction_id, :order_id, :provider_id, :provider_name,
			:vehicle_type, :pickup_lat, :pickup_lng, :pickup_address,
			:destination_lat, :destination_lng, :destination_address,
			:price, :estimated_time, :status, :booked_at, :completed_at,
			:driver_name, :driver_phone, :vehicle_number, :deal_id
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, toHistoryRow(ride))
	if err != nil {
		return fmt.Errorf("failed to archive ride: %w", err)
	}
	return nil
}

// ListRides returns the user's terminated rides, newest first
func (r *HistoryRepo) ListRides(ctx context.Context, userID string, limit int) ([]*models.RideBooking, error) {
	query := `
		SELECT id, user_id, transaction_id, order_id, provider_id, provider_name,
			vehicle_type, pickup_lat, pickup_lng, pickup_address,
			destination_lat, destination_lng, destination_address,
			price, estimated_time, status, booked_at, completed_at,
			driver_name, driver_phone, vehicle_number, deal_id
		FROM ride_history
		WHERE user_id = $1
		ORDER BY booked_at DESC
		LIMIT $2`

	var rows []historyRow
	if err := r.db.GetDB().SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	result := make([]*models.RideBooking, 0, len(rows))
	for i := range rows {
		result = append(result, fromHistoryRow(&rows[i]))
	}
	return result, nil
}

func toHistoryRow(ride *models.RideBooking) historyRow {
	row := historyRow{
		ID:                 ride.ID,
		UserID:             ride.UserID,
		TransactionID:      nullString(ride.TransactionID),
		OrderID:            nullString(ride.OrderID),
		ProviderID:         ride.ProviderID,
		ProviderName:       ride.ProviderName,
		Type:               string(ride.Type),
		PickupLat:          ride.Pickup.Latitude,
		PickupLng:          ride.Pickup.Longitude,
		PickupAddress:      ride.Pickup.Address,
		DestinationLat:     ride.Destination.Latitude,
		DestinationLng:     ride.Destination.Longitude,
		DestinationAddress: ride.Destination.Address,
		Price:              ride.Price,
		EstimatedTime:      ride.EstimatedTime,
		Status:             string(ride.Status),
		BookedAt:           ride.BookedAt,
		DriverName:         nullString(ride.DriverName),
		DriverPhone:        nullString(ride.DriverPhone),
		VehicleNumber:      nullString(ride.VehicleNumber),
		DealID:             nullString(ride.DealID),
	}
	if ride.CompletedAt != nil {
		row.CompletedAt = sql.NullTime{Time: *ride.CompletedAt, Valid: true}
	}
	return row
}

func fromHistoryRow(row *historyRow) *models.RideBooking {
	ride := &models.RideBooking{
		ID:            row.ID,
		UserID:        row.UserID,
		TransactionID: row.TransactionID.String,
		OrderID:       row.OrderID.String,
		ProviderID:    row.ProviderID,
		ProviderName:  row.ProviderName,
		Type:          models.VehicleType(row.Type),
		Pickup: models.Location{
			Latitude:  row.PickupLat,
			Longitude: row.PickupLng,
			Address:   row.PickupAddress,
		},
		Destination: models.Location{
			Latitude:  row.DestinationLat,
			Longitude: row.DestinationLng,
			Address:   row.DestinationAddress,
		},
		Price:         row.Price,
		EstimatedTime: row.EstimatedTime,
		Status:        models.RideStatus(row.Status),
		BookedAt:      row.BookedAt,
		DriverName:    row.DriverName.String,
		DriverPhone:   row.DriverPhone.String,
		VehicleNumber: row.VehicleNumber.String,
		DealID:        row.DealID.String,
	}
	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		ride.CompletedAt = &completedAt
	}
	return ride
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
