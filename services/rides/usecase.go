package rides

import (
	"context"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/lokalapp/lokal/services/rides RideUC
type RideUC interface {
	// Location selection
	SetPickup(ctx context.Context, userID string, loc models.Location) error
	SetDestination(ctx context.Context, userID string, loc models.Location) error
	ClearLocations(ctx context.Context, userID string) error

	// Provider catalog
	SearchRides(ctx context.Context, userID string) (*models.ProviderCatalog, error)
	ListProviders(ctx context.Context, userID string) ([]models.Provider, error)

	// Booking and lifecycle
	BookRide(ctx context.Context, userID, providerID, dealID string) (*models.RideBooking, error)
	GetActiveRide(ctx context.Context, userID string) (*models.RideBooking, error)
	UpdateRideStatus(ctx context.Context, userID, rideID string, status models.RideStatus) error
	CompleteRide(ctx context.Context, userID, rideID string) (*models.RideBooking, error)
	CancelRide(ctx context.Context, userID, rideID, reason string) (*models.RideBooking, error)
	RefreshRideStatus(ctx context.Context, userID, rideID string) (string, error)
	RideHistory(ctx context.Context, userID string, limit int) ([]*models.RideBooking, error)
}
