package rides

import (
	"context"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// FlowRepo holds the per-user booking flow state: selected locations, the
// latest provider catalog with its transaction id, and the single active-ride
// slot. Missing values come back as nil, not errors.
//
//go:generate mockgen -destination=mocks/mock_flow_repo.go -package=mocks github.com/lokalapp/lokal/services/rides FlowRepo
type FlowRepo interface {
	SetPickup(ctx context.Context, userID string, loc *models.Location) error
	GetPickup(ctx context.Context, userID string) (*models.Location, error)
	SetDestination(ctx context.Context, userID string, loc *models.Location) error
	GetDestination(ctx context.Context, userID string) (*models.Location, error)
	ClearLocations(ctx context.Context, userID string) error

	SaveProviders(ctx context.Context, userID, transactionID string, providers []models.Provider) error
	GetProviders(ctx context.Context, userID string) ([]models.Provider, error)
	GetProvider(ctx context.Context, userID, providerID string) (*models.Provider, error)
	GetTransactionID(ctx context.Context, userID string) (string, error)

	// SetActiveRide claims the single active slot; returns ErrRideInProgress
	// when it is already occupied.
	SetActiveRide(ctx context.Context, userID string, ride *models.RideBooking) error
	// UpdateActiveRide overwrites the occupied slot in place.
	UpdateActiveRide(ctx context.Context, userID string, ride *models.RideBooking) error
	GetActiveRide(ctx context.Context, userID string) (*models.RideBooking, error)
	ClearActiveRide(ctx context.Context, userID string) error
}

// HistoryRepo archives terminal rides. History is append-only; archived rides
// are never mutated.
//
//go:generate mockgen -destination=mocks/mock_history_repo.go -package=mocks github.com/lokalapp/lokal/services/rides HistoryRepo
type HistoryRepo interface {
	ArchiveRide(ctx context.Context, ride *models.RideBooking) error
	ListRides(ctx context.Context, userID string, limit int) ([]*models.RideBooking, error)
}
