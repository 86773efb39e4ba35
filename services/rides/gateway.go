package rides

import (
	"context"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// RideGW defines the outbound side of the ride service: the ONDC exchange
// calls and the platform event publishes.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lokalapp/lokal/services/rides RideGW
type RideGW interface {
	// Exchange calls. Search returns the normalized offers; the others carry
	// the transaction id established by Search.
	Search(ctx context.Context, transactionID string, pickup, destination models.Location) ([]models.Provider, error)
	Select(ctx context.Context, transactionID string, provider *models.Provider) error
	Init(ctx context.Context, transactionID string, provider *models.Provider) error
	Confirm(ctx context.Context, transactionID string, provider *models.Provider) (*models.ExchangeOrder, error)
	Status(ctx context.Context, transactionID, orderID string) (string, error)
	Cancel(ctx context.Context, transactionID, orderID, reason string) error

	// Event publishes
	PublishRideBooked(ctx context.Context, event models.RideEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideEvent) error
	PublishRideCancelled(ctx context.Context, event models.RideEvent) error
}
