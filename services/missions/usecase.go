package missions

import (
	"context"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// MissionUC defines the interface for mission progress tracking
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/lokalapp/lokal/services/missions MissionUC
type MissionUC interface {
	// ListMissions returns the user's missions, seeding the starter set when
	// the store is empty.
	ListMissions(ctx context.Context, userID string) ([]*models.Mission, error)

	// Event tracking. Each call is broadcast over every mission's every step;
	// steps that match the event are completed exactly once.
	TrackRideBooking(ctx context.Context, userID, dealID string) error
	TrackDealRedemption(ctx context.Context, userID, dealID, merchantID string) error
	TrackQRScan(ctx context.Context, userID, merchantID string) error
}
