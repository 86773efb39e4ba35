package missions

import (
	"context"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// MissionRepo stores each user's mission set
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lokalapp/lokal/services/missions MissionRepo
type MissionRepo interface {
	// ListMissions returns all missions for the user; an empty slice means the
	// store has not been seeded yet.
	ListMissions(ctx context.Context, userID string) ([]*models.Mission, error)
	// SaveMission upserts one mission.
	SaveMission(ctx context.Context, userID string, mission *models.Mission) error
	// SaveMissions upserts a batch, used by seeding.
	SaveMissions(ctx context.Context, userID string, missions []*models.Mission) error
}
