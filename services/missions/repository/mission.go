// Package repository stores mission state in Redis, one hash per user keyed
// by mission id.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lokalapp/lokal/internal/pkg/constants"
	"github.com/lokalapp/lokal/internal/pkg/database"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

type MissionRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewMissionRepo creates a new mission repository
func NewMissionRepo(cfg *models.Config, redisClient *database.RedisClient) *MissionRepo {
	return &MissionRepo{
		cfg:   cfg,
		redis: redisClient,
	}
}

// ListMissions returns all missions for the user, ordered by id for stable
// output. An empty slice means the user has not been seeded.
func (r *MissionRepo) ListMissions(ctx context.Context, userID string) ([]*models.Mission, error) {
	fields, err := r.redis.HGetAll(ctx, fmt.Sprintf(constants.KeyUserMissions, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load missions: %w", err)
	}

	result := make([]*models.Mission, 0, len(fields))
	for missionID, data := range fields {
		var mission models.Mission
		if err := json.Unmarshal([]byte(data), &mission); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mission %s: %w", missionID, err)
		}
		result = append(result, &mission)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SaveMission upserts one mission into the user's hash
func (r *MissionRepo) SaveMission(ctx context.Context, userID string, mission *models.Mission) error {
	data, err := json.Marshal(mission)
	if err != nil {
		return fmt.Errorf("failed to marshal mission %s: %w", mission.ID, err)
	}
	if err := r.redis.HSet(ctx, fmt.Sprintf(constants.KeyUserMissions, userID), mission.ID, data); err != nil {
		return fmt.Errorf("failed to save mission %s: %w", mission.ID, err)
	}
	return nil
}

// SaveMissions upserts a batch of missions
func (r *MissionRepo) SaveMissions(ctx context.Context, userID string, missions []*models.Mission) error {
	for _, mission := range missions {
		if err := r.SaveMission(ctx, userID, mission); err != nil {
			return err
		}
	}
	return nil
}
