package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/database"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

func newMissionRepo(t *testing.T) *MissionRepo {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewMissionRepo(&models.Config{}, database.NewRedisClientFromAddr(mr.Addr()))
}

func TestMissionRepo_EmptyStore(t *testing.T) {
	repo := newMissionRepo(t)

	missions, err := repo.ListMissions(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Empty(t, missions)
}

func TestMissionRepo_SaveAndList(t *testing.T) {
	// Arrange
	repo := newMissionRepo(t)
	ctx := context.Background()

	startedAt := time.Now().UTC().Truncate(time.Second)
	missions := []*models.Mission{
		{
			ID:        "local-explorer",
			Title:     "Local explorer",
			Reward:    150,
			StartedAt: &startedAt,
			Steps: []models.MissionStep{
				{ID: "explorer-ride", Type: models.StepTypeRide},
				{ID: "explorer-scan", Type: models.StepTypeScan},
			},
		},
		{
			ID:     "first-ride",
			Title:  "Take your first ride",
			Reward: 50,
			Steps: []models.MissionStep{
				{ID: "first-ride-book", Type: models.StepTypeRide},
			},
		},
	}

	// Act
	assert.NoError(t, repo.SaveMissions(ctx, "user-1", missions))
	listed, err := repo.ListMissions(ctx, "user-1")

	// Assert: ordered by id
	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "first-ride", listed[0].ID)
	assert.Equal(t, "local-explorer", listed[1].ID)
	assert.Len(t, listed[1].Steps, 2)
}

func TestMissionRepo_SaveMission_Upserts(t *testing.T) {
	// Arrange
	repo := newMissionRepo(t)
	ctx := context.Background()

	mission := &models.Mission{
		ID:    "first-ride",
		Steps: []models.MissionStep{{ID: "first-ride-book", Type: models.StepTypeRide}},
	}
	assert.NoError(t, repo.SaveMission(ctx, "user-1", mission))

	// Act: complete the step and save again
	now := time.Now().UTC().Truncate(time.Second)
	mission.Steps[0].Completed = true
	mission.Steps[0].CompletedAt = &now
	mission.RecalculateProgress(now)
	assert.NoError(t, repo.SaveMission(ctx, "user-1", mission))

	// Assert
	listed, err := repo.ListMissions(ctx, "user-1")
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.True(t, listed[0].Completed)
	assert.Equal(t, 100, listed[0].Progress)
	assert.True(t, listed[0].Steps[0].Completed)
}

func TestMissionRepo_UsersAreIsolated(t *testing.T) {
	// Arrange
	repo := newMissionRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.SaveMission(ctx, "user-1", &models.Mission{ID: "first-ride"}))

	// Act
	other, err := repo.ListMissions(ctx, "user-2")

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, other)
}
