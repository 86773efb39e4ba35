// Package usecase implements the mission progress tracker.
package usecase

import (
	"context"
	"time"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/missions"
)

type missionUC struct {
	cfg  *models.Config
	repo missions.MissionRepo
}

// NewMissionUC creates the mission usecase
func NewMissionUC(cfg *models.Config, repo missions.MissionRepo) missions.MissionUC {
	return &missionUC{
		cfg:  cfg,
		repo: repo,
	}
}

// ListMissions returns the user's missions, seeding the starter set on first
// access.
func (uc *missionUC) ListMissions(ctx context.Context, userID string) ([]*models.Mission, error) {
	userMissions, err := uc.repo.ListMissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(userMissions) > 0 {
		return userMissions, nil
	}

	userMissions = defaultMissions(time.Now())
	if err := uc.repo.SaveMissions(ctx, userID, userMissions); err != nil {
		return nil, err
	}
	logger.Info("Seeded starter missions",
		logger.String("user_id", userID),
		logger.Int("missions", len(userMissions)))
	return userMissions, nil
}

// TrackRideBooking completes ride steps for a newly booked ride
func (uc *missionUC) TrackRideBooking(ctx context.Context, userID, dealID string) error {
	return uc.track(ctx, userID, MatchRide(dealID))
}

// TrackDealRedemption completes deal steps for a redeemed deal
func (uc *missionUC) TrackDealRedemption(ctx context.Context, userID, dealID, merchantID string) error {
	return uc.track(ctx, userID, MatchDeal(dealID, merchantID))
}

// TrackQRScan completes scan and visit steps for a QR scan at a merchant
func (uc *missionUC) TrackQRScan(ctx context.Context, userID, merchantID string) error {
	return uc.track(ctx, userID, MatchScan(merchantID))
}

// track broadcasts the event over every mission's every step. Completed
// missions never reopen and completed steps never match again, so replayed
// events are harmless.
func (uc *missionUC) track(ctx context.Context, userID string, match StepMatcher) error {
	userMissions, err := uc.ListMissions(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, mission := range userMissions {
		if mission.Completed {
			continue
		}

		changed := false
		for i := range mission.Steps {
			step := &mission.Steps[i]
			if step.Completed || !match(*step) {
				continue
			}
			step.Completed = true
			completedAt := now
			step.CompletedAt = &completedAt
			changed = true
		}
		if !changed {
			continue
		}

		justCompleted := mission.RecalculateProgress(now)
		if err := uc.repo.SaveMission(ctx, userID, mission); err != nil {
			return err
		}

		logger.Info("Mission progress updated",
			logger.String("user_id", userID),
			logger.String("mission_id", mission.ID),
			logger.Int("progress", mission.Progress))
		if justCompleted {
			logger.Info("Mission completed",
				logger.String("user_id", userID),
				logger.String("mission_id", mission.ID),
				logger.Int("reward", mission.Reward))
		}
	}
	return nil
}

// defaultMissions is the starter set every new user begins with
func defaultMissions(now time.Time) []*models.Mission {
	startedAt := now
	return []*models.Mission{
		{
			ID:        "first-ride",
			Title:     "Take your first ride",
			Reward:    50,
			StartedAt: &startedAt,
			Steps: []models.MissionStep{
				{ID: "first-ride-book", Title: "Book a ride", Type: models.StepTypeRide},
			},
		},
		{
			ID:        "local-explorer",
			Title:     "Local explorer",
			Reward:    150,
			StartedAt: &startedAt,
			Steps: []models.MissionStep{
				{ID: "explorer-ride", Title: "Ride to a local market", Type: models.StepTypeRide},
				{ID: "explorer-scan", Title: "Scan a merchant QR code", Type: models.StepTypeScan},
				{ID: "explorer-deal", Title: "Redeem any deal", Type: models.StepTypeDeal},
			},
		},
		{
			ID:        "deal-hunter",
			Title:     "Deal hunter",
			Reward:    100,
			StartedAt: &startedAt,
			Steps: []models.MissionStep{
				{ID: "hunter-deal", Title: "Redeem the weekend saver deal", Type: models.StepTypeDeal, DealID: "deal-weekend-saver"},
				{ID: "hunter-ride", Title: "Book a ride with the weekend saver deal", Type: models.StepTypeRide, DealID: "deal-weekend-saver"},
			},
		},
	}
}
