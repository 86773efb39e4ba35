package gateway

import (
	"context"
	"fmt"

	"github.com/lokalapp/lokal/internal/pkg/constants"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

// PublishRideBooked announces a confirmed booking to the platform
func (g *rideGW) PublishRideBooked(_ context.Context, event models.RideEvent) error {
	return g.publishEvent(constants.SubjectRideBooked, event)
}

// PublishRideCompleted announces a completed ride
func (g *rideGW) PublishRideCompleted(_ context.Context, event models.RideEvent) error {
	return g.publishEvent(constants.SubjectRideCompleted, event)
}

// PublishRideCancelled announces a cancelled ride
func (g *rideGW) PublishRideCancelled(_ context.Context, event models.RideEvent) error {
	return g.publishEvent(constants.SubjectRideCancelled, event)
}

func (g *rideGW) publishEvent(subject string, event models.RideEvent) error {
	if err := g.natsClient.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}
