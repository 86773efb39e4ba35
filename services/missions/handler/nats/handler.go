// Package nats consumes the platform events that drive mission progress.
package nats

import (
	natsio "github.com/nats-io/nats.go"

	natspkg "github.com/lokalapp/lokal/internal/pkg/nats"
	"github.com/lokalapp/lokal/services/missions"
)

// Handler subscribes to platform events and feeds them into the mission
// tracker. Subscriptions share a queue group so replicas split the stream.
type Handler struct {
	missionUC  missions.MissionUC
	natsClient *natspkg.Client
	subs       []*natsio.Subscription
}

// NewHandler creates a new missions NATS handler
func NewHandler(missionUC missions.MissionUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		missionUC:  missionUC,
		natsClient: natsClient,
	}
}

// Close drains all subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = nil
}
