package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	natsio "github.com/nats-io/nats.go"

	"github.com/lokalapp/lokal/internal/pkg/constants"
	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
)

const handleTimeout = 10 * time.Second

// InitConsumers subscribes to the events that complete mission steps
func (h *Handler) InitConsumers() error {
	rideSub, err := h.natsClient.QueueSubscribe(constants.SubjectRideBooked, constants.QueueGroupMissions, func(msg *natsio.Msg) {
		if err := h.handleRideBooked(msg.Data); err != nil {
			logger.Error("Failed to handle ride booked event", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride booked events: %w", err)
	}
	h.subs = append(h.subs, rideSub)

	dealSub, err := h.natsClient.QueueSubscribe(constants.SubjectDealRedeemed, constants.QueueGroupMissions, func(msg *natsio.Msg) {
		if err := h.handleDealRedeemed(msg.Data); err != nil {
			logger.Error("Failed to handle deal redeemed event", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to deal redeemed events: %w", err)
	}
	h.subs = append(h.subs, dealSub)

	scanSub, err := h.natsClient.QueueSubscribe(constants.SubjectQRScanned, constants.QueueGroupMissions, func(msg *natsio.Msg) {
		if err := h.handleQRScanned(msg.Data); err != nil {
			logger.Error("Failed to handle qr scanned event", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to qr scanned events: %w", err)
	}
	h.subs = append(h.subs, scanSub)

	return nil
}

func (h *Handler) handleRideBooked(data []byte) error {
	var event models.RideEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride event: %w", err)
	}
	if event.UserID == "" {
		return fmt.Errorf("ride event missing user id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	return h.missionUC.TrackRideBooking(ctx, event.UserID, event.DealID)
}

func (h *Handler) handleDealRedeemed(data []byte) error {
	var event models.DealEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal deal event: %w", err)
	}
	if event.UserID == "" {
		return fmt.Errorf("deal event missing user id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	return h.missionUC.TrackDealRedemption(ctx, event.UserID, event.DealID, event.MerchantID)
}

func (h *Handler) handleQRScanned(data []byte) error {
	var event models.ScanEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal scan event: %w", err)
	}
	if event.UserID == "" {
		return fmt.Errorf("scan event missing user id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	return h.missionUC.TrackQRScan(ctx, event.UserID, event.MerchantID)
}
