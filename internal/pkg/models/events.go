package models

import "time"

// RideEvent is published on ride.booked / ride.completed / ride.cancelled
type RideEvent struct {
	UserID     string     `json:"user_id"`
	RideID     string     `json:"ride_id"`
	ProviderID string     `json:"provider_id"`
	DealID     string     `json:"deal_id,omitempty"`
	Status     RideStatus `json:"status"`
	Timestamp  time.Time  `json:"timestamp"`
}

// DealEvent is published on deal.redeemed
type DealEvent struct {
	UserID     string    `json:"user_id"`
	DealID     string    `json:"deal_id"`
	MerchantID string    `json:"merchant_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ScanEvent is published on qr.scanned
type ScanEvent struct {
	UserID     string    `json:"user_id"`
	MerchantID string    `json:"merchant_id"`
	Timestamp  time.Time `json:"timestamp"`
}
