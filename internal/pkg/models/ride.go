package models

import "time"

// RideStatus represents the lifecycle state of a booking
type RideStatus string

const (
	RideStatusConfirmed RideStatus = "confirmed"
	RideStatusArriving  RideStatus = "arriving"
	RideStatusOngoing   RideStatus = "ongoing"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// Terminal reports whether the status archives the ride into history.
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// RideBooking is the central booking record. At most one booking is active per
// user at any time; terminal bookings move to the history list and are frozen.
type RideBooking struct {
	ID            string      `json:"id" db:"id"`
	UserID        string      `json:"user_id" db:"user_id"`
	TransactionID string      `json:"transaction_id,omitempty" db:"transaction_id"`
	OrderID       string      `json:"order_id,omitempty" db:"order_id"`
	ProviderID    string      `json:"provider_id" db:"provider_id"`
	ProviderName  string      `json:"provider_name" db:"provider_name"`
	Type          VehicleType `json:"type" db:"vehicle_type"`
	Pickup        Location    `json:"pickup"`
	Destination   Location    `json:"destination"`
	Price         float64     `json:"price" db:"price"`
	EstimatedTime int         `json:"estimated_time" db:"estimated_time"`
	Status        RideStatus  `json:"status" db:"status"`
	BookedAt      time.Time   `json:"booked_at" db:"booked_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
	DriverName    string      `json:"driver_name,omitempty" db:"driver_name"`
	DriverPhone   string      `json:"driver_phone,omitempty" db:"driver_phone"`
	VehicleNumber string      `json:"vehicle_number,omitempty" db:"vehicle_number"`
	OTP           string      `json:"otp,omitempty" db:"otp"`
	TrackingURL   string      `json:"tracking_url,omitempty" db:"tracking_url"`
	DealID        string      `json:"deal_id,omitempty" db:"deal_id"`
}

// ExchangeOrder carries the fields extracted from an on_confirm response.
// Any of them may be empty; the booking synthesizer fills the gaps.
type ExchangeOrder struct {
	OrderID       string `json:"order_id"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
	VehicleNumber string `json:"vehicle_number"`
	OTP           string `json:"otp"`
	TrackingURL   string `json:"tracking_url"`
}
