package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
	"github.com/lokalapp/lokal/services/rides/mocks"
)

func expectFlowState(mockFlow *mocks.MockFlowRepo, userID string, provider *models.Provider, transactionID string) {
	mockFlow.EXPECT().GetPickup(gomock.Any(), userID).Return(&testPickup, nil)
	mockFlow.EXPECT().GetDestination(gomock.Any(), userID).Return(&testDestination, nil)
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), userID).Return(nil, nil)
	mockFlow.EXPECT().GetProvider(gomock.Any(), userID, provider.ID).Return(provider, nil)
	mockFlow.EXPECT().GetTransactionID(gomock.Any(), userID).Return(transactionID, nil)
}

func TestBookRide_FallbackProviderSynthesized(t *testing.T) {
	// Arrange
	uc, mockFlow, _, mockGW := newTestUC(t, testConfig())

	provider := &models.Provider{
		ID:        "namma_yatri",
		Name:      "Namma Yatri",
		Type:      models.VehicleTypeAuto,
		BasePrice: 112.5,
		Available: true,
	}
	expectFlowState(mockFlow, "user-1", provider, "txn-1")
	mockFlow.EXPECT().SetActiveRide(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideBooked(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "namma_yatri", "")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusConfirmed, ride.Status)
	assert.Equal(t, "Namma Yatri", ride.ProviderName)
	assert.Equal(t, 112.5, ride.Price)
	assert.NotEmpty(t, ride.ID)
	assert.NotEmpty(t, ride.DriverName)
	assert.NotEmpty(t, ride.DriverPhone)
	assert.NotEmpty(t, ride.VehicleNumber)
	assert.Regexp(t, `^\d{4}$`, ride.OTP)
	// A fallback booking holds no exchange references
	assert.Empty(t, ride.OrderID)
	assert.Empty(t, ride.TransactionID)
}

func TestBookRide_ExchangeProviderRunsOrderedSequence(t *testing.T) {
	// Arrange
	uc, mockFlow, _, mockGW := newTestUC(t, testConfig())

	provider := &models.Provider{
		ID:            "ny/item-1",
		Name:          "Namma Yatri",
		Type:          models.VehicleTypeAuto,
		BasePrice:     95,
		ItemID:        "item-1",
		FulfillmentID: "f-1",
	}
	order := &models.ExchangeOrder{
		OrderID:       "ord-42",
		DriverName:    "Exchange Driver",
		DriverPhone:   "+919812345678",
		VehicleNumber: "KA01AB1234",
		OTP:           "7777",
		TrackingURL:   "https://track.example/ord-42",
	}

	expectFlowState(mockFlow, "user-1", provider, "txn-9")
	gomock.InOrder(
		mockGW.EXPECT().Select(gomock.Any(), "txn-9", provider).Return(nil),
		mockGW.EXPECT().Init(gomock.Any(), "txn-9", provider).Return(nil),
		mockGW.EXPECT().Confirm(gomock.Any(), "txn-9", provider).Return(order, nil),
	)
	mockFlow.EXPECT().SetActiveRide(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideBooked(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "ny/item-1", "deal-7")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "ord-42", ride.OrderID)
	assert.Equal(t, "txn-9", ride.TransactionID)
	assert.Equal(t, "Exchange Driver", ride.DriverName)
	assert.Equal(t, "7777", ride.OTP)
	assert.Equal(t, "deal-7", ride.DealID)
}

func TestBookRide_ActiveRideConflict(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	existing := &models.RideBooking{ID: "ride-1", Status: models.RideStatusOngoing}
	mockFlow.EXPECT().GetPickup(gomock.Any(), "user-1").Return(&testPickup, nil)
	mockFlow.EXPECT().GetDestination(gomock.Any(), "user-1").Return(&testDestination, nil)
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(existing, nil)

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "namma_yatri", "")

	// Assert
	assert.ErrorIs(t, err, rides.ErrRideInProgress)
	assert.Nil(t, ride)
}

func TestBookRide_UnknownProvider(t *testing.T) {
	// Arrange
	uc, mockFlow, _, _ := newTestUC(t, testConfig())

	mockFlow.EXPECT().GetPickup(gomock.Any(), "user-1").Return(&testPickup, nil)
	mockFlow.EXPECT().GetDestination(gomock.Any(), "user-1").Return(&testDestination, nil)
	mockFlow.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(nil, nil)
	mockFlow.EXPECT().GetProvider(gomock.Any(), "user-1", "ghost").Return(nil, nil)

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "ghost", "")

	// Assert
	assert.ErrorIs(t, err, rides.ErrUnknownProvider)
	assert.Nil(t, ride)
}

func TestBookRide_SelectFailureAbortsSequence(t *testing.T) {
	// Arrange
	uc, mockFlow, _, mockGW := newTestUC(t, testConfig())

	provider := &models.Provider{
		ID:            "ny/item-1",
		ItemID:        "item-1",
		FulfillmentID: "f-1",
	}
	expectFlowState(mockFlow, "user-1", provider, "txn-9")
	mockGW.EXPECT().Select(gomock.Any(), "txn-9", provider).Return(errors.New("NACK"))

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "ny/item-1", "")

	// Assert
	assert.Nil(t, ride)
	var stepErr *rides.StepError
	assert.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "select", stepErr.Step)
}

func TestBookRide_StaleTransactionBooksLocally(t *testing.T) {
	// Arrange
	uc, mockFlow, _, mockGW := newTestUC(t, testConfig())

	// Exchange identifiers without a stored transaction id cannot be booked
	// through the exchange
	provider := &models.Provider{
		ID:            "ny/item-1",
		Name:          "Namma Yatri",
		ItemID:        "item-1",
		FulfillmentID: "f-1",
		BasePrice:     95,
	}
	expectFlowState(mockFlow, "user-1", provider, "")
	mockFlow.EXPECT().SetActiveRide(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideBooked(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "ny/item-1", "")

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, ride.TransactionID)
	assert.Empty(t, ride.OrderID)
}

func TestBookRide_PublishFailureDoesNotFailBooking(t *testing.T) {
	// Arrange
	uc, mockFlow, _, mockGW := newTestUC(t, testConfig())

	provider := &models.Provider{ID: "auto_raja", Name: "Auto Raja", BasePrice: 80}
	expectFlowState(mockFlow, "user-1", provider, "txn-1")
	mockFlow.EXPECT().SetActiveRide(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideBooked(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	// Act
	ride, err := uc.BookRide(context.Background(), "user-1", "auto_raja", "")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, ride)
}

func TestSynthesizeBookingDetails_NilOrderHasNoOrderID(t *testing.T) {
	// Act
	details := SynthesizeBookingDetails(nil)

	// Assert
	assert.Empty(t, details.OrderID)
	assert.NotEmpty(t, details.DriverName)
	assert.NotEmpty(t, details.DriverPhone)
	assert.NotEmpty(t, details.VehicleNumber)
	assert.Regexp(t, `^\d{4}$`, details.OTP)
}

func TestSynthesizeBookingDetails_FillsOnlyGaps(t *testing.T) {
	// Arrange
	order := &models.ExchangeOrder{
		OrderID:    "ord-1",
		DriverName: "Assigned Driver",
	}

	// Act
	details := SynthesizeBookingDetails(order)

	// Assert
	assert.Equal(t, "ord-1", details.OrderID)
	assert.Equal(t, "Assigned Driver", details.DriverName)
	assert.NotEmpty(t, details.DriverPhone)
	assert.NotEmpty(t, details.VehicleNumber)
	assert.NotEmpty(t, details.OTP)
}

func TestSynthesizeBookingDetails_DefaultsOrderIDForExchangeOrders(t *testing.T) {
	// Act
	details := SynthesizeBookingDetails(&models.ExchangeOrder{})

	// Assert
	assert.NotEmpty(t, details.OrderID)
	assert.Contains(t, details.OrderID, "ord-")
}
