package nats

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/missions/mocks"
)

func newEventTest(t *testing.T) (*Handler, *mocks.MockMissionUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockMissionUC(ctrl)
	return NewHandler(mockUC, nil), mockUC
}

func TestHandleRideBooked_TracksMissionProgress(t *testing.T) {
	// Arrange
	h, mockUC := newEventTest(t)
	mockUC.EXPECT().TrackRideBooking(gomock.Any(), "user-1", "deal-7").Return(nil)

	data, err := json.Marshal(models.RideEvent{
		RideID:     "ride-1",
		UserID:     "user-1",
		ProviderID: "namma_yatri",
		DealID:     "deal-7",
	})
	assert.NoError(t, err)

	// Act
	err = h.handleRideBooked(data)

	// Assert
	assert.NoError(t, err)
}

func TestHandleRideBooked_MissingUserID(t *testing.T) {
	// Arrange
	h, _ := newEventTest(t)

	data, err := json.Marshal(models.RideEvent{RideID: "ride-1"})
	assert.NoError(t, err)

	// Act
	err = h.handleRideBooked(data)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing user id")
}

func TestHandleRideBooked_MalformedPayload(t *testing.T) {
	// Arrange
	h, _ := newEventTest(t)

	// Act
	err := h.handleRideBooked([]byte("not json"))

	// Assert
	assert.Error(t, err)
}

func TestHandleDealRedeemed_TracksMissionProgress(t *testing.T) {
	// Arrange
	h, mockUC := newEventTest(t)
	mockUC.EXPECT().TrackDealRedemption(gomock.Any(), "user-1", "deal-weekend-saver", "merchant-9").Return(nil)

	data, err := json.Marshal(models.DealEvent{
		UserID:     "user-1",
		DealID:     "deal-weekend-saver",
		MerchantID: "merchant-9",
	})
	assert.NoError(t, err)

	// Act
	err = h.handleDealRedeemed(data)

	// Assert
	assert.NoError(t, err)
}

func TestHandleQRScanned_TracksMissionProgress(t *testing.T) {
	// Arrange
	h, mockUC := newEventTest(t)
	mockUC.EXPECT().TrackQRScan(gomock.Any(), "user-1", "merchant-9").Return(nil)

	data, err := json.Marshal(models.ScanEvent{
		UserID:     "user-1",
		MerchantID: "merchant-9",
	})
	assert.NoError(t, err)

	// Act
	err = h.handleQRScanned(data)

	// Assert
	assert.NoError(t, err)
}
