package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
	"github.com/lokalapp/lokal/services/rides/mocks"
)

func newHandlerTest(t *testing.T) (*RidesHandler, *mocks.MockRideUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockRideUC(ctrl)
	return NewRidesHandler(mockUC), mockUC
}

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	return c, rec
}

func TestSetPickup_Success(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	mockUC.EXPECT().SetPickup(gomock.Any(), "user-1", models.Location{
		Latitude:  12.9756,
		Longitude: 77.6066,
		Address:   "MG Road",
	}).Return(nil)

	c, rec := newContext(http.MethodPost, "/v1/rides/locations/pickup",
		`{"latitude": 12.9756, "longitude": 77.6066, "address": "MG Road"}`)

	// Act
	err := h.SetPickup(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetPickup_MissingCoordinates(t *testing.T) {
	// Arrange
	h, _ := newHandlerTest(t)
	c, rec := newContext(http.MethodPost, "/v1/rides/locations/pickup", `{"address": "MG Road"}`)

	// Act
	err := h.SetPickup(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRides_MissingLocations(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	mockUC.EXPECT().SearchRides(gomock.Any(), "user-1").Return(nil, rides.ErrMissingLocations)

	c, rec := newContext(http.MethodPost, "/v1/rides/search", "")

	// Act
	err := h.SearchRides(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookRide_Conflict(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	mockUC.EXPECT().BookRide(gomock.Any(), "user-1", "namma_yatri", "").
		Return(nil, rides.ErrRideInProgress)

	c, rec := newContext(http.MethodPost, "/v1/rides/bookings", `{"provider_id": "namma_yatri"}`)

	// Act
	err := h.BookRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookRide_ExchangeStepFailure(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	mockUC.EXPECT().BookRide(gomock.Any(), "user-1", "ny/item-1", "").
		Return(nil, &rides.StepError{Step: "init", Err: assert.AnError})

	c, rec := newContext(http.MethodPost, "/v1/rides/bookings", `{"provider_id": "ny/item-1"}`)

	// Act
	err := h.BookRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestBookRide_Created(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	ride := &models.RideBooking{ID: "ride-1", Status: models.RideStatusConfirmed}
	mockUC.EXPECT().BookRide(gomock.Any(), "user-1", "namma_yatri", "deal-7").Return(ride, nil)

	c, rec := newContext(http.MethodPost, "/v1/rides/bookings",
		`{"provider_id": "namma_yatri", "deal_id": "deal-7"}`)

	// Act
	err := h.BookRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ride-1", body.Data.ID)
	assert.Equal(t, "confirmed", body.Data.Status)
}

func TestGetActiveRide_NotFound(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	mockUC.EXPECT().GetActiveRide(gomock.Any(), "user-1").Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/v1/rides/active", "")

	// Act
	err := h.GetActiveRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRide_NotCancellable(t *testing.T) {
	// Arrange
	h, mockUC := newHandlerTest(t)
	mockUC.EXPECT().CancelRide(gomock.Any(), "user-1", "ride-1", "").
		Return(nil, rides.ErrNotCancellable)

	c, rec := newContext(http.MethodPost, "/v1/rides/ride-1/cancel", "")
	c.SetParamNames("rideID")
	c.SetParamValues("ride-1")

	// Act
	err := h.CancelRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRideHistory_InvalidLimit(t *testing.T) {
	// Arrange
	h, _ := newHandlerTest(t)
	c, rec := newContext(http.MethodGet, "/v1/rides/history?limit=abc", "")

	// Act
	err := h.RideHistory(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
