package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	httpclient "github.com/lokalapp/lokal/internal/pkg/http"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/internal/pkg/ondc"
)

var gwPickup = models.Location{Latitude: 12.9756, Longitude: 77.6066, Address: "MG Road"}
var gwDestination = models.Location{Latitude: 12.9352, Longitude: 77.6245, Address: "Koramangala"}

func gwConfig() *models.Config {
	return &models.Config{
		ONDC: models.ONDCConfig{
			Domain:        "ONDC:TRV10",
			Country:       "IND",
			City:          "std:080",
			CoreVersion:   "1.2.0",
			BapID:         "lokal.app",
			BapURI:        "https://api.lokal.app/ondc",
			TTL:           "PT30S",
			CallbackDelay: time.Millisecond,
		},
	}
}

func newTestGW(t *testing.T, handler http.HandlerFunc) *rideGW {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(server.URL, 5*time.Second)
	return NewRideGW(gwConfig(), client, nil)
}

func TestSearch_ParsesCatalog(t *testing.T) {
	// Arrange
	var gotEnvelope ondc.Envelope
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotEnvelope))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"context": {"action": "on_search", "transaction_id": "txn-1"},
			"message": {"catalog": {"providers": [{
				"id": "ny",
				"descriptor": {"name": "Namma Yatri"},
				"items": [{
					"id": "item-1",
					"fulfillment_id": "f-1",
					"descriptor": {"name": "Auto Ride"},
					"price": {"value": "95.00", "currency": "INR"},
					"category_id": "AUTO_RICKSHAW"
				}],
				"fulfillments": [{"id": "f-1", "type": "AUTO_RICKSHAW", "rating": "4.5", "duration": "PT7M"}]
			}]}}
		}`))
	})

	// Act
	providers, err := gw.Search(context.Background(), "txn-1", gwPickup, gwDestination)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, providers, 1)

	offer := providers[0]
	assert.Equal(t, "ny/item-1", offer.ID)
	assert.Equal(t, "Auto Ride", offer.Name)
	assert.Equal(t, models.VehicleTypeAuto, offer.Type)
	assert.Equal(t, 95.0, offer.BasePrice)
	assert.Equal(t, "INR", offer.Currency)
	assert.Equal(t, 4.5, offer.Rating)
	assert.Equal(t, 7, offer.EstimatedTime)
	assert.True(t, offer.HasExchangeIDs())
	assert.Greater(t, offer.Distance, 0.0)

	// Request envelope carries the protocol header
	assert.Equal(t, "search", gotEnvelope.Context.Action)
	assert.Equal(t, "ONDC:TRV10", gotEnvelope.Context.Domain)
	assert.Equal(t, "txn-1", gotEnvelope.Context.TransactionID)
	assert.NotEmpty(t, gotEnvelope.Context.MessageID)
}

func TestSearch_ProtocolError(t *testing.T) {
	// Arrange
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"context": {"action": "on_search"},
			"error": {"type": "DOMAIN-ERROR", "code": "30001", "message": "no providers in city"}
		}`))
	})

	// Act
	providers, err := gw.Search(context.Background(), "txn-1", gwPickup, gwDestination)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "30001")
	assert.Nil(t, providers)
}

func TestSelect_NACKRejected(t *testing.T) {
	// Arrange
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/select", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"context": {"action": "on_select"}, "message": {"ack": {"status": "NACK"}}}`))
	})

	provider := &models.Provider{ID: "ny", ItemID: "item-1", FulfillmentID: "f-1"}

	// Act
	err := gw.Select(context.Background(), "txn-1", provider)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestConfirm_ExtractsOrderDetails(t *testing.T) {
	// Arrange
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/confirm", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"context": {"action": "on_confirm"},
			"message": {
				"order": {
					"id": "ord-42",
					"state": "ACTIVE",
					"fulfillments": [{
						"id": "f-1",
						"agent": {"name": "Ravi", "phone": "+919812345678"},
						"start": {"authorization": {"type": "OTP", "token": "4321"}},
						"vehicle": {"category": "AUTO_RICKSHAW", "registration": "KA01AB1234"}
					}]
				},
				"tracking_url": "https://track.example/ord-42"
			}
		}`))
	})

	provider := &models.Provider{ID: "ny", ItemID: "item-1", FulfillmentID: "f-1"}

	// Act
	order, err := gw.Confirm(context.Background(), "txn-1", provider)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "ord-42", order.OrderID)
	assert.Equal(t, "Ravi", order.DriverName)
	assert.Equal(t, "+919812345678", order.DriverPhone)
	assert.Equal(t, "KA01AB1234", order.VehicleNumber)
	assert.Equal(t, "4321", order.OTP)
	assert.Equal(t, "https://track.example/ord-42", order.TrackingURL)
}

func TestStatus_ReturnsOrderState(t *testing.T) {
	// Arrange
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"context": {"action": "on_status"}, "message": {"order": {"id": "ord-42", "state": "RIDE_STARTED"}}}`))
	})

	// Act
	state, err := gw.Status(context.Background(), "txn-1", "ord-42")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "RIDE_STARTED", state)
}

func TestSearch_CancelledContext(t *testing.T) {
	// Arrange
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"context": {}, "message": {"catalog": {"providers": []}}}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := gw.Search(ctx, "txn-1", gwPickup, gwDestination)

	// Assert
	assert.Error(t, err)
}

func TestParseDurationMinutes(t *testing.T) {
	assert.Equal(t, 7, parseDurationMinutes("PT7M"))
	assert.Equal(t, 7, parseDurationMinutes("PT420S"))
	assert.Equal(t, 120, parseDurationMinutes("PT2H"))
	assert.Equal(t, 0, parseDurationMinutes(""))
	assert.Equal(t, 0, parseDurationMinutes("7 minutes"))
}

func TestVehicleTypeFrom(t *testing.T) {
	assert.Equal(t, models.VehicleTypeAuto, vehicleTypeFrom("AUTO_RICKSHAW"))
	assert.Equal(t, models.VehicleTypeBus, vehicleTypeFrom("BUS"))
	assert.Equal(t, models.VehicleTypeBus, vehicleTypeFrom("AIRPORT_SHUTTLE"))
	assert.Equal(t, models.VehicleTypeCar, vehicleTypeFrom("CAB"))
	assert.Equal(t, models.VehicleType(""), vehicleTypeFrom(""))
}
