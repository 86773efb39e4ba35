package ondc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

func testONDCConfig() models.ONDCConfig {
	return models.ONDCConfig{
		Domain:      "ONDC:TRV10",
		Country:     "IND",
		City:        "std:080",
		CoreVersion: "1.2.0",
		BapID:       "lokal.app",
		BapURI:      "https://api.lokal.app/ondc",
		TTL:         "PT30S",
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext(testONDCConfig(), ActionSearch, "txn-1")

	assert.Equal(t, "ONDC:TRV10", ctx.Domain)
	assert.Equal(t, "IND", ctx.Country)
	assert.Equal(t, "std:080", ctx.City)
	assert.Equal(t, "search", ctx.Action)
	assert.Equal(t, "1.2.0", ctx.CoreVersion)
	assert.Equal(t, "txn-1", ctx.TransactionID)
	assert.Equal(t, "PT30S", ctx.TTL)
	assert.NotEmpty(t, ctx.MessageID)

	_, err := time.Parse(time.RFC3339, ctx.Timestamp)
	assert.NoError(t, err)
}

func TestNewContext_MessageIDFreshPerCall(t *testing.T) {
	a := NewContext(testONDCConfig(), ActionSelect, "txn-1")
	b := NewContext(testONDCConfig(), ActionSelect, "txn-1")

	assert.NotEqual(t, a.MessageID, b.MessageID)
	assert.Equal(t, a.TransactionID, b.TransactionID)
}

func TestEnvelope_WireShape(t *testing.T) {
	envelope := NewEnvelope(testONDCConfig(), ActionSearch, "txn-1",
		NewSearchIntent("12.975600,77.606600", "MG Road", "12.935200,77.624500", "Koramangala"))

	data, err := json.Marshal(envelope)
	assert.NoError(t, err)

	var decoded map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "context")
	assert.Contains(t, decoded, "message")

	var intent SearchIntent
	assert.NoError(t, json.Unmarshal(decoded["message"], &intent))
	assert.Equal(t, "12.975600,77.606600", intent.Intent.Fulfillment.Start.Location.GPS)
	assert.Equal(t, "Koramangala", intent.Intent.Fulfillment.End.Location.Address)
}

func TestResponse_DefensiveDecoding(t *testing.T) {
	// Unknown fields and a missing message must not break decoding
	raw := []byte(`{
		"context": {"action": "on_search", "unknown_field": true},
		"error": {"code": "30001", "message": "no offers"}
	}`)

	var resp Response
	assert.NoError(t, json.Unmarshal(raw, &resp))
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "30001", resp.Error.Code)
	assert.Nil(t, resp.Message)
}

func TestNewOrderMessage(t *testing.T) {
	msg := NewOrderMessage("ny", "item-1", "f-1")

	assert.Equal(t, "ny", msg.Order.Provider.ID)
	assert.Len(t, msg.Order.Items, 1)
	assert.Equal(t, "item-1", msg.Order.Items[0].ID)
	assert.Equal(t, "f-1", msg.Order.Items[0].FulfillmentID)
}
