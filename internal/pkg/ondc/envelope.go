// Package ondc holds the wire types for the ONDC mobility exchange:
// the {context, message} request envelope and the on_<action> response
// payloads the booking flow consumes.
package ondc

import (
	"time"

	"github.com/google/uuid"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// Actions understood by the exchange gateway
const (
	ActionSearch  = "search"
	ActionSelect  = "select"
	ActionInit    = "init"
	ActionConfirm = "confirm"
	ActionStatus  = "status"
	ActionCancel  = "cancel"
	ActionTrack   = "track"
)

// Context is the protocol envelope header. The transaction id is stable
// across one booking flow; the message id is fresh per call.
type Context struct {
	Domain        string `json:"domain"`
	Country       string `json:"country"`
	City          string `json:"city"`
	Action        string `json:"action"`
	CoreVersion   string `json:"core_version"`
	BapID         string `json:"bap_id"`
	BapURI        string `json:"bap_uri"`
	TransactionID string `json:"transaction_id"`
	MessageID     string `json:"message_id"`
	Timestamp     string `json:"timestamp"`
	TTL           string `json:"ttl"`
}

// Envelope is the request body sent for every action
type Envelope struct {
	Context Context     `json:"context"`
	Message interface{} `json:"message"`
}

// NewContext builds the envelope header for one call
func NewContext(cfg models.ONDCConfig, action, transactionID string) Context {
	return Context{
		Domain:        cfg.Domain,
		Country:       cfg.Country,
		City:          cfg.City,
		Action:        action,
		CoreVersion:   cfg.CoreVersion,
		BapID:         cfg.BapID,
		BapURI:        cfg.BapURI,
		TransactionID: transactionID,
		MessageID:     uuid.New().String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		TTL:           cfg.TTL,
	}
}

// NewEnvelope wraps a message in a fresh envelope for the given action
func NewEnvelope(cfg models.ONDCConfig, action, transactionID string, message interface{}) Envelope {
	return Envelope{
		Context: NewContext(cfg, action, transactionID),
		Message: message,
	}
}
