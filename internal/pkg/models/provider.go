package models

// VehicleType categorizes the ride offers returned by a search
type VehicleType string

const (
	VehicleTypeAuto VehicleType = "auto"
	VehicleTypeBus  VehicleType = "bus"
	VehicleTypeCar  VehicleType = "car"
)

// Provider represents one normalized ride offer from a search.
// The list is produced fresh on every search and fully replaced, never merged.
type Provider struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          VehicleType `json:"type"`
	Logo          string      `json:"logo,omitempty"`
	BasePrice     float64     `json:"base_price"`
	EstimatedTime int         `json:"estimated_time"` // minutes to pickup
	Rating        float64     `json:"rating"`
	Available     bool        `json:"available"`
	ItemID        string      `json:"item_id,omitempty"`        // exchange-native item reference
	FulfillmentID string      `json:"fulfillment_id,omitempty"` // exchange-native fulfillment reference
	Distance      float64     `json:"distance,omitempty"`       // trip distance in km
	Currency      string      `json:"currency,omitempty"`
}

// HasExchangeIDs reports whether this offer can be booked through the exchange.
// Offers without native identifiers fall back to a locally synthesized booking.
func (p Provider) HasExchangeIDs() bool {
	return p.ItemID != "" && p.FulfillmentID != ""
}

// ProviderCatalog is the result of one search: the replaced provider list plus
// the transaction id that binds the rest of the booking flow to the exchange.
type ProviderCatalog struct {
	Providers     []Provider `json:"providers"`
	TransactionID string     `json:"transaction_id"`
	Fallback      bool       `json:"fallback"`
	Notice        string     `json:"notice,omitempty"`
}
