package ondc

import "encoding/json"

// Response envelope shared by every on_<action> payload. Message stays raw so
// each call site decodes only the shape it needs, defensively.
type Response struct {
	Context Context         `json:"context"`
	Message json.RawMessage `json:"message"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the protocol-level failure report
type Error struct {
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Ack is the acknowledgment status inside select/init responses
type Ack struct {
	Status string `json:"status"`
}

// AckMessage is the minimal on_select/on_init message body
type AckMessage struct {
	Ack   *Ack `json:"ack,omitempty"`
	Order *struct {
		ID string `json:"id,omitempty"`
	} `json:"order,omitempty"`
}

// Descriptor names a catalog entity
type Descriptor struct {
	Name   string   `json:"name,omitempty"`
	Images []string `json:"images,omitempty"`
}

// Price carries a decimal string value and currency
type Price struct {
	Value    string `json:"value,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// CatalogItem is one bookable offer inside a provider's catalog
type CatalogItem struct {
	ID            string     `json:"id"`
	FulfillmentID string     `json:"fulfillment_id,omitempty"`
	Descriptor    Descriptor `json:"descriptor,omitempty"`
	Price         Price      `json:"price,omitempty"`
	CategoryID    string     `json:"category_id,omitempty"`
}

// CatalogProvider is one transport provider inside an on_search catalog
type CatalogProvider struct {
	ID           string        `json:"id"`
	Descriptor   Descriptor    `json:"descriptor,omitempty"`
	Items        []CatalogItem `json:"items,omitempty"`
	Fulfillments []struct {
		ID       string `json:"id"`
		Type     string `json:"type,omitempty"`
		Rating   string `json:"rating,omitempty"`
		Duration string `json:"duration,omitempty"`
	} `json:"fulfillments,omitempty"`
}

// OnSearchMessage is the message body of an on_search response
type OnSearchMessage struct {
	Catalog struct {
		Descriptor Descriptor        `json:"descriptor,omitempty"`
		Providers  []CatalogProvider `json:"providers,omitempty"`
	} `json:"catalog"`
}

// Agent is the assigned driver inside an on_confirm fulfillment
type Agent struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Vehicle is the assigned vehicle inside an on_confirm fulfillment
type Vehicle struct {
	Category     string `json:"category,omitempty"`
	Registration string `json:"registration,omitempty"`
}

// Authorization carries the start-of-ride OTP
type Authorization struct {
	Type  string `json:"type,omitempty"`
	Token string `json:"token,omitempty"`
}

// OnConfirmMessage is the message body of an on_confirm response
type OnConfirmMessage struct {
	Order struct {
		ID           string `json:"id,omitempty"`
		State        string `json:"state,omitempty"`
		Fulfillments []struct {
			ID    string         `json:"id,omitempty"`
			Agent *Agent         `json:"agent,omitempty"`
			Start *struct {
				Authorization *Authorization `json:"authorization,omitempty"`
			} `json:"start,omitempty"`
			Vehicle *Vehicle `json:"vehicle,omitempty"`
		} `json:"fulfillments,omitempty"`
		Payment *struct {
			URI string `json:"uri,omitempty"`
		} `json:"payment,omitempty"`
	} `json:"order"`
	TrackingURL string `json:"tracking_url,omitempty"`
}

// OnStatusMessage is the message body of an on_status response
type OnStatusMessage struct {
	Order struct {
		ID           string `json:"id,omitempty"`
		State        string `json:"state,omitempty"`
		Fulfillments []struct {
			State *struct {
				Descriptor Descriptor `json:"descriptor,omitempty"`
			} `json:"state,omitempty"`
		} `json:"fulfillments,omitempty"`
	} `json:"order"`
}
