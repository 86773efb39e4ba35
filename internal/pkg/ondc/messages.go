package ondc

// Request message bodies

// GPS coordinates in "lat,lng" form
type GPS struct {
	GPS     string `json:"gps"`
	Address string `json:"address,omitempty"`
}

// FulfillmentStop is one end of the requested trip
type FulfillmentStop struct {
	Location GPS `json:"location"`
}

// Fulfillment describes the requested trip
type Fulfillment struct {
	ID    string           `json:"id,omitempty"`
	Start *FulfillmentStop `json:"start,omitempty"`
	End   *FulfillmentStop `json:"end,omitempty"`
}

// SearchIntent is the message body of a search request
type SearchIntent struct {
	Intent struct {
		Fulfillment Fulfillment `json:"fulfillment"`
	} `json:"intent"`
}

// NewSearchIntent builds a search message for the given trip endpoints
func NewSearchIntent(pickupGPS, pickupAddr, destGPS, destAddr string) SearchIntent {
	var intent SearchIntent
	intent.Intent.Fulfillment = Fulfillment{
		Start: &FulfillmentStop{Location: GPS{GPS: pickupGPS, Address: pickupAddr}},
		End:   &FulfillmentStop{Location: GPS{GPS: destGPS, Address: destAddr}},
	}
	return intent
}

// OrderItem references one catalog item in select/init/confirm calls
type OrderItem struct {
	ID            string `json:"id"`
	FulfillmentID string `json:"fulfillment_id,omitempty"`
}

// Order is the message body shared by select, init and confirm
type Order struct {
	Provider struct {
		ID string `json:"id"`
	} `json:"provider"`
	Items       []OrderItem  `json:"items,omitempty"`
	Fulfillment *Fulfillment `json:"fulfillment,omitempty"`
}

// OrderMessage wraps an order for the request envelope
type OrderMessage struct {
	Order Order `json:"order"`
}

// NewOrderMessage builds the order body for select/init/confirm calls
func NewOrderMessage(providerID, itemID, fulfillmentID string) OrderMessage {
	var msg OrderMessage
	msg.Order.Provider.ID = providerID
	msg.Order.Items = []OrderItem{{ID: itemID, FulfillmentID: fulfillmentID}}
	return msg
}

// StatusMessage is the message body of a status request
type StatusMessage struct {
	OrderID string `json:"order_id"`
}

// CancelMessage is the message body of a cancel request
type CancelMessage struct {
	OrderID              string `json:"order_id"`
	CancellationReasonID string `json:"cancellation_reason_id,omitempty"`
	Descriptor           struct {
		ShortDesc string `json:"short_desc,omitempty"`
	} `json:"descriptor,omitempty"`
}
