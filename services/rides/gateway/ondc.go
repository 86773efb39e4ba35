package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/internal/pkg/ondc"
	"github.com/lokalapp/lokal/internal/utils"
)

// Search posts a search intent and normalizes the returned catalog into
// provider offers. The sandbox exchange answers inline instead of calling the
// bap_uri webhook back, so after posting we wait the configured callback delay
// before inspecting the payload.
func (g *rideGW) Search(ctx context.Context, transactionID string, pickup, destination models.Location) ([]models.Provider, error) {
	intent := ondc.NewSearchIntent(pickup.GPS(), pickup.Address, destination.GPS(), destination.Address)

	resp, err := g.callExchange(ctx, ondc.ActionSearch, transactionID, intent)
	if err != nil {
		return nil, err
	}

	if err := g.awaitCallback(ctx); err != nil {
		return nil, err
	}

	var msg ondc.OnSearchMessage
	if err := json.Unmarshal(resp.Message, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse on_search message: %w", err)
	}

	providers := normalizeCatalog(msg.Catalog.Providers, pickup, destination)
	logger.Debug("Parsed exchange catalog",
		logger.String("transaction_id", transactionID),
		logger.Int("providers", len(providers)))
	return providers, nil
}

// Select reserves the chosen offer with the exchange
func (g *rideGW) Select(ctx context.Context, transactionID string, provider *models.Provider) error {
	return g.postOrder(ctx, ondc.ActionSelect, transactionID, provider)
}

// Init initializes the draft order with the exchange
func (g *rideGW) Init(ctx context.Context, transactionID string, provider *models.Provider) error {
	return g.postOrder(ctx, ondc.ActionInit, transactionID, provider)
}

// Confirm finalizes the order and extracts driver, vehicle and OTP details
// from the on_confirm payload. Missing fields stay empty for the synthesizer.
func (g *rideGW) Confirm(ctx context.Context, transactionID string, provider *models.Provider) (*models.ExchangeOrder, error) {
	body := ondc.NewOrderMessage(provider.ID, provider.ItemID, provider.FulfillmentID)
	resp, err := g.callExchange(ctx, ondc.ActionConfirm, transactionID, body)
	if err != nil {
		return nil, err
	}

	var msg ondc.OnConfirmMessage
	if err := json.Unmarshal(resp.Message, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse on_confirm message: %w", err)
	}

	order := &models.ExchangeOrder{
		OrderID:     msg.Order.ID,
		TrackingURL: msg.TrackingURL,
	}
	for _, f := range msg.Order.Fulfillments {
		if f.Agent != nil {
			order.DriverName = f.Agent.Name
			order.DriverPhone = f.Agent.Phone
		}
		if f.Vehicle != nil {
			order.VehicleNumber = f.Vehicle.Registration
		}
		if f.Start != nil && f.Start.Authorization != nil {
			order.OTP = f.Start.Authorization.Token
		}
	}
	return order, nil
}

// Status queries the exchange for the remote order state
func (g *rideGW) Status(ctx context.Context, transactionID, orderID string) (string, error) {
	body := ondc.StatusMessage{OrderID: orderID}
	resp, err := g.callExchange(ctx, ondc.ActionStatus, transactionID, body)
	if err != nil {
		return "", err
	}

	var msg ondc.OnStatusMessage
	if err := json.Unmarshal(resp.Message, &msg); err != nil {
		return "", fmt.Errorf("failed to parse on_status message: %w", err)
	}

	if msg.Order.State != "" {
		return msg.Order.State, nil
	}
	for _, f := range msg.Order.Fulfillments {
		if f.State != nil && f.State.Descriptor.Name != "" {
			return f.State.Descriptor.Name, nil
		}
	}
	return "", nil
}

// Cancel asks the exchange to cancel the order
func (g *rideGW) Cancel(ctx context.Context, transactionID, orderID, reason string) error {
	body := ondc.CancelMessage{OrderID: orderID}
	body.Descriptor.ShortDesc = reason

	_, err := g.callExchange(ctx, ondc.ActionCancel, transactionID, body)
	return err
}

func (g *rideGW) postOrder(ctx context.Context, action, transactionID string, provider *models.Provider) error {
	body := ondc.NewOrderMessage(provider.ID, provider.ItemID, provider.FulfillmentID)
	resp, err := g.callExchange(ctx, action, transactionID, body)
	if err != nil {
		return err
	}

	var msg ondc.AckMessage
	if err := json.Unmarshal(resp.Message, &msg); err != nil {
		return fmt.Errorf("failed to parse on_%s message: %w", action, err)
	}
	if msg.Ack != nil && strings.EqualFold(msg.Ack.Status, "NACK") {
		return fmt.Errorf("exchange rejected %s for transaction %s", action, transactionID)
	}
	return nil
}

func (g *rideGW) callExchange(ctx context.Context, action, transactionID string, message interface{}) (*ondc.Response, error) {
	envelope := ondc.NewEnvelope(g.cfg.ONDC, action, transactionID, message)

	var resp ondc.Response
	if err := g.httpClient.PostJSON(ctx, "/"+action, envelope, &resp); err != nil {
		return nil, fmt.Errorf("exchange %s call failed: %w", action, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("exchange %s error %s: %s", action, resp.Error.Code, resp.Error.Message)
	}
	return &resp, nil
}

// awaitCallback simulates waiting for the webhook callback window
func (g *rideGW) awaitCallback(ctx context.Context) error {
	if g.cfg.ONDC.CallbackDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(g.cfg.ONDC.CallbackDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeCatalog(catalogProviders []ondc.CatalogProvider, pickup, destination models.Location) []models.Provider {
	tripDistance := utils.CalculateDistance(pickup, destination)
	providers := make([]models.Provider, 0, len(catalogProviders))
	for _, cp := range catalogProviders {
		for _, item := range cp.Items {
			offer := models.Provider{
				ID:            offerID(cp.ID, item.ID),
				Name:          cp.Descriptor.Name,
				Type:          vehicleTypeFrom(item.CategoryID),
				BasePrice:     parsePrice(item.Price.Value),
				Currency:      item.Price.Currency,
				Available:     true,
				ItemID:        item.ID,
				FulfillmentID: item.FulfillmentID,
				Distance:      tripDistance,
			}
			if item.Descriptor.Name != "" {
				offer.Name = item.Descriptor.Name
			}
			if len(item.Descriptor.Images) > 0 {
				offer.Logo = item.Descriptor.Images[0]
			}
			if len(cp.Descriptor.Images) > 0 && offer.Logo == "" {
				offer.Logo = cp.Descriptor.Images[0]
			}
			if f := matchFulfillment(cp, item.FulfillmentID); f != nil {
				if offer.FulfillmentID == "" {
					offer.FulfillmentID = f.ID
				}
				if offer.Type == "" {
					offer.Type = vehicleTypeFrom(f.Type)
				}
				offer.Rating = parseRating(f.Rating)
				offer.EstimatedTime = parseDurationMinutes(f.Duration)
			}
			if offer.Type == "" {
				offer.Type = models.VehicleTypeCar
			}
			providers = append(providers, offer)
		}
	}
	return providers
}

type catalogFulfillment struct {
	ID       string
	Type     string
	Rating   string
	Duration string
}

func matchFulfillment(cp ondc.CatalogProvider, fulfillmentID string) *catalogFulfillment {
	for _, f := range cp.Fulfillments {
		if fulfillmentID == "" || f.ID == fulfillmentID {
			return &catalogFulfillment{ID: f.ID, Type: f.Type, Rating: f.Rating, Duration: f.Duration}
		}
	}
	return nil
}

func offerID(providerID, itemID string) string {
	if itemID == "" || itemID == providerID {
		return providerID
	}
	return providerID + "/" + itemID
}

func vehicleTypeFrom(category string) models.VehicleType {
	switch {
	case category == "":
		return ""
	case strings.Contains(strings.ToUpper(category), "AUTO"):
		return models.VehicleTypeAuto
	case strings.Contains(strings.ToUpper(category), "BUS"),
		strings.Contains(strings.ToUpper(category), "SHUTTLE"):
		return models.VehicleTypeBus
	default:
		return models.VehicleTypeCar
	}
}

func parsePrice(value string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return price
}

func parseRating(value string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return rating
}

// parseDurationMinutes reads the ISO 8601 durations the exchange emits,
// e.g. "PT7M" or "PT420S". Unparseable input yields zero.
func parseDurationMinutes(value string) int {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(value, "PT") || len(value) < 4 {
		return 0
	}
	amount, err := strconv.Atoi(value[2 : len(value)-1])
	if err != nil {
		return 0
	}
	switch value[len(value)-1] {
	case 'M':
		return amount
	case 'S':
		return amount / 60
	case 'H':
		return amount * 60
	}
	return 0
}
