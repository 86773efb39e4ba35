package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/lokalapp/lokal/internal/pkg/constants"
	"github.com/lokalapp/lokal/internal/pkg/database"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
)

// FlowRepo keeps the per-user booking flow state in Redis under fixed
// namespace keys. Transient values carry no expiration; the flow is cleared
// explicitly when a ride terminates.
type FlowRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewFlowRepo creates a new booking flow repository
func NewFlowRepo(cfg *models.Config, redisClient *database.RedisClient) *FlowRepo {
	return &FlowRepo{
		cfg:   cfg,
		redis: redisClient,
	}
}

// SetPickup stores the pickup location
func (r *FlowRepo) SetPickup(ctx context.Context, userID string, loc *models.Location) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyRidePickup, userID), loc)
}

// GetPickup returns the pickup location, or nil when unset
func (r *FlowRepo) GetPickup(ctx context.Context, userID string) (*models.Location, error) {
	var loc models.Location
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyRidePickup, userID), &loc)
	if err != nil || !found {
		return nil, err
	}
	return &loc, nil
}

// SetDestination stores the destination location
func (r *FlowRepo) SetDestination(ctx context.Context, userID string, loc *models.Location) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyRideDestination, userID), loc)
}

// GetDestination returns the destination location, or nil when unset
func (r *FlowRepo) GetDestination(ctx context.Context, userID string) (*models.Location, error) {
	var loc models.Location
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyRideDestination, userID), &loc)
	if err != nil || !found {
		return nil, err
	}
	return &loc, nil
}

// ClearLocations removes both selected locations
func (r *FlowRepo) ClearLocations(ctx context.Context, userID string) error {
	return r.redis.Delete(ctx,
		fmt.Sprintf(constants.KeyRidePickup, userID),
		fmt.Sprintf(constants.KeyRideDestination, userID),
	)
}

// SaveProviders replaces the provider list and the search transaction id
func (r *FlowRepo) SaveProviders(ctx context.Context, userID, transactionID string, providers []models.Provider) error {
	if err := r.setJSON(ctx, fmt.Sprintf(constants.KeyRideProviders, userID), providers); err != nil {
		return err
	}
	return r.redis.Set(ctx, fmt.Sprintf(constants.KeyRideTransaction, userID), transactionID, 0)
}

// GetProviders returns the offers from the latest search
func (r *FlowRepo) GetProviders(ctx context.Context, userID string) ([]models.Provider, error) {
	var providers []models.Provider
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyRideProviders, userID), &providers)
	if err != nil || !found {
		return nil, err
	}
	return providers, nil
}

// GetProvider returns one offer by id, or nil when it is not in the catalog
func (r *FlowRepo) GetProvider(ctx context.Context, userID, providerID string) (*models.Provider, error) {
	providers, err := r.GetProviders(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range providers {
		if providers[i].ID == providerID {
			return &providers[i], nil
		}
	}
	return nil, nil
}

// GetTransactionID returns the transaction id of the latest search
func (r *FlowRepo) GetTransactionID(ctx context.Context, userID string) (string, error) {
	value, err := r.redis.Get(ctx, fmt.Sprintf(constants.KeyRideTransaction, userID))
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get transaction id: %w", err)
	}
	return value, nil
}

// SetActiveRide claims the single active slot. The slot is the lock: a SETNX
// miss means another booking already occupies it.
func (r *FlowRepo) SetActiveRide(ctx context.Context, userID string, ride *models.RideBooking) error {
	data, err := json.Marshal(ride)
	if err != nil {
		return fmt.Errorf("failed to marshal ride: %w", err)
	}

	claimed, err := r.redis.SetNX(ctx, fmt.Sprintf(constants.KeyActiveRide, userID), data, 0)
	if err != nil {
		return fmt.Errorf("failed to claim active ride slot: %w", err)
	}
	if !claimed {
		return rides.ErrRideInProgress
	}
	return nil
}

// UpdateActiveRide overwrites the occupied active slot in place
func (r *FlowRepo) UpdateActiveRide(ctx context.Context, userID string, ride *models.RideBooking) error {
	return r.setJSON(ctx, fmt.Sprintf(constants.KeyActiveRide, userID), ride)
}

// GetActiveRide returns the active booking, or nil when the slot is empty
func (r *FlowRepo) GetActiveRide(ctx context.Context, userID string) (*models.RideBooking, error) {
	var ride models.RideBooking
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyActiveRide, userID), &ride)
	if err != nil || !found {
		return nil, err
	}
	return &ride, nil
}

// ClearActiveRide empties the active slot
func (r *FlowRepo) ClearActiveRide(ctx context.Context, userID string) error {
	return r.redis.Delete(ctx, fmt.Sprintf(constants.KeyActiveRide, userID))
}

func (r *FlowRepo) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return r.redis.Set(ctx, key, data, 0)
}

// getJSON reports whether the key existed; a missing key is not an error
func (r *FlowRepo) getJSON(ctx context.Context, key string, target interface{}) (bool, error) {
	data, err := r.redis.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
