// Package gateway implements the outbound side of the ride service: the
// ONDC exchange calls and the NATS event publishes.
package gateway

import (
	httpclient "github.com/lokalapp/lokal/internal/pkg/http"
	"github.com/lokalapp/lokal/internal/pkg/models"
	natspkg "github.com/lokalapp/lokal/internal/pkg/nats"
)

type rideGW struct {
	cfg        *models.Config
	httpClient *httpclient.Client
	natsClient *natspkg.Client
}

// NewRideGW creates a gateway talking to the configured exchange and broker
func NewRideGW(cfg *models.Config, httpClient *httpclient.Client, natsClient *natspkg.Client) *rideGW {
	return &rideGW{
		cfg:        cfg,
		httpClient: httpClient,
		natsClient: natsClient,
	}
}
