package usecase

import (
	"context"
	"time"

	"github.com/lokalapp/lokal/internal/pkg/circuitbreaker"
	"github.com/lokalapp/lokal/internal/pkg/models"
	"github.com/lokalapp/lokal/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg      *models.Config
	flowRepo rides.FlowRepo
	histRepo rides.HistoryRepo
	gw       rides.RideGW
	breaker  *circuitbreaker.CircuitBreaker
	sched    TransitionScheduler
}

// NewRideUC creates a new ride use case. Lifecycle progression runs on the
// built-in timer scheduler; status updates from a real exchange webhook can
// replace it without touching the transition logic.
func NewRideUC(
	cfg *models.Config,
	flowRepo rides.FlowRepo,
	histRepo rides.HistoryRepo,
	gw rides.RideGW,
) (rides.RideUC, error) {
	uc := &rideUC{
		cfg:      cfg,
		flowRepo: flowRepo,
		histRepo: histRepo,
		gw:       gw,
		breaker:  circuitbreaker.New(circuitbreaker.DefaultConfig("ondc-search")),
	}
	uc.sched = NewTimerScheduler(uc.advance)
	return uc, nil
}

// pause waits for the given duration unless the context ends first. The
// booking flow uses it to stand in for the exchange's asynchronous
// confirmation callbacks.
func (uc *rideUC) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
