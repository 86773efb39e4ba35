package usecase

import (
	"sync"
	"time"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// TransitionFunc is invoked when a scheduled lifecycle transition fires
type TransitionFunc func(userID, rideID string, to models.RideStatus)

// TransitionScheduler is the boundary between the state machine and whatever
// drives it forward. The demo deployment uses timers; an inbound-webhook
// listener can implement the same interface.
type TransitionScheduler interface {
	Schedule(userID, rideID string, to models.RideStatus, after time.Duration)
	Cancel(rideID string)
	Stop()
}

type timerScheduler struct {
	fire TransitionFunc

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewTimerScheduler creates a scheduler that fires transitions on fixed timers
func NewTimerScheduler(fire TransitionFunc) TransitionScheduler {
	return &timerScheduler{
		fire:   fire,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms one pending transition per ride; a new schedule replaces any
// previous one for the same ride.
func (s *timerScheduler) Schedule(userID, rideID string, to models.RideStatus, after time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[rideID]; ok {
		timer.Stop()
	}

	s.timers[rideID] = time.AfterFunc(after, func() {
		s.mu.Lock()
		delete(s.timers, rideID)
		s.mu.Unlock()

		s.fire(userID, rideID, to)
	})
}

// Cancel drops the pending transition for a ride, if any
func (s *timerScheduler) Cancel(rideID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[rideID]; ok {
		timer.Stop()
		delete(s.timers, rideID)
	}
}

// Stop drops every pending transition
func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for rideID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, rideID)
	}
}
