package models

import "time"

// StepType categorizes mission steps by the event that completes them
type StepType string

const (
	StepTypeRide  StepType = "ride"
	StepTypeDeal  StepType = "deal"
	StepTypeVisit StepType = "visit"
	StepTypeScan  StepType = "scan"
)

// MissionStep is completed exactly once (false to true) and never reverted.
// DealID/MerchantID, when present, restrict which event payloads match.
type MissionStep struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Type        StepType   `json:"type"`
	DealID      string     `json:"deal_id,omitempty"`
	MerchantID  string     `json:"merchant_id,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Mission is a multi-step task chain. Progress is the completed-step
// percentage; Completed is true exactly when Progress is 100, and once set a
// mission never reopens.
type Mission struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Steps       []MissionStep `json:"steps"`
	Reward      int           `json:"reward"`
	Completed   bool          `json:"completed"`
	Progress    int           `json:"progress"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// RecalculateProgress recomputes the derived progress percentage and flips
// Completed when every step is done. Returns true if the mission just
// completed.
func (m *Mission) RecalculateProgress(now time.Time) bool {
	if len(m.Steps) == 0 {
		return false
	}

	done := 0
	for _, step := range m.Steps {
		if step.Completed {
			done++
		}
	}
	m.Progress = done * 100 / len(m.Steps)

	if m.Progress == 100 && !m.Completed {
		m.Completed = true
		m.CompletedAt = &now
		return true
	}
	return false
}
