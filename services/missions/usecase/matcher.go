package usecase

import "github.com/lokalapp/lokal/internal/pkg/models"

// StepMatcher decides whether an incoming event completes a step. Matchers
// never inspect completion state; the tracker skips completed steps itself.
type StepMatcher func(step models.MissionStep) bool

// MatchRide matches ride steps. A step with a deal filter only matches
// bookings made through that deal.
func MatchRide(dealID string) StepMatcher {
	return func(step models.MissionStep) bool {
		if step.Type != models.StepTypeRide {
			return false
		}
		return step.DealID == "" || step.DealID == dealID
	}
}

// MatchDeal matches deal steps against the redeemed deal and its merchant
func MatchDeal(dealID, merchantID string) StepMatcher {
	return func(step models.MissionStep) bool {
		if step.Type != models.StepTypeDeal {
			return false
		}
		if step.DealID != "" && step.DealID != dealID {
			return false
		}
		return step.MerchantID == "" || step.MerchantID == merchantID
	}
}

// MatchScan matches scan steps and visit steps. A QR scan at a merchant is
// the proof of presence that completes a visit.
func MatchScan(merchantID string) StepMatcher {
	return func(step models.MissionStep) bool {
		if step.Type != models.StepTypeScan && step.Type != models.StepTypeVisit {
			return false
		}
		return step.MerchantID == "" || step.MerchantID == merchantID
	}
}
