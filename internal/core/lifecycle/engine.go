package lifecycle

import (
	"math"
	"time"

	"adloom/internal/core/domain"
)

const (
	// DefaultReviewPeriod is how long a campaign sits in review before it
	// activates. User-facing copy quotes "10-15 minutes"; the canonical value
	// is 10 seconds and deployments override it via SIM_REVIEW_PERIOD.
	DefaultReviewPeriod = 10 * time.Second

	// DefaultTickInterval is the cadence at which the scheduler re-evaluates
	// unfinished records. Correctness does not depend on it: progress is a
	// function of wall-clock time, not tick count.
	DefaultTickInterval = 2 * time.Second
)

// Engine advances campaign records through the pending -> review -> active
// -> finished lifecycle. Tick is a pure function of (record, now): it does
// no I/O, keeps no state beyond the record's fields and never regresses a
// status. Re-running it with a later now after any gap yields the same
// result as if every intermediate tick had fired.
type Engine struct {
	reviewPeriod time.Duration
}

// New returns an engine with the given review period. Non-positive values
// fall back to DefaultReviewPeriod.
func New(reviewPeriod time.Duration) *Engine {
	if reviewPeriod <= 0 {
		reviewPeriod = DefaultReviewPeriod
	}
	return &Engine{reviewPeriod: reviewPeriod}
}

// ReviewPeriod returns the configured review duration.
func (e *Engine) ReviewPeriod() time.Duration {
	return e.reviewPeriod
}

// Activate moves a pending record into review, stamping StartDate with now.
// Records already past pending are returned unchanged.
func (e *Engine) Activate(rec domain.CampaignRecord, now time.Time) domain.CampaignRecord {
	if rec.Status != domain.StatusPending {
		return rec
	}
	rec.Status = domain.StatusReview
	rec.StartDate = now
	return rec
}

// Tick returns the record as it should look at time now. Callers are
// responsible for preconditions (positive budget and duration); the engine
// itself never errors.
func (e *Engine) Tick(rec domain.CampaignRecord, now time.Time) domain.CampaignRecord {
	switch rec.Status {
	case domain.StatusReview, domain.StatusActive:
	default:
		// pending waits for Activate, finished is terminal
		return rec
	}

	activeAt := rec.StartDate.Add(e.reviewPeriod)
	if now.Before(activeAt) {
		return rec
	}
	if rec.Status == domain.StatusReview {
		rec.Status = domain.StatusActive
	}

	total := time.Duration(rec.DurationDays) * 24 * time.Hour
	p := clamp01(float64(now.Sub(activeAt)) / float64(total))
	if p >= 1 {
		// terminal: snap exactly to targets, no floor truncation
		rec.Status = domain.StatusFinished
		rec.AdSpend = rec.Budget
		rec.Impressions = rec.PredictedReach
		rec.Clicks = rec.PredictedConversions
		return rec
	}

	rec.AdSpend = rec.Budget * p
	rec.Impressions = math.Floor(rec.PredictedReach * p)
	rec.Clicks = math.Floor(rec.PredictedConversions * p)
	return rec
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
