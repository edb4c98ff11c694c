package domain

import "time"

// Status is the lifecycle phase of a campaign record. Transitions are
// strictly forward: pending -> review -> active -> finished.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReview   Status = "review"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Forward reports whether moving from s to next is a legal transition.
func (s Status) Forward(next Status) bool {
	return s.rank() < next.rank()
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusFinished
}

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusReview:
		return 1
	case StatusActive:
		return 2
	case StatusFinished:
		return 3
	default:
		return -1
	}
}

// CampaignRecord is one advertising run tracked by the lifecycle engine.
// Budget and AdSpend are in currency units (not cents) because the engine
// interpolates them continuously; money crosses into cents at the billing
// boundary. AdSpend, Impressions and Clicks are derived each tick and are
// never edited directly.
type CampaignRecord struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	Headline             string    `json:"headline"`
	AdCopy               string    `json:"adCopy"`
	Platform             string    `json:"platform"`
	Budget               float64   `json:"budget"`
	DurationDays         int       `json:"durationDays"`
	PredictedReach       float64   `json:"predictedReach"`
	PredictedConversions float64   `json:"predictedConversions"`
	StartDate            time.Time `json:"startDate"`
	Status               Status    `json:"status"`
	AdSpend              float64   `json:"adSpend"`
	Impressions          float64   `json:"impressions"`
	Clicks               float64   `json:"clicks"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Campaign is the persisted campaign row shown on the admin side. Runtime
// metrics live on the session's CampaignRecord, not here.
type Campaign struct {
	ID        string
	UserID    string
	UserName  string
	Headline  string
	Status    Status
	CreatedAt time.Time
}
