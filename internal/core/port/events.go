package port

import (
	"context"
	"time"

	"adloom/internal/core/domain"
)

// StatusChange is emitted whenever the scheduler commits a lifecycle
// transition for a campaign record.
type StatusChange struct {
	CampaignID string        `json:"campaign_id"`
	SessionID  string        `json:"session_id"`
	OldStatus  domain.Status `json:"old_status"`
	NewStatus  domain.Status `json:"new_status"`
	At         time.Time     `json:"at"`
}

// EventPublisher fans lifecycle transitions out to external consumers.
// Publish failures are logged by callers, never propagated: event delivery
// is best effort and must not affect the tick commit.
type EventPublisher interface {
	Publish(ctx context.Context, ev StatusChange) error
}

// Notifier delivers out-of-band notifications (e.g. the withdrawal
// confirmation email). A failure after the primary effect is committed is
// logged and swallowed; it never rolls back the commit and never surfaces
// to the user.
type Notifier interface {
	NotifyWithdrawal(ctx context.Context, w domain.Withdrawal) error
}
