package usecase

import (
	"context"
	"log/slog"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
	"adloom/internal/sessionstore"
)

// DefaultSignupBonusCents is the balance shown when the user row cannot be
// read: the amount every account is credited at signup.
const DefaultSignupBonusCents int64 = 50000

// ComputeMetrics reduces the session's records and the remote balances to
// the dashboard figures. Pure: callers decide where the inputs come from
// and what to substitute when a lookup fails. Records in review count as
// active because their budget is already committed.
func ComputeMetrics(records []domain.CampaignRecord, balanceCents, referralCents int64) port.DashboardMetrics {
	m := port.DashboardMetrics{
		Balance:          float64(balanceCents) / 100,
		ReferralEarnings: float64(referralCents) / 100,
	}
	for _, rec := range records {
		if rec.Status == domain.StatusActive || rec.Status == domain.StatusReview {
			m.ActiveCampaigns++
		}
		m.TotalAdSpend += rec.AdSpend
	}
	return m
}

// DashboardUseCase feeds ComputeMetrics from the session store and the
// user row.
type DashboardUseCase struct {
	ledger port.LedgerRepository
	store  *sessionstore.Store
	logger *slog.Logger
	userID string
}

// NewDashboardUseCase creates the usecase.
func NewDashboardUseCase(ledger port.LedgerRepository, store *sessionstore.Store, logger *slog.Logger, userID string) *DashboardUseCase {
	return &DashboardUseCase{ledger: ledger, store: store, logger: logger, userID: userID}
}

// Metrics computes the overview figures. A failed balance lookup degrades
// to the signup bonus default with a visible warning flag instead of
// failing the whole dashboard.
func (u *DashboardUseCase) Metrics(ctx context.Context, sessionID string) port.DashboardMetrics {
	records := u.store.Context(sessionID, apiContextID).Load()

	user, err := u.ledger.GetUser(ctx, u.userID)
	if err != nil {
		u.logger.Warn("balance lookup failed, using signup bonus default", slog.Any("error", err))
		m := ComputeMetrics(records, DefaultSignupBonusCents, 0)
		m.Degraded = true
		return m
	}
	return ComputeMetrics(records, user.BalanceCents, user.ReferralEarningsCents)
}

// TakeNewTransaction returns and clears the billing flow's one-shot
// hand-off, or nil when none is pending.
func (u *DashboardUseCase) TakeNewTransaction(sessionID string) *domain.Transaction {
	return u.store.TakeNewTransaction(sessionID)
}
