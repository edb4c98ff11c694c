package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"adloom/internal/core/domain"
	"adloom/internal/core/lifecycle"
	"adloom/internal/core/port"
	"adloom/internal/scheduler"
	"adloom/internal/sessionstore"
)

// apiContextID marks saves coming from request handlers, as opposed to the
// scheduler's tick commits.
const apiContextID = "api"

// SimulationUseCase owns the session's campaign records: launching new
// ones, debiting their budget and handing them to the scheduler.
type SimulationUseCase struct {
	ledger    port.LedgerRepository
	campaigns port.CampaignRepository
	store     *sessionstore.Store
	sched     *scheduler.Scheduler
	engine    *lifecycle.Engine
	logger    *slog.Logger
	userID    string
}

// NewSimulationUseCase creates the usecase bound to the demo principal.
func NewSimulationUseCase(
	ledger port.LedgerRepository,
	campaigns port.CampaignRepository,
	store *sessionstore.Store,
	sched *scheduler.Scheduler,
	engine *lifecycle.Engine,
	logger *slog.Logger,
	userID string,
) *SimulationUseCase {
	return &SimulationUseCase{
		ledger:    ledger,
		campaigns: campaigns,
		store:     store,
		sched:     sched,
		engine:    engine,
		logger:    logger,
		userID:    userID,
	}
}

// Launch validates the request, debits the budget from the user's balance
// (a write path: failures are loud and nothing is stored), then appends
// the new record in review state and ensures the session's driving loop is
// running. The ledger row is left in the session's one-shot hand-off for
// the financials view.
func (u *SimulationUseCase) Launch(ctx context.Context, sessionID string, req port.LaunchRequest) (*domain.CampaignRecord, error) {
	if err := validateLaunch(req); err != nil {
		return nil, err
	}

	budgetCents := int64(math.Round(req.Budget * 100))
	tr, err := u.ledger.AddTransaction(ctx, u.userID, -budgetCents, req.Headline+" Campaign")
	if err != nil {
		return nil, fmt.Errorf("debit campaign budget: %w", err)
	}

	now := time.Now().UTC()
	rec := domain.CampaignRecord{
		ID:                   uuid.NewString(),
		UserID:               u.userID,
		Headline:             req.Headline,
		AdCopy:               req.AdCopy,
		Platform:             req.Platform,
		Budget:               req.Budget,
		DurationDays:         req.DurationDays,
		PredictedReach:       req.PredictedReach,
		PredictedConversions: req.PredictedConversions,
		Status:               domain.StatusPending,
		CreatedAt:            now,
	}
	// pending -> review the instant the record exists
	rec = u.engine.Activate(rec, now)

	// appended atomically: a tick pass running concurrently must not save
	// over the new record
	u.store.Context(sessionID, apiContextID).Update(func(recs []domain.CampaignRecord) []domain.CampaignRecord {
		return append(recs, rec)
	})
	u.store.PutNewTransaction(sessionID, *tr)

	// the durable row is a side effect of the already-committed debit:
	// log and continue on failure, like the notification path
	if err := u.campaigns.Create(ctx, domain.Campaign{
		ID:        rec.ID,
		UserID:    u.userID,
		UserName:  transactionUserName(ctx, u.ledger, u.userID),
		Headline:  rec.Headline,
		Status:    rec.Status,
		CreatedAt: now,
	}); err != nil {
		u.logger.Warn("campaign row insert failed", slog.Any("error", err))
	}

	u.sched.EnsureSession(sessionID)
	return &rec, nil
}

// List returns the session's records as last committed.
func (u *SimulationUseCase) List(_ context.Context, sessionID string) []domain.CampaignRecord {
	return u.store.Context(sessionID, apiContextID).Load()
}

// Tickable reports whether any record in the session still advances.
func (u *SimulationUseCase) Tickable(sessionID string) bool {
	return u.sched.Tickable(sessionID)
}

// History returns the user's durable campaign rows across all sessions,
// newest first.
func (u *SimulationUseCase) History(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.ListByUser(ctx, u.userID)
}

func validateLaunch(req port.LaunchRequest) error {
	verr := &port.ValidationError{}
	if strings.TrimSpace(req.Headline) == "" {
		verr.Add("headline", "must not be empty")
	}
	if strings.TrimSpace(req.AdCopy) == "" {
		verr.Add("adCopy", "must not be empty")
	}
	if !domain.KnownPlatform(req.Platform) {
		verr.Add("platform", fmt.Sprintf("must be one of %s", strings.Join(domain.Platforms, ", ")))
	}
	if req.Budget <= 0 {
		verr.Add("budget", "must be greater than zero")
	}
	if req.DurationDays < 1 {
		verr.Add("durationDays", "must be a positive integer")
	}
	if req.PredictedReach < 0 {
		verr.Add("predictedReach", "must not be negative")
	}
	if req.PredictedConversions < 0 {
		verr.Add("predictedConversions", "must not be negative")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func transactionUserName(ctx context.Context, ledger port.LedgerRepository, userID string) string {
	user, err := ledger.GetUser(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}
