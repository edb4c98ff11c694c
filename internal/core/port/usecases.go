package port

import (
	"context"

	"adloom/internal/core/domain"
)

// LaunchRequest creates a campaign record from a chosen ad variant. The
// budget is debited from the user's balance before the record enters the
// review phase.
type LaunchRequest struct {
	Headline             string  `json:"headline"`
	AdCopy               string  `json:"adCopy"`
	Platform             string  `json:"platform"`
	Budget               float64 `json:"budget"`
	DurationDays         int     `json:"durationDays"`
	PredictedReach       float64 `json:"predictedReach"`
	PredictedConversions float64 `json:"predictedConversions"`
}

// WithdrawalRequest asks to pay out referral earnings to a phone number.
type WithdrawalRequest struct {
	Amount      float64 `json:"amount"`
	PhoneNumber string  `json:"phoneNumber"`
}

// DashboardMetrics is the aggregator output for the overview page.
// ActiveCampaigns counts records whose budget is committed but not yet
// fully spent, i.e. status review or active. Degraded is set when the
// balance lookup failed and the default was substituted.
type DashboardMetrics struct {
	Balance          float64 `json:"balance"`
	ActiveCampaigns  int     `json:"activeCampaigns"`
	ReferralEarnings float64 `json:"referralEarnings"`
	TotalAdSpend     float64 `json:"totalAdSpend"`
	Degraded         bool    `json:"degraded,omitempty"`
}

// AdGenUseCase drives the ad generation and compliance review flows.
type AdGenUseCase interface {
	// Generate validates the brief, invokes the model and returns one
	// variant per platform. On upstream failure it returns locally
	// synthesized fallback variants rather than failing the flow; only
	// validation errors propagate.
	Generate(ctx context.Context, brief domain.AdBrief) ([]domain.AdVariant, error)

	// ReviewCompliance validates and reviews a single ad.
	ReviewCompliance(ctx context.Context, in domain.ComplianceInput) (*domain.ComplianceReport, error)
}

// SimulationUseCase owns the session's campaign records and their
// lifecycle.
type SimulationUseCase interface {
	// Launch debits the budget, stores the new record in review state and
	// ensures the session's scheduler is running.
	Launch(ctx context.Context, sessionID string, req LaunchRequest) (*domain.CampaignRecord, error)

	// List returns the session's records as last committed by the
	// scheduler.
	List(ctx context.Context, sessionID string) []domain.CampaignRecord

	// Tickable reports whether any record in the session still advances,
	// so views know whether to keep polling.
	Tickable(sessionID string) bool

	// History returns the user's durable campaign rows across all
	// sessions, newest first.
	History(ctx context.Context) ([]domain.Campaign, error)
}

// BillingUseCase covers the financial flows.
type BillingUseCase interface {
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// DashboardUseCase computes the overview figures.
type DashboardUseCase interface {
	// Metrics combines the session's records with the user's balances.
	// A failed balance lookup degrades to the signup bonus default
	// instead of failing the dashboard.
	Metrics(ctx context.Context, sessionID string) DashboardMetrics

	// TakeNewTransaction returns and clears the one-shot hand-off left by
	// the billing flow, or nil when none is pending.
	TakeNewTransaction(sessionID string) *domain.Transaction
}

// ContentUseCase drives SEO article generation and retrieval.
type ContentUseCase interface {
	GenerateArticle(ctx context.Context, brief domain.ArticleBrief) (*domain.Article, error)
	ListArticles(ctx context.Context, limit int) ([]domain.Article, error)
	GetArticle(ctx context.Context, slug string) (*domain.Article, error)
}
