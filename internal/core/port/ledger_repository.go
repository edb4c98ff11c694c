package port

import (
	"context"

	"adloom/internal/core/domain"
)

// LedgerRepository is the outbound port for user balances and the paired
// ledger tables. Every mutation of users.balance or users.referral_earnings
// must happen inside one database transaction with its ledger insert;
// implementations roll back fully on any failure so a changed balance
// without its ledger row is never observable.
type LedgerRepository interface {
	// GetUser returns the account holder or ErrNotFound.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// AddTransaction applies a signed amount to the user's balance and
	// inserts the ledger row atomically. A debit that would drive the
	// balance negative fails with ErrInsufficientFunds and leaves both
	// tables untouched. The created row is returned.
	AddTransaction(ctx context.Context, userID string, amountCents int64, description string) (*domain.Transaction, error)

	// RequestWithdrawal deducts amountCents from referral earnings and
	// records a pending withdrawal atomically. Amounts exceeding the
	// current earnings fail with ErrInsufficientEarnings.
	RequestWithdrawal(ctx context.Context, userID, userName string, amountCents int64, phoneNumber string) (*domain.Withdrawal, error)

	// ListTransactions returns the user's ledger, newest first.
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)

	// ListWithdrawals returns the user's withdrawal requests, newest first.
	ListWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error)
}
