package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

// MinWithdrawalCents is the smallest payout the billing flow accepts.
const MinWithdrawalCents int64 = 1000

// BillingUseCase covers the financial flows for the demo principal.
// Balance mutations are write paths: they fail loudly and roll back in the
// repository. The post-commit notification is the one deliberate
// exception: its failure is logged and swallowed.
type BillingUseCase struct {
	ledger   port.LedgerRepository
	notifier port.Notifier
	logger   *slog.Logger
	userID   string
}

// NewBillingUseCase creates the usecase.
func NewBillingUseCase(ledger port.LedgerRepository, notifier port.Notifier, logger *slog.Logger, userID string) *BillingUseCase {
	return &BillingUseCase{ledger: ledger, notifier: notifier, logger: logger, userID: userID}
}

// RequestWithdrawal validates and records a payout request against
// referral earnings.
func (u *BillingUseCase) RequestWithdrawal(ctx context.Context, req port.WithdrawalRequest) (*domain.Withdrawal, error) {
	verr := &port.ValidationError{}
	cents := int64(math.Round(req.Amount * 100))
	if cents <= 0 {
		verr.Add("amount", "must be greater than zero")
	} else if cents < MinWithdrawalCents {
		verr.Add("amount", fmt.Sprintf("minimum withdrawal is %.2f", float64(MinWithdrawalCents)/100))
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		verr.Add("phoneNumber", "must not be empty")
	}
	if !verr.Empty() {
		return nil, verr
	}

	user, err := u.ledger.GetUser(ctx, u.userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	w, err := u.ledger.RequestWithdrawal(ctx, u.userID, user.Name, cents, req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	// the withdrawal is committed; a failed notification must not undo it
	// or surface to the user
	if err := u.notifier.NotifyWithdrawal(ctx, *w); err != nil {
		u.logger.Warn("withdrawal notification failed",
			slog.String("withdrawal_id", w.ID),
			slog.Any("error", err))
	}
	return w, nil
}

// ListWithdrawals returns the user's withdrawal requests.
func (u *BillingUseCase) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	return u.ledger.ListWithdrawals(ctx, u.userID)
}

// ListTransactions returns the user's ledger.
func (u *BillingUseCase) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	return u.ledger.ListTransactions(ctx, u.userID, limit)
}
