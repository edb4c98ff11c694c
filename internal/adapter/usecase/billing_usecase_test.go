package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
	"adloom/internal/core/port/mocks"
)

type failingNotifier struct{ calls int }

func (n *failingNotifier) NotifyWithdrawal(context.Context, domain.Withdrawal) error {
	n.calls++
	return errors.New("smtp down")
}

// TestWithdrawalRejectedBeyondEarnings: requesting more than the referral
// earnings is rejected and nothing is committed.
func TestWithdrawalRejectedBeyondEarnings(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().
		GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Demo", ReferralEarningsCents: 2500}, nil)
	ledger.EXPECT().
		RequestWithdrawal(mock.Anything, "u1", "Demo", int64(3000), "+254700000001").
		Return(nil, port.ErrInsufficientEarnings)

	u := NewBillingUseCase(ledger, &failingNotifier{}, discardLogger(), "u1")
	_, err := u.RequestWithdrawal(context.Background(), port.WithdrawalRequest{
		Amount:      30,
		PhoneNumber: "+254700000001",
	})
	require.ErrorIs(t, err, port.ErrInsufficientEarnings)
}

// TestWithdrawalValidation rejects bad input before any repository call;
// the mock has no expectations.
func TestWithdrawalValidation(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	u := NewBillingUseCase(ledger, &failingNotifier{}, discardLogger(), "u1")

	for _, req := range []port.WithdrawalRequest{
		{Amount: 0, PhoneNumber: "+254700000001"},
		{Amount: -5, PhoneNumber: "+254700000001"},
		{Amount: 5, PhoneNumber: "+254700000001"}, // below the 10.00 minimum
		{Amount: 50, PhoneNumber: "  "},
	} {
		_, err := u.RequestWithdrawal(context.Background(), req)
		var verr *port.ValidationError
		require.ErrorAs(t, err, &verr)
	}
}

// TestWithdrawalNotificationFailureIsSwallowed: the committed withdrawal
// is returned even when the post-commit notification fails.
func TestWithdrawalNotificationFailureIsSwallowed(t *testing.T) {
	w := &domain.Withdrawal{ID: "w1", UserID: "u1", AmountCents: 2000, Status: domain.WithdrawalPending}

	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().
		GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Demo", ReferralEarningsCents: 5000}, nil)
	ledger.EXPECT().
		RequestWithdrawal(mock.Anything, "u1", "Demo", int64(2000), "+254700000001").
		Return(w, nil)

	notifier := &failingNotifier{}
	u := NewBillingUseCase(ledger, notifier, discardLogger(), "u1")
	got, err := u.RequestWithdrawal(context.Background(), port.WithdrawalRequest{
		Amount:      20,
		PhoneNumber: "+254700000001",
	})
	require.NoError(t, err)
	require.Equal(t, w, got)
	require.Equal(t, 1, notifier.calls)
}
