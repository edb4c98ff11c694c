package domain

import "time"

// Transaction is one ledger row. AmountCents is signed: debits (campaign
// spend, withdrawals) are negative, credits positive. Every balance
// mutation is paired with exactly one Transaction in the same database
// transaction.
type Transaction struct {
	ID          string
	UserID      string
	AmountCents int64
	Description string
	CreatedAt   time.Time
}

// Withdrawal statuses.
const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

// Withdrawal is a payout request against referral earnings.
type Withdrawal struct {
	ID          string
	UserID      string
	UserName    string
	AmountCents int64
	PhoneNumber string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
