package domain

// User is an account holder. BalanceCents is spendable money; referral
// earnings are a separate ledger reducible only via withdrawal.
type User struct {
	ID                    string
	Name                  string
	Email                 string
	BalanceCents          int64
	Status                string
	ReferralEarningsCents int64
}
