package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository using pgxpool. Balance
// mutations run in serializable transactions with the user row locked, so
// a changed balance without its paired ledger row is never observable.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// GetUser returns the account holder or port.ErrNotFound.
func (r *LedgerRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, balance, status, referral_earnings FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.BalanceCents, &u.Status, &u.ReferralEarningsCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AddTransaction applies a signed amount to the balance and inserts the
// ledger row in one transaction. Debits exceeding the balance fail with
// port.ErrInsufficientFunds and roll back entirely.
func (r *LedgerRepository) AddTransaction(ctx context.Context, userID string, amountCents int64, description string) (tr *domain.Transaction, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock the user row
	var balance int64
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if balance+amountCents < 0 {
		err = port.ErrInsufficientFunds
		return nil, err
	}

	if _, err = tx.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2`, amountCents, userID); err != nil {
		return nil, err
	}

	tr = &domain.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		AmountCents: amountCents,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, user_id, amount, description, created_at) VALUES ($1,$2,$3,$4,$5)`,
		tr.ID, tr.UserID, tr.AmountCents, tr.Description, tr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// RequestWithdrawal deducts referral earnings and records the pending
// withdrawal atomically.
func (r *LedgerRepository) RequestWithdrawal(ctx context.Context, userID, userName string, amountCents int64, phoneNumber string) (w *domain.Withdrawal, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var earnings int64
	err = tx.QueryRow(ctx, `SELECT referral_earnings FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&earnings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if amountCents > earnings {
		err = port.ErrInsufficientEarnings
		return nil, err
	}

	if _, err = tx.Exec(ctx, `UPDATE users SET referral_earnings = referral_earnings - $1 WHERE id = $2`, amountCents, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w = &domain.Withdrawal{
		ID:          uuid.NewString(),
		UserID:      userID,
		UserName:    userName,
		AmountCents: amountCents,
		PhoneNumber: phoneNumber,
		Status:      domain.WithdrawalPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO withdrawals (id, user_id, user_name, amount, phone_number, status, created_at, updated_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		w.ID, w.UserID, w.UserName, w.AmountCents, w.PhoneNumber, w.Status, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListTransactions returns the user's ledger, newest first.
func (r *LedgerRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, amount, description, created_at FROM transactions
         WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(&t.ID, &t.UserID, &t.AmountCents, &t.Description, &t.CreatedAt)
		return t, err
	})
}

// ListWithdrawals returns the user's withdrawal requests, newest first.
func (r *LedgerRepository) ListWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, user_name, amount, phone_number, status, created_at, updated_at
         FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Withdrawal, error) {
		var w domain.Withdrawal
		err := row.Scan(&w.ID, &w.UserID, &w.UserName, &w.AmountCents, &w.PhoneNumber, &w.Status, &w.CreatedAt, &w.UpdatedAt)
		return w, err
	})
}
