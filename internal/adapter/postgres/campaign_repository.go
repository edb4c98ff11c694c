package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adloom/internal/core/domain"
)

// CampaignRepository persists the durable campaign rows.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns (id, user_id, user_name, headline, status, created_at)
         VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.UserID, c.UserName, c.Headline, string(c.Status), c.CreatedAt)
	return err
}

// ListByUser returns the user's campaigns, newest first.
func (r *CampaignRepository) ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, user_name, headline, status, created_at
         FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.UserID, &c.UserName, &c.Headline, &c.Status, &c.CreatedAt)
		return c, err
	})
}

// UpdateStatus moves a campaign row to the given lifecycle status.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, campaignID string, status domain.Status) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1 WHERE id = $2`, string(status), campaignID)
	return err
}
