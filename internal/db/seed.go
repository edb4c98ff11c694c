package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// signupBonusCents is credited to the demo account so the dashboard and
// billing flows have a balance to work with out of the box.
const signupBonusCents = int64(50000)

// Seed inserts the demo user and a couple of published articles. Every
// statement is idempotent, so the seed can run on every startup.
func Seed(ctx context.Context, db *pgxpool.Pool, demoUserID string) error {
	_, err := db.Exec(ctx, `INSERT INTO users (id, name, email, balance, status, referral_earnings, created_at)
VALUES ($1, 'Demo User', 'demo@adloom.dev', $2, 'active', 2500, now()) ON CONFLICT DO NOTHING`,
		demoUserID, signupBonusCents)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO transactions (id, user_id, amount, description, created_at)
SELECT $1, $2, $3, 'Signup Bonus', now()
WHERE NOT EXISTS (SELECT 1 FROM transactions WHERE user_id = $2 AND description = 'Signup Bonus')`,
		uuid.NewString(), demoUserID, signupBonusCents)
	if err != nil {
		return err
	}

	articles := []struct {
		title, slug, content string
		keywords             []string
	}{
		{
			title:    "Five Ways to Stretch a Small Ad Budget",
			slug:     "five-ways-to-stretch-a-small-ad-budget",
			content:  "Small budgets reward focus. Pick one platform, one audience and one message, then let the numbers tell you when to widen the net.",
			keywords: []string{"ad budget", "small business", "paid social"},
		},
		{
			title:    "Reading Campaign Metrics Without a Data Team",
			slug:     "reading-campaign-metrics-without-a-data-team",
			content:  "Impressions tell you about reach, clicks tell you about interest, and spend pacing tells you whether the other two are worth it.",
			keywords: []string{"metrics", "impressions", "clicks"},
		},
	}
	for _, a := range articles {
		_, err = db.Exec(ctx, `INSERT INTO articles (id, title, content, html_content, keywords, slug, status, created_at)
VALUES ($1, $2, $3, '', $4, $5, 'published', now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(), a.title, a.content, a.keywords, a.slug)
		if err != nil {
			return err
		}
	}
	return nil
}
