package port

import (
	"context"

	"adloom/internal/core/domain"
)

// CampaignRepository persists the admin-facing campaign rows. The runtime
// simulation state lives in the session store; this repository only tracks
// the durable record and its status.
type CampaignRepository interface {
	Create(ctx context.Context, c domain.Campaign) error
	ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error)
	UpdateStatus(ctx context.Context, campaignID string, status domain.Status) error
}

// ArticleRepository persists generated SEO articles.
type ArticleRepository interface {
	Create(ctx context.Context, a domain.Article) error
	List(ctx context.Context, limit int) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
}
