package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

// ArticleRepository persists generated SEO articles.
type ArticleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository returns a new repository instance.
func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

// Create inserts an article.
func (r *ArticleRepository) Create(ctx context.Context, a domain.Article) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO articles (id, title, content, html_content, keywords, slug, status, created_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.Title, a.Content, a.HTMLContent, a.Keywords, a.Slug, a.Status, a.CreatedAt)
	return err
}

// List returns the newest articles.
func (r *ArticleRepository) List(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, html_content, keywords, slug, status, created_at
         FROM articles ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanArticle)
}

// GetBySlug returns an article by slug or port.ErrNotFound.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, html_content, keywords, slug, status, created_at
         FROM articles WHERE slug = $1`, slug,
	).Scan(&a.ID, &a.Title, &a.Content, &a.HTMLContent, &a.Keywords, &a.Slug, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.HTMLContent, &a.Keywords, &a.Slug, &a.Status, &a.CreatedAt)
	return a, err
}
