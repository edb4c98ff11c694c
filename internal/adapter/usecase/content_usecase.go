package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

// ContentUseCase generates and serves SEO articles. Unlike ad generation
// there is no fallback here: a failed generation surfaces, since there is
// nothing sensible to publish in its place.
type ContentUseCase struct {
	gen      port.TextGenerator
	articles port.ArticleRepository
}

// NewContentUseCase creates the usecase.
func NewContentUseCase(gen port.TextGenerator, articles port.ArticleRepository) *ContentUseCase {
	return &ContentUseCase{gen: gen, articles: articles}
}

// GenerateArticle validates the brief, generates the article and persists
// it as published.
func (u *ContentUseCase) GenerateArticle(ctx context.Context, brief domain.ArticleBrief) (*domain.Article, error) {
	verr := &port.ValidationError{}
	if strings.TrimSpace(brief.Topic) == "" {
		verr.Add("topic", "must not be empty")
	}
	if !verr.Empty() {
		return nil, verr
	}

	gen, err := u.gen.GenerateArticle(ctx, brief)
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}

	art := domain.Article{
		ID:          uuid.NewString(),
		Title:       gen.Title,
		Content:     gen.Content,
		HTMLContent: gen.HTMLContent,
		Keywords:    gen.Keywords,
		Slug:        gen.Slug,
		Status:      "published",
		CreatedAt:   time.Now().UTC(),
	}
	if art.Slug == "" {
		art.Slug = domain.Slugify(art.Title)
	}
	if len(art.Keywords) == 0 {
		art.Keywords = brief.Keywords
	}
	if err := u.articles.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}
	return &art, nil
}

// ListArticles returns the newest articles.
func (u *ContentUseCase) ListArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return u.articles.List(ctx, limit)
}

// GetArticle returns an article by slug.
func (u *ContentUseCase) GetArticle(ctx context.Context, slug string) (*domain.Article, error) {
	return u.articles.GetBySlug(ctx, slug)
}
