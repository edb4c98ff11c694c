package port

import (
	"context"

	"adloom/internal/core/domain"
)

// TextGenerator is the outbound port to the hosted generative model. All
// methods validate the model's response shape before returning it; a
// response that does not match the expected schema is ErrInvalidCompletion,
// an empty response is ErrEmptyCompletion and a missing API key is
// ErrMissingCredentials. Callers decide whether to fall back.
type TextGenerator interface {
	// GenerateAdVariants drafts one ad per requested platform.
	GenerateAdVariants(ctx context.Context, brief domain.AdBrief) ([]domain.AdVariant, error)

	// ReviewCompliance checks ad copy against platform advertising policy.
	ReviewCompliance(ctx context.Context, in domain.ComplianceInput) (*domain.ComplianceReport, error)

	// GenerateArticle writes an SEO article for the given brief.
	GenerateArticle(ctx context.Context, brief domain.ArticleBrief) (*domain.GeneratedArticle, error)
}
