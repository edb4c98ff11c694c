package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

// Fallback prediction formula. A synthesized variant estimates reach as a
// fixed multiple of budget and conversions as a fixed share of reach, so
// fallback results are deterministic and distinguishable from model output.
const (
	fallbackReachPerUnit   = 800.0
	fallbackConversionRate = 0.05
)

// AdGenUseCase validates briefs, invokes the generative model and
// guarantees callers always receive usable variants, model or not.
type AdGenUseCase struct {
	gen    port.TextGenerator
	logger *slog.Logger
}

// NewAdGenUseCase creates the usecase.
func NewAdGenUseCase(gen port.TextGenerator, logger *slog.Logger) *AdGenUseCase {
	return &AdGenUseCase{gen: gen, logger: logger}
}

// Generate returns one ad variant per requested platform. Upstream
// failures of any kind degrade to locally synthesized fallback variants;
// the user-facing flow never dead-ends on the model. Only validation
// errors propagate.
func (u *AdGenUseCase) Generate(ctx context.Context, brief domain.AdBrief) ([]domain.AdVariant, error) {
	if err := validateBrief(brief); err != nil {
		return nil, err
	}

	variants, err := u.gen.GenerateAdVariants(ctx, brief)
	if err != nil {
		u.logger.Warn("ad generation degraded to fallback", slog.Any("error", err))
		return fallbackVariants(brief), nil
	}
	for i := range variants {
		// the adapter already enforces this; keep the invariant local too
		variants[i].EstimatedCost = brief.Budget
	}
	return variants, nil
}

// ReviewCompliance validates the input and asks the model for a policy
// verdict. When the reviewer is unavailable the ad is conservatively sent
// to manual review rather than silently approved.
func (u *AdGenUseCase) ReviewCompliance(ctx context.Context, in domain.ComplianceInput) (*domain.ComplianceReport, error) {
	verr := &port.ValidationError{}
	if strings.TrimSpace(in.Headline) == "" {
		verr.Add("headline", "must not be empty")
	}
	if strings.TrimSpace(in.AdCopy) == "" {
		verr.Add("adCopy", "must not be empty")
	}
	if !domain.KnownPlatform(in.Platform) {
		verr.Add("platform", fmt.Sprintf("must be one of %s", strings.Join(domain.Platforms, ", ")))
	}
	if !verr.Empty() {
		return nil, verr
	}

	report, err := u.gen.ReviewCompliance(ctx, in)
	if err != nil {
		u.logger.Warn("compliance review degraded", slog.Any("error", err))
		return &domain.ComplianceReport{
			Approved: false,
			Issues:   []string{"automated review unavailable"},
			Summary:  "Automated compliance review is unavailable; the ad has been queued for manual review.",
		}, nil
	}
	return report, nil
}

// validateBrief rejects malformed input before any network call.
func validateBrief(brief domain.AdBrief) error {
	verr := &port.ValidationError{}
	if strings.TrimSpace(brief.ProductName) == "" {
		verr.Add("productName", "must not be empty")
	}
	if strings.TrimSpace(brief.Description) == "" {
		verr.Add("description", "must not be empty")
	}
	if strings.TrimSpace(brief.TargetAudience) == "" {
		verr.Add("targetAudience", "must not be empty")
	}
	if len(brief.Platforms) == 0 {
		verr.Add("platforms", "select at least one platform")
	}
	for _, p := range brief.Platforms {
		if !domain.KnownPlatform(p) {
			verr.Add("platforms", fmt.Sprintf("unknown platform %q", p))
		}
	}
	if brief.Budget <= 0 {
		verr.Add("budget", "must be greater than zero")
	}
	if brief.DurationDays < 1 {
		verr.Add("campaignDurationDays", "must be a positive integer")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// fallbackVariants synthesizes one variant per platform from the fixed
// formula. Fallback is set so callers and tests can tell these apart from
// model output.
func fallbackVariants(brief domain.AdBrief) []domain.AdVariant {
	variants := make([]domain.AdVariant, 0, len(brief.Platforms))
	for _, platform := range brief.Platforms {
		reach := math.Floor(brief.Budget * fallbackReachPerUnit)
		variants = append(variants, domain.AdVariant{
			Platform:             platform,
			Headline:             fmt.Sprintf("%s - now on %s", brief.ProductName, platform),
			AdCopy:               fmt.Sprintf("%s. Made for %s.", brief.Description, brief.TargetAudience),
			PredictedReach:       reach,
			PredictedConversions: math.Floor(reach * fallbackConversionRate),
			EstimatedCost:        brief.Budget,
			Fallback:             true,
		})
	}
	return variants
}
