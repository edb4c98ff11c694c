package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
	"adloom/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func validBrief() domain.AdBrief {
	return domain.AdBrief{
		ProductName:    "Solar Kettle",
		Description:    "Boils water on sunlight alone",
		TargetAudience: "campers",
		Platforms:      []string{"facebook", "instagram"},
		Budget:         10,
		DurationDays:   7,
	}
}

// TestGenerateOverwritesEstimatedCost ensures the model's arithmetic is
// never trusted: whatever cost it proposes, the returned value equals the
// input budget exactly.
func TestGenerateOverwritesEstimatedCost(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		GenerateAdVariants(mock.Anything, mock.AnythingOfType("domain.AdBrief")).
		Return([]domain.AdVariant{
			{Platform: "facebook", Headline: "h", AdCopy: "c", PredictedReach: 100, EstimatedCost: 999.99},
			{Platform: "instagram", Headline: "h", AdCopy: "c", PredictedReach: 100, EstimatedCost: -3},
		}, nil)

	u := NewAdGenUseCase(gen, discardLogger())
	variants, err := u.Generate(context.Background(), validBrief())
	require.NoError(t, err)
	require.Len(t, variants, 2)
	for _, v := range variants {
		require.Equal(t, 10.0, v.EstimatedCost)
		require.False(t, v.Fallback)
	}
}

// TestGenerateFallsBackOnUpstreamFailure checks that every upstream
// failure kind degrades to synthesized variants instead of dead-ending.
func TestGenerateFallsBackOnUpstreamFailure(t *testing.T) {
	for _, upstream := range []error{
		port.ErrMissingCredentials,
		port.ErrEmptyCompletion,
		port.ErrInvalidCompletion,
		errors.New("connection reset"),
	} {
		gen := mocks.NewMockTextGenerator(t)
		gen.EXPECT().
			GenerateAdVariants(mock.Anything, mock.AnythingOfType("domain.AdBrief")).
			Return(nil, upstream)

		u := NewAdGenUseCase(gen, discardLogger())
		variants, err := u.Generate(context.Background(), validBrief())
		require.NoError(t, err)
		require.Len(t, variants, 2)
		for _, v := range variants {
			require.True(t, v.Fallback)
			require.Equal(t, 10.0, v.EstimatedCost)
			// deterministic formula, not model output
			require.Equal(t, 8000.0, v.PredictedReach)
			require.Equal(t, 400.0, v.PredictedConversions)
			require.NotEmpty(t, v.AdCopy)
		}
	}
}

// TestGenerateValidation rejects malformed briefs before the generator is
// ever invoked; the mock has no expectations, so a call would fail.
func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*domain.AdBrief)
		field string
	}{
		{"empty product", func(b *domain.AdBrief) { b.ProductName = " " }, "productName"},
		{"empty description", func(b *domain.AdBrief) { b.Description = "" }, "description"},
		{"empty audience", func(b *domain.AdBrief) { b.TargetAudience = "" }, "targetAudience"},
		{"no platforms", func(b *domain.AdBrief) { b.Platforms = nil }, "platforms"},
		{"unknown platform", func(b *domain.AdBrief) { b.Platforms = []string{"myspace"} }, "platforms"},
		{"zero budget", func(b *domain.AdBrief) { b.Budget = 0 }, "budget"},
		{"negative budget", func(b *domain.AdBrief) { b.Budget = -5 }, "budget"},
		{"zero duration", func(b *domain.AdBrief) { b.DurationDays = 0 }, "campaignDurationDays"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mocks.NewMockTextGenerator(t)
			u := NewAdGenUseCase(gen, discardLogger())

			brief := validBrief()
			tt.mut(&brief)
			_, err := u.Generate(context.Background(), brief)

			var verr *port.ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			require.Contains(t, fields, tt.field)
		})
	}
}

// TestComplianceDegradesToManualReview: an unavailable reviewer never
// silently approves.
func TestComplianceDegradesToManualReview(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		ReviewCompliance(mock.Anything, mock.AnythingOfType("domain.ComplianceInput")).
		Return(nil, port.ErrEmptyCompletion)

	u := NewAdGenUseCase(gen, discardLogger())
	report, err := u.ReviewCompliance(context.Background(), domain.ComplianceInput{
		Headline: "Free money",
		AdCopy:   "Guaranteed returns",
		Platform: "facebook",
	})
	require.NoError(t, err)
	require.False(t, report.Approved)
	require.NotEmpty(t, report.Issues)
}
