package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adloom/internal/core/domain"
	"adloom/internal/core/port/mocks"
	"adloom/internal/sessionstore"
)

// TestComputeMetrics: review counts as active (budget committed), finished
// does not, and total spend sums every record regardless of status.
func TestComputeMetrics(t *testing.T) {
	records := []domain.CampaignRecord{
		{Status: domain.StatusReview, AdSpend: 0},
		{Status: domain.StatusActive, AdSpend: 12.5},
		{Status: domain.StatusFinished, AdSpend: 40},
		{Status: domain.StatusPending, AdSpend: 0},
	}

	m := ComputeMetrics(records, 3050, 2500)
	require.Equal(t, 30.50, m.Balance)
	require.Equal(t, 25.00, m.ReferralEarnings)
	require.Equal(t, 2, m.ActiveCampaigns)
	require.InDelta(t, 52.5, m.TotalAdSpend, 1e-9)
	require.False(t, m.Degraded)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, 0, 0)
	require.Zero(t, m.ActiveCampaigns)
	require.Zero(t, m.TotalAdSpend)
}

// TestMetricsDegradesToSignupBonus: a failed balance lookup substitutes
// the signup bonus default and flags the response instead of erroring.
func TestMetricsDegradesToSignupBonus(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().
		GetUser(mock.Anything, "u1").
		Return(nil, errors.New("connection refused"))

	store := sessionstore.New()
	store.Context("s1", "api").Save([]domain.CampaignRecord{
		{ID: "c1", Status: domain.StatusActive, AdSpend: 3},
	})

	u := NewDashboardUseCase(ledger, store, discardLogger(), "u1")
	m := u.Metrics(context.Background(), "s1")

	require.True(t, m.Degraded)
	require.Equal(t, float64(DefaultSignupBonusCents)/100, m.Balance)
	require.Zero(t, m.ReferralEarnings)
	require.Equal(t, 1, m.ActiveCampaigns)
	require.InDelta(t, 3, m.TotalAdSpend, 1e-9)
}
