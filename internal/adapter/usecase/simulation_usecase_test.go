package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adloom/internal/core/domain"
	"adloom/internal/core/lifecycle"
	"adloom/internal/core/port"
	"adloom/internal/core/port/mocks"
	"adloom/internal/scheduler"
	"adloom/internal/sessionstore"
)

func newSimulation(t *testing.T, ledger *mocks.MockLedgerRepository, campaigns *mocks.MockCampaignRepository) (*SimulationUseCase, *sessionstore.Store) {
	t.Helper()
	engine := lifecycle.New(10 * time.Second)
	store := sessionstore.New()
	sched := scheduler.New(engine, store, campaigns, nil, discardLogger(), time.Hour)
	t.Cleanup(sched.Stop)
	return NewSimulationUseCase(ledger, campaigns, store, sched, engine, discardLogger(), "u1"), store
}

func launchReq() port.LaunchRequest {
	return port.LaunchRequest{
		Headline:             "Summer Sale",
		AdCopy:               "Everything must go",
		Platform:             "facebook",
		Budget:               25.50,
		DurationDays:         3,
		PredictedReach:       4000,
		PredictedConversions: 200,
	}
}

// TestLaunchDebitsBudgetAndStoresRecord walks the happy path: the budget
// debit is committed with its ledger row, the record lands in the session
// store in review state and the hand-off entry holds the new transaction.
func TestLaunchDebitsBudgetAndStoresRecord(t *testing.T) {
	// simulated account, debited the way the repository would
	balance := int64(3050)
	var ledgerRows []domain.Transaction

	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().
		AddTransaction(mock.Anything, "u1", int64(-2550), "Summer Sale Campaign").
		RunAndReturn(func(_ context.Context, userID string, amountCents int64, description string) (*domain.Transaction, error) {
			if balance+amountCents < 0 {
				return nil, port.ErrInsufficientFunds
			}
			balance += amountCents
			tr := domain.Transaction{ID: "t1", UserID: userID, AmountCents: amountCents, Description: description}
			ledgerRows = append(ledgerRows, tr)
			return &tr, nil
		})
	ledger.EXPECT().
		GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Demo"}, nil)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(nil)

	u, store := newSimulation(t, ledger, campaigns)
	rec, err := u.Launch(context.Background(), "s1", launchReq())
	require.NoError(t, err)

	require.Equal(t, domain.StatusReview, rec.Status)
	require.False(t, rec.StartDate.IsZero())
	require.Equal(t, int64(500), balance)
	require.Len(t, ledgerRows, 1)

	stored := u.List(context.Background(), "s1")
	require.Len(t, stored, 1)
	require.Equal(t, rec.ID, stored[0].ID)
	require.True(t, u.Tickable("s1"))

	handoff := store.TakeNewTransaction("s1")
	require.NotNil(t, handoff)
	require.Equal(t, int64(-2550), handoff.AmountCents)
	require.Equal(t, "Summer Sale Campaign", handoff.Description)
}

// TestLaunchFailsWhenDebitFails: a rejected debit stores nothing. The
// campaign mock has no expectations, so any insert would fail the test.
func TestLaunchFailsWhenDebitFails(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().
		AddTransaction(mock.Anything, "u1", int64(-2550), "Summer Sale Campaign").
		Return(nil, port.ErrInsufficientFunds)

	campaigns := mocks.NewMockCampaignRepository(t)
	u, store := newSimulation(t, ledger, campaigns)

	_, err := u.Launch(context.Background(), "s1", launchReq())
	require.ErrorIs(t, err, port.ErrInsufficientFunds)
	require.Empty(t, u.List(context.Background(), "s1"))
	require.Nil(t, store.TakeNewTransaction("s1"))
}

// TestLaunchValidation rejects malformed requests before any repository
// call.
func TestLaunchValidation(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*port.LaunchRequest)
	}{
		{"empty headline", func(r *port.LaunchRequest) { r.Headline = "" }},
		{"empty copy", func(r *port.LaunchRequest) { r.AdCopy = " " }},
		{"unknown platform", func(r *port.LaunchRequest) { r.Platform = "usenet" }},
		{"zero budget", func(r *port.LaunchRequest) { r.Budget = 0 }},
		{"zero duration", func(r *port.LaunchRequest) { r.DurationDays = 0 }},
		{"negative reach", func(r *port.LaunchRequest) { r.PredictedReach = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := mocks.NewMockLedgerRepository(t)
			campaigns := mocks.NewMockCampaignRepository(t)
			u, _ := newSimulation(t, ledger, campaigns)

			req := launchReq()
			tt.mut(&req)
			_, err := u.Launch(context.Background(), "s1", req)

			var verr *port.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

// TestLaunchSurvivesConcurrentTicks launches campaigns while the scheduler
// ticks the same session as fast as it can. The debit for every launch is
// committed, so losing a record to a tick pass saving over the append
// would charge the user for a campaign that no longer exists.
func TestLaunchSurvivesConcurrentTicks(t *testing.T) {
	const launches = 20

	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().
		AddTransaction(mock.Anything, "u1", int64(-2550), "Summer Sale Campaign").
		Return(&domain.Transaction{ID: "t1", UserID: "u1", AmountCents: -2550}, nil)
	ledger.EXPECT().
		GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Demo"}, nil)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	engine := lifecycle.New(5 * time.Millisecond)
	store := sessionstore.New()
	sched := scheduler.New(engine, store, campaigns, nil, discardLogger(), time.Millisecond)
	t.Cleanup(sched.Stop)
	u := NewSimulationUseCase(ledger, campaigns, store, sched, engine, discardLogger(), "u1")

	errs := make(chan error, launches)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < launches/4; j++ {
				_, err := u.Launch(context.Background(), "s1", launchReq())
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, u.List(context.Background(), "s1"), launches)
}

// TestHistoryListsDurableRows: the history view reads the persisted
// campaign rows, not the session store.
func TestHistoryListsDurableRows(t *testing.T) {
	rows := []domain.Campaign{
		{ID: "c2", UserID: "u1", UserName: "Demo", Headline: "Back to School", Status: domain.StatusActive},
		{ID: "c1", UserID: "u1", UserName: "Demo", Headline: "Summer Sale", Status: domain.StatusFinished},
	}

	ledger := mocks.NewMockLedgerRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		ListByUser(mock.Anything, "u1").
		Return(rows, nil)

	u, _ := newSimulation(t, ledger, campaigns)
	got, err := u.History(context.Background())
	require.NoError(t, err)
	require.Equal(t, rows, got)
}
