package lifecycle

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adloom/internal/core/domain"
)

func newRecord(budget float64, days int, reach, conv float64) domain.CampaignRecord {
	return domain.CampaignRecord{
		ID:                   "c1",
		Headline:             "Summer Sale",
		Budget:               budget,
		DurationDays:         days,
		PredictedReach:       reach,
		PredictedConversions: conv,
		Status:               domain.StatusPending,
	}
}

// TestScenarioTimeline walks the documented one-day campaign through its
// whole lifecycle at fixed checkpoints.
func TestScenarioTimeline(t *testing.T) {
	e := New(10 * time.Second)
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := e.Activate(newRecord(4, 1, 4000, 200), t0)
	require.Equal(t, domain.StatusReview, rec.Status)
	require.Equal(t, t0, rec.StartDate)

	// still in review one second before the period elapses
	rec = e.Tick(rec, t0.Add(9*time.Second))
	require.Equal(t, domain.StatusReview, rec.Status)

	rec = e.Tick(rec, t0.Add(10*time.Second))
	require.Equal(t, domain.StatusActive, rec.Status)
	require.Zero(t, rec.AdSpend)
	require.Zero(t, rec.Impressions)
	require.Zero(t, rec.Clicks)

	half := t0.Add(10*time.Second + 43200*time.Second)
	rec = e.Tick(rec, half)
	require.Equal(t, domain.StatusActive, rec.Status)
	require.InDelta(t, 2.00, rec.AdSpend, 1e-9)
	require.Equal(t, float64(2000), rec.Impressions)
	require.Equal(t, float64(100), rec.Clicks)

	end := t0.Add(10*time.Second + 86400*time.Second)
	rec = e.Tick(rec, end)
	require.Equal(t, domain.StatusFinished, rec.Status)
	require.InDelta(t, 4.00, rec.AdSpend, 1e-9)
	require.Equal(t, float64(4000), rec.Impressions)
	require.Equal(t, float64(200), rec.Clicks)
}

// TestGapReplayEquivalence checks that skipping ticks never changes the
// outcome: replaying every intermediate tick and jumping straight to the
// endpoint produce identical records.
func TestGapReplayEquivalence(t *testing.T) {
	e := New(10 * time.Second)
	r := rand.New(rand.NewPCG(7, 11))
	t0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		rec := e.Activate(newRecord(
			1+r.Float64()*999,
			1+r.IntN(30),
			r.Float64()*1e6,
			r.Float64()*1e4,
		), t0)

		// random monotonically increasing tick times
		steps := 2 + r.IntN(40)
		times := make([]time.Time, steps)
		cur := t0
		for j := range times {
			cur = cur.Add(time.Duration(1+r.IntN(7200)) * time.Second)
			times[j] = cur
		}

		dense := rec
		for _, ts := range times {
			dense = e.Tick(dense, ts)
		}
		sparse := e.Tick(rec, times[len(times)-1])

		require.Equal(t, sparse.Status, dense.Status)
		require.InDelta(t, sparse.AdSpend, dense.AdSpend, 1e-9)
		require.Equal(t, sparse.Impressions, dense.Impressions)
		require.Equal(t, sparse.Clicks, dense.Clicks)
	}
}

// TestIdempotence ensures the engine has no hidden state: ticking the same
// (record, now) twice yields the same output.
func TestIdempotence(t *testing.T) {
	e := New(10 * time.Second)
	t0 := time.Now().UTC()
	rec := e.Activate(newRecord(50, 3, 80000, 900), t0)
	at := t0.Add(26 * time.Hour)

	first := e.Tick(rec, at)
	second := e.Tick(rec, at)
	require.Equal(t, first, second)

	// ticking the already-ticked record at the same instant is also stable
	require.Equal(t, first, e.Tick(first, at))
}

// TestInvariantPreservation fuzzes 1000 randomized records and tick
// sequences; metric caps and forward-only status must hold at every step.
func TestInvariantPreservation(t *testing.T) {
	e := New(10 * time.Second)
	r := rand.New(rand.NewPCG(42, 1))
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		rec := e.Activate(newRecord(
			0.01+r.Float64()*1e4,
			1+r.IntN(60),
			r.Float64()*1e7,
			r.Float64()*1e5,
		), t0)

		cur := t0
		prev := rec
		for j := 0; j < 20; j++ {
			cur = cur.Add(time.Duration(r.IntN(10*86400)) * time.Second)
			rec = e.Tick(rec, cur)

			require.LessOrEqual(t, rec.AdSpend, rec.Budget+1e-9)
			require.LessOrEqual(t, rec.Impressions, rec.PredictedReach)
			require.LessOrEqual(t, rec.Clicks, rec.PredictedConversions)
			require.GreaterOrEqual(t, rec.AdSpend, prev.AdSpend)
			require.GreaterOrEqual(t, rec.Impressions, prev.Impressions)
			require.GreaterOrEqual(t, rec.Clicks, prev.Clicks)
			require.False(t, rec.Status.Forward(prev.Status), "status regressed")
			prev = rec
		}
	}
}

// TestTerminalExactness verifies that finished campaigns land exactly on
// their targets rather than merely close.
func TestTerminalExactness(t *testing.T) {
	e := New(10 * time.Second)
	t0 := time.Now().UTC()
	rec := e.Activate(newRecord(123.45, 2, 98765, 4321), t0)

	rec = e.Tick(rec, t0.Add(1000*time.Hour))
	require.Equal(t, domain.StatusFinished, rec.Status)
	require.InDelta(t, 123.45, rec.AdSpend, 1e-9)
	require.Equal(t, 98765.0, rec.Impressions)
	require.Equal(t, 4321.0, rec.Clicks)

	// finished is terminal: further ticks change nothing
	require.Equal(t, rec, e.Tick(rec, t0.Add(2000*time.Hour)))
}

// TestPendingWaitsForActivate ensures Tick never advances a pending record
// and Activate leaves non-pending records alone.
func TestPendingWaitsForActivate(t *testing.T) {
	e := New(10 * time.Second)
	t0 := time.Now().UTC()
	rec := newRecord(10, 1, 100, 10)

	require.Equal(t, rec, e.Tick(rec, t0.Add(time.Hour)))

	active := e.Activate(rec, t0)
	require.Equal(t, active, e.Activate(active, t0.Add(time.Minute)))
}
