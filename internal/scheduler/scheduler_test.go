package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"adloom/internal/core/domain"
	"adloom/internal/core/lifecycle"
	"adloom/internal/core/port"
	"adloom/internal/sessionstore"
)

func TestMain(m *testing.M) {
	// the scheduler must never leak a timer goroutine past Stop
	goleak.VerifyTestMain(m)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []port.StatusChange
}

func (p *recordingPublisher) Publish(_ context.Context, ev port.StatusChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) snapshot() []port.StatusChange {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]port.StatusChange(nil), p.events...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSchedulerAdvancesRecords(t *testing.T) {
	engine := lifecycle.New(20 * time.Millisecond)
	store := sessionstore.New()
	pub := &recordingPublisher{}
	s := New(engine, store, nil, pub, testLogger(), 5*time.Millisecond)
	defer s.Stop()

	rec := engine.Activate(domain.CampaignRecord{
		ID:                   "c1",
		Headline:             "Summer Sale",
		Budget:               4,
		DurationDays:         1,
		PredictedReach:       4000,
		PredictedConversions: 200,
		Status:               domain.StatusPending,
	}, time.Now())
	store.Context("s1", "api").Save([]domain.CampaignRecord{rec})

	s.EnsureSession("s1")

	require.Eventually(t, func() bool {
		recs := store.Context("s1", "api").Load()
		return len(recs) == 1 && recs[0].Status == domain.StatusActive
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		for _, ev := range pub.snapshot() {
			if ev.CampaignID == "c1" &&
				ev.OldStatus == domain.StatusReview &&
				ev.NewStatus == domain.StatusActive {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestSchedulerRetiresWhenAllFinished(t *testing.T) {
	engine := lifecycle.New(20 * time.Millisecond)
	store := sessionstore.New()
	s := New(engine, store, nil, nil, testLogger(), 5*time.Millisecond)
	defer s.Stop()

	store.Context("s1", "api").Save([]domain.CampaignRecord{{
		ID:     "c1",
		Status: domain.StatusFinished,
	}})

	s.EnsureSession("s1")

	// the loop sees nothing tickable and retires itself
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, running := s.cancel["s1"]
		return !running
	}, time.Second, 5*time.Millisecond)
}

func TestEnsureSessionIsIdempotent(t *testing.T) {
	engine := lifecycle.New(time.Hour)
	store := sessionstore.New()
	s := New(engine, store, nil, nil, testLogger(), time.Millisecond)
	defer s.Stop()

	store.Context("s1", "api").Save([]domain.CampaignRecord{{
		ID:        "c1",
		Status:    domain.StatusReview,
		StartDate: time.Now(),
	}})

	for i := 0; i < 5; i++ {
		s.EnsureSession("s1")
	}
	s.mu.Lock()
	require.Len(t, s.cancel, 1)
	s.mu.Unlock()
}

func TestStopTearsDownLoops(t *testing.T) {
	engine := lifecycle.New(time.Hour)
	store := sessionstore.New()
	s := New(engine, store, nil, nil, testLogger(), time.Millisecond)

	for _, sid := range []string{"s1", "s2", "s3"} {
		store.Context(sid, "api").Save([]domain.CampaignRecord{{
			ID:        "c-" + sid,
			Status:    domain.StatusReview,
			StartDate: time.Now(),
		}})
		s.EnsureSession(sid)
	}

	s.Stop()

	// a closed scheduler refuses new loops
	s.EnsureSession("s4")
	s.mu.Lock()
	require.Empty(t, s.cancel)
	s.mu.Unlock()
}

func TestTickableTracksLatestStatus(t *testing.T) {
	engine := lifecycle.New(time.Hour)
	store := sessionstore.New()
	s := New(engine, store, nil, nil, testLogger(), time.Hour)
	defer s.Stop()

	require.False(t, s.Tickable("s1"))

	store.Context("s1", "api").Save([]domain.CampaignRecord{{
		ID:        "c1",
		Status:    domain.StatusReview,
		StartDate: time.Now(),
	}})
	require.True(t, s.Tickable("s1"))

	store.Context("s1", "api").Save([]domain.CampaignRecord{{
		ID:     "c1",
		Status: domain.StatusFinished,
	}})
	require.False(t, s.Tickable("s1"))
}
