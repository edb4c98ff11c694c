// Package scheduler owns the lifecycle driving loop. The browser used to
// run this on client-side timers; here one goroutine per session ticks the
// engine at a fixed cadence and commits a single save per pass, so ticks
// for a session are strictly serialized and every tick reads the previous
// tick's committed state. Progress is wall-clock based, so a loop that was
// stopped and restarted resumes correctly without replaying missed ticks.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adloom/internal/core/domain"
	"adloom/internal/core/lifecycle"
	"adloom/internal/core/port"
	"adloom/internal/sessionstore"
)

// schedulerContextID identifies the scheduler as a writer in the session
// store so its saves do not trigger its own change callbacks.
const schedulerContextID = "scheduler"

// Scheduler drives unfinished campaign records for every known session.
type Scheduler struct {
	engine    *lifecycle.Engine
	store     *sessionstore.Store
	campaigns port.CampaignRepository
	publisher port.EventPublisher
	logger    *slog.Logger
	interval  time.Duration

	mu     sync.Mutex
	cancel map[string]context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// New creates a scheduler. campaigns and publisher may be nil; status
// transitions are then only committed to the session store.
func New(engine *lifecycle.Engine, store *sessionstore.Store, campaigns port.CampaignRepository, publisher port.EventPublisher, logger *slog.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = lifecycle.DefaultTickInterval
	}
	return &Scheduler{
		engine:    engine,
		store:     store,
		campaigns: campaigns,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		cancel:    make(map[string]context.CancelFunc),
	}
}

// EnsureSession starts the driving loop for a session if it is not already
// running. Safe to call on every launch.
func (s *Scheduler) EnsureSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, ok := s.cancel[sessionID]; ok {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel[sessionID] = cancel
	s.wg.Add(1)
	go s.run(ctx, sessionID)
}

// Stop tears down every loop and waits for them to exit. No timers keep
// firing after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.closed = true
	for _, cancel := range s.cancel {
		cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, sessionID string) {
	defer s.wg.Done()
	defer s.release(sessionID)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tickSession(ctx, sessionID) {
				// everything finished; the loop retires itself and a later
				// launch starts a fresh one
				return
			}
		}
	}
}

// tickSession advances every unfinished record once and commits the pass
// as a single atomic update, so a launch appending a record concurrently
// can never be overwritten by the tick's save. It reports whether any
// record still needs ticking.
func (s *Scheduler) tickSession(ctx context.Context, sessionID string) bool {
	now := time.Now()
	var changes []port.StatusChange
	unfinished := false
	empty := false

	sc := s.store.Context(sessionID, schedulerContextID)
	sc.Update(func(recs []domain.CampaignRecord) []domain.CampaignRecord {
		empty = len(recs) == 0
		for i, rec := range recs {
			next := s.engine.Tick(rec, now)
			if next.Status != rec.Status {
				changes = append(changes, port.StatusChange{
					CampaignID: rec.ID,
					SessionID:  sessionID,
					OldStatus:  rec.Status,
					NewStatus:  next.Status,
					At:         now,
				})
			}
			if !next.Status.Terminal() {
				unfinished = true
			}
			recs[i] = next
		}
		return recs
	})
	if empty {
		return false
	}

	for _, ch := range changes {
		s.commitTransition(ctx, ch)
	}
	return unfinished
}

// commitTransition mirrors a status change to the durable campaign row and
// the event publisher. Both are best effort: a failure is logged and never
// blocks the tick loop.
func (s *Scheduler) commitTransition(ctx context.Context, ch port.StatusChange) {
	if s.campaigns != nil {
		if err := s.campaigns.UpdateStatus(ctx, ch.CampaignID, ch.NewStatus); err != nil {
			s.logger.Warn("campaign status sync failed",
				slog.String("campaign_id", ch.CampaignID),
				slog.Any("error", err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, ch); err != nil {
			s.logger.Warn("status event publish failed",
				slog.String("campaign_id", ch.CampaignID),
				slog.Any("error", err))
		}
	}
	s.logger.Debug("campaign transition",
		slog.String("campaign_id", ch.CampaignID),
		slog.String("from", string(ch.OldStatus)),
		slog.String("to", string(ch.NewStatus)))
}

func (s *Scheduler) release(sessionID string) {
	s.mu.Lock()
	if cancel, ok := s.cancel[sessionID]; ok {
		cancel()
		delete(s.cancel, sessionID)
	}
	s.mu.Unlock()
}

// Tickable reports whether any record in the session still advances. Used
// by views to decide whether to keep polling.
func (s *Scheduler) Tickable(sessionID string) bool {
	st, ok := s.store.LatestStatus(sessionID)
	if !ok {
		return false
	}
	return !st.Terminal()
}
