package sessionstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adloom/internal/core/domain"
)

func sampleRecords() []domain.CampaignRecord {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.CampaignRecord{
		{
			ID:           "c1",
			Headline:     "Summer Sale",
			Budget:       40,
			DurationDays: 3,
			StartDate:    start,
			Status:       domain.StatusActive,
			AdSpend:      12.5,
			Impressions:  4200,
		},
		{
			ID:           "c2",
			Headline:     "Back to School",
			Budget:       15,
			DurationDays: 1,
			Status:       domain.StatusReview,
			StartDate:    start.Add(time.Hour),
		},
	}
}

func TestRoundTripFidelity(t *testing.T) {
	store := New()
	c := store.Context("s1", "tab-a")

	recs := sampleRecords()
	c.Save(recs)
	require.Equal(t, recs, c.Load())

	// save replaces the whole collection, not merges
	c.Save(recs[:1])
	require.Equal(t, recs[:1], c.Load())
}

func TestLoadEmptyAndMalformed(t *testing.T) {
	store := New()
	c := store.Context("s1", "tab-a")

	// untouched session reads as no campaigns
	require.Empty(t, c.Load())

	// corrupt entry degrades to no campaigns, identically to empty
	store.mu.Lock()
	store.session("s1").entries[entryCampaigns] = []byte("{not json")
	store.mu.Unlock()
	require.Empty(t, c.Load())
}

func TestOnChangeCrossContext(t *testing.T) {
	store := New()
	tabA := store.Context("s1", "tab-a")
	tabB := store.Context("s1", "tab-b")
	other := store.Context("s2", "tab-a")

	var aFired, bFired, otherFired int
	unsubA := tabA.OnChange(func() { aFired++ })
	tabB.OnChange(func() { bFired++ })
	other.OnChange(func() { otherFired++ })

	// same-context saves stay silent; the other tab is notified
	tabA.Save(sampleRecords())
	require.Zero(t, aFired)
	require.Equal(t, 1, bFired)
	require.Zero(t, otherFired)

	tabB.Save(nil)
	require.Equal(t, 1, aFired)
	require.Equal(t, 1, bFired)

	unsubA()
	tabB.Save(nil)
	require.Equal(t, 1, aFired)
}

func TestLastWriterWins(t *testing.T) {
	store := New()
	tabA := store.Context("s1", "tab-a")
	tabB := store.Context("s1", "tab-b")

	recs := sampleRecords()
	tabA.Save(recs)
	tabB.Save(recs[1:])

	// no merge across contexts: tab B's replace dropped tab A's first record
	require.Equal(t, recs[1:], tabA.Load())
}

func TestLatestStatusTracksNewestRecord(t *testing.T) {
	store := New()
	c := store.Context("s1", "tab-a")

	_, ok := store.LatestStatus("s1")
	require.False(t, ok)

	c.Save(sampleRecords())
	st, ok := store.LatestStatus("s1")
	require.True(t, ok)
	require.Equal(t, domain.StatusReview, st)
}

func TestNewTransactionHandOffIsOneShot(t *testing.T) {
	store := New()
	tx := domain.Transaction{
		ID:          "t1",
		UserID:      "u1",
		AmountCents: -2550,
		Description: "Summer Sale Campaign",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.Nil(t, store.TakeNewTransaction("s1"))

	store.PutNewTransaction("s1", tx)
	got := store.TakeNewTransaction("s1")
	require.NotNil(t, got)
	require.Equal(t, tx, *got)

	// second read sees nothing
	require.Nil(t, store.TakeNewTransaction("s1"))
}

func TestUpdateAppliesReadModifyWrite(t *testing.T) {
	store := New()
	c := store.Context("s1", "tab-a")
	c.Save(sampleRecords())

	c.Update(func(recs []domain.CampaignRecord) []domain.CampaignRecord {
		return append(recs, domain.CampaignRecord{ID: "c3", Status: domain.StatusActive})
	})

	recs := c.Load()
	require.Len(t, recs, 3)
	require.Equal(t, "c3", recs[2].ID)

	// latest status follows the newest record, like Save
	st, ok := store.LatestStatus("s1")
	require.True(t, ok)
	require.Equal(t, domain.StatusActive, st)
}

// TestUpdateDoesNotLoseConcurrentAppends pits a rewriting updater (the
// scheduler's tick pass shape) against an appending updater (the launch
// flow shape) on the same session. The session stays locked across each
// read-modify-write, so every appended record must survive.
func TestUpdateDoesNotLoseConcurrentAppends(t *testing.T) {
	const appends = 100

	store := New()
	ticker := store.Context("s1", "scheduler")
	api := store.Context("s1", "api")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < appends; i++ {
			api.Update(func(recs []domain.CampaignRecord) []domain.CampaignRecord {
				return append(recs, domain.CampaignRecord{
					ID:     fmt.Sprintf("c%d", i),
					Status: domain.StatusReview,
				})
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < appends; i++ {
			ticker.Update(func(recs []domain.CampaignRecord) []domain.CampaignRecord {
				for j := range recs {
					recs[j].AdSpend++
				}
				return recs
			})
		}
	}()
	wg.Wait()

	require.Len(t, api.Load(), appends)
}

// TestUpdateOnChangeCrossContext: updates notify like saves do.
func TestUpdateOnChangeCrossContext(t *testing.T) {
	store := New()
	tabA := store.Context("s1", "tab-a")
	tabB := store.Context("s1", "tab-b")

	var aFired, bFired int
	tabA.OnChange(func() { aFired++ })
	tabB.OnChange(func() { bFired++ })

	tabA.Update(func(recs []domain.CampaignRecord) []domain.CampaignRecord { return recs })
	require.Zero(t, aFired)
	require.Equal(t, 1, bFired)
}
