// Package sessionstore is the session-scoped persistence adapter. It mirrors
// the browser session-storage layout the dashboard relies on: one named
// entry holding the ordered campaign records as JSON, one holding the
// lifecycle status of the most recently created campaign, and a one-shot
// "new transaction" hand-off between the billing flow and the financials
// view. Entries are kept as marshalled JSON so a save followed by a load
// returns exactly what was saved, and unreadable data degrades to "no
// campaigns" instead of an error.
package sessionstore

import (
	"encoding/json"
	"sync"

	"adloom/internal/core/domain"
)

const (
	entryCampaigns      = "campaigns"
	entryLatestStatus   = "latest_status"
	entryNewTransaction = "new_transaction"
)

// Store holds the per-session entries. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

type watcher struct {
	contextID string
	fn        func()
}

type session struct {
	entries  map[string][]byte
	watchers map[int]watcher
	nextID   int
}

// New returns an empty store.
func New() *Store {
	return &Store{sessions: make(map[string]*session)}
}

// Context returns a handle bound to one execution context within a session.
// Saves from one context trigger the change callbacks of every other
// context in the same session, matching cross-tab storage semantics.
func (s *Store) Context(sessionID, contextID string) *Context {
	return &Context{store: s, sessionID: sessionID, contextID: contextID}
}

// Context is a session-scoped handle. Two handles with the same session id
// but different context ids model two open tabs.
type Context struct {
	store     *Store
	sessionID string
	contextID string
}

// Load returns the stored campaign records in order. A missing or
// malformed entry yields an empty slice; callers cannot distinguish "no
// campaigns" from "store unreadable" and must not need to.
func (c *Context) Load() []domain.CampaignRecord {
	c.store.mu.RLock()
	sess := c.store.sessions[c.sessionID]
	var raw []byte
	if sess != nil {
		raw = sess.entries[entryCampaigns]
	}
	c.store.mu.RUnlock()

	return decodeRecords(raw)
}

// Save replaces the session's entire record collection atomically and
// updates the latest-status entry from the newest record. Change callbacks
// registered by other contexts fire after the write is committed.
func (c *Context) Save(recs []domain.CampaignRecord) {
	c.store.mu.Lock()
	notify := c.commitLocked(recs)
	c.store.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// Update applies fn to the stored records and commits the result as one
// atomic replace. The session stays locked across the read-modify-write,
// so concurrent writers (the scheduler's tick pass, a launch appending a
// record) can never lose each other's saves.
func (c *Context) Update(fn func([]domain.CampaignRecord) []domain.CampaignRecord) {
	c.store.mu.Lock()
	sess := c.store.session(c.sessionID)
	recs := fn(decodeRecords(sess.entries[entryCampaigns]))
	notify := c.commitLocked(recs)
	c.store.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// commitLocked writes the record collection and latest-status entries and
// collects the other-context change callbacks to fire. Callers must hold
// the store's write lock and invoke the returned callbacks after
// releasing it.
func (c *Context) commitLocked(recs []domain.CampaignRecord) []func() {
	raw, err := json.Marshal(recs)
	if err != nil {
		// records are plain data; marshalling cannot realistically fail
		return nil
	}

	sess := c.store.session(c.sessionID)
	sess.entries[entryCampaigns] = raw
	if n := len(recs); n > 0 {
		sess.entries[entryLatestStatus] = []byte(recs[n-1].Status)
	}
	notify := make([]func(), 0, len(sess.watchers))
	for _, w := range sess.watchers {
		if w.contextID != c.contextID {
			notify = append(notify, w.fn)
		}
	}
	return notify
}

func decodeRecords(raw []byte) []domain.CampaignRecord {
	if len(raw) == 0 {
		return []domain.CampaignRecord{}
	}
	var recs []domain.CampaignRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return []domain.CampaignRecord{}
	}
	return recs
}

// OnChange registers a callback invoked whenever a different context saves
// into this session. It returns an unsubscribe function.
func (c *Context) OnChange(fn func()) func() {
	c.store.mu.Lock()
	sess := c.store.session(c.sessionID)
	id := sess.nextID
	sess.nextID++
	sess.watchers[id] = watcher{contextID: c.contextID, fn: fn}
	c.store.mu.Unlock()

	return func() {
		c.store.mu.Lock()
		if sess := c.store.sessions[c.sessionID]; sess != nil {
			delete(sess.watchers, id)
		}
		c.store.mu.Unlock()
	}
}

// LatestStatus returns the status of the most recently created campaign,
// used by views to decide whether to keep polling.
func (s *Store) LatestStatus(sessionID string) (domain.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return "", false
	}
	raw, ok := sess.entries[entryLatestStatus]
	if !ok {
		return "", false
	}
	return domain.Status(raw), true
}

// PutNewTransaction stores the one-shot hand-off written by the billing
// flow after a campaign launch.
func (s *Store) PutNewTransaction(sessionID string, tx domain.Transaction) {
	raw, err := json.Marshal(tx)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.session(sessionID).entries[entryNewTransaction] = raw
	s.mu.Unlock()
}

// TakeNewTransaction returns and clears the pending hand-off, or nil when
// none is stored or the entry is unreadable.
func (s *Store) TakeNewTransaction(sessionID string) *domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return nil
	}
	raw, ok := sess.entries[entryNewTransaction]
	if !ok {
		return nil
	}
	delete(sess.entries, entryNewTransaction)
	var tx domain.Transaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil
	}
	return &tx
}

// SessionIDs returns every session currently holding entries.
func (s *Store) SessionIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

// session returns the named session, creating it if needed. Callers must
// hold the write lock.
func (s *Store) session(id string) *session {
	sess := s.sessions[id]
	if sess == nil {
		sess = &session{
			entries:  make(map[string][]byte),
			watchers: make(map[int]watcher),
		}
		s.sessions[id] = sess
	}
	return sess
}
