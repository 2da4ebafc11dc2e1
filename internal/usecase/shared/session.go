// Package shared holds the session object tying one campaign snapshot to one
// selection state. A session is caller-owned and single-writer: concurrent
// campaign views get independent sessions, never a shared instance.
package shared

import (
	"sync"
	"sync/atomic"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/domain/selection"
	"campaign-engine/internal/pkg/clock"
	"campaign-engine/internal/pkg/text"

	"github.com/google/uuid"
)

// Session scopes a snapshot and its selection to one active detail view. The
// mutex serializes writes; the redeeming flag guards against a second redeem
// while one is in flight.
type Session struct {
	id     uuid.UUID
	locale string
	text   *text.Table

	mu        sync.Mutex
	snapshot  *campaign.Snapshot
	selection *selection.State
	lastSeen  time.Time

	redeeming atomic.Bool
}

func NewSession(snap *campaign.Snapshot, locale string, tbl *text.Table, now time.Time) *Session {
	return &Session{
		id:        uuid.New(),
		locale:    locale,
		text:      tbl,
		snapshot:  snap,
		selection: selection.New(snap, tbl),
		lastSeen:  now,
	}
}

func (s *Session) ID() uuid.UUID  { return s.id }
func (s *Session) Locale() string { return s.locale }

// Update runs fn with exclusive access to the snapshot and selection. All
// selection mutation goes through here so writes are serialized even when the
// transport layer handles requests concurrently.
func (s *Session) Update(fn func(snap *campaign.Snapshot, sel *selection.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.snapshot, s.selection)
}

// Snapshot returns the current snapshot. The snapshot itself is immutable, so
// sharing the pointer after the lock is released is safe.
func (s *Session) Snapshot() *campaign.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Replace installs a freshly fetched snapshot and discards the selection.
// Stale selections must never survive a detail reload.
func (s *Session) Replace(snap *campaign.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.selection = selection.New(snap, s.text)
}

// BeginRedeem claims the in-flight slot. It returns false when another redeem
// is already pending; the caller must reject locally without touching the
// network. EndRedeem releases the slot on completion or failure.
func (s *Session) BeginRedeem() bool {
	return s.redeeming.CompareAndSwap(false, true)
}

func (s *Session) EndRedeem() {
	s.redeeming.Store(false)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Registry tracks live sessions by ID. Sweep drops sessions idle longer than
// the given TTL.
type Registry struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{
		clock:    clk,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (r *Registry) Open(snap *campaign.Snapshot, locale string, tbl *text.Table) *Session {
	sess := NewSession(snap, locale, tbl, r.clock.Now())
	r.mu.Lock()
	r.sessions[sess.id] = sess
	r.mu.Unlock()
	return sess
}

func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		sess.touch(r.clock.Now())
	}
	return sess, ok
}

func (r *Registry) Close(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) Sweep(idleTTL time.Duration) int {
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, sess := range r.sessions {
		if sess.idleSince(now) > idleTTL {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
