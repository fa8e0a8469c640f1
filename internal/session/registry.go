// Package session maps browser sessions to their stores and evicts the idle ones.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"artisan-storefront/internal/app/metrics"
	"artisan-storefront/internal/localstorage"
	"artisan-storefront/internal/store"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CookieName carries the session ID between requests.
const CookieName = "artisan_sid"

// DefaultSweep is the cron schedule for idle-session eviction.
const DefaultSweep = "@every 1m"

// Builder returns the store options for a session ID.
type Builder func(sessionID string) store.Options

type entry struct {
	store    *store.Store
	lastSeen time.Time
}

type Registry struct {
	build Builder
	idle  time.Duration
	now   func() time.Time
	log   *logrus.Entry

	mu       sync.Mutex
	sessions map[string]*entry

	cron *cron.Cron
}

// NewRegistry creates an empty registry. A zero idle timeout keeps sessions forever.
func NewRegistry(build Builder, idle time.Duration, log *logrus.Entry) *Registry {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Registry{
		build:    build,
		idle:     idle,
		now:      time.Now,
		log:      log,
		sessions: map[string]*entry{},
	}
}

// Resolve returns the store for id. An empty or unknown id always gets a
// new session under a fresh ID, so a client cannot choose its own. A token
// stored under the unknown id moves to the new one and the new store
// restores its user from it before it is handed out.
func (r *Registry) Resolve(ctx context.Context, id string) (*store.Store, bool, error) {
	r.mu.Lock()
	if e, ok := r.sessions[id]; ok && id != "" {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.store, false, nil
	}
	r.mu.Unlock()

	prev := id
	id = uuid.NewString()
	if _, err := uuid.Parse(prev); err == nil {
		if err := r.carryToken(ctx, prev, id); err != nil {
			r.log.WithError(err).WithField("session", id).Warn("could not carry session token")
		}
	}
	st := store.New(r.build(id))
	if err := st.Restore(ctx); err != nil {
		r.log.WithError(err).WithField("session", id).Warn("could not restore session token")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &entry{store: st, lastSeen: r.now()}
	metrics.SessionOpened()
	r.log.WithField("session", id).Debug("session opened")
	return st, true, nil
}

// carryToken moves the stored token of an evicted (or pre-restart) session
// to its replacement ID.
func (r *Registry) carryToken(ctx context.Context, from, to string) error {
	old := r.build(from).Storage
	if old == nil {
		return nil
	}
	token, err := old.Get(ctx, localstorage.TokenKey)
	if errors.Is(err, localstorage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.build(to).Storage.Set(ctx, localstorage.TokenKey, token); err != nil {
		return err
	}
	return old.Remove(ctx, localstorage.TokenKey)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Evict closes every session idle for longer than the timeout and reports how many went.
func (r *Registry) Evict() int {
	if r.idle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idle)

	r.mu.Lock()
	var stale []*store.Store
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.store)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, st := range stale {
		st.Close()
		metrics.SessionClosed()
	}
	if len(stale) > 0 {
		r.log.WithField("count", len(stale)).Info("evicted idle sessions")
	}
	return len(stale)
}

// Start schedules Evict on spec, e.g. "@every 1m". The also funcs run
// after every sweep.
func (r *Registry) Start(spec string, also ...func()) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		r.Evict()
		for _, fn := range also {
			fn()
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	r.cron = c
	return nil
}

// Stop halts the sweep and closes every store.
func (r *Registry) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.sessions {
		e.store.Close()
		metrics.SessionClosed()
		delete(r.sessions, id)
	}
}
