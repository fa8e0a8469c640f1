// Package store holds one storefront session's application state and runs
// every mutation on a single goroutine, one command at a time.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"artisan-storefront/internal/authclient"
	"artisan-storefront/internal/domain/access"
	"artisan-storefront/internal/domain/billing"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
	"artisan-storefront/internal/localstorage"

	"github.com/sirupsen/logrus"
)

var ErrClosed = errors.New("store is closed")

// AuthGateway is the remote service that registers accounts and issues tokens.
type AuthGateway interface {
	SignUp(ctx context.Context, req authclient.SignUpRequest) error
	Login(ctx context.Context, creds authclient.Credentials) (string, error)
}

type Options struct {
	SessionID string
	Catalog   *catalog.Catalog
	Auth      AuthGateway
	// Storage is already scoped to the session.
	Storage         localstorage.Storage
	Payer           billing.Payer
	Orders          billing.Recorder
	NotificationTTL time.Duration
	Now             func() time.Time
	Log             *logrus.Entry
}

type command struct {
	fn   func(*State)
	done chan struct{}
}

type Store struct {
	sessionID string
	state     State

	auth    AuthGateway
	storage localstorage.Storage
	payer   billing.Payer
	orders  billing.Recorder
	ttl     time.Duration
	now     func() time.Time
	log     *logrus.Entry

	commands  chan command
	closed    chan struct{}
	closeOnce sync.Once

	// owned by the loop goroutine
	subs    map[int]chan notify.Event
	nextSub int
}

// New starts the store's loop. The catalog is owned by the store from here on.
func New(opts Options) *Store {
	if opts.Catalog == nil {
		opts.Catalog = catalog.MustSeed()
	}
	if opts.Storage == nil {
		opts.Storage = localstorage.NewMemory()
	}
	if opts.Payer == nil {
		opts.Payer = billing.SimulatedPayer{}
	}
	if opts.Orders == nil {
		opts.Orders = billing.NopRecorder{}
	}
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = notify.DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &Store{
		sessionID: opts.SessionID,
		state: State{
			Page:    nav.PageHome,
			Auth:    access.StateAnonymous,
			Catalog: opts.Catalog,
		},
		auth:     opts.Auth,
		storage:  opts.Storage,
		payer:    opts.Payer,
		orders:   opts.Orders,
		ttl:      opts.NotificationTTL,
		now:      opts.Now,
		log:      opts.Log.WithField("session", opts.SessionID),
		commands: make(chan command),
		closed:   make(chan struct{}),
		subs:     map[int]chan notify.Event{},
	}
	go s.loop()
	return s
}

func (s *Store) SessionID() string { return s.sessionID }

func (s *Store) loop() {
	for {
		select {
		case cmd := <-s.commands:
			cmd.fn(&s.state)
			if cmd.done != nil {
				close(cmd.done)
			}
		case <-s.closed:
			for id, ch := range s.subs {
				close(ch)
				delete(s.subs, id)
			}
			return
		}
	}
}

// do runs fn on the loop and waits for it to finish.
func (s *Store) do(ctx context.Context, fn func(*State)) error {
	done := make(chan struct{})
	select {
	case s.commands <- command{fn: fn, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.closed:
		return ErrClosed
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.closed:
		return ErrClosed
	}
}

// post queues fn without waiting; used by timers.
func (s *Store) post(fn func(*State)) {
	select {
	case s.commands <- command{fn: fn}:
	case <-s.closed:
	}
}

// Close stops the loop. Pending notification timers become no-ops.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

// Snapshot returns a deep copy of the state for rendering.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.do(ctx, func(st *State) {
		snap = st.snapshot()
	})
	return snap, err
}
