package depot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"depot-planner/core/kv"
	"depot-planner/core/logger"
	"depot-planner/core/reconcile"
	"depot-planner/core/session"

	"go.uber.org/zap"
)

// ErrClosed is returned by mutations on a closed store.
var ErrClosed = errors.New("depot: store closed")

// Options configure a Store.
type Options struct {
	// Remote is the remote depot table. Nil keeps the store local-only.
	Remote Remote
	// Identity resolves the owner of remote rows. Nil means guest.
	Identity session.Resolver
	// Local persists the depot snapshot. Nil uses an in-memory store.
	Local kv.Store
	// LocalKey is the snapshot key, "v3_depot" when empty.
	LocalKey string
	// Catalog is used by Bootstrap to drop unknown materials. Nil keeps every row.
	Catalog CatalogProvider
	// Debounce is the quiet window of debounced syncs.
	Debounce time.Duration
	// SyncTimeout bounds one debounced sync.
	SyncTimeout time.Duration
	Logger      *zap.Logger
	// OnError receives every sync failure after it has been logged.
	OnError func(error)
}

// Store is the depot of one user: local state, change trackers and the
// debounced remote sync.
type Store struct {
	remote      Remote
	identity    session.Resolver
	local       kv.Store
	localKey    string
	catalog     CatalogProvider
	logger      *zap.Logger
	onError     func(error)
	syncTimeout time.Duration

	mu           sync.Mutex
	depot        Depot
	trackers     Trackers
	inFlight     int
	closed       bool
	bootstrapped bool
	bootstrapRun bool

	// serializes remote writes so trackers are cleared in send order
	syncMu sync.Mutex

	debouncer *Debouncer[[]Record]
	ctx       context.Context
	cancel    context.CancelFunc
}

// New creates a store and hydrates it from the local snapshot.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Local == nil {
		opts.Local = kv.NewMemoryStore()
	}
	if opts.Identity == nil {
		opts.Identity = session.Anonymous
	}
	if opts.LocalKey == "" {
		opts.LocalKey = "v3_depot"
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounceDelay
	}
	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		remote:      opts.Remote,
		identity:    opts.Identity,
		local:       opts.Local,
		localKey:    opts.LocalKey,
		catalog:     opts.Catalog,
		logger:      opts.Logger,
		onError:     opts.OnError,
		syncTimeout: opts.SyncTimeout,
		depot:       Depot{},
		trackers:    NewTrackers(),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.debouncer = NewDebouncer(opts.Debounce, s.syncDebounced)

	var snapshot Depot
	found, err := kv.GetJSON(ctx, s.local, s.localKey, &snapshot)
	if err != nil {
		s.cancel()
		return nil, fmt.Errorf("depot: load local snapshot: %w", err)
	}
	if found {
		for id, r := range snapshot {
			r.MaterialID = id
			s.depot[id] = normalize(r)
		}
	}

	return s, nil
}

// Depot returns a copy of the current depot.
func (s *Store) Depot() Depot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depot.Clone()
}

// Trackers returns a copy of the change trackers.
func (s *Store) Trackers() Trackers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trackers.clone()
}

// HasUnsavedChanges reports whether pending changes have not reached the remote store.
func (s *Store) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trackers.Dirty()
}

// Phase returns the current sync phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return phaseOf(s.trackers, s.inFlight)
}

// Put applies a batch of edits. A batch that changes nothing is a no-op: no
// persistence, no tracker update, no sync. Otherwise the depot is persisted
// locally and the pending set is either synced right away or handed to the
// debounce timer.
func (s *Store) Put(ctx context.Context, items []Record, immediate bool) (bool, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, ErrClosed
	}
	next, trackers, changed := ApplyPut(s.depot, s.trackers, items)
	if !changed {
		s.mu.Unlock()
		return false, nil
	}
	s.depot = next
	s.trackers = trackers
	persistErr := s.persistLocked(ctx)
	pending := trackers.Pending.Records()
	s.mu.Unlock()

	if immediate {
		s.debouncer.Cancel()
		if err := s.SyncNow(ctx, pending); err != nil {
			return true, err
		}
		return true, persistErr
	}

	s.debouncer.Call(pending)
	s.logger.Debug("Depot sync scheduled", zap.Int("pending", len(pending)))
	return true, persistErr
}

// SyncNow upserts records for the current identity. It does nothing for an
// empty batch, a guest, or a local-only store. On success the synced entries
// leave the trackers; on failure the trackers are kept for a later retry.
func (s *Store) SyncNow(ctx context.Context, records []Record) error {
	if len(records) == 0 || s.remote == nil {
		return nil
	}

	userID, err := s.identity.UserID(ctx)
	if err != nil {
		err = fmt.Errorf("depot: resolve identity: %w", err)
		s.report(err)
		return err
	}
	if userID == "" {
		return nil
	}

	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	l := logger.WithUser(s.logger, userID)
	l.Debug("Syncing depot", zap.Int("records", len(records)))

	err = s.remote.Upsert(ctx, userID, records)

	s.mu.Lock()
	s.inFlight--
	if err == nil {
		s.trackers = ClearSynced(s.depot, s.trackers, records)
	}
	s.mu.Unlock()

	if err != nil {
		err = fmt.Errorf("depot: sync %d records: %w", len(records), err)
		s.report(err)
		return err
	}

	l.Info("Depot synced", zap.Int("records", len(records)))
	return nil
}

// RefreshDebounce re-arms the timer with the current pending set. It reports
// whether anything was pending.
func (s *Store) RefreshDebounce() bool {
	s.mu.Lock()
	if s.closed || !s.trackers.Dirty() {
		s.mu.Unlock()
		return false
	}
	pending := s.trackers.Pending.Records()
	s.mu.Unlock()

	s.debouncer.Call(pending)
	return true
}

// Flush cancels the timer and syncs the pending set now.
func (s *Store) Flush(ctx context.Context) error {
	s.debouncer.Cancel()

	s.mu.Lock()
	pending := s.trackers.Pending.Records()
	s.mu.Unlock()

	return s.SyncNow(ctx, pending)
}

// Bootstrap replaces the depot with the remote rows of the current user.
// It completes once per store: a failed attempt can be retried, and calls
// made while an attempt is running return nil. Rows of materials missing from
// the catalog are dropped and deleted remotely on a best-effort basis.
// Materials still pending locally keep their value over the remote row.
// Without an identity the local state is left untouched.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.bootstrapped || s.bootstrapRun {
		s.mu.Unlock()
		return nil
	}
	s.bootstrapRun = true
	s.mu.Unlock()

	err := s.bootstrap(ctx)

	s.mu.Lock()
	s.bootstrapRun = false
	if err == nil {
		s.bootstrapped = true
	}
	s.mu.Unlock()
	return err
}

// Bootstrapped reports whether a bootstrap has completed.
func (s *Store) Bootstrapped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootstrapped
}

func (s *Store) bootstrap(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return fmt.Errorf("depot: resolve identity: %w", err)
	}
	if userID == "" {
		return nil
	}
	l := logger.WithUser(s.logger, userID)

	rows, err := s.remote.Select(ctx, userID)
	if err != nil {
		err = fmt.Errorf("depot: load remote rows: %w", err)
		s.report(err)
		return err
	}

	known := func(string) bool { return true }
	if s.catalog != nil {
		cat, err := s.catalog.Catalog(ctx)
		if err != nil {
			return fmt.Errorf("depot: load catalog: %w", err)
		}
		known = cat.Has
	}

	plan := reconcile.Build(rows, func(r Record) string { return r.MaterialID }, known)
	if len(plan.Orphaned) > 0 {
		n, err := reconcile.Apply(ctx, plan, userPurger{remote: s.remote, userID: userID}, reconcile.Options{Confirmed: true})
		if err != nil {
			l.Warn("Failed to purge unknown materials", zap.Strings("materials", plan.Orphaned), zap.Error(err))
		} else {
			l.Info("Purged unknown materials", zap.Int("count", n))
		}
	}

	next := make(Depot, len(plan.Valid))
	for _, r := range plan.Valid {
		next[r.MaterialID] = normalize(r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.depot, s.trackers = overlayPending(next, s.trackers)
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	l.Info("Depot loaded", zap.Int("materials", len(next)), zap.Int("orphaned", len(plan.Orphaned)))
	return nil
}

// Reset sets every material to 0 and pushes the full zeroed depot at once,
// bypassing the debounce timer. If the push fails the changed materials stay
// pending.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	zeroed := s.depot.Zeroed()
	_, trackers, _ := ApplyPut(s.depot, s.trackers, zeroed.Records())
	s.depot = zeroed
	s.trackers = trackers
	persistErr := s.persistLocked(ctx)
	s.mu.Unlock()

	s.debouncer.Cancel()
	if err := s.SyncNow(ctx, zeroed.Records()); err != nil {
		return err
	}
	return persistErr
}

// Close stops the debounce timer. Pending changes are not flushed and any
// bootstrap still in flight is discarded.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.debouncer.Cancel()
	s.cancel()
}

// overlayPending keeps local edits that have not reached the remote store on
// top of the remote rows. Originals are rebased onto the remote values.
func overlayPending(remote Depot, t Trackers) (Depot, Trackers) {
	nt := NewTrackers()
	for id, p := range t.Pending {
		r, existed := remote[id]
		if p.Stock == r.Stock {
			continue
		}
		remote[id] = p
		nt.Pending[id] = p
		if existed {
			nt.Original[id] = r
		}
	}
	return remote, nt
}

func (s *Store) syncDebounced(records []Record) {
	ctx, cancel := context.WithTimeout(s.ctx, s.syncTimeout)
	defer cancel()
	_ = s.SyncNow(ctx, records)
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := kv.SetJSON(ctx, s.local, s.localKey, s.depot); err != nil {
		err = fmt.Errorf("depot: persist local snapshot: %w", err)
		s.logger.Error("Failed to persist depot", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) report(err error) {
	s.logger.Error("Depot sync failed", zap.Error(err))
	if s.onError != nil {
		s.onError(err)
	}
}
