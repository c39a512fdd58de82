package depot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"depot-planner/core/kv"
	"depot-planner/core/session"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrRegistryClosed is returned once the registry has shut down.
var ErrRegistryClosed = errors.New("depot: registry closed")

// Factory builds the store of one user. An empty user id is the guest.
type Factory func(ctx context.Context, userID string) (*Store, error)

// NewFactory returns a Factory sharing remote, local and catalog between users.
// Each user gets its own snapshot key derived from cfg.LocalKey.
func NewFactory(cfg Config, remote Remote, local kv.Store, cat CatalogProvider, log *zap.Logger, onError func(error)) Factory {
	return func(ctx context.Context, userID string) (*Store, error) {
		return New(ctx, Options{
			Remote:      remote,
			Identity:    session.Static(userID),
			Local:       local,
			LocalKey:    LocalKeyFor(cfg.LocalKey, userID),
			Catalog:     cat,
			Debounce:    cfg.DebounceDelay(),
			SyncTimeout: cfg.SyncTimeout(),
			Logger:      log,
			OnError:     onError,
		})
	}
}

// LocalKeyFor namespaces the snapshot key by user.
func LocalKeyFor(base, userID string) string {
	if base == "" {
		base = "v3_depot"
	}
	if userID == "" {
		return base
	}
	return base + ":" + userID
}

// Registry keeps one bootstrapped store per user.
type Registry struct {
	factory Factory
	logger  *zap.Logger

	mu     sync.Mutex
	stores map[string]*Store
	closed bool
	group  singleflight.Group
}

// NewRegistry creates an empty registry.
func NewRegistry(factory Factory, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		factory: factory,
		logger:  logger,
		stores:  make(map[string]*Store),
	}
}

func (r *Registry) lookup(userID string) (*Store, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false, ErrRegistryClosed
	}
	s, ok := r.stores[userID]
	return s, ok, nil
}

// Get returns the store of a user, creating and bootstrapping it on first use.
// A failed bootstrap is logged, the store keeps its local snapshot and the
// bootstrap is retried on the next Get.
func (r *Registry) Get(ctx context.Context, userID string) (*Store, error) {
	if s, ok, err := r.lookup(userID); err != nil || ok {
		if ok && !s.Bootstrapped() {
			r.bootstrap(ctx, userID, s)
		}
		return s, err
	}

	v, err, _ := r.group.Do(userID, func() (interface{}, error) {
		if s, ok, err := r.lookup(userID); err != nil || ok {
			return s, err
		}

		s, err := r.factory(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("depot: open store: %w", err)
		}
		r.bootstrap(ctx, userID, s)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			s.Close()
			return nil, ErrRegistryClosed
		}
		r.stores[userID] = s
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

func (r *Registry) bootstrap(ctx context.Context, userID string, s *Store) {
	if err := s.Bootstrap(ctx); err != nil {
		r.logger.Warn("Depot bootstrap failed, serving local snapshot",
			zap.String("user_id", userID), zap.Error(err))
	}
}

// Shutdown flushes and closes every store. Flush failures are joined.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	stores := r.stores
	r.stores = make(map[string]*Store)
	r.mu.Unlock()

	var errs []error
	for userID, s := range stores {
		if err := s.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush %q: %w", userID, err))
		}
		s.Close()
	}
	r.logger.Info("Depot stores closed", zap.Int("count", len(stores)))
	return errors.Join(errs...)
}
