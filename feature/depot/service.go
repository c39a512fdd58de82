package depot

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidInput marks text that is not a number.
var ErrInvalidInput = errors.New("depot: input is not a number")

// State is the externally visible state of one store.
type State struct {
	Depot             Depot `json:"depot"`
	Pending           Depot `json:"pending"`
	HasUnsavedChanges bool  `json:"has_unsaved_changes"`
	Phase             Phase `json:"phase" swaggertype:"string"`
}

// Service exposes depot operations per user.
type Service struct {
	registry *Registry
	logger   *zap.Logger
}

// NewService creates a depot service on a registry.
func NewService(registry *Registry, logger *zap.Logger) *Service {
	return &Service{registry: registry, logger: logger}
}

func stateOf(s *Store) State {
	t := s.Trackers()
	return State{
		Depot:             s.Depot(),
		Pending:           t.Pending,
		HasUnsavedChanges: t.Dirty(),
		Phase:             s.Phase(),
	}
}

// State returns the depot of a user.
func (s *Service) State(ctx context.Context, userID string) (State, error) {
	store, err := s.registry.Get(ctx, userID)
	if err != nil {
		return State{}, err
	}
	return stateOf(store), nil
}

// Put applies edits for a user.
func (s *Service) Put(ctx context.Context, userID string, items []Record, immediate bool) (bool, State, error) {
	store, err := s.registry.Get(ctx, userID)
	if err != nil {
		return false, State{}, err
	}
	changed, err := store.Put(ctx, items, immediate)
	return changed, stateOf(store), err
}

// Input parses raw text and stores it as the stock of one material.
// Non-numeric text returns ErrInvalidInput and leaves the store untouched.
func (s *Service) Input(ctx context.Context, userID, materialID, raw string) (bool, State, error) {
	stock, ok := ParseStock(raw)
	if !ok {
		return false, State{}, ErrInvalidInput
	}
	return s.Put(ctx, userID, []Record{{MaterialID: materialID, Stock: stock}}, false)
}

// Step adds delta to the stock of one material.
func (s *Service) Step(ctx context.Context, userID, materialID string, delta int64) (bool, State, error) {
	store, err := s.registry.Get(ctx, userID)
	if err != nil {
		return false, State{}, err
	}
	next := Step(store.Depot().StockOf(materialID), delta)
	changed, err := store.Put(ctx, []Record{{MaterialID: materialID, Stock: next}}, false)
	return changed, stateOf(store), err
}

// Sync flushes the pending changes of a user.
func (s *Service) Sync(ctx context.Context, userID string) (State, error) {
	store, err := s.registry.Get(ctx, userID)
	if err != nil {
		return State{}, err
	}
	err = store.Flush(ctx)
	return stateOf(store), err
}

// Refresh re-arms the debounce timer of a user.
func (s *Service) Refresh(ctx context.Context, userID string) (bool, error) {
	store, err := s.registry.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return store.RefreshDebounce(), nil
}

// Reset zeroes the depot of a user.
func (s *Service) Reset(ctx context.Context, userID string) (State, error) {
	store, err := s.registry.Get(ctx, userID)
	if err != nil {
		return State{}, err
	}
	err = store.Reset(ctx)
	return stateOf(store), err
}
