package roster

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service filters the operator roster stored in a JSON file.
type Service struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	ops     []Operator
	modTime time.Time
}

// NewService creates a roster service reading path.
func NewService(path string, logger *zap.Logger) *Service {
	return &Service{path: path, logger: logger}
}

// Operators returns the roster, re-reading the file when it changed.
func (s *Service) Operators() ([]Operator, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ops != nil && info.ModTime().Equal(s.modTime) {
		return s.ops, nil
	}

	ops, err := LoadFile(s.path)
	if err != nil {
		return nil, err
	}
	s.ops = ops
	s.modTime = info.ModTime()
	s.logger.Info("Roster loaded", zap.String("path", s.path), zap.Int("operators", len(ops)))
	return ops, nil
}

// Filter returns the operators matching f and search.
func (s *Service) Filter(f Filters, search string) ([]Operator, error) {
	ops, err := s.Operators()
	if err != nil {
		return nil, err
	}
	return Apply(ops, f, search), nil
}

// FromValues builds filters from category names to selected values.
func FromValues(values map[string][]string) (Filters, error) {
	f := NewFilters()
	for name, vals := range values {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		for _, v := range vals {
			if !f.Has(c, v) {
				f = f.Toggle(c, v)
			}
		}
	}
	return f, nil
}
