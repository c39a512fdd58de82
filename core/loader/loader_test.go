package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	depot := &stubFeature{name: "depot", enabled: true}
	roster := &stubFeature{name: "roster", enabled: false}
	presets := &stubFeature{name: "presets", enabled: true}

	mgr := NewManager()
	mgr.Register(depot)
	mgr.Register(roster)
	mgr.Register(presets)

	loaded, err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"depot", "presets"}, loaded)
	assert.False(t, roster.loaded)
	assert.Len(t, mgr.Features(), 3)
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})
	mgr.Register(&stubFeature{name: "after", enabled: true})

	loaded, err := mgr.LoadAll(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, loaded)
}
