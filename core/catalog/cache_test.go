package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"depot-planner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	loads    atomic.Int32
	revision string
	err      error
	delay    time.Duration
}

func (s *countingSource) Key() string { return "counting" }

func (s *countingSource) Load(ctx context.Context) (*Catalog, error) {
	s.loads.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return New(Item{ID: "30012"}), nil
}

func (s *countingSource) Revision(ctx context.Context) (string, error) {
	return s.revision, nil
}

func TestCache_ReusesWithinTTL(t *testing.T) {
	src := &countingSource{}
	cache := NewCache(time.Minute)

	first, err := cache.Get(context.Background(), src)
	require.NoError(t, err)
	second, err := cache.Get(context.Background(), src)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), src.loads.Load())
}

func TestCache_ZeroTTLAlwaysReloads(t *testing.T) {
	src := &countingSource{}
	cache := NewCache(0)

	_, _ = cache.Get(context.Background(), src)
	_, _ = cache.Get(context.Background(), src)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestCache_ExpiredButSameRevision(t *testing.T) {
	src := &countingSource{revision: "etag-1"}
	cache := NewCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	_, err := cache.Get(context.Background(), src)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = cache.Get(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.loads.Load(), "unchanged revision skips the reload")

	now = now.Add(2 * time.Minute)
	src.revision = "etag-2"
	_, err = cache.Get(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestCache_SingleflightCollapsesLoads(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	cache := NewCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Get(context.Background(), src)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.loads.Load())
}

func TestCache_LoadErrorIsNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("boom")}
	cache := NewCache(time.Minute)

	_, err := cache.Get(context.Background(), src)
	assert.EqualError(t, err, "boom")

	_, err = cache.Get(context.Background(), src)
	assert.Error(t, err)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(itemsJSON), 0o644))

	src := FileSource{Path: path}
	cat, err := Bound{Cache: NewCache(time.Minute), Source: src}.Catalog(context.Background())
	require.NoError(t, err)
	assert.True(t, cat.Has("30013"))

	rev, err := src.Revision(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, rev)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	assert.Error(t, err)
}

func TestObjectSource(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "gamedata", "items.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "abc"}, nil)
	client.On("GetObject", mock.Anything, "gamedata", "items.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(itemsJSON))), nil)

	src, err := NewSource(Config{Source: "object", Object: "items.json"}, client, "gamedata")
	require.NoError(t, err)

	cat, err := NewCache(time.Minute).Get(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
	client.AssertExpectations(t)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Source: "file", Path: "data/items.json"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "file|data/items.json", src.Key())

	_, err = NewSource(Config{Source: "object"}, nil, "gamedata")
	assert.Error(t, err)

	_, err = NewSource(Config{Source: "http"}, nil, "")
	assert.Error(t, err)
}
