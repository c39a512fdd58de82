package kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/pierrec/lz4"
)

// FileStore persists each key as one file under a data directory.
// Writes go through a temporary file and a rename so a crash never leaves a torn value.
type FileStore struct {
	dir      string
	prefix   string
	compress bool
	mu       sync.Mutex
}

// NewFileStore creates the data directory if missing.
func NewFileStore(dir, prefix string, compress bool) (*FileStore, error) {
	if dir == "" {
		dir = ".planner"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv: create data dir: %w", err)
	}
	return &FileStore{dir: dir, prefix: prefix, compress: compress}, nil
}

func (f *FileStore) path(key string) string {
	name := url.PathEscape(f.prefix + key)
	if f.compress {
		return filepath.Join(f.dir, name+".json.lz4")
	}
	return filepath.Join(f.dir, name+".json")
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv: read %s: %w", key, err)
	}
	if !f.compress {
		return data, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("kv: decompress %s: %w", key, err)
	}
	return out, nil
}

func (f *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := value
	if f.compress {
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(value); err != nil {
			return fmt.Errorf("kv: compress %s: %w", key, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("kv: compress %s: %w", key, err)
		}
		data = buf.Bytes()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	target := f.path(key)
	tmp, err := os.CreateTemp(f.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	return nil
}
