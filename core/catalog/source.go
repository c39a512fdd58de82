package catalog

import (
	"context"
	"fmt"
	"os"

	"depot-planner/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source loads a catalog from somewhere.
type Source interface {
	// Key identifies the source for caching.
	Key() string
	// Load reads and parses the catalog.
	Load(ctx context.Context) (*Catalog, error)
}

// Revisioner is implemented by sources that can report a cheap revision marker.
// The cache keeps an expired catalog when the revision did not change.
type Revisioner interface {
	Revision(ctx context.Context) (string, error)
}

// FileSource reads items.json from the local filesystem.
type FileSource struct {
	Path string
}

func (f FileSource) Key() string { return "file|" + f.Path }

func (f FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", f.Path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Revision returns the file modification time.
func (f FileSource) Revision(ctx context.Context) (string, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return "", fmt.Errorf("catalog: stat %s: %w", f.Path, err)
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

// ObjectSource reads items.json from the game data bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (o ObjectSource) Key() string { return "object|" + o.Bucket + "|" + o.Object }

func (o ObjectSource) Load(ctx context.Context) (*Catalog, error) {
	obj, err := o.Client.GetObject(ctx, o.Bucket, o.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("catalog: get %s/%s: %w", o.Bucket, o.Object, err)
	}
	defer obj.Close()
	return Parse(obj)
}

// Revision returns the object ETag.
func (o ObjectSource) Revision(ctx context.Context) (string, error) {
	info, err := o.Client.StatObject(ctx, o.Bucket, o.Object, minio.StatObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("catalog: stat %s/%s: %w", o.Bucket, o.Object, err)
	}
	return info.ETag, nil
}

// NewSource builds the source selected by cfg.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case "file", "":
		return FileSource{Path: cfg.Path}, nil
	case "object":
		if client == nil {
			return nil, fmt.Errorf("catalog: object source requires a storage client")
		}
		return ObjectSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	default:
		return nil, fmt.Errorf("catalog: unsupported source %q", cfg.Source)
	}
}
