package depot

import (
	"context"

	"depot-planner/core/catalog"
)

// Remote is the remote table of depot rows, scoped per user.
type Remote interface {
	Select(ctx context.Context, userID string) ([]Record, error)
	Upsert(ctx context.Context, userID string, records []Record) error
	Delete(ctx context.Context, userID string, materialIDs []string) error
}

// CatalogProvider yields the item catalog used to reconcile remote rows.
type CatalogProvider interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
}

// StaticCatalog serves a fixed catalog.
type StaticCatalog struct {
	Items *catalog.Catalog
}

func (s StaticCatalog) Catalog(context.Context) (*catalog.Catalog, error) {
	return s.Items, nil
}

// userPurger deletes orphaned rows of one user.
type userPurger struct {
	remote Remote
	userID string
}

func (p userPurger) Purge(ctx context.Context, keys []string) error {
	return p.remote.Delete(ctx, p.userID, keys)
}
