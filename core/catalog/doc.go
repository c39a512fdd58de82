// Package catalog provides the static item catalog: the read-only table of materials the depot
// is allowed to track.
//
// The catalog is an items.json document keyed by material id. It can be read from a local file or
// from the game data bucket (FileSource, ObjectSource). Cache keeps loaded catalogs for a TTL and
// collapses concurrent loads with singleflight; when the source reports an unchanged revision
// (file mtime, object ETag) an expired entry is reused without reparsing.
//
// # Usage
//
//	src, _ := catalog.NewSource(cfg.Catalog, storageClient, cfg.Storage.Bucket)
//	items := catalog.Bound{Cache: catalog.NewCache(cfg.Catalog.CacheTTL()), Source: src}
//	cat, err := items.Catalog(ctx)
//	if cat.Has("30012") { ... }
package catalog
