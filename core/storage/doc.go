// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client for the few operations the planner needs against the bucket that
// publishes static game data (the item catalog). It works against AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the provider so catalog loading can be tested with the mock in
// core/storage/mocks.
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - StatObject: Reads object metadata (ETag) to detect new catalog revisions.
//   - PutObject: Publishes a catalog file.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "gamedata")
package storage
