// Package storage provides an abstraction layer for object storage services.
//
// Build output is often mirrored to a bucket (for a CDN) next to the local
// public/build directory. The cleanup command can prune that mirror with the same
// manifest, so this package wraps the MinIO Go client behind the few calls it needs.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists objects under a prefix.
//   - RemoveObject: Deletes a single object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
