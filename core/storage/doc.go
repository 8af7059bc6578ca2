// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface needed to
// serve files from a bucket, which supports both AWS S3 and self-hosted
// MinIO instances. The interface makes storage interactions easy to mock in
// unit tests (see core/storage/mocks).
//
// # FileSystem
//
// FileSystem adapts a bucket (optionally under a key prefix) to
// http.FileSystem so it can back the static file handler:
//
//   - Objects are regular files, read fully on Open.
//   - Key prefixes are directories and list their direct children.
//   - NoSuchKey with no children maps to fs.ErrNotExist (HTTP 404).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	if err := storage.VerifyBucket(ctx, client, cfg.Bucket); err != nil { ... }
//	root := storage.NewFileSystem(client, cfg.Bucket, cfg.Prefix, cfg.Timeout())
package storage
