// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so onboarding workbooks can be pulled from a
// bucket instead of the local filesystem (load --object). The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to stub storage interactions in tests.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - PutObject: Uploads content (with size and options).
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - FetchWorkbook: Downloads a workbook object to a temp file for loading.
package storage
