// Package storage provides object storage abstractions for the telemetry
// bucket holding per-colony stats shots and events.
package storage

import (
	"context"
	"errors"
)

// Common errors for storage operations.
var (
	ErrObjectNotFound = errors.New("object not found")
	ErrFetchFailed    = errors.New("fetch failed")
	ErrUploadFailed   = errors.New("upload failed")
	ErrDeleteFailed   = errors.New("delete failed")
)

// ObjectStorage abstracts the telemetry object store.
// Implementations include S3 and local filesystem for testing and offline
// runs. Telemetry objects are small JSON documents, so reads are
// byte-oriented rather than file-oriented.
type ObjectStorage interface {
	// Fetch reads an object's raw bytes.
	// objectPath is the key of the object in storage.
	Fetch(ctx context.Context, objectPath string) ([]byte, error)

	// Upload uploads a local file to object storage.
	// localPath is the path to the local file to upload.
	// objectPath is the destination key in object storage.
	Upload(ctx context.Context, localPath, objectPath string) error

	// Delete removes an object from storage.
	Delete(ctx context.Context, objectPath string) error

	// Exists checks if an object exists in storage.
	Exists(ctx context.Context, objectPath string) (bool, error)

	// ListObjects returns all object keys under the given prefix.
	// Used for colony discovery and per-colony object enumeration.
	ListObjects(ctx context.Context, prefix string) ([]string, error)
}
