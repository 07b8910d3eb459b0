package storage

import "context"

//go:generate moq -out blobstorage_mock.go . BlobStorage

// Namespaces used by the client resilience layer. Each namespace holds one
// serialized snapshot of a whole collection.
const (
	NamespaceCache      = "cache_store"
	NamespaceSyncQueue  = "sync_queue"
	NamespaceOperations = "offline_operations"
)

// BlobStorage defines device-local persistent storage for client snapshots.
// There are no partial writes: every WriteAll replaces the whole blob of the namespace.
type BlobStorage interface {
	// ReadAll returns the blob stored under namespace
	// Returns ErrBlobNotFound if nothing was written yet
	ReadAll(ctx context.Context, namespace string) ([]byte, error)

	// WriteAll replaces the blob stored under namespace
	WriteAll(ctx context.Context, namespace string, blob []byte) error
}

// Backend is a complete device-local storage backend
type Backend interface {
	BlobStorage
	MetadataStorage
	Close() error
}
