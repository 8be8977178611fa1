// Package store defines the persistence ports the registry runs against.
// Every backend works on the whole document: a mutation loads the full
// registry, changes it in memory, and writes the full registry back.
package store

import (
	"context"

	"soft-admin/backend/app/models"
)

// Store reads and writes the registry document. Implementations must
// recover from a missing or unreadable document by returning the default
// one, and must give read-your-writes consistency: a Save observed to
// complete is visible to any Load started afterwards.
type Store interface {
	Load(ctx context.Context) (models.Document, error)
	Save(ctx context.Context, doc models.Document) error
}

// BlobStore keeps uploaded binaries by their generated name.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) error
	// Get reports ok=false when no blob exists under the name.
	Get(ctx context.Context, name string) (data []byte, ok bool, err error)
	// Delete is a no-op for a missing blob.
	Delete(ctx context.Context, name string) error
}
