package storage

import (
	"context"

	"github.com/mGaurav-dev/SIH-25/core"
)

// DocumentRepository is the vector index the ingestor writes and the
// retriever reads. Implementations must be thread-safe: the index is
// read-mostly at query time and write-heavy during ingestion, and reads must
// stay safe while a concurrent ingestion run upserts (eventual visibility of
// new documents is acceptable).
type DocumentRepository interface {
	// UpsertDocuments writes documents into the index, all-or-nothing per
	// call. Upserts are idempotent: a document whose content-addressed ID is
	// already present is overwritten with identical data, never duplicated.
	UpsertDocuments(ctx context.Context, docs ...*core.KnowledgeDocument) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.KnowledgeDocument, error)

	// ListIDs pages through every document ID in the index. Pass an empty
	// pageToken to start; an empty returned token means the listing is done.
	// Tokens are opaque and only valid against the repository that issued them.
	ListIDs(ctx context.Context, pageToken string, limit int) ([]core.ID, string, error)

	// FindSimilar returns up to limit documents nearest to the vector by
	// cosine similarity, ordered by similarity descending with ties broken by
	// source ordinal ascending (insertion order). No threshold is applied
	// here; relevance cutoffs belong to the retriever.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.RetrievalResult, error)

	// Count returns the number of documents in the index.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

// ArtifactStore persists synthesized audio byte streams. It stands in for the
// external blob storage collaborator; the pipeline only ever hands it
// validated artifacts and receives back opaque references.
type ArtifactStore interface {
	// Save persists the bytes under the given artifact ID and returns an
	// opaque storage reference.
	Save(ctx context.Context, id string, data []byte) (string, error)

	// Open returns the stored bytes for a storage reference.
	// Returns ErrNotFound if nothing is stored under the reference.
	Open(ctx context.Context, ref string) ([]byte, error)

	// Remove deletes the artifact behind the reference. Removing a missing
	// artifact is not an error.
	Remove(ctx context.Context, ref string) error
}
