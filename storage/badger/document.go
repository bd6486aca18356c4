package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
//
// Documents are stored as JSON under "agdoc:<id>" keys. Every vector is
// normalized to unit length on write so similarity search reduces to a dot
// product.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository on the backend.
func NewDocumentRepository(backend *Backend) *DocumentRepository {
	return &DocumentRepository{backend: backend}
}

// Close closes the underlying backend.
func (r *DocumentRepository) Close() error {
	return r.backend.Close()
}

// UpsertDocuments writes documents into the index within a single
// transaction. Documents are validated before any write happens; a single
// invalid document fails the whole batch.
func (r *DocumentRepository) UpsertDocuments(ctx context.Context, docs ...*core.KnowledgeDocument) error {
	if len(docs) == 0 {
		return nil
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc.Embedding = NormalizeVector(doc.Embedding)
			if doc.InsertedAt.IsZero() {
				doc.InsertedAt = time.Now().UTC()
			}

			value, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			if err := tx.Set(makeDocumentKey(doc.Id), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.KnowledgeDocument, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var doc *core.KnowledgeDocument
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocumentKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			doc = &core.KnowledgeDocument{}
			if err := json.Unmarshal(val, doc); err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListIDs pages through document IDs in key order. The returned token is the
// last key visited; pass it back to resume after that key.
func (r *DocumentRepository) ListIDs(ctx context.Context, pageToken string, limit int) ([]core.ID, string, error) {
	if r.backend.IsClosed() {
		return nil, "", storage.ErrStorageClosed
	}
	if limit <= 0 {
		limit = 1000
	}

	prefix := []byte(documentPrefix + ":")
	seekFrom := prefix
	if pageToken != "" {
		if _, err := parseDocumentKey([]byte(pageToken)); err != nil {
			return nil, "", storage.ErrInvalidPageToken
		}
		seekFrom = []byte(pageToken)
	}

	var ids []core.ID
	var nextToken string

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(seekFrom); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// The token names the last key of the previous page.
			if pageToken != "" && string(key) == pageToken {
				continue
			}

			id, err := parseDocumentKey(key)
			if err != nil {
				return err
			}
			ids = append(ids, id)

			if len(ids) == limit {
				nextToken = string(iter.Item().KeyCopy(nil))
				return nil
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, "", err
	}
	return ids, nextToken, nil
}

// FindSimilar scans every document and ranks it against the query vector.
// The index is small enough that a full scan beats maintaining an ANN
// structure. Results are ordered by similarity descending; equal scores fall
// back to source ordinal ascending so ranking is deterministic.
func (r *DocumentRepository) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.RetrievalResult, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if limit <= 0 {
		return nil, nil
	}

	query := NormalizeVector(vector)
	var results []*core.RetrievalResult

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var doc *core.KnowledgeDocument
			err := iter.Item().Value(func(val []byte) error {
				doc = &core.KnowledgeDocument{}
				if err := json.Unmarshal(val, doc); err != nil {
					return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
				}
				return nil
			})
			if err != nil {
				return err
			}

			// Skip records without embeddings
			if len(doc.Embedding) == 0 {
				continue
			}

			results = append(results, &core.RetrievalResult{
				Document:   doc,
				Similarity: dotProduct(query, doc.Embedding),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.RetrievalResult) int {
		if a.Similarity > b.Similarity {
			return -1
		}
		if a.Similarity < b.Similarity {
			return 1
		}
		if a.Document.SourceOrdinal < b.Document.SourceOrdinal {
			return -1
		}
		if a.Document.SourceOrdinal > b.Document.SourceOrdinal {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Count returns the number of documents in the index.
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}
