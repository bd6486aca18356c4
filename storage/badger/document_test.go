package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testDoc(question, answer string, ordinal int, embedding []float32) *core.KnowledgeDocument {
	doc := core.NewDocument(question, answer, ordinal)
	doc.Embedding = embedding
	return doc
}

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestUpsertAndGetDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := testDoc("how to treat leaf rust", "apply a fungicide early", 0, []float32{1, 0, 0})
	require.NoError(t, repo.UpsertDocuments(ctx, doc))

	got, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, doc.Id, got.Id)
	assert.Equal(t, doc.Question, got.Question)
	assert.Equal(t, doc.Answer, got.Answer)
	assert.False(t, got.InsertedAt.IsZero())
}

func TestGetDocument_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetDocument(context.Background(), core.ID(42))
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestUpsert_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := testDoc("crop rotation basics", "alternate legumes with cereals", 0, []float32{0, 1, 0})
	require.NoError(t, repo.UpsertDocuments(ctx, doc))

	// Same content yields the same ID; a second upsert must not duplicate.
	again := testDoc("crop rotation basics", "alternate legumes with cereals", 0, []float32{0, 1, 0})
	require.Equal(t, doc.Id, again.Id)
	require.NoError(t, repo.UpsertDocuments(ctx, again))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpsert_InvalidDocumentFailsBatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	good := testDoc("q", "a", 0, []float32{1})
	bad := &core.KnowledgeDocument{Question: "", Answer: "a"}

	err := repo.UpsertDocuments(ctx, good, bad)
	require.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpsert_NormalizesVectors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := testDoc("q", "a", 0, []float32{3, 4, 0})
	require.NoError(t, repo.UpsertDocuments(ctx, doc))

	got, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, got.Embedding[0], 1e-6)
	assert.InDelta(t, 0.8, got.Embedding[1], 1e-6)
}

func TestFindSimilar_RanksByScore(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs := []*core.KnowledgeDocument{
		testDoc("wheat sowing time", "early november", 0, []float32{1, 0, 0}),
		testDoc("rice irrigation", "keep fields flooded", 1, []float32{0, 1, 0}),
		testDoc("wheat varieties", "hd-2967 is common", 2, []float32{0.9, 0.1, 0}),
	}
	require.NoError(t, repo.UpsertDocuments(ctx, docs...))

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, docs[0].Id, results[0].Document.Id)
	assert.Equal(t, docs[2].Id, results[1].Document.Id)
	assert.Equal(t, docs[1].Id, results[2].Document.Id)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-6)
}

func TestFindSimilar_TieBreaksByOrdinal(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Identical vectors produce identical scores; insertion order decides.
	later := testDoc("second", "answer two", 5, []float32{0, 0, 1})
	earlier := testDoc("first", "answer one", 2, []float32{0, 0, 1})
	require.NoError(t, repo.UpsertDocuments(ctx, later, earlier))

	results, err := repo.FindSimilar(ctx, []float32{0, 0, 1}, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, earlier.Id, results[0].Document.Id)
	assert.Equal(t, later.Id, results[1].Document.Id)
}

func TestFindSimilar_RespectsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		doc := testDoc("question", "answer", i, []float32{float32(i + 1), 1, 0})
		doc.Question = doc.Question + string(rune('a'+i))
		doc.Id = core.DocumentID(doc.Question, doc.Answer)
		require.NoError(t, repo.UpsertDocuments(ctx, doc))
	}

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestFindSimilar_EmptyIndex(t *testing.T) {
	repo := newTestRepo(t)

	results, err := repo.FindSimilar(context.Background(), []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListIDs_Pagination(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := make(map[core.ID]bool)
	for i := 0; i < 7; i++ {
		doc := testDoc("paging question "+string(rune('a'+i)), "answer", i, []float32{1})
		require.NoError(t, repo.UpsertDocuments(ctx, doc))
		want[doc.Id] = true
	}

	got := make(map[core.ID]bool)
	token := ""
	pages := 0
	for {
		ids, next, err := repo.ListIDs(ctx, token, 3)
		require.NoError(t, err)
		for _, id := range ids {
			assert.False(t, got[id], "id %d returned twice", id)
			got[id] = true
		}
		pages++
		require.Less(t, pages, 10, "pagination did not terminate")
		if next == "" {
			break
		}
		token = next
	}

	assert.Equal(t, want, got)
}

func TestListIDs_InvalidToken(t *testing.T) {
	repo := newTestRepo(t)

	_, _, err := repo.ListIDs(context.Background(), "bogus", 10)
	assert.True(t, errors.Is(err, storage.ErrInvalidPageToken))
}

func TestCount_Empty(t *testing.T) {
	repo := newTestRepo(t)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestClosedRepository(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	ctx := context.Background()
	_, err = repo.Count(ctx)
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))

	err = repo.UpsertDocuments(ctx, testDoc("q", "a", 0, []float32{1}))
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))
}
