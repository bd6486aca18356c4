package retrieve

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mGaurav-dev/SIH-25/ai/mock"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDoc(t *testing.T, repo *badger.DocumentRepository, question, answer string, ordinal int, embedding []float32) *core.KnowledgeDocument {
	t.Helper()
	doc := core.NewDocument(question, answer, ordinal)
	doc.Embedding = embedding
	require.NoError(t, repo.UpsertDocuments(context.Background(), doc))
	return doc
}

func newTestRetriever(t *testing.T, embedder *mock.MockEmbedder, opts ...Option) (*Retriever, *badger.DocumentRepository) {
	t.Helper()
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	r, err := NewRetriever(embedder, repo, opts...)
	require.NoError(t, err)
	return r, repo
}

func TestRetrieve_FiltersByThreshold(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}
	r, repo := newTestRetriever(t, embedder)

	// cos = 1.0, well above the cutoff
	relevant := seedDoc(t, repo, "wheat rust treatment", "spray propiconazole", 0, []float32{1, 0, 0})
	// cos ~ 0.3, below the cutoff
	seedDoc(t, repo, "unrelated topic", "unrelated answer", 1, []float32{0.3, 0.954, 0})

	results := r.Retrieve(context.Background(), "wheat rust treatment")
	require.Len(t, results, 1)
	assert.Equal(t, relevant.Id, results[0].Document.Id)
}

func TestRetrieve_ThresholdIsStrict(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	r, repo := newTestRetriever(t, embedder)

	// cos = exactly 0.5; strictly-above means this is excluded.
	seedDoc(t, repo, "borderline", "answer", 0, []float32{0.5, 0.8660254})

	results := r.Retrieve(context.Background(), "query")
	assert.Empty(t, results)
}

func TestRetrieve_CustomThreshold(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	r, repo := newTestRetriever(t, embedder, WithThreshold(0.2))

	seedDoc(t, repo, "loosely related", "answer", 0, []float32{0.3, 0.954})

	results := r.Retrieve(context.Background(), "query")
	assert.Len(t, results, 1)
}

func TestRetrieve_EmbeddingFailureReturnsEmpty(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("service unavailable")
	}
	r, repo := newTestRetriever(t, embedder)
	seedDoc(t, repo, "q", "a", 0, []float32{1, 0})

	results := r.Retrieve(context.Background(), "query")
	assert.Empty(t, results)
}

func TestRetrieve_EmptyQuery(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	r, _ := newTestRetriever(t, embedder)

	results := r.Retrieve(context.Background(), "   ")
	assert.Empty(t, results)
	assert.Equal(t, 0, embedder.CallCount())
}

func TestFormatContext(t *testing.T) {
	results := []*core.RetrievalResult{
		{Document: &core.KnowledgeDocument{Question: "q1", Answer: "a1"}, Similarity: 0.9},
		{Document: &core.KnowledgeDocument{Question: "q2", Answer: "a2"}, Similarity: 0.8},
	}

	got := FormatContext(results)
	assert.Equal(t, "Example 1: Q: q1 A: a1\nExample 2: Q: q2 A: a2", got)
}

func TestFormatContext_CapsAtThreeExamples(t *testing.T) {
	var results []*core.RetrievalResult
	for i := 0; i < 5; i++ {
		results = append(results, &core.RetrievalResult{
			Document: &core.KnowledgeDocument{Question: "q", Answer: "a"},
		})
	}

	got := FormatContext(results)
	assert.Equal(t, 3, len(strings.Split(got, "\n")))
}

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, "No specific context found for this query.", FormatContext(nil))
}

func TestNewRetriever_Validation(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	_, err = NewRetriever(nil, repo)
	assert.True(t, errors.Is(err, ErrEmbedderRequired))

	_, err = NewRetriever(mock.NewMockEmbedder(), nil)
	assert.True(t, errors.Is(err, ErrRepositoryRequired))

	_, err = NewRetriever(mock.NewMockEmbedder(), repo, WithThreshold(2))
	assert.Error(t, err)
}
