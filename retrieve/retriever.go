package retrieve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mGaurav-dev/SIH-25/ai"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage"
)

const (
	// defaultThreshold is the minimum similarity a document must exceed to
	// count as relevant context.
	defaultThreshold = 0.5

	// defaultLimit is how many candidates to pull from the index before
	// threshold filtering.
	defaultLimit = 5

	// maxContextExamples caps how many examples go into the prompt context.
	maxContextExamples = 3
)

// Retriever finds knowledge documents relevant to a query.
type Retriever struct {
	embedder   ai.Embedder
	repository storage.DocumentRepository
	threshold  float32
	limit      int
	logger     *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithThreshold sets the similarity cutoff. Documents must score strictly
// above it to be returned. Default is 0.5.
func WithThreshold(threshold float32) Option {
	return func(r *Retriever) error {
		if threshold < -1 || threshold > 1 {
			return fmt.Errorf("threshold %v outside [-1, 1]", threshold)
		}
		r.threshold = threshold
		return nil
	}
}

// WithLimit sets how many candidates are fetched from the index before the
// threshold is applied. Default is 5.
func WithLimit(limit int) Option {
	return func(r *Retriever) error {
		if limit < 1 {
			return fmt.Errorf("limit must be at least 1, got %d", limit)
		}
		r.limit = limit
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a new Retriever.
func NewRetriever(embedder ai.Embedder, repository storage.DocumentRepository, opts ...Option) (*Retriever, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	r := &Retriever{
		embedder:   embedder,
		repository: repository,
		threshold:  defaultThreshold,
		limit:      defaultLimit,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Retrieve embeds the query and returns documents scoring strictly above the
// similarity threshold, best first.
//
// Retrieval is best effort: embedding or index failures are logged and
// produce an empty result, not an error, so the caller can fall back to
// generation without context.
func (r *Retriever) Retrieve(ctx context.Context, query string) []*core.RetrievalResult {
	query = core.NormalizeText(query)
	if query == "" {
		return nil
	}

	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Warn("query embedding failed, retrieving nothing", "error", err)
		return nil
	}

	candidates, err := r.repository.FindSimilar(ctx, vector, r.limit)
	if err != nil {
		r.logger.Warn("similarity search failed, retrieving nothing", "error", err)
		return nil
	}

	// Strictly above: a score exactly at the threshold is not relevant.
	var results []*core.RetrievalResult
	for _, c := range candidates {
		if c.Similarity > r.threshold {
			results = append(results, c)
		}
	}

	r.logger.Debug("retrieval complete",
		"candidates", len(candidates), "relevant", len(results))
	return results
}

// FormatContext renders retrieval results as prompt context, capped at three
// examples. Returns a fixed placeholder when nothing relevant was found.
func FormatContext(results []*core.RetrievalResult) string {
	if len(results) == 0 {
		return "No specific context found for this query."
	}

	var parts []string
	for i, result := range results {
		if i == maxContextExamples {
			break
		}
		parts = append(parts, fmt.Sprintf("Example %d: Q: %s A: %s",
			i+1, result.Document.Question, result.Document.Answer))
	}
	return strings.Join(parts, "\n")
}
