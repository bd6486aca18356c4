package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/mGaurav-dev/SIH-25/ai"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage"
	"github.com/panjf2000/ants/v2"
)

const (
	defaultBatchSize   = 64
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
	maxScanTokenSize   = 1 << 20 // 1 MiB per line
	listIDsPageSize    = 1000
)

// Ingestor loads question/answer pairs into the knowledge index.
// It manages concurrent embedding of batches through a worker pool.
type Ingestor struct {
	repository  storage.DocumentRepository
	embedder    ai.Embedder
	pool        *ants.Pool
	batchSize   int
	maxAttempts int
	baseDelay   time.Duration
	progress    io.Writer
	logger      *slog.Logger
}

// Option configures an Ingestor.
type Option func(*Ingestor) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ing *Ingestor) error {
		if size < 1 {
			size = 1
		}
		if ing.pool != nil {
			ing.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ing.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are embedded and written per batch.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(ing *Ingestor) error {
		if size < 1 {
			size = 1
		}
		ing.batchSize = size
		return nil
	}
}

// WithRetry sets the retry policy for embedding calls.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(ing *Ingestor) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		ing.maxAttempts = maxAttempts
		ing.baseDelay = baseDelay
		return nil
	}
}

// WithProgress enables progress reporting to the writer during ingestion.
func WithProgress(w io.Writer) Option {
	return func(ing *Ingestor) error {
		ing.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ing *Ingestor) error {
		if logger == nil {
			logger = slog.Default()
		}
		ing.logger = logger
		return nil
	}
}

// NewIngestor creates a new Ingestor.
func NewIngestor(repository storage.DocumentRepository, embedder ai.Embedder, opts ...Option) (*Ingestor, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ing := &Ingestor{
		repository:  repository,
		embedder:    embedder,
		pool:        pool,
		batchSize:   defaultBatchSize,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(ing); optErr != nil {
			ing.Release()
			return nil, optErr
		}
	}

	return ing, nil
}

// Release releases the worker pool.
// The ingestor should not be used after calling Release.
func (ing *Ingestor) Release() {
	if ing.pool != nil {
		ing.pool.Release()
	}
}

// Report summarizes an ingestion run.
type Report struct {
	Added   int // documents embedded and written
	Skipped int // duplicates, in the source or already indexed
	Failed  int // malformed records or batches that failed after retries
}

// sourceRecord is one line of the JSONL knowledge source.
type sourceRecord struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Ingest reads a JSONL stream of {"input": question, "output": answer}
// records, normalizes and deduplicates them by content ID, embeds the
// questions in batches, and writes the documents to the index.
//
// Ingestion is best effort: malformed lines and failed batches are counted
// in the report, never abort the run. Documents already present in the index
// are skipped without spending embedding calls on them.
func (ing *Ingestor) Ingest(ctx context.Context, source io.Reader) (*Report, error) {
	report := &Report{}

	docs, err := ing.parseSource(source, report)
	if err != nil {
		return nil, err
	}

	docs, err = ing.filterExisting(ctx, docs, report)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		ing.logger.Info("ingestion complete, nothing new to index",
			"skipped", report.Skipped, "failed", report.Failed)
		return report, nil
	}

	var tracker *ProgressTracker
	if ing.progress != nil {
		tracker = NewProgressTracker(ing.progress, len(docs), ing.batchSize)
		tracker.Start()
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for start := 0; start < len(docs); start += ing.batchSize {
		end := start + ing.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		wg.Add(1)
		submitErr := ing.pool.Submit(func() {
			defer wg.Done()
			err := ing.processBatch(ctx, batch)

			mu.Lock()
			if err != nil {
				report.Failed += len(batch)
				ing.logger.Error("batch failed", "size", len(batch), "error", err)
			} else {
				report.Added += len(batch)
			}
			mu.Unlock()

			if tracker != nil {
				tracker.Increment(len(batch))
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			report.Failed += len(batch)
			mu.Unlock()
			ing.logger.Error("failed to submit batch", "error", submitErr)
		}
	}

	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}

	ing.logger.Info("ingestion complete",
		"added", report.Added, "skipped", report.Skipped, "failed", report.Failed)
	return report, nil
}

// parseSource reads the JSONL stream into validated documents, deduplicating
// within the run. Malformed or empty records count as failures.
func (ing *Ingestor) parseSource(source io.Reader, report *Report) ([]*core.KnowledgeDocument, error) {
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)

	var docs []*core.KnowledgeDocument
	seen := make(map[core.ID]bool)
	ordinal := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec sourceRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			report.Failed++
			ing.logger.Warn("malformed source line", "line", lineNo, "error", err)
			continue
		}

		question := core.NormalizeText(rec.Input)
		answer := core.NormalizeText(rec.Output)
		if question == "" || answer == "" {
			report.Failed++
			ing.logger.Warn("empty record after normalization", "line", lineNo)
			continue
		}

		doc := core.NewDocument(question, answer, ordinal)
		ordinal++

		if seen[doc.Id] {
			report.Skipped++
			continue
		}
		seen[doc.Id] = true
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// filterExisting drops documents already present in the index so re-running
// ingestion over the same source never re-embeds.
func (ing *Ingestor) filterExisting(ctx context.Context, docs []*core.KnowledgeDocument, report *Report) ([]*core.KnowledgeDocument, error) {
	if len(docs) == 0 {
		return docs, nil
	}

	existing := make(map[core.ID]bool)
	token := ""
	for {
		ids, next, err := ing.repository.ListIDs(ctx, token, listIDsPageSize)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			existing[id] = true
		}
		if next == "" {
			break
		}
		token = next
	}

	kept := docs[:0]
	for _, doc := range docs {
		if existing[doc.Id] {
			report.Skipped++
			continue
		}
		kept = append(kept, doc)
	}
	return kept, nil
}

// processBatch embeds a batch of questions and writes the documents.
func (ing *Ingestor) processBatch(ctx context.Context, batch []*core.KnowledgeDocument) error {
	texts := make([]string, len(batch))
	for i, doc := range batch {
		texts[i] = doc.Question
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = ing.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, ing.maxAttempts, ing.baseDelay)
	if err != nil {
		return err
	}

	for i, doc := range batch {
		if i < len(vectors) {
			doc.Embedding = vectors[i]
		}
	}

	return ing.repository.UpsertDocuments(ctx, batch...)
}
