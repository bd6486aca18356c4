package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use. The same embedder
// must serve ingestion and querying so both live in one embedding space.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces free text from a prompt. Implementations are fallible
// and may time out; callers decide how to degrade.
type Generator interface {
	// Complete invokes the generation capability once with the given prompt
	// and returns the raw model output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// LanguageDetector classifies the language of a text.
type LanguageDetector interface {
	// Detect returns an ISO 639-1 language code for the text.
	Detect(ctx context.Context, text string) (string, error)
}

// Translator converts text between languages.
type Translator interface {
	// Translate converts text from the source language to the target language.
	// Source may be "auto" to let the capability detect it.
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// SpeechSynthesizer converts text into an audio byte stream.
type SpeechSynthesizer interface {
	// Synthesize returns spoken audio for the text in the given language tag.
	// The language tag must already be one the engine accepts.
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// Provider aggregates the model-backed capabilities (embedding and
// generation) for convenient initialization and lifecycle management.
// Translation and speech capabilities are constructed separately since they
// are backed by different services.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the text generation service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
