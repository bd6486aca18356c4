package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated deterministically from normalized content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocumentID derives the content-addressed identity of a question/answer pair.
// Both texts must already be normalized so that identity and retrieval agree.
func DocumentID(question, answer string) ID {
	return IDFromContent(question + "|" + answer)
}

// KnowledgeDocument is a stored unit of retrievable knowledge.
// Created once per unique (question, answer) pair during ingestion and never
// mutated afterwards.
type KnowledgeDocument struct {
	Id            ID        `json:"id"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	Embedding     []float32 `json:"embedding"`
	SourceOrdinal int       `json:"sourceOrdinal"` // position in the source corpus, diagnostics only
	InsertedAt    time.Time `json:"insertedAt"`
}

// RetrievalResult pairs a stored document with its similarity to a query.
// Scores are in [0,1], higher is closer. Results are ephemeral and discarded
// after the request completes.
type RetrievalResult struct {
	Document   *KnowledgeDocument
	Similarity float32
}

// WeatherSnapshot holds the current weather at the query location.
// Present reports whether a snapshot was obtained at all; individual fields
// may still be zero when the provider omitted them.
type WeatherSnapshot struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64
	Description string
	Conditions  string
	Station     string
	Present     bool
}

// Audio artifact purposes.
const (
	PurposeResponseAudio = "response-audio"
)

// AudioArtifact references a synthesized speech byte stream persisted in the
// external blob store. Immutable once created; deletion is a collaborator
// concern.
type AudioArtifact struct {
	Id         string
	ByteSize   int64
	Language   string
	Purpose    string
	StorageRef string
}

// QueryContext carries the mutable state of a single request through the
// pipeline. It is owned exclusively by the orchestrator for the lifetime of
// one request and never shared across requests or persisted directly.
type QueryContext struct {
	OriginalQuery    string
	DetectedLanguage string
	WorkingQuery     string // query in the working language (English)
	Location         string
	Weather          *WeatherSnapshot
	Retrieved        []*RetrievalResult // relevance-descending
	GeneratedAnswer  string             // English
	FinalAnswer      string             // in DetectedLanguage, never empty once the pipeline finishes
	Artifacts        []*AudioArtifact   // 0-2 entries
}

// MessageRole identifies the author of a stored message.
type MessageRole int

const (
	// RoleUser represents the asking farmer.
	RoleUser MessageRole = iota + 1
	// RoleAssistant represents the generated answer.
	RoleAssistant
)

// Message is one side of a stored exchange, handed back to the persistence
// collaborator together with its context.
type Message struct {
	Role     MessageRole
	Content  string
	Language string
	Location string
	Weather  *WeatherSnapshot
	SentAt   time.Time
}

// Exchange is the payload the pipeline produces for storage: the user's
// question, the assistant's answer, and any synthesized audio.
type Exchange struct {
	UserMessage      Message
	AssistantMessage Message
	Artifacts        []*AudioArtifact
}
