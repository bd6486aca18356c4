// Package agriassist is a retrieval-augmented agricultural question
// answering system for farmers.
//
// Questions arrive in any of fifteen supported languages. The system detects
// the language, translates the question to English, retrieves similar
// question/answer pairs from a local vector index, generates a grounded
// answer enriched with live weather, translates it back, and synthesizes
// spoken audio. Knowledge enters the index through JSONL ingestion with
// content-addressed deduplication.
//
// This package is the facade; the pipeline, storage, and AI integrations
// live in subpackages.
package agriassist
