// Package ingest loads question/answer knowledge sources into the vector
// index.
//
// Sources are JSONL streams of {"input": ..., "output": ...} records. Each
// record is normalized, assigned a content-addressed ID, deduplicated against
// both the current run and the existing index, then embedded and written in
// batches over a worker pool. Failures are counted per record and never abort
// a run.
package ingest
