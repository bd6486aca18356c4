// Package retrieve finds knowledge documents relevant to a farmer's query.
//
// A query is normalized, embedded, and matched against the index by cosine
// similarity. Only documents strictly above the configured threshold count
// as relevant; everything below it is treated as noise. Retrieval never
// fails the caller: any upstream error degrades to an empty result so the
// answer pipeline can continue without context.
package retrieve
