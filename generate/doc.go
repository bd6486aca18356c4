// Package generate turns a query, retrieved context, and weather into an
// agricultural answer.
//
// Output is gated for quality: model answers are cleaned of markup and must
// clear a minimum word count, otherwise generation retries once through a
// simpler prompt and finally settles on a fixed apology. Callers always get
// a speakable answer.
package generate
