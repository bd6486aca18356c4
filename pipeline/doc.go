// Package pipeline orchestrates a farmer's question from raw text to a
// translated, optionally spoken answer.
//
// A request moves through a fixed sequence of stages: language detection,
// translation into English, context retrieval alongside a weather lookup,
// answer generation, translation back, and audio synthesis. The pipeline is
// best effort by design; after pre-flight validation no stage can fail the
// request, only degrade it.
package pipeline
