// Package ai provides abstractions for the external AI capabilities the
// query pipeline depends on.
//
// This package defines interfaces for text embeddings, answer generation,
// language detection, translation, and speech synthesis. It follows the
// dependency inversion principle: the domain and pipeline logic depend on
// these abstractions rather than on concrete services, and no capability is
// held as ambient global state.
//
// # Implementation Packages
//
//   - ai/openai: embeddings and generation over OpenAI-compatible APIs
//   - ai/google: translation, language detection, and speech synthesis over
//     the public Google Translate endpoints
//   - ai/mock: deterministic test doubles for unit testing without external
//     dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors in the implementation packages return interface types
// to enforce abstraction:
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Mock constructors return concrete types so tests can inject behavior and
// assert call counts:
//
//	embed := mock.NewMockEmbedder()   // returns *mock.MockEmbedder
//	embed.EmbedTextFunc = ...
package ai
