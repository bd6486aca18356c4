// Package openai implements the embedding and generation capabilities over
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM, and gateways that
// front hosted models behind the same protocol).
package openai
