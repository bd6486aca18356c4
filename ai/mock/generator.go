package mock

import (
	"context"
	"fmt"
)

// MockGenerator is a test double for ai.Generator.
type MockGenerator struct {
	// CompleteFunc is called by Complete if set.
	// If nil, returns a deterministic canned answer.
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	// Prompts records every prompt Complete received, in order.
	Prompts []string

	callCount int
}

// NewMockGenerator creates a mock generator with default behavior.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Complete records the prompt and returns either the injected behavior or a
// canned answer long enough to pass quality gating.
func (m *MockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.Prompts = append(m.Prompts, prompt)

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}

	return fmt.Sprintf("This is a generated advisory answer for prompt number %d.", m.callCount), nil
}

// CallCount returns the number of times Complete was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears recorded state and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.Prompts = nil
	m.CompleteFunc = nil
}
