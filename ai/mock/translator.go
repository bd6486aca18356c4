package mock

import "context"

// MockTranslator is a test double for ai.Translator and ai.LanguageDetector.
type MockTranslator struct {
	// TranslateFunc is called by Translate if set.
	// If nil, returns the input text prefixed with the target language tag.
	TranslateFunc func(ctx context.Context, text, source, target string) (string, error)

	// DetectFunc is called by Detect if set.
	// If nil, detection returns "en".
	DetectFunc func(ctx context.Context, text string) (string, error)

	translateCalls int
	detectCalls    int
}

// NewMockTranslator creates a mock translator with default behavior.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{}
}

// Translate returns the injected behavior or a tagged copy of the input so
// tests can observe that translation happened.
func (m *MockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.translateCalls++

	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, source, target)
	}

	return "[" + target + "] " + text, nil
}

// Detect returns the injected behavior or "en".
func (m *MockTranslator) Detect(ctx context.Context, text string) (string, error) {
	m.detectCalls++

	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, text)
	}

	return "en", nil
}

// TranslateCallCount returns the number of Translate invocations.
func (m *MockTranslator) TranslateCallCount() int {
	return m.translateCalls
}

// DetectCallCount returns the number of Detect invocations.
func (m *MockTranslator) DetectCallCount() int {
	return m.detectCalls
}

// Reset clears call counts and injected behavior.
func (m *MockTranslator) Reset() {
	m.translateCalls = 0
	m.detectCalls = 0
	m.TranslateFunc = nil
	m.DetectFunc = nil
}
