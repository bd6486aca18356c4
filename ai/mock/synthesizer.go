package mock

import (
	"context"
	"sync"
)

// mp3Header is a minimal MPEG frame sync so synthesized bytes pass container
// validation in the speech stage.
var mp3Header = []byte{0xFF, 0xFB, 0x90, 0x00}

// MockSynthesizer is a test double for ai.SpeechSynthesizer.
type MockSynthesizer struct {
	// SynthesizeFunc is called by Synthesize if set.
	// If nil, returns a small valid-looking MP3 byte stream.
	SynthesizeFunc func(ctx context.Context, text, language string) ([]byte, error)

	// Languages records the language tag of every call. The speech stage
	// synthesizes concurrently, so access is guarded.
	Languages []string

	mu        sync.Mutex
	callCount int
}

// NewMockSynthesizer creates a mock synthesizer with default behavior.
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{}
}

// Synthesize records the call and returns either injected behavior or a
// deterministic MP3-shaped byte stream derived from the text length.
func (m *MockSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	m.mu.Lock()
	m.callCount++
	m.Languages = append(m.Languages, language)
	fn := m.SynthesizeFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text, language)
	}

	audio := make([]byte, 0, len(mp3Header)+len(text))
	audio = append(audio, mp3Header...)
	audio = append(audio, []byte(text)...)
	return audio, nil
}

// CallCount returns the number of times Synthesize was called.
func (m *MockSynthesizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears recorded state and injected behavior.
func (m *MockSynthesizer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.Languages = nil
	m.SynthesizeFunc = nil
}
