package speech

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mGaurav-dev/SIH-25/ai"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage"
)

// synthesisLanguages are the codes the synthesizer accepts. Anything else
// falls back to English rather than failing the synthesis.
var synthesisLanguages = map[string]bool{
	"en": true, "hi": true, "mr": true, "gu": true, "pa": true,
	"ta": true, "te": true, "kn": true, "bn": true, "ur": true,
	"ml": true, "or": true, "as": true, "ne": true,
}

// Stage synthesizes spoken audio for answers and stores the result.
//
// Audio is strictly optional: any failure along the way, from synthesis to
// storage, yields a nil artifact and no error. The pipeline reports what it
// got and moves on.
type Stage struct {
	synthesizer ai.SpeechSynthesizer
	artifacts   storage.ArtifactStore
	logger      *slog.Logger
}

// Option configures a Stage.
type Option func(*Stage) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stage) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStage creates a new Stage.
func NewStage(synthesizer ai.SpeechSynthesizer, artifacts storage.ArtifactStore, opts ...Option) (*Stage, error) {
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}
	if artifacts == nil {
		return nil, ErrArtifactStoreRequired
	}

	s := &Stage{
		synthesizer: synthesizer,
		artifacts:   artifacts,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SynthesisLanguage maps a language code to one the synthesizer accepts,
// falling back to English for everything unsupported.
func SynthesisLanguage(code string) string {
	if synthesisLanguages[code] {
		return code
	}
	return "en"
}

// Synthesize converts text to stored speech audio. Returns nil for blank
// text and nil on any synthesis, validation, or storage failure.
func (s *Stage) Synthesize(ctx context.Context, text, langCode string) *core.AudioArtifact {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lang := SynthesisLanguage(langCode)
	if lang != langCode {
		s.logger.Debug("language not synthesizable, falling back to english", "requested", langCode)
	}

	data, err := s.synthesizer.Synthesize(ctx, text, lang)
	if err != nil {
		s.logger.Warn("speech synthesis failed", "language", lang, "error", err)
		return nil
	}
	if !isMP3(data) {
		s.logger.Warn("synthesizer returned invalid audio", "language", lang, "bytes", len(data))
		return nil
	}

	id := uuid.NewString()
	ref, err := s.artifacts.Save(ctx, id, data)
	if err != nil {
		s.logger.Warn("failed to store audio artifact", "error", err)
		return nil
	}

	return &core.AudioArtifact{
		Id:         id,
		ByteSize:   int64(len(data)),
		Language:   lang,
		Purpose:    core.PurposeResponseAudio,
		StorageRef: ref,
	}
}

// isMP3 checks for an ID3 tag or an MPEG frame sync at the start of the
// stream.
func isMP3(data []byte) bool {
	if len(data) < 3 {
		return false
	}
	if bytes.HasPrefix(data, []byte("ID3")) {
		return true
	}
	return data[0] == 0xFF && data[1]&0xE0 == 0xE0
}
