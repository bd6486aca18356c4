package language

import (
	"context"
	"log/slog"

	"github.com/mGaurav-dev/SIH-25/ai"
)

// Stage handles language detection and bidirectional translation around the
// English-only retrieval and generation core.
//
// Every method degrades instead of failing: detection falls back to English
// and translation falls back to the untranslated text. An answer in the
// wrong language beats no answer.
type Stage struct {
	detector   ai.LanguageDetector
	translator ai.Translator
	logger     *slog.Logger
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
func NewStage(detector ai.LanguageDetector, translator ai.Translator, opts ...Option) (*Stage, error) {
	if detector == nil {
		return nil, ErrDetectorRequired
	}
	if translator == nil {
		return nil, ErrTranslatorRequired
	}

	s := &Stage{
		detector:   detector,
		translator: translator,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DetectLanguage returns the ISO code of the text's language. The English
// heuristic runs first so English queries never hit the remote detector.
// Detection failures fall back to English.
func (s *Stage) DetectLanguage(ctx context.Context, text string) string {
	if IsEnglish(text) {
		return English
	}

	code, err := s.detector.Detect(ctx, text)
	if err != nil {
		s.logger.Warn("language detection failed, assuming english", "error", err)
		return English
	}
	s.logger.Debug("language detected", "code", code)
	return code
}

// ToWorkingLanguage translates text into English. English input is returned
// unchanged without a translator call. Translation failures return the
// original text.
func (s *Stage) ToWorkingLanguage(ctx context.Context, text, detected string) string {
	if detected == English {
		return text
	}

	translated, err := s.translator.Translate(ctx, text, detected, English)
	if err != nil {
		s.logger.Warn("translation to english failed, using original text",
			"source", detected, "error", err)
		return text
	}
	if translated == "" {
		return text
	}
	return translated
}

// FromWorkingLanguage translates English text into the target language.
// An English target returns the text unchanged without a translator call.
// Translation failures return the English text.
func (s *Stage) FromWorkingLanguage(ctx context.Context, text, target string) string {
	if target == English {
		return text
	}

	translated, err := s.translator.Translate(ctx, text, English, target)
	if err != nil {
		s.logger.Warn("translation from english failed, answering in english",
			"target", target, "error", err)
		return text
	}
	if translated == "" {
		return text
	}
	return translated
}
