package generate

import (
	"context"
	"log/slog"

	"github.com/mGaurav-dev/SIH-25/ai"
	"github.com/mGaurav-dev/SIH-25/core"
)

// Apology is the terminal fallback answer when both generation attempts
// fail. It is always safe to speak to the user.
const Apology = "I apologize, but I'm unable to provide a response right now. Please try again later or rephrase your question."

const defaultMinWords = 5

// Generator produces grounded answers with a quality gate.
//
// Answers shorter than the minimum word count after cleaning are treated as
// degenerate model output and retried once through a simpler prompt. If that
// also fails, a fixed apology is returned. Answer never fails the caller.
type Generator struct {
	llm      ai.Generator
	minWords int
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithMinWords sets the quality gate: cleaned answers with fewer words are
// rejected and retried through the fallback prompt. Default is 5.
func WithMinWords(n int) Option {
	return func(g *Generator) error {
		if n < 1 {
			return ErrInvalidMinWords
		}
		g.minWords = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(llm ai.Generator, opts ...Option) (*Generator, error) {
	if llm == nil {
		return nil, ErrGeneratorRequired
	}

	g := &Generator{
		llm:      llm,
		minWords: defaultMinWords,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Answer generates an English answer to the query, grounded on the retrieved
// context block and weather snapshot. The result is always non-empty.
func (g *Generator) Answer(ctx context.Context, query, location string, weather *core.WeatherSnapshot, contextBlock string) string {
	prompt := buildAnswerPrompt(query, location, FormatWeather(weather), contextBlock)

	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		g.logger.Warn("answer generation failed, trying fallback", "error", err)
		return g.fallback(ctx, query, location)
	}

	cleaned := CleanResponse(raw)
	if wordCount(cleaned) < g.minWords {
		g.logger.Warn("answer below quality gate, trying fallback",
			"words", wordCount(cleaned), "minWords", g.minWords)
		return g.fallback(ctx, query, location)
	}
	return cleaned
}

// fallback makes one simpler attempt, then gives up with the apology.
// The quality gate does not apply here; any non-empty answer beats none.
func (g *Generator) fallback(ctx context.Context, query, location string) string {
	raw, err := g.llm.Complete(ctx, buildFallbackPrompt(query, location))
	if err != nil {
		g.logger.Error("fallback generation failed", "error", err)
		return Apology
	}

	cleaned := CleanResponse(raw)
	if cleaned == "" {
		return Apology
	}
	return cleaned
}
