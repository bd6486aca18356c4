package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/generate"
	"github.com/mGaurav-dev/SIH-25/language"
	"github.com/mGaurav-dev/SIH-25/retrieve"
	"github.com/mGaurav-dev/SIH-25/speech"
	"github.com/mGaurav-dev/SIH-25/weather"
)

const defaultStageTimeout = 30 * time.Second

// Request is one farmer question with its location.
type Request struct {
	Query    string
	Location string
}

// Persister receives the completed exchange for storage. Persistence is
// best effort; errors are logged, not returned to the farmer.
type Persister interface {
	Persist(ctx context.Context, exchange *core.Exchange) error
}

// noopPersister drops exchanges.
type noopPersister struct{}

func (noopPersister) Persist(ctx context.Context, exchange *core.Exchange) error {
	return nil
}

// Orchestrator drives a request through the answer pipeline.
//
// Only pre-flight validation can fail a request: an empty query or location
// is rejected before any stage runs. Every stage after that degrades rather
// than fails, so a request that starts always ends with a speakable answer,
// though possibly without context, weather, translation, or audio.
type Orchestrator struct {
	languages    *language.Stage
	retriever    *retrieve.Retriever
	generator    *generate.Generator
	speech       *speech.Stage
	weather      weather.Service
	persister    Persister
	stageTimeout time.Duration
	logger       *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithWeather enables weather enrichment. Without it answers are generated
// with the weather placeholder.
func WithWeather(service weather.Service) Option {
	return func(o *Orchestrator) error {
		o.weather = service
		return nil
	}
}

// WithPersister sets the exchange persister.
// Default discards exchanges.
func WithPersister(p Persister) Option {
	return func(o *Orchestrator) error {
		if p == nil {
			p = noopPersister{}
		}
		o.persister = p
		return nil
	}
}

// WithStageTimeout bounds each pipeline stage. Default is 30 seconds.
func WithStageTimeout(d time.Duration) Option {
	return func(o *Orchestrator) error {
		if d <= 0 {
			return ErrInvalidStageTimeout
		}
		o.stageTimeout = d
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	languages *language.Stage,
	retriever *retrieve.Retriever,
	generator *generate.Generator,
	speechStage *speech.Stage,
	opts ...Option,
) (*Orchestrator, error) {
	if languages == nil {
		return nil, ErrLanguageStageRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if speechStage == nil {
		return nil, ErrSpeechStageRequired
	}

	o := &Orchestrator{
		languages:    languages,
		retriever:    retriever,
		generator:    generator,
		speech:       speechStage,
		persister:    noopPersister{},
		stageTimeout: defaultStageTimeout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Ask answers one request. It returns an error only for an invalid request
// or a cancelled context; everything else degrades inside the stages.
func (o *Orchestrator) Ask(ctx context.Context, req Request) (*core.QueryContext, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, core.ErrEmptyQuery
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, core.ErrEmptyLocation
	}

	qc := &core.QueryContext{
		OriginalQuery: req.Query,
		Location:      req.Location,
	}
	start := time.Now()

	err := o.runStage(ctx, StateDetecting, func(sctx context.Context) {
		qc.DetectedLanguage = o.languages.DetectLanguage(sctx, qc.OriginalQuery)
	})
	if err != nil {
		return nil, err
	}

	err = o.runStage(ctx, StateTranslatingIn, func(sctx context.Context) {
		qc.WorkingQuery = o.languages.ToWorkingLanguage(sctx, qc.OriginalQuery, qc.DetectedLanguage)
	})
	if err != nil {
		return nil, err
	}

	err = o.runStage(ctx, StateRetrieving, func(sctx context.Context) {
		var wg sync.WaitGroup
		if o.weather != nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				qc.Weather = o.weather.Snapshot(sctx, qc.Location)
			}()
		}
		qc.Retrieved = o.retriever.Retrieve(sctx, qc.WorkingQuery)
		wg.Wait()
	})
	if err != nil {
		return nil, err
	}

	err = o.runStage(ctx, StateGenerating, func(sctx context.Context) {
		contextBlock := retrieve.FormatContext(qc.Retrieved)
		qc.GeneratedAnswer = o.generator.Answer(sctx, qc.WorkingQuery, qc.Location, qc.Weather, contextBlock)
	})
	if err != nil {
		return nil, err
	}

	err = o.runStage(ctx, StateTranslatingOut, func(sctx context.Context) {
		qc.FinalAnswer = o.languages.FromWorkingLanguage(sctx, qc.GeneratedAnswer, qc.DetectedLanguage)
	})
	if err != nil {
		return nil, err
	}

	err = o.runStage(ctx, StateSynthesizingAudio, func(sctx context.Context) {
		qc.Artifacts = o.synthesizeAudio(sctx, qc)
	})
	if err != nil {
		return nil, err
	}

	o.persist(ctx, qc)

	o.logger.Info("request answered",
		"state", StateDone,
		"language", qc.DetectedLanguage,
		"contextExamples", len(qc.Retrieved),
		"artifacts", len(qc.Artifacts),
		"elapsed", time.Since(start))
	return qc, nil
}

// runStage bounds one stage with the stage timeout and checks for caller
// cancellation before entering it.
func (o *Orchestrator) runStage(ctx context.Context, state State, fn func(ctx context.Context)) error {
	if err := ctx.Err(); err != nil {
		o.logger.Warn("request abandoned", "state", state, "error", err)
		return err
	}

	sctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()

	stageStart := time.Now()
	fn(sctx)
	o.logger.Debug("stage complete", "state", state, "elapsed", time.Since(stageStart))
	return nil
}

// synthesizeAudio produces up to two artifacts concurrently: the final
// answer in the farmer's language, and for non-English requests the English
// answer as well.
func (o *Orchestrator) synthesizeAudio(ctx context.Context, qc *core.QueryContext) []*core.AudioArtifact {
	var localized, english *core.AudioArtifact
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		localized = o.speech.Synthesize(ctx, qc.FinalAnswer, qc.DetectedLanguage)
	}()

	if qc.DetectedLanguage != language.English {
		wg.Add(1)
		go func() {
			defer wg.Done()
			english = o.speech.Synthesize(ctx, qc.GeneratedAnswer, language.English)
		}()
	}
	wg.Wait()

	var artifacts []*core.AudioArtifact
	if localized != nil {
		artifacts = append(artifacts, localized)
	}
	if english != nil {
		artifacts = append(artifacts, english)
	}
	return artifacts
}

// persist hands the finished exchange to the persister. Failures are logged
// and swallowed; the farmer already has an answer.
func (o *Orchestrator) persist(ctx context.Context, qc *core.QueryContext) {
	now := time.Now().UTC()
	exchange := &core.Exchange{
		UserMessage: core.Message{
			Role:     core.RoleUser,
			Content:  qc.OriginalQuery,
			Language: qc.DetectedLanguage,
			Location: qc.Location,
			Weather:  qc.Weather,
			SentAt:   now,
		},
		AssistantMessage: core.Message{
			Role:     core.RoleAssistant,
			Content:  qc.FinalAnswer,
			Language: qc.DetectedLanguage,
			Location: qc.Location,
			SentAt:   now,
		},
		Artifacts: qc.Artifacts,
	}

	if err := o.persister.Persist(ctx, exchange); err != nil {
		o.logger.Warn("failed to persist exchange", "error", err)
	}
}
