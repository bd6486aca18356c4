// Copyright 2025 SIH-25 contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package agriassist

import (
	"context"
	"io"
	"log/slog"

	"github.com/mGaurav-dev/SIH-25/ai"
	"github.com/mGaurav-dev/SIH-25/ai/google"
	"github.com/mGaurav-dev/SIH-25/ai/openai"
	"github.com/mGaurav-dev/SIH-25/config"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/generate"
	"github.com/mGaurav-dev/SIH-25/ingest"
	"github.com/mGaurav-dev/SIH-25/language"
	"github.com/mGaurav-dev/SIH-25/pipeline"
	"github.com/mGaurav-dev/SIH-25/retrieve"
	"github.com/mGaurav-dev/SIH-25/speech"
	"github.com/mGaurav-dev/SIH-25/storage/badger"
	"github.com/mGaurav-dev/SIH-25/storage/fsblob"
	"github.com/mGaurav-dev/SIH-25/weather"
)

// System wires storage, AI services, and the pipeline into one assistant.
type System struct {
	cfg          *config.Config
	repository   *badger.DocumentRepository
	provider     ai.Provider
	artifacts    *fsblob.Store
	orchestrator *pipeline.Orchestrator
	logger       *slog.Logger
}

// NewSystem builds a System from configuration. On error, anything already
// opened is closed again.
func NewSystem(cfg *config.Config) (*System, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := slog.Default()

	backend, err := badger.OpenBackend(cfg.DB.Path, false)
	if err != nil {
		return nil, err
	}
	repository := badger.NewDocumentRepository(backend)

	aiOpts := []ai.ConfigOption{ai.WithTemperature(0.3)}
	if cfg.AI.EmbeddingHost != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingHost(cfg.AI.EmbeddingHost))
	}
	if cfg.AI.GenerationHost != "" {
		aiOpts = append(aiOpts, ai.WithGenerationHost(cfg.AI.GenerationHost))
	}
	if cfg.AI.EmbeddingModel != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingModel(cfg.AI.EmbeddingModel))
	}
	if cfg.AI.GenerationModel != "" {
		aiOpts = append(aiOpts, ai.WithGenerationModel(cfg.AI.GenerationModel))
	}
	if cfg.AI.APIToken != "" {
		aiOpts = append(aiOpts, ai.WithAPIToken(cfg.AI.APIToken))
	}
	if cfg.AI.Temperature != 0 {
		aiOpts = append(aiOpts, ai.WithTemperature(cfg.AI.Temperature))
	}

	provider, err := openai.NewProvider(ai.NewConfig(aiOpts...))
	if err != nil {
		repository.Close()
		return nil, err
	}

	googleClient, err := google.NewClient()
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	artifacts, err := fsblob.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	languages, err := language.NewStage(googleClient, googleClient)
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	retriever, err := retrieve.NewRetriever(provider.Embedder(), repository,
		retrieve.WithThreshold(cfg.Pipeline.Threshold))
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	generator, err := generate.NewGenerator(provider.Generator(),
		generate.WithMinWords(cfg.Pipeline.MinWords))
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	speechStage, err := speech.NewStage(googleClient, artifacts)
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	pipelineOpts := []pipeline.Option{
		pipeline.WithStageTimeout(cfg.Pipeline.StageTimeout),
	}
	if cfg.Weather.APIKey != "" {
		weatherClient, werr := weather.NewClient(cfg.Weather.APIKey)
		if werr != nil {
			provider.Close()
			repository.Close()
			return nil, werr
		}
		pipelineOpts = append(pipelineOpts, pipeline.WithWeather(weatherClient))
	} else {
		logger.Info("no weather api key configured, answering without weather")
	}

	orchestrator, err := pipeline.NewOrchestrator(languages, retriever, generator, speechStage, pipelineOpts...)
	if err != nil {
		provider.Close()
		repository.Close()
		return nil, err
	}

	return &System{
		cfg:          cfg,
		repository:   repository,
		provider:     provider,
		artifacts:    artifacts,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}

// Ask answers one farmer question.
func (s *System) Ask(ctx context.Context, query, location string) (*core.QueryContext, error) {
	return s.orchestrator.Ask(ctx, pipeline.Request{Query: query, Location: location})
}

// Ingest loads a JSONL knowledge source into the index.
func (s *System) Ingest(ctx context.Context, source io.Reader, progress io.Writer) (*ingest.Report, error) {
	opts := []ingest.Option{
		ingest.WithBatchSize(s.cfg.Ingest.BatchSize),
	}
	if s.cfg.Ingest.PoolSize > 0 {
		opts = append(opts, ingest.WithPoolSize(s.cfg.Ingest.PoolSize))
	}
	if progress != nil {
		opts = append(opts, ingest.WithProgress(progress))
	}

	ingestor, err := ingest.NewIngestor(s.repository, s.provider.Embedder(), opts...)
	if err != nil {
		return nil, err
	}
	defer ingestor.Release()

	return ingestor.Ingest(ctx, source)
}

// DocumentCount reports how many documents the index holds.
func (s *System) DocumentCount(ctx context.Context) (int, error) {
	return s.repository.Count(ctx)
}

// CleanupAudio removes stored audio older than the configured maximum age.
func (s *System) CleanupAudio(ctx context.Context) (int, error) {
	return s.artifacts.CleanupOlderThan(ctx, s.cfg.Artifacts.MaxAge)
}

// Close shuts the system down in reverse construction order.
func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Warn("error closing ai provider", "error", err)
	}
	return s.repository.Close()
}
