package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed configuration for the assistant. Zero values
// fall back to defaults, so a partial file is fine.
type Config struct {
	LogLevel string `yaml:"log_level"`

	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`

	Artifacts struct {
		Dir    string        `yaml:"dir"`
		MaxAge time.Duration `yaml:"max_age"`
	} `yaml:"artifacts"`

	AI struct {
		EmbeddingHost   string  `yaml:"embedding_host"`
		GenerationHost  string  `yaml:"generation_host"`
		EmbeddingModel  string  `yaml:"embedding_model"`
		GenerationModel string  `yaml:"generation_model"`
		APIToken        string  `yaml:"api_token"`
		Temperature     float64 `yaml:"temperature"`
	} `yaml:"ai"`

	Weather struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"weather"`

	Pipeline struct {
		Threshold    float32       `yaml:"threshold"`
		MinWords     int           `yaml:"min_words"`
		StageTimeout time.Duration `yaml:"stage_timeout"`
	} `yaml:"pipeline"`

	Ingest struct {
		BatchSize int `yaml:"batch_size"`
		PoolSize  int `yaml:"pool_size"`
	} `yaml:"ingest"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.LogLevel = "info"
	cfg.DB.Path = "./agriassist-db"
	cfg.Artifacts.Dir = "./agriassist-audio"
	cfg.Artifacts.MaxAge = 24 * time.Hour
	cfg.Pipeline.Threshold = 0.5
	cfg.Pipeline.MinWords = 5
	cfg.Pipeline.StageTimeout = 30 * time.Second
	cfg.Ingest.BatchSize = 64
	return cfg
}

// Load reads a YAML file over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations no component would accept.
func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if c.Pipeline.Threshold < -1 || c.Pipeline.Threshold > 1 {
		return fmt.Errorf("pipeline.threshold %v outside [-1, 1]", c.Pipeline.Threshold)
	}
	if c.Pipeline.MinWords < 1 {
		return fmt.Errorf("pipeline.min_words must be at least 1")
	}
	if c.Pipeline.StageTimeout <= 0 {
		return fmt.Errorf("pipeline.stage_timeout must be positive")
	}
	if c.Ingest.BatchSize < 1 {
		return fmt.Errorf("ingest.batch_size must be at least 1")
	}
	return nil
}
