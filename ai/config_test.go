package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.GenerationHost)
	assert.NotEmpty(t, cfg.EmbeddingModel)
	assert.NotEmpty(t, cfg.GenerationModel)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://models.internal:9100"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithGenerationModel("gpt-4o-mini"),
		WithAPIToken("secret"),
		WithTemperature(0.1),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://models.internal:9100/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://models.internal:9100/v1", cfg.GenerationHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "gpt-4o-mini", cfg.GenerationModel)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, 0.1, cfg.Temperature)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"strips trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps existing v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.GenerationHost)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing embedding model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing generation model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GenerationModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 3.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty token defaults to none", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.APIToken = ""
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "none", cfg.APIToken)
	})
}
