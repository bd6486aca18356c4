package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/mGaurav-dev/SIH-25/ai/mock"
	"github.com/mGaurav-dev/SIH-25/core"
	"github.com/mGaurav-dev/SIH-25/storage/fsblob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStage(t *testing.T, synth *mock.MockSynthesizer) (*Stage, *fsblob.Store) {
	t.Helper()
	store, err := fsblob.NewStore(t.TempDir())
	require.NoError(t, err)

	s, err := NewStage(synth, store)
	require.NoError(t, err)
	return s, store
}

func TestSynthesize_StoresArtifact(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	s, store := newTestStage(t, synth)
	ctx := context.Background()

	artifact := s.Synthesize(ctx, "गेहूं नवंबर में बोएं", "hi")
	require.NotNil(t, artifact)

	assert.NotEmpty(t, artifact.Id)
	assert.Equal(t, "hi", artifact.Language)
	assert.Equal(t, core.PurposeResponseAudio, artifact.Purpose)
	assert.Greater(t, artifact.ByteSize, int64(0))

	data, err := store.Open(ctx, artifact.StorageRef)
	require.NoError(t, err)
	assert.Equal(t, artifact.ByteSize, int64(len(data)))
}

func TestSynthesize_BlankTextReturnsNil(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	s, _ := newTestStage(t, synth)

	assert.Nil(t, s.Synthesize(context.Background(), "   ", "en"))
	assert.Empty(t, synth.Languages)
}

func TestSynthesize_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	s, _ := newTestStage(t, synth)

	// Sindhi is translatable but not synthesizable.
	artifact := s.Synthesize(context.Background(), "text", "sd")
	require.NotNil(t, artifact)
	assert.Equal(t, "en", artifact.Language)
	assert.Equal(t, []string{"en"}, synth.Languages)
}

func TestSynthesize_FailureReturnsNilWithoutError(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	synth.SynthesizeFunc = func(ctx context.Context, text, language string) ([]byte, error) {
		return nil, errors.New("tts unavailable")
	}
	s, _ := newTestStage(t, synth)

	assert.Nil(t, s.Synthesize(context.Background(), "text", "en"))
}

func TestSynthesize_RejectsNonMP3Payload(t *testing.T) {
	synth := mock.NewMockSynthesizer()
	synth.SynthesizeFunc = func(ctx context.Context, text, language string) ([]byte, error) {
		return []byte("<html>rate limited</html>"), nil
	}
	s, _ := newTestStage(t, synth)

	assert.Nil(t, s.Synthesize(context.Background(), "text", "en"))
}

func TestIsMP3(t *testing.T) {
	assert.True(t, isMP3([]byte{0xFF, 0xFB, 0x90, 0x00}))
	assert.True(t, isMP3([]byte("ID3\x04\x00")))
	assert.False(t, isMP3([]byte("OggS")))
	assert.False(t, isMP3([]byte{0xFF}))
	assert.False(t, isMP3(nil))
}

func TestSynthesisLanguage(t *testing.T) {
	assert.Equal(t, "ta", SynthesisLanguage("ta"))
	assert.Equal(t, "en", SynthesisLanguage("sd"))
	assert.Equal(t, "en", SynthesisLanguage(""))
}

func TestNewStage_Validation(t *testing.T) {
	store, err := fsblob.NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = NewStage(nil, store)
	assert.True(t, errors.Is(err, ErrSynthesizerRequired))

	_, err = NewStage(mock.NewMockSynthesizer(), nil)
	assert.True(t, errors.Is(err, ErrArtifactStoreRequired))
}
