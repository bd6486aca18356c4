package language

import (
	"context"
	"errors"
	"testing"

	"github.com/mGaurav-dev/SIH-25/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStage(t *testing.T, tr *mock.MockTranslator) *Stage {
	t.Helper()
	s, err := NewStage(tr, tr)
	require.NoError(t, err)
	return s
}

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"plain english", "when should I sow wheat this year", true},
		{"devanagari", "गेहूं कब बोना चाहिए इस साल में अभी", false},
		{"tamil", "கோதுமை எப்போது விதைக்க வேண்டும் என்று சொல்லுங்கள்", false},
		{"mostly ascii numbers", "50 kg urea per acre", true},
		{"mixed with english function words", "गेहूं when to sow and what is the best", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnglish(tt.text))
		})
	}
}

func TestDetectLanguage_EnglishSkipsDetector(t *testing.T) {
	tr := mock.NewMockTranslator()
	s := newTestStage(t, tr)

	got := s.DetectLanguage(context.Background(), "how much seed per acre")
	assert.Equal(t, "en", got)
	assert.Equal(t, 0, tr.DetectCallCount())
}

func TestDetectLanguage_NonEnglishUsesDetector(t *testing.T) {
	tr := mock.NewMockTranslator()
	tr.DetectFunc = func(ctx context.Context, text string) (string, error) {
		return "hi", nil
	}
	s := newTestStage(t, tr)

	got := s.DetectLanguage(context.Background(), "गेहूं कब बोना चाहिए बताइए मुझे जल्दी")
	assert.Equal(t, "hi", got)
	assert.Equal(t, 1, tr.DetectCallCount())
}

func TestDetectLanguage_FailureFallsBackToEnglish(t *testing.T) {
	tr := mock.NewMockTranslator()
	tr.DetectFunc = func(ctx context.Context, text string) (string, error) {
		return "", errors.New("service down")
	}
	s := newTestStage(t, tr)

	got := s.DetectLanguage(context.Background(), "गेहूं कब बोना चाहिए बताइए मुझे जल्दी")
	assert.Equal(t, "en", got)
}

func TestToWorkingLanguage_EnglishPassThrough(t *testing.T) {
	tr := mock.NewMockTranslator()
	s := newTestStage(t, tr)

	got := s.ToWorkingLanguage(context.Background(), "already english", "en")
	assert.Equal(t, "already english", got)
	assert.Equal(t, 0, tr.TranslateCallCount())
}

func TestToWorkingLanguage_Translates(t *testing.T) {
	tr := mock.NewMockTranslator()
	tr.TranslateFunc = func(ctx context.Context, text, source, target string) (string, error) {
		assert.Equal(t, "hi", source)
		assert.Equal(t, "en", target)
		return "when to sow wheat", nil
	}
	s := newTestStage(t, tr)

	got := s.ToWorkingLanguage(context.Background(), "गेहूं कब बोएं", "hi")
	assert.Equal(t, "when to sow wheat", got)
}

func TestToWorkingLanguage_FailureReturnsOriginal(t *testing.T) {
	tr := mock.NewMockTranslator()
	tr.TranslateFunc = func(ctx context.Context, text, source, target string) (string, error) {
		return "", errors.New("service down")
	}
	s := newTestStage(t, tr)

	got := s.ToWorkingLanguage(context.Background(), "गेहूं कब बोएं", "hi")
	assert.Equal(t, "गेहूं कब बोएं", got)
}

func TestFromWorkingLanguage_EnglishPassThrough(t *testing.T) {
	tr := mock.NewMockTranslator()
	s := newTestStage(t, tr)

	got := s.FromWorkingLanguage(context.Background(), "sow in november", "en")
	assert.Equal(t, "sow in november", got)
	assert.Equal(t, 0, tr.TranslateCallCount())
}

func TestFromWorkingLanguage_FailureReturnsEnglish(t *testing.T) {
	tr := mock.NewMockTranslator()
	tr.TranslateFunc = func(ctx context.Context, text, source, target string) (string, error) {
		return "", errors.New("service down")
	}
	s := newTestStage(t, tr)

	got := s.FromWorkingLanguage(context.Background(), "sow in november", "hi")
	assert.Equal(t, "sow in november", got)
}

func TestLanguageTables(t *testing.T) {
	assert.Equal(t, "hi", Code("hindi"))
	assert.Equal(t, "hindi", Name("hi"))
	assert.Equal(t, "unknown", Name("xx"))
	assert.True(t, IsSupported("ta"))
	assert.False(t, IsSupported("fr"))
}

func TestNewStage_Validation(t *testing.T) {
	tr := mock.NewMockTranslator()

	_, err := NewStage(nil, tr)
	assert.True(t, errors.Is(err, ErrDetectorRequired))

	_, err = NewStage(tr, nil)
	assert.True(t, errors.Is(err, ErrTranslatorRequired))
}
