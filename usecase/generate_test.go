package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainGenerate "github.com/voicebook/voicebook/domains/generate"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

type stubSpeechClient struct {
	audio []byte
	err   error
	calls int
}

func (s *stubSpeechClient) Synthesize(_ context.Context, _ domainGenerate.GenerationRequest) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.audio, nil
}

func TestGenerateMissThenHit(t *testing.T) {
	ctx := context.Background()
	speech := &stubSpeechClient{audio: []byte("fake mp3 payload")}
	svc := NewGenerateService(speech, newTestCache(t), nil)

	request := domainGenerate.GenerationRequest{
		Text:    "Hello world",
		Voice:   domainGenerate.VoiceNova,
		Speed:   1.0,
		Quality: domainGenerate.QualityStandard,
	}

	first, err := svc.Generate(ctx, request)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 11, first.CharacterCount)
	assert.Equal(t, 0.0002, first.Cost)
	assert.NotEmpty(t, first.AudioPath)
	assert.Equal(t, 1, speech.calls)

	second, err := svc.Generate(ctx, request)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 0.0, second.Cost)
	assert.Equal(t, first.CacheKey, second.CacheKey)
	assert.Equal(t, 1, speech.calls, "cache hit must not call the API")
}

func TestGenerateValidationBeforeAnySideEffect(t *testing.T) {
	ctx := context.Background()
	speech := &stubSpeechClient{audio: []byte("audio")}
	cache := newTestCache(t)
	svc := NewGenerateService(speech, cache, nil)

	tests := []struct {
		name    string
		request domainGenerate.GenerationRequest
	}{
		{"empty text", domainGenerate.GenerationRequest{Text: "   ", Voice: "nova", Speed: 1.0, Quality: "standard"}},
		{"bad voice", domainGenerate.GenerationRequest{Text: "hello", Voice: "robot", Speed: 1.0, Quality: "standard"}},
		{"speed too low", domainGenerate.GenerationRequest{Text: "hello", Voice: "nova", Speed: 0.1, Quality: "standard"}},
		{"speed too high", domainGenerate.GenerationRequest{Text: "hello", Voice: "nova", Speed: 5.0, Quality: "standard"}},
		{"bad quality", domainGenerate.GenerationRequest{Text: "hello", Voice: "nova", Speed: 1.0, Quality: "ultra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(ctx, tc.request)
			require.Error(t, err)
			assert.IsType(t, pkgError.ValidationError(""), err)
		})
	}

	assert.Equal(t, 0, speech.calls, "rejected requests must not reach the API")

	stats, err := cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.FileCount, "rejected requests must not touch the cache")
}

func TestGenerateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	speech := &stubSpeechClient{audio: []byte("audio")}
	svc := NewGenerateService(speech, newTestCache(t), nil)

	response, err := svc.Generate(ctx, domainGenerate.GenerationRequest{Text: "hello"})
	require.NoError(t, err)
	assert.False(t, response.FromCache)
	assert.Equal(t, 1, speech.calls)
}

func TestGenerateFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	speech := &stubSpeechClient{err: pkgError.GenerationError("upstream unavailable")}
	cache := newTestCache(t)
	svc := NewGenerateService(speech, cache, nil)

	_, err := svc.Generate(ctx, domainGenerate.GenerationRequest{
		Text: "hello", Voice: "nova", Speed: 1.0, Quality: "standard",
	})
	require.Error(t, err)
	assert.IsType(t, pkgError.GenerationError(""), err)

	stats, err := cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.FileCount)
}

func TestEstimate(t *testing.T) {
	ctx := context.Background()
	svc := NewGenerateService(&stubSpeechClient{}, newTestCache(t), nil)

	t.Run("from text", func(t *testing.T) {
		response, err := svc.Estimate(ctx, domainGenerate.EstimateRequest{
			Text: "Hello world", Quality: domainGenerate.QualityStandard,
		})
		require.NoError(t, err)
		assert.Equal(t, 11, response.CharacterCount)
		assert.Equal(t, 0.0002, response.Cost)
	})

	t.Run("from character count", func(t *testing.T) {
		response, err := svc.Estimate(ctx, domainGenerate.EstimateRequest{
			CharacterCount: 1000000, Quality: domainGenerate.QualityHD,
		})
		require.NoError(t, err)
		assert.Equal(t, 30.0, response.Cost)
		assert.NotEmpty(t, response.Warning)
	})

	t.Run("text overrides character count", func(t *testing.T) {
		response, err := svc.Estimate(ctx, domainGenerate.EstimateRequest{
			Text: "Hello world", CharacterCount: 999, Quality: domainGenerate.QualityStandard,
		})
		require.NoError(t, err)
		assert.Equal(t, 11, response.CharacterCount)
	})
}

func TestListVoices(t *testing.T) {
	svc := NewGenerateService(&stubSpeechClient{}, newTestCache(t), nil)

	voices := svc.ListVoices(context.Background())
	require.Len(t, voices, 6)
	assert.Equal(t, "alloy", voices[0].Name)
	for _, v := range voices {
		assert.NotEmpty(t, v.Description)
	}
}
