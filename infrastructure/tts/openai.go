// Package tts adapts the OpenAI speech API to the generate.SpeechClient
// boundary.
package tts

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"

	domainGenerate "github.com/voicebook/voicebook/domains/generate"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

// OpenAIClient synthesizes speech with the tts-1 / tts-1-hd models.
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient builds the client. A missing or malformed credential is a
// startup error, never a per-call one.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if !strings.HasPrefix(apiKey, "sk-") {
		return nil, errors.New("OPENAI_API_KEY is malformed: expected an sk- prefixed key")
	}
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

func (c *OpenAIClient) Synthesize(ctx context.Context, request domainGenerate.GenerationRequest) ([]byte, error) {
	model := openai.SpeechModelTTS1
	if request.Quality == domainGenerate.QualityHD {
		model = openai.SpeechModelTTS1HD
	}

	res, err := c.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          model,
		Input:          request.Text,
		Voice:          openai.AudioSpeechNewParamsVoice(request.Voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		Speed:          openai.Float(request.Speed),
	})
	if err != nil {
		logrus.WithError(err).Error("[TTS] OpenAI speech request failed")
		return nil, pkgError.GenerationError("openai tts request failed: " + err.Error())
	}
	defer res.Body.Close()

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, pkgError.GenerationError("failed to read audio response: " + err.Error())
	}
	if len(audio) == 0 {
		return nil, pkgError.GenerationError("openai tts returned an empty audio payload")
	}

	return audio, nil
}
