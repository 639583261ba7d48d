package usecase

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/voicebook/voicebook/config"
	domainCache "github.com/voicebook/voicebook/domains/cache"
	domainGenerate "github.com/voicebook/voicebook/domains/generate"
	domainHistory "github.com/voicebook/voicebook/domains/history"
	"github.com/voicebook/voicebook/pkg/cost"
	"github.com/voicebook/voicebook/validations"
)

type generateService struct {
	speech  domainGenerate.SpeechClient
	cache   domainCache.ICacheUsecase
	history domainHistory.IHistoryUsecase
}

// NewGenerateService wires the orchestrator. This service is the only
// component allowed to decide whether the external API gets called.
// history may be nil; generations then simply go unrecorded.
func NewGenerateService(speech domainGenerate.SpeechClient, cacheUsecase domainCache.ICacheUsecase, historyUsecase domainHistory.IHistoryUsecase) domainGenerate.IGenerateUsecase {
	return &generateService{
		speech:  speech,
		cache:   cacheUsecase,
		history: historyUsecase,
	}
}

func (s *generateService) Generate(ctx context.Context, request domainGenerate.GenerationRequest) (domainGenerate.GenerateResponse, error) {
	request = applyDefaults(request)

	// Validation runs before any cache or API interaction.
	if err := validations.ValidateGenerationRequest(ctx, request); err != nil {
		return domainGenerate.GenerateResponse{}, err
	}

	charCount := utf8.RuneCountInString(request.Text)
	key := s.cache.ComputeKey(request.Text, string(request.Voice), request.Speed, string(request.Quality))

	if path, ok := s.cache.Lookup(ctx, key); ok {
		logrus.Debugf("[GENERATE] Cache hit for key %s", key)
		response := domainGenerate.GenerateResponse{
			AudioPath:      path,
			CacheKey:       key,
			FromCache:      true,
			CharacterCount: charCount,
			Cost:           0,
			CostDisplay:    cost.FormatForDisplay(0),
		}
		s.record(ctx, request, charCount, 0, true)
		return response, nil
	}

	audio, err := s.speech.Synthesize(ctx, request)
	if err != nil {
		// The cache stays untouched on generation failure.
		return domainGenerate.GenerateResponse{}, err
	}

	// Cost always derives from the request's character count and tier,
	// independent of upstream billing.
	amount := cost.EstimateCost(charCount, string(request.Quality))

	response := domainGenerate.GenerateResponse{
		CacheKey:       key,
		CharacterCount: charCount,
		Cost:           amount,
		CostDisplay:    cost.FormatForDisplay(amount),
		CostWarning:    cost.WarningMessage(amount, config.CostWarningThreshold),
	}

	path, err := s.cache.Store(ctx, key, audio, domainCache.EntryMetadata{
		Voice:          string(request.Voice),
		Speed:          request.Speed,
		Quality:        string(request.Quality),
		CharacterCount: charCount,
		Cost:           amount,
	})
	if err != nil {
		// Generation succeeded and was billed; hand the audio back even
		// though it may not be durably cached.
		logrus.WithError(err).Error("[GENERATE] Failed to cache generated audio")
		response.CacheWarning = "generation succeeded but caching failed: " + err.Error()
		if path == "" {
			path = s.salvageAudio(key, audio)
		}
	}
	response.AudioPath = path

	s.record(ctx, request, charCount, amount, false)
	logrus.Infof("[GENERATE] Synthesized %d characters (%s, %s) for %s",
		charCount, request.Voice, request.Quality, response.CostDisplay)

	return response, nil
}

func (s *generateService) Estimate(ctx context.Context, request domainGenerate.EstimateRequest) (domainGenerate.EstimateResponse, error) {
	if request.Quality == "" {
		request.Quality = domainGenerate.Quality(config.DefaultQuality)
	}
	if err := validations.ValidateEstimateRequest(ctx, request); err != nil {
		return domainGenerate.EstimateResponse{}, err
	}

	charCount := request.CharacterCount
	if request.Text != "" {
		charCount = utf8.RuneCountInString(request.Text)
	}

	amount := cost.EstimateCost(charCount, string(request.Quality))
	return domainGenerate.EstimateResponse{
		CharacterCount: charCount,
		Quality:        request.Quality,
		Cost:           amount,
		CostDisplay:    cost.FormatForDisplay(amount),
		Warning:        cost.WarningMessage(amount, config.CostWarningThreshold),
	}, nil
}

func (s *generateService) ListVoices(ctx context.Context) []domainGenerate.VoiceInfo {
	infos := make([]domainGenerate.VoiceInfo, 0, len(domainGenerate.Voices))
	for _, voice := range domainGenerate.Voices {
		infos = append(infos, domainGenerate.VoiceInfo{
			Name:        string(voice),
			Description: voice.Description(),
		})
	}
	return infos
}

func applyDefaults(request domainGenerate.GenerationRequest) domainGenerate.GenerationRequest {
	if request.Voice == "" {
		request.Voice = domainGenerate.Voice(config.DefaultVoice)
	}
	if request.Speed == 0 {
		request.Speed = config.DefaultSpeed
	}
	if request.Quality == "" {
		request.Quality = domainGenerate.Quality(config.DefaultQuality)
	}
	return request
}

func (s *generateService) record(ctx context.Context, request domainGenerate.GenerationRequest, charCount int, amount float64, fromCache bool) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Record(ctx, domainHistory.Entry{
		Voice:          string(request.Voice),
		Speed:          request.Speed,
		Quality:        string(request.Quality),
		CharacterCount: charCount,
		Cost:           amount,
		FromCache:      fromCache,
	}); err != nil {
		logrus.WithError(err).Warn("[GENERATE] Failed to record history entry")
	}
}

// salvageAudio parks the generated bytes outside the cache so a failed store
// does not throw away a billed generation.
func (s *generateService) salvageAudio(key string, audio []byte) string {
	path := filepath.Join(os.TempDir(), key+".mp3")
	if err := os.WriteFile(path, audio, 0644); err != nil {
		logrus.WithError(err).Error("[GENERATE] Failed to salvage generated audio")
		return ""
	}
	return path
}
