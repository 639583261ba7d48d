package generate

import "context"

type Voice string

const (
	VoiceAlloy   Voice = "alloy"
	VoiceEcho    Voice = "echo"
	VoiceFable   Voice = "fable"
	VoiceOnyx    Voice = "onyx"
	VoiceNova    Voice = "nova"
	VoiceShimmer Voice = "shimmer"
)

// Voices lists every supported voice in UI order.
var Voices = []Voice{VoiceAlloy, VoiceEcho, VoiceFable, VoiceOnyx, VoiceNova, VoiceShimmer}

var voiceDescriptions = map[Voice]string{
	VoiceAlloy:   "Neutral and balanced (suitable for any content)",
	VoiceEcho:    "Clear and articulate (great for technical content)",
	VoiceFable:   "Warm and expressive (storytelling)",
	VoiceOnyx:    "Deep and authoritative (formal documents)",
	VoiceNova:    "Friendly and conversational (recommended default)",
	VoiceShimmer: "Smooth and professional (business content)",
}

func (v Voice) Valid() bool {
	_, ok := voiceDescriptions[v]
	return ok
}

func (v Voice) Description() string {
	return voiceDescriptions[v]
}

type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

func (q Quality) Valid() bool {
	return q == QualityStandard || q == QualityHD
}

const (
	SpeedMin = 0.25
	SpeedMax = 4.0
)

// GenerationRequest holds the full set of parameters that identify one audio
// generation. Two requests with equal fields map to the same cache key.
type GenerationRequest struct {
	Text    string  `json:"text"`
	Voice   Voice   `json:"voice"`
	Speed   float64 `json:"speed"`
	Quality Quality `json:"quality"`
}

// GenerateResponse is the explicit per-call result the UI holds onto; there
// is no implicit shared state between render passes.
type GenerateResponse struct {
	AudioPath      string  `json:"audio_path"`
	CacheKey       string  `json:"cache_key"`
	FromCache      bool    `json:"from_cache"`
	CharacterCount int     `json:"character_count"`
	Cost           float64 `json:"cost"`
	CostDisplay    string  `json:"cost_display"`
	CostWarning    string  `json:"cost_warning,omitempty"`
	CacheWarning   string  `json:"cache_warning,omitempty"`
}

type EstimateRequest struct {
	Text           string  `json:"text"`
	CharacterCount int     `json:"character_count"`
	Quality        Quality `json:"quality"`
}

type EstimateResponse struct {
	CharacterCount int     `json:"character_count"`
	Quality        Quality `json:"quality"`
	Cost           float64 `json:"cost"`
	CostDisplay    string  `json:"cost_display"`
	Warning        string  `json:"warning,omitempty"`
}

type VoiceInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SpeechClient is the boundary to the external synthesis API. It is only
// invoked on a cache miss.
type SpeechClient interface {
	Synthesize(ctx context.Context, request GenerationRequest) ([]byte, error)
}

type IGenerateUsecase interface {
	Generate(ctx context.Context, request GenerationRequest) (GenerateResponse, error)
	Estimate(ctx context.Context, request EstimateRequest) (EstimateResponse, error)
	ListVoices(ctx context.Context) []VoiceInfo
}
