package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	AppVersion             = "v1.0.0"
	AppPort                = "3000"
	AppDebug               = false
	AppBasicAuthCredential []string
	AppBasePath            = ""

	PathStorages = "storages"
	PathCache    = "storages/cache"
	PathUploads  = "storages/uploads"

	DBDriver   = "sqlite"
	DBName     = "storages/voicebook.db"
	DBHost     = "localhost"
	DBPort     = 5432
	DBUser     = ""
	DBPassword = ""

	OpenAIAPIKey string

	DefaultVoice           = "nova"
	DefaultSpeed           = 1.0
	DefaultQuality         = "standard"
	MaxTextLength          = 500000
	MaxUploadSizeMB  int64 = 50
	CostWarningThreshold   = 2.00

	// Text cleaner pass toggles.
	CleanStripPageNumbers    = true
	CleanStripURLs           = true
	CleanNormalizeBullets    = true
	CleanNormalizeQuotes     = true
	CleanNormalizeWhitespace = true
)

func init() {
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		OpenAIAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("CACHE_DIRECTORY")); v != "" {
		PathCache = v
	}
	if v := strings.TrimSpace(os.Getenv("DEFAULT_VOICE")); v != "" {
		DefaultVoice = v
	}
	if v := strings.TrimSpace(os.Getenv("DEFAULT_SPEED")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			DefaultSpeed = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("DEFAULT_QUALITY")); v != "" {
		DefaultQuality = v
	}
	if v := strings.TrimSpace(os.Getenv("MAX_TEXT_LENGTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			MaxTextLength = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("MAX_UPLOAD_SIZE_MB")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			MaxUploadSizeMB = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("COST_WARNING_THRESHOLD")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			CostWarningThreshold = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("CLEAN_STRIP_PAGE_NUMBERS")); v != "" {
		CleanStripPageNumbers = parseBool(v, CleanStripPageNumbers)
	}
	if v := strings.TrimSpace(os.Getenv("CLEAN_STRIP_URLS")); v != "" {
		CleanStripURLs = parseBool(v, CleanStripURLs)
	}
	if v := strings.TrimSpace(os.Getenv("CLEAN_NORMALIZE_BULLETS")); v != "" {
		CleanNormalizeBullets = parseBool(v, CleanNormalizeBullets)
	}
	if v := strings.TrimSpace(os.Getenv("CLEAN_NORMALIZE_QUOTES")); v != "" {
		CleanNormalizeQuotes = parseBool(v, CleanNormalizeQuotes)
	}
	if v := strings.TrimSpace(os.Getenv("CLEAN_NORMALIZE_WHITESPACE")); v != "" {
		CleanNormalizeWhitespace = parseBool(v, CleanNormalizeWhitespace)
	}
}

func parseBool(v string, fallback bool) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return fallback
}
