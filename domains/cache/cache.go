package cache

import (
	"context"
	"time"
)

// EntryMetadata describes one cached artifact. Entries are created on a
// cache miss and never mutated afterwards.
type EntryMetadata struct {
	Voice          string    `json:"voice"`
	Speed          float64   `json:"speed"`
	Quality        string    `json:"quality"`
	CharacterCount int       `json:"character_count"`
	Cost           float64   `json:"cost"`
	CreatedAt      time.Time `json:"created_at"`
}

type CacheStats struct {
	FileCount int    `json:"file_count"`
	TotalSize int64  `json:"total_size"`
	HumanSize string `json:"human_size"`
	HitCount  int64  `json:"hit_count"`
}

type ICacheUsecase interface {
	// ComputeKey derives the deterministic fingerprint for a parameter set.
	ComputeKey(text, voice string, speed float64, quality string) string
	// Lookup returns the artifact path iff the audio file exists on disk,
	// regardless of index state. A hit increments the persisted hit counter.
	Lookup(ctx context.Context, key string) (string, bool)
	// ArtifactPath resolves a key to its on-disk path without counting a hit.
	ArtifactPath(key string) (string, bool)
	Store(ctx context.Context, key string, audio []byte, metadata EntryMetadata) (string, error)
	// ClearAll removes every artifact and resets the index. Returns the
	// number of files actually removed.
	ClearAll(ctx context.Context) (int, error)
	Stats(ctx context.Context) (CacheStats, error)
}
