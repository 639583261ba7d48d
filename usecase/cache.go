package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	domainCache "github.com/voicebook/voicebook/domains/cache"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

const (
	artifactExt  = ".mp3"
	metadataFile = "metadata.json"
)

// metadataIndex is the single persisted index document: per-key entry
// metadata plus the global hit counter.
type metadataIndex struct {
	CacheHits int64                                 `json:"cache_hits"`
	Files     map[string]domainCache.EntryMetadata `json:"files"`
}

type cacheService struct {
	dir string

	// Serializes index read-modify-write cycles within this process. The
	// index file itself has no cross-process locking; last writer wins.
	mu sync.Mutex
}

func NewCacheService(dir string) domainCache.ICacheUsecase {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.WithError(err).Errorf("[CACHE] Failed to create cache directory %s", dir)
	}
	return &cacheService{dir: dir}
}

// ComputeKey hashes the exact parameter bytes with an unambiguous delimiter.
// Speed uses the shortest round-trip float form so 1.0 and 1.00 collapse to
// the same key input.
func (s *cacheService) ComputeKey(text, voice string, speed float64, quality string) string {
	speedStr := strconv.FormatFloat(speed, 'f', -1, 64)
	data := fmt.Sprintf("%s|%s|%s|%s", text, voice, speedStr, quality)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func (s *cacheService) artifactPath(key string) string {
	return filepath.Join(s.dir, key+artifactExt)
}

func (s *cacheService) ArtifactPath(key string) (string, bool) {
	path := s.artifactPath(key)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (s *cacheService) Lookup(ctx context.Context, key string) (string, bool) {
	path := s.artifactPath(key)
	if _, err := os.Stat(path); err != nil {
		// The file on disk is authoritative; a stale index entry is still
		// a miss.
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.loadIndex()
	index.CacheHits++
	if err := s.saveIndex(index); err != nil {
		// Losing a hit-counter update is not worth failing the lookup.
		logrus.WithError(err).Warn("[CACHE] Failed to persist hit counter")
	}

	return path, true
}

func (s *cacheService) Store(ctx context.Context, key string, audio []byte, metadata domainCache.EntryMetadata) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", pkgError.CacheIOError("failed to create cache directory: " + err.Error())
	}

	path := s.artifactPath(key)
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", pkgError.CacheIOError("failed to write audio artifact: " + err.Error())
	}

	metadata.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.loadIndex()
	index.Files[key] = metadata
	if err := s.saveIndex(index); err != nil {
		// The artifact is on disk and lookups only trust the file, so a
		// failed index write degrades stats, not correctness.
		return path, pkgError.CacheIOError("audio stored but index update failed: " + err.Error())
	}

	return path, nil
}

func (s *cacheService) ClearAll(ctx context.Context) (int, error) {
	removed := 0

	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+artifactExt))
	if err != nil {
		return 0, pkgError.CacheIOError("failed to scan cache directory: " + err.Error())
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			logrus.WithError(err).Warnf("[CACHE] Failed to remove %s", match)
			continue
		}
		removed++
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveIndex(&metadataIndex{Files: map[string]domainCache.EntryMetadata{}}); err != nil {
		return removed, pkgError.CacheIOError("failed to reset metadata index: " + err.Error())
	}

	logrus.Infof("[CACHE] Cleared %d cached artifacts", removed)
	return removed, nil
}

func (s *cacheService) Stats(ctx context.Context) (domainCache.CacheStats, error) {
	var (
		fileCount int
		totalSize int64
	)

	// File count and size come from a live scan; the index may be stale.
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+artifactExt))
	if err != nil {
		return domainCache.CacheStats{}, pkgError.CacheIOError("failed to scan cache directory: " + err.Error())
	}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		fileCount++
		totalSize += info.Size()
	}

	s.mu.Lock()
	index := s.loadIndex()
	s.mu.Unlock()

	return domainCache.CacheStats{
		FileCount: fileCount,
		TotalSize: totalSize,
		HumanSize: humanize.Bytes(uint64(totalSize)),
		HitCount:  index.CacheHits,
	}, nil
}

// loadIndex reads the metadata document. A missing or corrupt file yields an
// empty index; the store self-heals instead of failing reads.
func (s *cacheService) loadIndex() *metadataIndex {
	index := &metadataIndex{Files: map[string]domainCache.EntryMetadata{}}

	data, err := os.ReadFile(filepath.Join(s.dir, metadataFile))
	if err != nil {
		return index
	}
	if err := json.Unmarshal(data, index); err != nil {
		logrus.WithError(err).Warn("[CACHE] Corrupt metadata index, starting empty")
		return &metadataIndex{Files: map[string]domainCache.EntryMetadata{}}
	}
	if index.Files == nil {
		index.Files = map[string]domainCache.EntryMetadata{}
	}

	// Drop entries whose artifact vanished so stats stay honest.
	for key := range index.Files {
		if _, err := os.Stat(s.artifactPath(key)); err != nil {
			delete(index.Files, key)
		}
	}

	return index
}

func (s *cacheService) saveIndex(index *metadataIndex) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, metadataFile), data, 0644)
}
