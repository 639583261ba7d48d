package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainHistory "github.com/voicebook/voicebook/domains/history"
)

func newTestHistory(t *testing.T) domainHistory.IHistoryUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "history.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	svc, err := NewHistoryService(db)
	require.NoError(t, err)
	return svc
}

func TestHistoryRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t)

	for i := 0; i < 3; i++ {
		entry, err := svc.Record(ctx, domainHistory.Entry{
			Voice:          "nova",
			Speed:          1.0,
			Quality:        "standard",
			CharacterCount: 100 * (i + 1),
			Cost:           0.0015,
			CreatedAt:      time.Now().UTC().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
	}

	entries, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, 300, entries[0].CharacterCount)
	assert.Equal(t, 200, entries[1].CharacterCount)
}

func TestHistoryRecentDefaultLimit(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t)

	for i := 0; i < 25; i++ {
		_, err := svc.Record(ctx, domainHistory.Entry{Voice: "nova", Speed: 1.0, Quality: "standard"})
		require.NoError(t, err)
	}

	entries, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestHistoryTotalSpentExcludesCacheHits(t *testing.T) {
	ctx := context.Background()
	svc := newTestHistory(t)

	_, err := svc.Record(ctx, domainHistory.Entry{Voice: "nova", Speed: 1.0, Quality: "standard", Cost: 0.15})
	require.NoError(t, err)
	_, err = svc.Record(ctx, domainHistory.Entry{Voice: "nova", Speed: 1.0, Quality: "hd", Cost: 0.30})
	require.NoError(t, err)
	// Cache hits never add to the total, whatever their recorded cost.
	_, err = svc.Record(ctx, domainHistory.Entry{Voice: "nova", Speed: 1.0, Quality: "standard", Cost: 0, FromCache: true})
	require.NoError(t, err)

	total, err := svc.TotalSpent(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, total, 1e-9)
}

func TestHistoryTotalSpentEmpty(t *testing.T) {
	svc := newTestHistory(t)

	total, err := svc.TotalSpent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}
