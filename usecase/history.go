package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainHistory "github.com/voicebook/voicebook/domains/history"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

type historyService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) (domainHistory.IHistoryUsecase, error) {
	if err := db.AutoMigrate(&domainHistory.Entry{}); err != nil {
		return nil, err
	}
	return &historyService{db: db}, nil
}

func (s *historyService) Record(ctx context.Context, entry domainHistory.Entry) (domainHistory.Entry, error) {
	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return domainHistory.Entry{}, pkgError.InternalServerError("failed to record history entry: " + err.Error())
	}
	return entry, nil
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]domainHistory.Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []domainHistory.Entry
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, pkgError.InternalServerError("failed to load history: " + err.Error())
	}
	return entries, nil
}

func (s *historyService) TotalSpent(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&domainHistory.Entry{}).
		Where("from_cache = ?", false).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, pkgError.InternalServerError("failed to sum history costs: " + err.Error())
	}
	return total, nil
}
