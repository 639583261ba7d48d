package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/voicebook/voicebook/config"
	domainHealth "github.com/voicebook/voicebook/domains/health"
)

type healthService struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) domainHealth.IHealthUsecase {
	return &healthService{db: db}
}

func (s *healthService) Check(ctx context.Context) (domainHealth.Report, error) {
	report := domainHealth.Report{
		Status:               domainHealth.StatusOk,
		Version:              config.AppVersion,
		CredentialConfigured: config.OpenAIAPIKey != "",
		CacheWritable:        cacheDirWritable(config.PathCache),
		DatabaseOk:           s.databaseOk(ctx),
		CheckedAt:            time.Now().UTC(),
	}

	if !report.CredentialConfigured || !report.CacheWritable || !report.DatabaseOk {
		report.Status = domainHealth.StatusError
	}

	return report, nil
}

func cacheDirWritable(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".write_probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}

func (s *healthService) databaseOk(ctx context.Context) bool {
	if s.db == nil {
		return false
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
