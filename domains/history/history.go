package history

import (
	"context"
	"time"
)

// Entry records one completed generation, cached or fresh.
type Entry struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Voice          string    `json:"voice"`
	Speed          float64   `json:"speed"`
	Quality        string    `json:"quality"`
	CharacterCount int       `json:"character_count"`
	Cost           float64   `json:"cost"`
	FromCache      bool      `json:"from_cache"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Entry) TableName() string {
	return "generation_history"
}

type IHistoryUsecase interface {
	Record(ctx context.Context, entry Entry) (Entry, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
	// TotalSpent sums the cost of fresh (non-cached) generations.
	TotalSpent(ctx context.Context) (float64, error)
}
