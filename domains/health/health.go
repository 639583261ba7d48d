package health

import (
	"context"
	"time"
)

type Status string

const (
	StatusOk    Status = "OK"
	StatusError Status = "ERROR"
)

type Report struct {
	Status               Status    `json:"status"`
	Version              string    `json:"version"`
	CredentialConfigured bool      `json:"credential_configured"`
	CacheWritable        bool      `json:"cache_writable"`
	DatabaseOk           bool      `json:"database_ok"`
	CheckedAt            time.Time `json:"checked_at"`
}

type IHealthUsecase interface {
	Check(ctx context.Context) (Report, error)
}
