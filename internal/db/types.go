package db

import (
	"time"

	"benchdash/internal/perf"
)

// Store is the persistent home of perf reports.
type Store interface {
	Close() error
	SaveReport(project string, payload perf.Payload) error
	LatestPayload(project, kind string) (*perf.Payload, error)
	ListReports(project string, limit int) ([]Report, error)
}

// Report is one stored perf report row, without its payload.
type Report struct {
	ID        int64     `json:"id"`
	Project   string    `json:"project"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
