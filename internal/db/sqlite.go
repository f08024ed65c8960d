package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"benchdash/internal/perf"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		kind TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_reports_project_kind ON reports(project, kind);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveReport stores one perf report payload for a project.
func (s *SQLiteStore) SaveReport(project string, payload perf.Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `INSERT INTO reports (project, kind, payload, created_at) VALUES (?, ?, ?, ?)`
	_, err = s.db.Exec(query, project, string(perf.ParseKind(payload.Kind)), string(data), time.Now())
	return err
}

// LatestPayload returns the most recent payload for a project and
// kind, or nil when none has been stored.
func (s *SQLiteStore) LatestPayload(project, kind string) (*perf.Payload, error) {
	query := `SELECT payload FROM reports WHERE project = ? AND kind = ? ORDER BY created_at DESC, id DESC LIMIT 1`

	var raw string
	err := s.db.QueryRow(query, project, string(perf.ParseKind(kind))).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payload perf.Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return &payload, nil
}

// ListReports retrieves the most recent report rows for a project.
func (s *SQLiteStore) ListReports(project string, limit int) ([]Report, error) {
	query := `SELECT id, project, kind, created_at FROM reports WHERE project = ? ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, project, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.Project, &r.Kind, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
