package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pathpilot/pathpilot/internal/progress"
)

// ProgressRepo stores the single progress record as a JSON blob keyed by
// progress.StorageKey. It implements progress.RecordStore.
type ProgressRepo struct {
	db *sql.DB
}

var _ progress.RecordStore = (*ProgressRepo)(nil)

// Load reads the stored record. A missing row, unreadable JSON, or any
// query failure yields a fresh default record; the engine treats storage
// as best-effort and the in-memory record as authoritative.
func (r *ProgressRepo) Load() *progress.Record {
	var data string
	err := r.db.QueryRow(
		"SELECT data FROM progress WHERE key = ?", progress.StorageKey,
	).Scan(&data)
	if err != nil {
		return progress.NewRecord()
	}

	rec := progress.NewRecord()
	if err := json.Unmarshal([]byte(data), rec); err != nil {
		return progress.NewRecord()
	}
	return rec
}

// Save writes the whole record, replacing any previous row.
func (r *ProgressRepo) Save(rec *progress.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO progress (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, progress.StorageKey, string(data))
	if err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

// Reset deletes the stored record.
func (r *ProgressRepo) Reset() error {
	_, err := r.db.Exec("DELETE FROM progress WHERE key = ?", progress.StorageKey)
	if err != nil {
		return fmt.Errorf("reset progress record: %w", err)
	}
	return nil
}

// Exists reports whether a record row is present, without decoding it.
func (r *ProgressRepo) Exists() (bool, error) {
	var n int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM progress WHERE key = ?", progress.StorageKey,
	).Scan(&n)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	return n > 0, nil
}
