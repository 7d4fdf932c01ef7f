// Package learning records interactions, derives usage summaries, and
// runs the periodic adaptation sweep.
package learning

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"jarvis/internal/domain"
)

// InteractionStore persists interaction records in a SQLite database
// under ~/.jarvis/data/interactions.db, bounded FIFO at maxRecords and
// pruned of entries older than retainDays by the sweep.
type InteractionStore struct {
	db         *sql.DB
	path       string
	mu         sync.Mutex
	maxRecords int
	retainDays int
}

// NewInteractionStore creates (or opens) the interaction database.
func NewInteractionStore(dataDir string, maxRecords, retainDays int) (*InteractionStore, error) {
	path := filepath.Join(dataDir, "interactions.db")
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &InteractionStore{db: db, path: path, maxRecords: maxRecords, retainDays: retainDays}
	if err := store.init(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *InteractionStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS interactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		command TEXT,
		response_text TEXT,
		success INTEGER,
		system_result TEXT,
		hardware_result TEXT,
		feedback TEXT,
		language TEXT,
		hour INTEGER,
		day_of_week INTEGER,
		session_length INTEGER
	);`)
	return err
}

// Save appends a record, evicting the oldest rows beyond the FIFO cap.
func (s *InteractionStore) Save(rec domain.InteractionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO interactions
		(timestamp, command, response_text, success, system_result, hardware_result, feedback, language, hour, day_of_week, session_length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Format(domain.TimestampFormat),
		rec.Command,
		rec.Response.Text,
		boolToInt(rec.Response.Success),
		rec.Response.SystemResult,
		rec.Response.HardwareResult,
		rec.Feedback,
		string(rec.Language),
		rec.Hour,
		rec.DayOfWeek,
		rec.SessionLength,
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`DELETE FROM interactions WHERE id <= (
		SELECT id FROM interactions ORDER BY id DESC LIMIT 1 OFFSET ?
	)`, s.maxRecords)
	return err
}

// Recent returns up to limit records, newest first.
func (s *InteractionStore) Recent(limit int) ([]domain.InteractionRecord, error) {
	rows, err := s.db.Query(`SELECT timestamp, command, response_text, success, system_result, hardware_result, feedback, language, hour, day_of_week, session_length
		FROM interactions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.InteractionRecord
	for rows.Next() {
		var rec domain.InteractionRecord
		var ts, lang string
		var success int
		if err := rows.Scan(&ts, &rec.Command, &rec.Response.Text, &success,
			&rec.Response.SystemResult, &rec.Response.HardwareResult, &rec.Feedback,
			&lang, &rec.Hour, &rec.DayOfWeek, &rec.SessionLength); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Response.Success = success == 1
		rec.Language = domain.Language(lang)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the total number of stored records.
func (s *InteractionStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM interactions`).Scan(&count)
	return count, err
}

// CountSince returns how many records were stored after the cutoff.
func (s *InteractionStore) CountSince(cutoff time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM interactions WHERE datetime(timestamp) > datetime(?)`,
		cutoff.Format(domain.TimestampFormat)).Scan(&count)
	return count, err
}

// PruneOlderThan removes entries older than the given number of days.
func (s *InteractionStore) PruneOlderThan(days int) error {
	if days <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM interactions WHERE datetime(timestamp) < datetime('now', ?)`,
		fmt.Sprintf("-%d days", days))
	return err
}

// Clear removes every record. Only an explicit user action does this.
func (s *InteractionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM interactions`)
	return err
}

// Close releases the database handle.
func (s *InteractionStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
