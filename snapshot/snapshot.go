// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/survey-scope/aggregate"
)

var ErrNoSnapshots = errors.New("no snapshots recorded")

// Record is one saved capture of a survey's aggregated views.
type Record struct {
	ID        string
	SurveyID  int64
	ShortCode string
	TakenAt   time.Time
	Views     []aggregate.QuestionView
}

// Store persists aggregated views locally. Driver is "sqlite" (the
// default, file-backed) or "postgres". Timestamps are stored as
// RFC 3339 text so both drivers scan them identically.
type Store struct {
	db *sql.DB
}

// Open connects and ensures the schema exists.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported snapshot driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot store ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create snapshot schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes one snapshot row and returns its id.
func (s *Store) Save(surveyID int64, shortCode string, views []aggregate.QuestionView) (string, error) {
	payload, err := json.Marshal(views)
	if err != nil {
		return "", fmt.Errorf("encode snapshot payload: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO snapshot (id, survey_id, short_code, taken_at, payload)
		VALUES ($1, $2, $3, $4, $5)
	`, id, surveyID, shortCode, time.Now().UTC().Format(time.RFC3339Nano), string(payload))
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	return id, nil
}

// Latest returns the most recent snapshot for a survey.
func (s *Store) Latest(surveyID int64) (Record, error) {
	row := s.db.QueryRow(`
		SELECT id, survey_id, short_code, taken_at, payload
		FROM snapshot
		WHERE survey_id = $1
		ORDER BY taken_at DESC
		LIMIT 1
	`, surveyID)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, ErrNoSnapshots
	}
	if err != nil {
		return Record{}, fmt.Errorf("query latest snapshot: %w", err)
	}
	return rec, nil
}

// History returns a survey's snapshots, newest first.
func (s *Store) History(surveyID int64) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, survey_id, short_code, taken_at, payload
		FROM snapshot
		WHERE survey_id = $1
		ORDER BY taken_at DESC
	`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("query snapshot history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var takenAt, payload string
	if err := sc.Scan(&rec.ID, &rec.SurveyID, &rec.ShortCode, &takenAt, &payload); err != nil {
		return Record{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, takenAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse taken_at: %w", err)
	}
	rec.TakenAt = t

	if err := json.Unmarshal([]byte(payload), &rec.Views); err != nil {
		return Record{}, fmt.Errorf("decode snapshot payload: %w", err)
	}
	return rec, nil
}
