package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"cutline/internal/config"
	"cutline/internal/timeline"
)

// Store manages sequence persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// SequenceSummary is one row of a sequence listing.
type SequenceSummary struct {
	ID          string
	Name        string
	TrackCount  int
	ClipCount   int
	DurationSec float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Open initializes or connects to the project database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "project.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveSequence inserts or replaces a sequence snapshot.
func (s *Store) SaveSequence(ctx context.Context, seq *timeline.Sequence) error {
	if seq == nil {
		return errors.New("sequence is nil")
	}
	if seq.ID == "" {
		return errors.New("sequence id is empty")
	}

	payload, err := json.Marshal(seq)
	if err != nil {
		return fmt.Errorf("marshal sequence: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	created := seq.CreatedAt.UTC().Format(time.RFC3339Nano)

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO sequences (id, name, payload, track_count, clip_count, duration_sec, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             name = excluded.name,
             payload = excluded.payload,
             track_count = excluded.track_count,
             clip_count = excluded.clip_count,
             duration_sec = excluded.duration_sec,
             updated_at = excluded.updated_at`,
		seq.ID,
		seq.Name,
		string(payload),
		len(seq.Tracks),
		seq.ClipCount(),
		seq.Duration(),
		created,
		now,
	)
	if err != nil {
		return fmt.Errorf("save sequence: %w", err)
	}
	return nil
}

// GetSequence fetches a sequence snapshot by id. Absent ids yield (nil, nil).
func (s *Store) GetSequence(ctx context.Context, id string) (*timeline.Sequence, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM sequences WHERE id = ?`, id)
	return scanSequence(row)
}

// GetSequenceByName fetches the first sequence with the given name.
// Absent names yield (nil, nil).
func (s *Store) GetSequenceByName(ctx context.Context, name string) (*timeline.Sequence, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT payload FROM sequences WHERE name = ? ORDER BY created_at LIMIT 1`,
		name,
	)
	return scanSequence(row)
}

// ResolveSequence looks a sequence up by id first, then by name.
func (s *Store) ResolveSequence(ctx context.Context, ref string) (*timeline.Sequence, error) {
	seq, err := s.GetSequence(ctx, ref)
	if err != nil || seq != nil {
		return seq, err
	}
	return s.GetSequenceByName(ctx, ref)
}

// ListSequences returns sequence summaries ordered by creation time.
func (s *Store) ListSequences(ctx context.Context) ([]SequenceSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, track_count, clip_count, duration_sec, created_at, updated_at
         FROM sequences ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()

	var summaries []SequenceSummary
	for rows.Next() {
		var (
			summary    SequenceSummary
			createdRaw string
			updatedRaw string
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.TrackCount,
			&summary.ClipCount,
			&summary.DurationSec,
			&createdRaw,
			&updatedRaw,
		); err != nil {
			return nil, fmt.Errorf("scan sequence summary: %w", err)
		}
		if created, err := parseTimeString(createdRaw); err == nil {
			summary.CreatedAt = created
		}
		if updated, err := parseTimeString(updatedRaw); err == nil {
			summary.UpdatedAt = updated
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// DeleteSequence removes a sequence by id, reporting whether a row existed.
func (s *Store) DeleteSequence(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sequences WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete sequence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func scanSequence(row *sql.Row) (*timeline.Sequence, error) {
	var payload string
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sequence: %w", err)
	}

	var seq timeline.Sequence
	if err := json.Unmarshal([]byte(payload), &seq); err != nil {
		return nil, fmt.Errorf("unmarshal sequence payload: %w", err)
	}
	return &seq, nil
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	return time.Parse(time.RFC3339Nano, value)
}
