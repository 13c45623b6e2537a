// Package sqlite provides a SQLite-backed run history.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"lifesim/internal/history"
	"lifesim/internal/history/sqlite/migrations"
	"lifesim/internal/storage/sqlitemigrate"
)

// Store persists run records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ history.Store = (*Store)(nil)

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// Open opens the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Add(ctx context.Context, r history.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("record id is required")
	}
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	payload, err := json.Marshal(r.Summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT OR IGNORE INTO run_records (id, created_at, age, ending_id, seed, summary_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, toMillis(createdAt), r.Age, r.EndingID, r.Seed, string(payload),
	)
	if err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return history.ErrAlreadyExists
	}
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]history.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, created_at, age, ending_id, seed, summary_json
		   FROM run_records
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []history.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (history.Record, error) {
	if err := ctx.Err(); err != nil {
		return history.Record{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, created_at, age, ending_id, seed, summary_json
		   FROM run_records
		  WHERE id = ?`,
		id,
	)
	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return history.Record{}, history.ErrNotFound
		}
		return history.Record{}, fmt.Errorf("get record: %w", err)
	}
	return r, nil
}

func (s *Store) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM run_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove record: %w", err)
	}
	if n == 0 {
		return history.ErrNotFound
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM run_records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (history.Record, error) {
	var (
		r         history.Record
		createdAt int64
		payload   string
	)
	if err := sc.Scan(&r.ID, &createdAt, &r.Age, &r.EndingID, &r.Seed, &payload); err != nil {
		return history.Record{}, err
	}
	r.CreatedAt = fromMillis(createdAt)
	if err := json.Unmarshal([]byte(payload), &r.Summary); err != nil {
		return history.Record{}, fmt.Errorf("decode summary %s: %w", r.ID, err)
	}
	return r, nil
}
