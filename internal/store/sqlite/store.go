// Package sqlite provides a SQLite-backed scenario store.
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

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/compoundpro/compound-calculator/internal/store"
	"github.com/compoundpro/compound-calculator/internal/store/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists scenarios in SQLite.
type Store struct {
	sqlDB *sql.DB
	opts  store.Options
}

var _ store.Repository = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite scenario store and applies embedded migrations.
func Open(path string, opts store.Options) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, opts: opts}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// Add inserts one scenario record.
func (s *Store) Add(ctx context.Context, name string, data domain.Configuration) (domain.SavedScenario, error) {
	if err := s.ready(ctx); err != nil {
		return domain.SavedScenario{}, err
	}
	record, err := s.opts.NewRecord(name, data)
	if err != nil {
		return domain.SavedScenario{}, err
	}
	payload, err := json.Marshal(record.Data)
	if err != nil {
		return domain.SavedScenario{}, fmt.Errorf("encode scenario data: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO scenarios (id, name, created_at, data) VALUES (?, ?, ?, ?)`,
		record.ID,
		record.Name,
		toMillis(record.Date),
		string(payload),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.SavedScenario{}, fmt.Errorf("%w: %s", store.ErrAlreadyExists, record.ID)
		}
		return domain.SavedScenario{}, fmt.Errorf("add scenario: %w", err)
	}
	return record, nil
}

// Get returns one scenario by id.
func (s *Store) Get(ctx context.Context, id string) (domain.SavedScenario, error) {
	if err := s.ready(ctx); err != nil {
		return domain.SavedScenario{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.SavedScenario{}, store.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, created_at, data FROM scenarios WHERE id = ?`, id)
	sc, err := scanScenario(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SavedScenario{}, store.ErrNotFound
		}
		return domain.SavedScenario{}, fmt.Errorf("get scenario: %w", err)
	}
	return sc, nil
}

// List returns every scenario, oldest first.
func (s *Store) List(ctx context.Context) ([]domain.SavedScenario, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, created_at, data FROM scenarios ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var out []domain.SavedScenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}
	return out, nil
}

// Remove deletes one scenario by id.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("remove scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove scenario: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (domain.SavedScenario, error) {
	var sc domain.SavedScenario
	var createdAt int64
	var payload string
	if err := row.Scan(&sc.ID, &sc.Name, &createdAt, &payload); err != nil {
		return domain.SavedScenario{}, err
	}
	if err := json.Unmarshal([]byte(payload), &sc.Data); err != nil {
		return domain.SavedScenario{}, fmt.Errorf("decode scenario %s: %w", sc.ID, err)
	}
	sc.Date = fromMillis(createdAt)
	return sc, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "scenarios.id")
}
