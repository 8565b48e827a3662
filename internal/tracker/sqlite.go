package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	// Immediate transactions take the write lock at BEGIN, so concurrent
	// writers queue on busy_timeout instead of failing on lock upgrade.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS weight_log (
		id          TEXT PRIMARY KEY,
		date        TEXT NOT NULL UNIQUE,
		weight_kg   REAL NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_weight_log_date ON weight_log(date);
	`)
	return err
}

const sqliteColumns = "id, date, weight_kg, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	var created string
	if err := row.Scan(&e.ID, &e.Date, &e.WeightKG, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	e.CreatedAt = t
	return &e, nil
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*Entry, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM weight_log WHERE date = ?`, p.Date).Scan(&existingID)
	switch {
	case err == nil && !p.Overwrite:
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, p.Date)
	case err == nil:
		_, err = tx.ExecContext(ctx, `UPDATE weight_log SET weight_kg = ? WHERE id = ?`, p.WeightKG, existingID)
		if err != nil {
			return nil, fmt.Errorf("update weight entry: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		existingID = newID()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO weight_log (id, date, weight_kg, created_at) VALUES (?, ?, ?, ?)`,
			existingID, p.Date, p.WeightKG, time.Now().UTC().Format(time.RFC3339Nano))
		if err != nil {
			return nil, fmt.Errorf("insert weight entry: %w", err)
		}
	default:
		return nil, fmt.Errorf("lookup date: %w", err)
	}

	e, err := scanEntry(tx.QueryRowContext(ctx,
		`SELECT `+sqliteColumns+` FROM weight_log WHERE id = ?`, existingID))
	if err != nil {
		return nil, err
	}
	return e, tx.Commit()
}

func (s *SQLiteStore) List(ctx context.Context, start, end string) ([]Entry, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any
	if start != "" {
		conditions = append(conditions, "date >= ?")
		args = append(args, start)
	}
	if end != "" {
		conditions = append(conditions, "date <= ?")
		args = append(args, end)
	}
	query := `SELECT ` + sqliteColumns + ` FROM weight_log`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weight log: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Latest(ctx context.Context) (*Entry, error) {
	e, err := scanEntry(s.db.QueryRowContext(ctx,
		`SELECT `+sqliteColumns+` FROM weight_log ORDER BY date DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *SQLiteStore) Update(ctx context.Context, id string, p UpdateParams) (*Entry, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if p.Date != nil {
		var clash string
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM weight_log WHERE date = ? AND id <> ?`, *p.Date, id).Scan(&clash)
		if err == nil {
			return nil, fmt.Errorf("%w: %s", ErrEntryExists, *p.Date)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lookup date: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE weight_log SET
			date      = COALESCE(?, date),
			weight_kg = COALESCE(?, weight_kg)
		 WHERE id = ?`, nullable(p.Date), nullable(p.WeightKG), id)
	if err != nil {
		return nil, fmt.Errorf("update weight entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	e, err := scanEntry(tx.QueryRowContext(ctx,
		`SELECT `+sqliteColumns+` FROM weight_log WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	return e, tx.Commit()
}

// nullable turns a nil pointer into a SQL NULL.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM weight_log WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM weight_log`)
	if err != nil {
		return 0, fmt.Errorf("clear weight log: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
