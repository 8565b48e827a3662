package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements Store on PostgreSQL. The schema lives in db/*.sql and is
// applied by cmd/migrate.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a connection pool. We use a pool (not a single conn)
// because hosted Postgres closes idle connections.
func NewPGStore(ctx context.Context, dbURL string) (*PGStore, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

// pgColumns renders date as text so it scans into Entry.Date unchanged.
const pgColumns = "id, date::text AS date, weight_kg, created_at"

/* ─── Query helpers ───────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* ─── Store ───────────────────────────────────────────────────────────── */

// Put inserts the entry. With Overwrite the UNIQUE(date) constraint turns the
// insert into an in-place update; without it a conflict returns no row.
func (s *PGStore) Put(ctx context.Context, p PutParams) (*Entry, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	conflict := "DO NOTHING"
	if p.Overwrite {
		conflict = "DO UPDATE SET weight_kg = EXCLUDED.weight_kg"
	}
	e, err := queryOne[Entry](ctx, s.pool,
		`INSERT INTO weight_log (id, date, weight_kg)
		 VALUES (@id, @date, @weightKG)
		 ON CONFLICT (date) `+conflict+`
		 RETURNING `+pgColumns,
		pgx.NamedArgs{"id": newID(), "date": p.Date, "weightKG": p.WeightKG})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, p.Date)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert weight entry: %w", err)
	}
	return &e, nil
}

func (s *PGStore) List(ctx context.Context, start, end string) ([]Entry, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	var conditions []string
	args := pgx.NamedArgs{}
	if start != "" {
		conditions = append(conditions, "date >= @start")
		args["start"] = start
	}
	if end != "" {
		conditions = append(conditions, "date <= @end")
		args["end"] = end
	}
	query := `SELECT ` + pgColumns + ` FROM weight_log`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC"

	entries, err := queryMany[Entry](ctx, s.pool, query, args)
	if err != nil {
		return nil, fmt.Errorf("list weight log: %w", err)
	}
	// Ensure empty array (not null) in JSON
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *PGStore) Latest(ctx context.Context) (*Entry, error) {
	e, err := queryOne[Entry](ctx, s.pool,
		`SELECT `+pgColumns+` FROM weight_log ORDER BY date DESC LIMIT 1`, nil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update uses COALESCE so omitted fields keep their current values.
func (s *PGStore) Update(ctx context.Context, id string, p UpdateParams) (*Entry, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	e, err := queryOne[Entry](ctx, s.pool,
		`UPDATE weight_log SET
			date      = COALESCE(@date::date, date),
			weight_kg = COALESCE(@weightKG::double precision, weight_kg)
		 WHERE id = @id
		 RETURNING `+pgColumns,
		pgx.NamedArgs{"id": id, "date": p.Date, "weightKG": p.WeightKG})
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, ErrNotFound
	case isUniqueViolation(err):
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, *p.Date)
	case err != nil:
		return nil, fmt.Errorf("update weight entry: %w", err)
	}
	return &e, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, "DELETE FROM weight_log WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) Clear(ctx context.Context) (int64, error) {
	result, err := s.pool.Exec(ctx, "DELETE FROM weight_log")
	if err != nil {
		return 0, fmt.Errorf("clear weight log: %w", err)
	}
	return result.RowsAffected(), nil
}

func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}
