package registry

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable is the assignment table used when none is configured.
const DefaultTable = "scenario_assignments"

// Table names are interpolated into DDL/DML, so only plain identifiers
// are accepted.
var tableNameRE = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresStore persists assignments in a single Postgres table keyed by
// user_ern. Single-row reads and writes are atomic, which is all the
// registry contract asks for.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresStore connects to url, creates the assignment table if it
// does not exist, and returns the store. Callers own Close.
func NewPostgresStore(ctx context.Context, url, table string) (*PostgresStore, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNameRE.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to scenario store: %w", err)
	}

	s := &PostgresStore{pool: pool, table: table}
	if err := s.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		user_ern      text PRIMARY KEY,
		assignment_id uuid NOT NULL,
		scenario_config jsonb NOT NULL,
		assigned_at   timestamptz NOT NULL
	)`, s.table)
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Get returns the assignment for userERN, or ErrNotAssigned.
func (s *PostgresStore) Get(ctx context.Context, userERN string) (*Assignment, error) {
	query := fmt.Sprintf(
		"SELECT assignment_id, scenario_config, assigned_at FROM %s WHERE user_ern = $1", s.table)

	a := &Assignment{UserERN: userERN}
	err := s.pool.QueryRow(ctx, query, userERN).Scan(&a.AssignmentID, &a.Scenario, &a.AssignedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotAssigned
	}
	if err != nil {
		return nil, fmt.Errorf("get assignment for %s: %w", userERN, err)
	}
	return a, nil
}

// Put upserts the assignment row.
func (s *PostgresStore) Put(ctx context.Context, a *Assignment) error {
	query := fmt.Sprintf(`INSERT INTO %s (user_ern, assignment_id, scenario_config, assigned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_ern) DO UPDATE SET
			assignment_id = EXCLUDED.assignment_id,
			scenario_config = EXCLUDED.scenario_config,
			assigned_at = EXCLUDED.assigned_at`, s.table)

	if _, err := s.pool.Exec(ctx, query, a.UserERN, a.AssignmentID, a.Scenario, a.AssignedAt); err != nil {
		return fmt.Errorf("put assignment for %s: %w", a.UserERN, err)
	}
	return nil
}

// Delete removes the assignment row. Absent rows are a no-op.
func (s *PostgresStore) Delete(ctx context.Context, userERN string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_ern = $1", s.table)
	if _, err := s.pool.Exec(ctx, query, userERN); err != nil {
		return fmt.Errorf("delete assignment for %s: %w", userERN, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

var _ Store = (*PostgresStore)(nil)
