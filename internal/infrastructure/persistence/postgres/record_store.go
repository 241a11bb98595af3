package postgres

import (
	"context"
	"fmt"
	"strings"

	"talent-match/internal/database"
	"talent-match/internal/repository"
)

// Table columns in append order. The record-store contract is positional
// appends, so the column order here is the wire contract.
var tableColumns = map[string][]string{
	repository.TableCandidates: {"id", "name", "profile_details", "location", "benefits_requirements", "corporate_culture"},
	repository.TableJobs:       {"id", "company_name", "job_requirements", "location"},
	repository.TableRankings:   {"company_name", "ranking"},
}

// Store serves the three record tables from Postgres through the shared
// database abstraction.
type Store struct {
	db database.DB
}

func NewStore(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) (repository.Dataset, error) {
	var ds repository.Dataset
	var err error

	if ds.Candidates, err = s.readTable(ctx, repository.TableCandidates); err != nil {
		return repository.Dataset{}, err
	}
	if ds.Jobs, err = s.readTable(ctx, repository.TableJobs); err != nil {
		return repository.Dataset{}, err
	}
	if ds.Rankings, err = s.readTable(ctx, repository.TableRankings); err != nil {
		return repository.Dataset{}, err
	}
	return ds, nil
}

func (s *Store) Append(ctx context.Context, table string, values []string) error {
	cols, ok := tableColumns[table]
	if !ok {
		return fmt.Errorf("postgres: unknown table %q", table)
	}
	if len(values) != len(cols) {
		return fmt.Errorf("postgres: table %s expects %d values, got %d", table, len(cols), len(values))
	}

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[i]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin append to %s: %w", table, err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("postgres: append to %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit append to %s: %w", table, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) readTable(ctx context.Context, table string) ([]repository.Row, error) {
	cols := tableColumns[table]
	// Cast every column to text so row values stay schema-less strings.
	selects := make([]string, len(cols))
	for i, col := range cols {
		selects[i] = col + "::text"
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), table)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: read %s: %w", table, err)
	}
	defer rows.Close()

	var out []repository.Row
	for rows.Next() {
		dest := make([]any, len(cols))
		for i := range dest {
			var v string
			dest[i] = &v
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("postgres: scan %s: %w", table, err)
		}
		row := make(repository.Row, len(cols))
		for i, col := range cols {
			row[col] = *dest[i].(*string)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: read %s: %w", table, err)
	}
	return out, nil
}
