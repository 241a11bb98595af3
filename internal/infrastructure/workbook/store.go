package workbook

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"talent-match/internal/repository"
)

// Store keeps the three record tables as sheets of one local xlsx workbook.
// Intended for development and offline runs; the file is reopened per
// operation so external edits are picked up.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) (repository.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return repository.Dataset{}, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return repository.Dataset{}, fmt.Errorf("workbook: open %s: %w", s.path, err)
	}
	defer f.Close()

	var ds repository.Dataset
	if ds.Candidates, err = readSheet(f, repository.TableCandidates); err != nil {
		return repository.Dataset{}, err
	}
	if ds.Jobs, err = readSheet(f, repository.TableJobs); err != nil {
		return repository.Dataset{}, err
	}
	if ds.Rankings, err = readSheet(f, repository.TableRankings); err != nil {
		return repository.Dataset{}, err
	}
	return ds, nil
}

func (s *Store) Append(ctx context.Context, table string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("workbook: open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(table)
	if err != nil {
		return fmt.Errorf("workbook: read sheet %s: %w", table, err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(table, cell, &row); err != nil {
		return fmt.Errorf("workbook: append to %s: %w", table, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("workbook: save %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.Load(ctx)
	return err
}

func (s *Store) Close() error { return nil }

func readSheet(f *excelize.File, sheet string) ([]repository.Row, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook: read sheet %s: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]repository.Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(repository.Row, len(header))
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			row[col] = v
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
