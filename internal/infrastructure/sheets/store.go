package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"talent-match/internal/config"
	"talent-match/internal/repository"
)

const readRange = "A1:Z"

// Store reads the three record tables from Google Sheets, one spreadsheet per
// table, first row treated as the header.
type Store struct {
	svc      *sheetsapi.Service
	sheetIDs map[string]string
}

func NewStore(ctx context.Context, cfg config.RecordStoreConfig) (*Store, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Store{
		svc: svc,
		sheetIDs: map[string]string{
			repository.TableCandidates: cfg.CandidatesSheet,
			repository.TableJobs:       cfg.JobsSheet,
			repository.TableRankings:   cfg.CompaniesSheet,
		},
	}, nil
}

// Load fetches the three sheets concurrently.
func (s *Store) Load(ctx context.Context) (repository.Dataset, error) {
	var ds repository.Dataset

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.readTable(ctx, repository.TableCandidates)
		ds.Candidates = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.readTable(ctx, repository.TableJobs)
		ds.Jobs = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.readTable(ctx, repository.TableRankings)
		ds.Rankings = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return repository.Dataset{}, err
	}
	return ds, nil
}

func (s *Store) Append(ctx context.Context, table string, values []string) error {
	id, ok := s.sheetIDs[table]
	if !ok {
		return fmt.Errorf("sheets: unknown table %q", table)
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	_, err := s.svc.Spreadsheets.Values.Append(id, readRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append to %s: %w", table, err)
	}
	return nil
}

// Ping verifies the candidates spreadsheet is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.svc.Spreadsheets.Get(s.sheetIDs[repository.TableCandidates]).Context(ctx).Do()
	return err
}

func (s *Store) Close() error { return nil }

func (s *Store) readTable(ctx context.Context, table string) ([]repository.Row, error) {
	id := s.sheetIDs[table]
	resp, err := s.svc.Spreadsheets.Values.Get(id, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", table, err)
	}
	return rowsFromValues(resp.Values), nil
}

// rowsFromValues maps sheet rows onto the header row. Short rows leave
// trailing columns empty; blank rows are dropped.
func rowsFromValues(values [][]interface{}) []repository.Row {
	if len(values) == 0 {
		return nil
	}

	header := make([]string, 0, len(values[0]))
	for _, h := range values[0] {
		header = append(header, strings.TrimSpace(fmt.Sprint(h)))
	}

	rows := make([]repository.Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(repository.Row, len(header))
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			v := ""
			if i < len(raw) {
				v = fmt.Sprint(raw[i])
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
	return rows
}
