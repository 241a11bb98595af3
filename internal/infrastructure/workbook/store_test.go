package workbook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"talent-match/internal/repository"
)

func writeFixtureWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]interface{}{
		repository.TableCandidates: {
			{"id", "name", "profile_details", "location", "benefits_requirements", "corporate_culture"},
			{"c1", "One", "python developer", "Boston", "health", "remote"},
		},
		repository.TableJobs: {
			{"id", "company_name", "job_requirements", "location"},
			{"j1", "Initech", "5 years of python", "Boston"},
		},
		repository.TableRankings: {
			{"company_name", "ranking"},
			{"Initech", "4"},
		},
	}

	for sheet, rows := range sheets {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet %s: %v", sheet, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "records.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestWorkbookStore_Load(t *testing.T) {
	store := NewStore(writeFixtureWorkbook(t))

	ds, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ds.Candidates) != 1 || len(ds.Jobs) != 1 || len(ds.Rankings) != 1 {
		t.Fatalf("unexpected dataset sizes: %d/%d/%d", len(ds.Candidates), len(ds.Jobs), len(ds.Rankings))
	}
	if ds.Candidates[0]["id"] != "c1" || ds.Candidates[0]["profile_details"] != "python developer" {
		t.Fatalf("unexpected candidate row: %v", ds.Candidates[0])
	}
	if ds.Jobs[0]["job_requirements"] != "5 years of python" {
		t.Fatalf("unexpected job row: %v", ds.Jobs[0])
	}
}

func TestWorkbookStore_AppendRoundtrip(t *testing.T) {
	store := NewStore(writeFixtureWorkbook(t))
	ctx := context.Background()

	values := []string{"j2", "Globex", "docker and kubernetes", "Austin"}
	if err := store.Append(ctx, repository.TableJobs, values); err != nil {
		t.Fatalf("append: %v", err)
	}

	ds, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(ds.Jobs) != 2 {
		t.Fatalf("expected 2 jobs after append, got %d", len(ds.Jobs))
	}
	got := ds.Jobs[1]
	if got["id"] != "j2" || got["company_name"] != "Globex" || got["location"] != "Austin" {
		t.Fatalf("unexpected appended row: %v", got)
	}
}

func TestWorkbookStore_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.xlsx"))
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
