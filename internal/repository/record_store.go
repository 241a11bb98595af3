package repository

import "context"

// Row is one record-store row, keyed by column name. All values are strings;
// typed validation happens at the domain boundary, not here.
type Row map[string]string

const (
	TableCandidates = "candidates"
	TableJobs       = "jobs"
	TableRankings   = "companies"
)

// Dataset is one consistent read of the three tables a matching run needs.
type Dataset struct {
	Candidates []Row
	Jobs       []Row
	Rankings   []Row
}

// RecordStore is the external collaborator supplying candidate, job and
// company-ranking rows, plus an append for registration flows.
type RecordStore interface {
	Load(ctx context.Context) (Dataset, error)
	Append(ctx context.Context, table string, values []string) error
	Ping(ctx context.Context) error
}
