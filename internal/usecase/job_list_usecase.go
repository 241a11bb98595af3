package usecase

import (
	"context"
	"fmt"
	"log"

	"talent-match/internal/domain/job"
	"talent-match/internal/repository"
)

type JobSummary struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	Requirements string `json:"job_requirements"`
	Location     string `json:"location"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context) ([]JobSummary, error)
}

type JobList struct {
	store  repository.RecordStore
	logger *log.Logger
}

func NewJobListUsecase(store repository.RecordStore, logger *log.Logger) *JobList {
	if logger == nil {
		logger = log.Default()
	}
	return &JobList{store: store, logger: logger}
}

// ListJobs returns every well-formed job row. Malformed rows are logged and
// skipped.
func (u *JobList) ListJobs(ctx context.Context) ([]JobSummary, error) {
	ds, err := u.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	out := make([]JobSummary, 0, len(ds.Jobs))
	for _, row := range ds.Jobs {
		rec, err := job.FromRow(row)
		if err != nil {
			u.logger.Printf("[Jobs] skipping malformed job row: %v", err)
			continue
		}
		out = append(out, JobSummary{
			ID:           rec.ID,
			CompanyName:  rec.CompanyName,
			Requirements: rec.Requirements,
			Location:     rec.Location,
		})
	}
	return out, nil
}
