package usecase

import (
	"context"
	"fmt"

	"talent-match/internal/repository"
)

type StoreStatus struct {
	CandidateCount int `json:"candidates_count"`
	JobCount       int `json:"jobs_count"`
	CompanyCount   int `json:"companies_count"`
}

type StoreStatusUsecase interface {
	Status(ctx context.Context) (StoreStatus, error)
}

type StatusChecker struct {
	store repository.RecordStore
}

func NewStoreStatusUsecase(store repository.RecordStore) *StatusChecker {
	return &StatusChecker{store: store}
}

// Status verifies record-store connectivity and reports per-table row counts.
func (u *StatusChecker) Status(ctx context.Context) (StoreStatus, error) {
	ds, err := u.store.Load(ctx)
	if err != nil {
		return StoreStatus{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return StoreStatus{
		CandidateCount: len(ds.Candidates),
		JobCount:       len(ds.Jobs),
		CompanyCount:   len(ds.Rankings),
	}, nil
}
