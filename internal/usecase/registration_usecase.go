package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/job"
	"talent-match/internal/repository"
)

type CandidateInput struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ProfileDetails       string `json:"profile_details"`
	Location             string `json:"location"`
	BenefitsRequirements string `json:"benefits_requirements"`
	CorporateCulture     string `json:"corporate_culture"`
}

type JobInput struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	Requirements string `json:"job_requirements"`
	Location     string `json:"location"`
}

type RegistrationUsecase interface {
	RegisterCandidate(ctx context.Context, in CandidateInput) error
	RegisterJob(ctx context.Context, in JobInput) error
}

type Registration struct {
	store  repository.RecordStore
	cache  MatchCache
	logger *log.Logger
}

func NewRegistrationUsecase(store repository.RecordStore, cache MatchCache, logger *log.Logger) *Registration {
	if logger == nil {
		logger = log.Default()
	}
	return &Registration{store: store, cache: cache, logger: logger}
}

// RegisterCandidate appends a new candidate row. Every field is required and
// ids must be unique.
func (u *Registration) RegisterCandidate(ctx context.Context, in CandidateInput) error {
	values := []string{in.ID, in.Name, in.ProfileDetails, in.Location, in.BenefitsRequirements, in.CorporateCulture}
	if err := requireFields(candidate.Fields(), values); err != nil {
		return err
	}

	ds, err := u.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if rowExists(ds.Candidates, in.ID) {
		return fmt.Errorf("%w: %s", ErrCandidateExists, in.ID)
	}

	if err := u.store.Append(ctx, repository.TableCandidates, values); err != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	u.invalidateMatches(ctx)
	u.logger.Printf("[Registration] candidate %s added", in.ID)
	return nil
}

// RegisterJob appends a new job row with the same contract.
func (u *Registration) RegisterJob(ctx context.Context, in JobInput) error {
	values := []string{in.ID, in.CompanyName, in.Requirements, in.Location}
	if err := requireFields(job.Fields(), values); err != nil {
		return err
	}

	ds, err := u.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if rowExists(ds.Jobs, in.ID) {
		return fmt.Errorf("%w: %s", ErrJobExists, in.ID)
	}

	if err := u.store.Append(ctx, repository.TableJobs, values); err != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	u.invalidateMatches(ctx)
	u.logger.Printf("[Registration] job %s added", in.ID)
	return nil
}

func requireFields(fields, values []string) error {
	for i, f := range fields {
		if strings.TrimSpace(values[i]) == "" {
			return fmt.Errorf("%w: missing required field: %s", ErrInvalidInput, f)
		}
	}
	return nil
}

func rowExists(rows []repository.Row, id string) bool {
	for _, row := range rows {
		if strings.TrimSpace(row["id"]) == strings.TrimSpace(id) {
			return true
		}
	}
	return false
}

// Registered rows change every future ranking, so cached reports go stale
// immediately.
func (u *Registration) invalidateMatches(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, matchKeyPattern); err != nil {
		u.logger.Printf("[Registration] match cache invalidation failed: %v", err)
	}
}
