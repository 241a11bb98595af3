package job

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRow = errors.New("invalid job row")

// Record is one job posting.
type Record struct {
	ID           string
	CompanyName  string
	Requirements string
	Location     string
}

// Fields lists the job table columns in append order.
func Fields() []string {
	return []string{"id", "company_name", "job_requirements", "location"}
}

// FromRow validates and converts a raw record-store row. The id and
// requirements text are required; a missing location falls back to "Unknown".
func FromRow(row map[string]string) (Record, error) {
	id := strings.TrimSpace(row["id"])
	if id == "" {
		return Record{}, fmt.Errorf("%w: missing id", ErrInvalidRow)
	}
	reqs := strings.TrimSpace(row["job_requirements"])
	if reqs == "" {
		return Record{}, fmt.Errorf("%w: job %s has no job_requirements", ErrInvalidRow, id)
	}

	location := strings.TrimSpace(row["location"])
	if location == "" {
		location = "Unknown"
	}

	return Record{
		ID:           id,
		CompanyName:  strings.TrimSpace(row["company_name"]),
		Requirements: reqs,
		Location:     location,
	}, nil
}
