package candidate

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRow = errors.New("invalid candidate row")

// Record is one candidate profile, immutable for the duration of a matching
// run.
type Record struct {
	ID                   string
	Name                 string
	ProfileDetails       string
	Location             string
	BenefitsRequirements string
	CorporateCulture     string
}

// Fields lists the candidate table columns in append order.
func Fields() []string {
	return []string{"id", "name", "profile_details", "location", "benefits_requirements", "corporate_culture"}
}

// FromRow validates and converts a raw record-store row. The id and profile
// text are required; a missing name falls back to "Candidate <id>".
func FromRow(row map[string]string) (Record, error) {
	id := strings.TrimSpace(row["id"])
	if id == "" {
		return Record{}, fmt.Errorf("%w: missing id", ErrInvalidRow)
	}
	profile := strings.TrimSpace(row["profile_details"])
	if profile == "" {
		return Record{}, fmt.Errorf("%w: candidate %s has no profile_details", ErrInvalidRow, id)
	}

	name := strings.TrimSpace(row["name"])
	if name == "" {
		name = "Candidate " + id
	}

	return Record{
		ID:                   id,
		Name:                 name,
		ProfileDetails:       profile,
		Location:             strings.TrimSpace(row["location"]),
		BenefitsRequirements: row["benefits_requirements"],
		CorporateCulture:     row["corporate_culture"],
	}, nil
}
