package company

import (
	"strconv"
	"strings"
)

// Ranking is one row of the company reputation table. Higher means more
// prestigious.
type Ranking struct {
	CompanyName string
	Ranking     int
}

// FromRow converts a raw record-store row. Rows without a usable name or a
// positive integer ranking are reported as not ok and skipped by callers.
func FromRow(row map[string]string) (Ranking, bool) {
	name := strings.TrimSpace(row["company_name"])
	if name == "" {
		return Ranking{}, false
	}
	rank, err := strconv.Atoi(strings.TrimSpace(row["ranking"]))
	if err != nil || rank <= 0 {
		return Ranking{}, false
	}
	return Ranking{CompanyName: name, Ranking: rank}, true
}

// RankingOf looks up a company by case-insensitive substring match against
// the table, first match wins. Unknown or empty names default to 1.
func RankingOf(name string, rankings []Ranking) int {
	clean := strings.ToLower(strings.TrimSpace(name))
	if clean == "" {
		return 1
	}
	for _, r := range rankings {
		if strings.Contains(strings.ToLower(r.CompanyName), clean) {
			return r.Ranking
		}
	}
	return 1
}
