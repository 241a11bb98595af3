package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/company"
	"talent-match/internal/domain/extraction"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/workerpool"
	"talent-match/internal/repository"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrCandidateExists = errors.New("candidate already exists")
	ErrJobExists       = errors.New("job already exists")
	ErrDataUnavailable = errors.New("record store unavailable")
	ErrInvalidInput    = errors.New("invalid input")
)

const (
	DefaultTopK     = 5
	matchCacheTTL   = 10 * time.Minute
	matchKeyPattern = "match:*"
)

// Scorer is the scoring engine seam, pulled out as an interface so ranking
// can be tested without geocoding.
type Scorer interface {
	Score(ctx context.Context, cand matching.CandidateFeatures, jb matching.JobFeatures) float64
}

type MatchEntry struct {
	CandidateID    string  `json:"candidate_id"`
	CandidateName  string  `json:"candidate_name"`
	Score          float64 `json:"score"`
	Location       string  `json:"location"`
	ProfileDetails string  `json:"profile_details"`
}

type SkillsAnalysis struct {
	SoughtSkills    []string `json:"sought_skills"`
	AvailableSkills []string `json:"available_skills"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SkillsCoverage  float64  `json:"skills_coverage"`
}

type MatchReport struct {
	JobID           string         `json:"job_id"`
	JobRequirements string         `json:"job_requirements"`
	TopMatches      []MatchEntry   `json:"top_matches"`
	SkillsAnalysis  SkillsAnalysis `json:"skills_analysis"`
}

type MatchingUsecase interface {
	FindTopMatches(ctx context.Context, jobID string, topK int) (MatchReport, error)
}

type Matching struct {
	store   repository.RecordStore
	builder *matching.FeatureBuilder
	scorer  Scorer
	cache   MatchCache
	workers int
	rps     int
	logger  *log.Logger
}

// NewMatchingUsecase builds the ranking usecase. rps > 0 caps scoring task
// starts per second; scoring tasks geocode uncached locations, so the cap
// keeps a cold run inside the upstream geocoder's usage policy.
func NewMatchingUsecase(store repository.RecordStore, builder *matching.FeatureBuilder, scorer Scorer, cache MatchCache, workers, rps int, logger *log.Logger) *Matching {
	if workers <= 0 {
		workers = 4
	}
	if rps < 0 {
		rps = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{
		store:   store,
		builder: builder,
		scorer:  scorer,
		cache:   cache,
		workers: workers,
		rps:     rps,
		logger:  logger,
	}
}

// FindTopMatches ranks every candidate against one job and reports the topK
// entries plus a skills-coverage analysis of the whole pool. Malformed
// candidate rows are skipped, not fatal; an unknown job id fails before any
// scoring work.
func (u *Matching) FindTopMatches(ctx context.Context, jobID string, topK int) (MatchReport, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return MatchReport{}, fmt.Errorf("%w: empty job_id", ErrInvalidInput)
	}

	cacheKey := fmt.Sprintf("match:%s:%d", jobID, topK)
	if u.cache != nil {
		var cached MatchReport
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	ds, err := u.store.Load(ctx)
	if err != nil {
		return MatchReport{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	jobRec, err := findJobRow(ds.Jobs, jobID)
	if err != nil {
		return MatchReport{}, err
	}

	rankings := u.parseRankings(ds.Rankings)
	jobFeatures := u.builder.BuildJobFeatures(jobRec, rankings)

	type scored struct {
		entry  MatchEntry
		skills []string
		ok     bool
	}
	results := make([]scored, len(ds.Candidates))

	pool := workerpool.New(u.workers, len(ds.Candidates))
	if u.rps > 0 {
		pool.SetRateLimit(u.rps)
	}
	for i := range ds.Candidates {
		i := i
		row := ds.Candidates[i]
		pool.Submit(func(ctx context.Context) error {
			rec, err := candidate.FromRow(row)
			if err != nil {
				u.logger.Printf("[Matching] skipping candidate row: %v", err)
				return nil
			}
			feats := u.builder.BuildCandidateFeatures(rec, rankings)
			results[i] = scored{
				entry: MatchEntry{
					CandidateID:    rec.ID,
					CandidateName:  rec.Name,
					Score:          u.scorer.Score(ctx, feats, jobFeatures),
					Location:       rec.Location,
					ProfileDetails: rec.ProfileDetails,
				},
				skills: feats.Skills(),
				ok:     true,
			}
			return nil
		})
	}
	pool.Close()
	for range pool.Run(ctx) {
	}
	if err := ctx.Err(); err != nil {
		return MatchReport{}, err
	}

	entries := make([]MatchEntry, 0, len(results))
	available := make(map[string]struct{})
	for _, r := range results {
		if !r.ok {
			continue
		}
		entries = append(entries, r.entry)
		for _, s := range r.skills {
			available[s] = struct{}{}
		}
	}

	// Descending by score; stable so ties keep input order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(entries) {
		topK = len(entries)
	}

	report := MatchReport{
		JobID:           jobRec.ID,
		JobRequirements: jobRec.Requirements,
		TopMatches:      entries[:topK:topK],
		SkillsAnalysis:  buildSkillsAnalysis(jobFeatures.Skills(), available),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, report, matchCacheTTL); err != nil {
			u.logger.Printf("[Matching] cache write failed: %v", err)
		}
	}
	return report, nil
}

func findJobRow(rows []repository.Row, jobID string) (job.Record, error) {
	for _, row := range rows {
		if strings.TrimSpace(row["id"]) != jobID {
			continue
		}
		rec, err := job.FromRow(row)
		if err != nil {
			return job.Record{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		return rec, nil
	}
	return job.Record{}, ErrJobNotFound
}

func (u *Matching) parseRankings(rows []repository.Row) []company.Ranking {
	rankings := make([]company.Ranking, 0, len(rows))
	for _, row := range rows {
		r, ok := company.FromRow(row)
		if !ok {
			u.logger.Printf("[Matching] skipping malformed ranking row: %v", row)
			continue
		}
		rankings = append(rankings, r)
	}
	return rankings
}

// buildSkillsAnalysis compares the job's sought skills with the union of
// skills found anywhere in the candidate pool. Slices come back in
// vocabulary order so the report is deterministic.
func buildSkillsAnalysis(sought []string, available map[string]struct{}) SkillsAnalysis {
	analysis := SkillsAnalysis{
		SoughtSkills:    sought,
		AvailableSkills: make([]string, 0, len(available)),
		MatchingSkills:  make([]string, 0, len(sought)),
		MissingSkills:   make([]string, 0),
	}

	for _, s := range extraction.Vocabulary() {
		if _, ok := available[s]; ok {
			analysis.AvailableSkills = append(analysis.AvailableSkills, s)
		}
	}
	for _, s := range sought {
		if _, ok := available[s]; ok {
			analysis.MatchingSkills = append(analysis.MatchingSkills, s)
		} else {
			analysis.MissingSkills = append(analysis.MissingSkills, s)
		}
	}
	if len(sought) > 0 {
		analysis.SkillsCoverage = float64(len(analysis.MatchingSkills)) / float64(len(sought))
	}
	return analysis
}
