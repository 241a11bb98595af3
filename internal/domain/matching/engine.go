package matching

import (
	"context"
	"math"
	"strings"

	"talent-match/internal/domain/geo"
)

// Weights for the four scoring signals. They sum to 1.0, so the final score
// is not re-normalized.
type Weights struct {
	TextSimilarity float64
	SkillOverlap   float64
	Experience     float64
	Location       float64
}

func DefaultWeights() Weights {
	return Weights{
		TextSimilarity: 0.4,
		SkillOverlap:   0.3,
		Experience:     0.2,
		Location:       0.1,
	}
}

// Engine combines text similarity, skill overlap, experience delta and
// location proximity into one weighted match score. Pure apart from the
// geocoding round trip, which mutates nothing.
type Engine struct {
	locations *geo.Scorer
	weights   Weights
}

func NewEngine(locations *geo.Scorer, weights Weights) *Engine {
	return &Engine{locations: locations, weights: weights}
}

// Score returns the weighted match score for a candidate against a job. Each
// signal is normalized to [0, 1] before weighting.
func (e *Engine) Score(ctx context.Context, cand CandidateFeatures, jb JobFeatures) float64 {
	text := JaccardSimilarity(cand.ProfileDetails, jb.Requirements)
	skills := skillOverlap(cand.Skills(), jb.Skills())
	experience := experienceMatch(cand.AvgYears, jb.AvgYears)

	distance := e.locations.DistanceMiles(ctx, cand.Location, jb.Location)
	proximity := geo.ProximityScore(distance)

	return text*e.weights.TextSimilarity +
		skills*e.weights.SkillOverlap +
		experience*e.weights.Experience +
		proximity*e.weights.Location
}

// JaccardSimilarity compares the lower-cased whitespace-tokenized word sets
// of two texts: |A∩B| / |A∪B|. Two empty texts score 0 by convention.
func JaccardSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	union := len(setA)
	intersection := 0
	for w := range setB {
		if _, ok := setA[w]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// skillOverlap is the fraction of job skills the candidate covers. A job
// without extracted skills scores a neutral 0.5.
func skillOverlap(candSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0.5
	}
	have := make(map[string]struct{}, len(candSkills))
	for _, s := range candSkills {
		have[s] = struct{}{}
	}
	matched := 0
	for _, s := range jobSkills {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills))
}

// experienceMatch penalizes the absolute years-of-experience delta, floored
// at 0 once the gap reaches a decade.
func experienceMatch(candYears, jobYears float64) float64 {
	score := 1 - math.Abs(candYears-jobYears)/10
	if score < 0 {
		return 0
	}
	return score
}
