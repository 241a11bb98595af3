package matching

import (
	"strings"

	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/company"
	"talent-match/internal/domain/extraction"
	"talent-match/internal/domain/job"
)

// CandidateFeatures is the normalized feature bundle for one candidate,
// rebuilt fresh on every scoring call.
type CandidateFeatures struct {
	ID                string
	Name              string
	AvgYears          float64
	MaxCompanyRanking int
	PositionScore     float64
	SkillCount        int
	Mentions          []extraction.SkillMention

	Location             string
	ProfileDetails       string
	BenefitsRequirements string
	CorporateCulture     string
}

// JobFeatures mirrors CandidateFeatures over the job requirements text, plus
// a required-seniority signal taken from a direct keyword scan of the text.
type JobFeatures struct {
	ID                string
	CompanyName       string
	AvgYears          float64
	MaxCompanyRanking int
	PositionScore     float64
	RequiredSeniority float64
	SkillCount        int
	Mentions          []extraction.SkillMention

	Location     string
	Requirements string
}

type FeatureBuilder struct {
	extractor *extraction.Extractor
}

func NewFeatureBuilder(extractor *extraction.Extractor) *FeatureBuilder {
	return &FeatureBuilder{extractor: extractor}
}

func (b *FeatureBuilder) BuildCandidateFeatures(rec candidate.Record, rankings []company.Ranking) CandidateFeatures {
	mentions := b.extractor.Extract(rec.ProfileDetails)

	return CandidateFeatures{
		ID:                   rec.ID,
		Name:                 rec.Name,
		AvgYears:             avgYears(mentions),
		MaxCompanyRanking:    maxCompanyRanking(mentions, rankings),
		PositionScore:        positionScore(mentions),
		SkillCount:           len(mentions),
		Mentions:             mentions,
		Location:             rec.Location,
		ProfileDetails:       rec.ProfileDetails,
		BenefitsRequirements: rec.BenefitsRequirements,
		CorporateCulture:     rec.CorporateCulture,
	}
}

func (b *FeatureBuilder) BuildJobFeatures(rec job.Record, rankings []company.Ranking) JobFeatures {
	mentions := b.extractor.Extract(rec.Requirements)

	return JobFeatures{
		ID:                rec.ID,
		CompanyName:       rec.CompanyName,
		AvgYears:          avgYears(mentions),
		MaxCompanyRanking: maxCompanyRanking(mentions, rankings),
		PositionScore:     positionScore(mentions),
		RequiredSeniority: requiredSeniority(rec.Requirements),
		SkillCount:        len(mentions),
		Mentions:          mentions,
		Location:          rec.Location,
		Requirements:      rec.Requirements,
	}
}

// Skills returns the mentioned skill names in extraction order.
func (f CandidateFeatures) Skills() []string {
	return mentionSkills(f.Mentions)
}

func (f JobFeatures) Skills() []string {
	return mentionSkills(f.Mentions)
}

func mentionSkills(mentions []extraction.SkillMention) []string {
	out := make([]string, 0, len(mentions))
	for _, m := range mentions {
		out = append(out, m.Skill)
	}
	return out
}

func avgYears(mentions []extraction.SkillMention) float64 {
	sum := 0
	n := 0
	for _, m := range mentions {
		if m.Years != nil {
			sum += *m.Years
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func maxCompanyRanking(mentions []extraction.SkillMention, rankings []company.Ranking) int {
	max := 1
	for _, m := range mentions {
		if m.Company == "" {
			continue
		}
		if r := company.RankingOf(m.Company, rankings); r > max {
			max = r
		}
	}
	return max
}

// positionScore is floored at 0.1 when positions were extracted, but
// defaults to 1.0 when none were. The asymmetric default matches the
// upstream system and is kept on purpose.
func positionScore(mentions []extraction.SkillMention) float64 {
	best := 0.0
	found := false
	for _, m := range mentions {
		if m.Position == "" {
			continue
		}
		found = true
		if s := extraction.SeniorityLevelScore(m.Position); s > best {
			best = s
		}
	}
	if !found {
		return 1.0
	}
	if best < 0.1 {
		return 0.1
	}
	return best
}

// requiredSeniority scans the raw requirements text for seniority keywords,
// independently of the extractor's position windows. Defaults to 1.0 when no
// keyword is present.
func requiredSeniority(requirements string) float64 {
	if s := extraction.SeniorityLevelScore(strings.ToLower(requirements)); s > 0 {
		return s
	}
	return 1.0
}
