package dto

import "talent-match/internal/usecase"

type MatchRequest struct {
	JobID string `json:"job_id"`
	TopK  *int   `json:"top_k"`
}

type MatchEntryResponse struct {
	CandidateID    string  `json:"candidate_id"`
	CandidateName  string  `json:"candidate_name"`
	Score          float64 `json:"score"`
	Location       string  `json:"location"`
	ProfileDetails string  `json:"profile_details"`
}

type SkillsAnalysisResponse struct {
	SoughtSkills    []string `json:"sought_skills"`
	AvailableSkills []string `json:"available_skills"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SkillsCoverage  float64  `json:"skills_coverage"`
}

type MatchReportResponse struct {
	JobID           string                 `json:"job_id"`
	JobRequirements string                 `json:"job_requirements"`
	TopMatches      []MatchEntryResponse   `json:"top_matches"`
	SkillsAnalysis  SkillsAnalysisResponse `json:"skills_analysis"`
}

func NewMatchReportResponse(report usecase.MatchReport) MatchReportResponse {
	out := MatchReportResponse{
		JobID:           report.JobID,
		JobRequirements: report.JobRequirements,
		TopMatches:      make([]MatchEntryResponse, 0, len(report.TopMatches)),
		SkillsAnalysis: SkillsAnalysisResponse{
			SoughtSkills:    emptyIfNil(report.SkillsAnalysis.SoughtSkills),
			AvailableSkills: emptyIfNil(report.SkillsAnalysis.AvailableSkills),
			MatchingSkills:  emptyIfNil(report.SkillsAnalysis.MatchingSkills),
			MissingSkills:   emptyIfNil(report.SkillsAnalysis.MissingSkills),
			SkillsCoverage:  report.SkillsAnalysis.SkillsCoverage,
		},
	}
	for _, m := range report.TopMatches {
		out.TopMatches = append(out.TopMatches, MatchEntryResponse{
			CandidateID:    m.CandidateID,
			CandidateName:  m.CandidateName,
			Score:          m.Score,
			Location:       m.Location,
			ProfileDetails: m.ProfileDetails,
		})
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
