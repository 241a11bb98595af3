package dto

type StoreStatusResponse struct {
	CandidateCount int `json:"candidates_count"`
	JobCount       int `json:"jobs_count"`
	CompanyCount   int `json:"companies_count"`
}

type RegisteredResponse struct {
	ID string `json:"id"`
}
