package dto

type JobListResponse struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	Requirements string `json:"job_requirements"`
	Location     string `json:"location"`
}

type JobListEnvelope struct {
	Jobs  []JobListResponse `json:"jobs"`
	Count int               `json:"count"`
}
