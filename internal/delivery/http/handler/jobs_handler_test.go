package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type mockJobList struct {
	jobs []usecase.JobSummary
	err  error
}

func (m mockJobList) ListJobs(context.Context) ([]usecase.JobSummary, error) {
	return m.jobs, m.err
}

type mockRegistration struct {
	candidateErr error
	jobErr       error
	gotJob       usecase.JobInput
}

func (m *mockRegistration) RegisterCandidate(_ context.Context, in usecase.CandidateInput) error {
	return m.candidateErr
}

func (m *mockRegistration) RegisterJob(_ context.Context, in usecase.JobInput) error {
	m.gotJob = in
	return m.jobErr
}

func newJobsTestApp(list usecase.JobListUsecase, reg usecase.RegistrationUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewJobsHandler(list, reg).RegisterRoutes(app)
	return app
}

func TestListJobs_ReturnsEnvelope(t *testing.T) {
	app := newJobsTestApp(mockJobList{jobs: []usecase.JobSummary{
		{ID: "j1", CompanyName: "Initech", Requirements: "python", Location: "Boston"},
	}}, &mockRegistration{})

	req := httptest.NewRequest(fiber.MethodGet, "/jobs/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var data struct {
		Jobs  []map[string]string `json:"jobs"`
		Count int                 `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count != 1 || len(data.Jobs) != 1 || data.Jobs[0]["id"] != "j1" {
		t.Fatalf("unexpected payload: %s", env.Data)
	}
}

func TestRegisterJob_Created(t *testing.T) {
	reg := &mockRegistration{}
	app := newJobsTestApp(mockJobList{}, reg)

	_, status := postJSON(t, app, "/jobs/", `{"id":"j9","company_name":"Globex","job_requirements":"docker","location":"Austin"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if reg.gotJob.ID != "j9" || reg.gotJob.Requirements != "docker" {
		t.Fatalf("unexpected input: %+v", reg.gotJob)
	}
}

func TestRegisterJob_Duplicate(t *testing.T) {
	app := newJobsTestApp(mockJobList{}, &mockRegistration{jobErr: usecase.ErrJobExists})

	_, status := postJSON(t, app, "/jobs/", `{"id":"j1","company_name":"Initech","job_requirements":"python","location":"Boston"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestRegisterJob_InvalidInput(t *testing.T) {
	app := newJobsTestApp(mockJobList{}, &mockRegistration{jobErr: usecase.ErrInvalidInput})

	_, status := postJSON(t, app, "/jobs/", `{"id":"j1"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}
