package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type mockMatching struct {
	report usecase.MatchReport
	err    error

	gotJobID string
	gotTopK  int
}

func (m *mockMatching) FindTopMatches(_ context.Context, jobID string, topK int) (usecase.MatchReport, error) {
	m.gotJobID = jobID
	m.gotTopK = topK
	return m.report, m.err
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newMatchTestApp(uc usecase.MatchingUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewMatchHandler(uc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*envelope, int) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return &env, resp.StatusCode
}

func TestFindMatches_Success(t *testing.T) {
	uc := &mockMatching{report: usecase.MatchReport{
		JobID:           "j1",
		JobRequirements: "python",
		TopMatches: []usecase.MatchEntry{
			{CandidateID: "c1", CandidateName: "One", Score: 0.9},
		},
	}}
	app := newMatchTestApp(uc)

	env, status := postJSON(t, app, "/matches", `{"job_id":"j1","top_k":3}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if uc.gotJobID != "j1" || uc.gotTopK != 3 {
		t.Fatalf("usecase called with %q/%d", uc.gotJobID, uc.gotTopK)
	}

	var data struct {
		JobID      string `json:"job_id"`
		TopMatches []struct {
			CandidateID string  `json:"candidate_id"`
			Score       float64 `json:"score"`
		} `json:"top_matches"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.JobID != "j1" || len(data.TopMatches) != 1 || data.TopMatches[0].CandidateID != "c1" {
		t.Fatalf("unexpected payload: %s", env.Data)
	}
}

func TestFindMatches_DefaultTopK(t *testing.T) {
	uc := &mockMatching{}
	app := newMatchTestApp(uc)

	_, status := postJSON(t, app, "/matches", `{"job_id":"j1"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if uc.gotTopK != usecase.DefaultTopK {
		t.Fatalf("expected default top_k %d, got %d", usecase.DefaultTopK, uc.gotTopK)
	}
}

func TestFindMatches_MissingJobID(t *testing.T) {
	app := newMatchTestApp(&mockMatching{})

	env, status := postJSON(t, app, "/matches", `{}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if env.Status != fiber.StatusBadRequest {
		t.Fatalf("envelope status mismatch: %d", env.Status)
	}
}

func TestFindMatches_JobNotFound(t *testing.T) {
	app := newMatchTestApp(&mockMatching{err: usecase.ErrJobNotFound})

	_, status := postJSON(t, app, "/matches", `{"job_id":"nope"}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestFindMatches_StoreUnavailableHidesCause(t *testing.T) {
	app := newMatchTestApp(&mockMatching{err: usecase.ErrDataUnavailable})

	env, status := postJSON(t, app, "/matches", `{"job_id":"j1"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if env.Message != "internal server error" {
		t.Fatalf("expected generic 500 message, got %q", env.Message)
	}
}
