package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list usecase.JobListUsecase
	reg  usecase.RegistrationUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, reg usecase.RegistrationUsecase) *JobsHandler {
	return &JobsHandler{list: list, reg: reg}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/", h.ListJobs)
	grp.Post("/", h.RegisterJob)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	jobs, err := h.list.ListJobs(c.Context())
	if err != nil {
		return mapStoreError(err)
	}

	out := dto.JobListEnvelope{Jobs: make([]dto.JobListResponse, 0, len(jobs)), Count: len(jobs)}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, dto.JobListResponse{
			ID:           j.ID,
			CompanyName:  j.CompanyName,
			Requirements: j.Requirements,
			Location:     j.Location,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) RegisterJob(c fiber.Ctx) error {
	var req usecase.JobInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.reg.RegisterJob(c.Context(), req); err != nil {
		return mapRegistrationError(err)
	}
	return response.Success(c, fiber.StatusCreated, "job added", dto.RegisteredResponse{ID: req.ID})
}

func mapRegistrationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrCandidateExists), errors.Is(err, usecase.ErrJobExists):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// ErrDataUnavailable and anything else unexpected both surface as 500; the
// distinction stays in the logs.
func mapStoreError(err error) error {
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
