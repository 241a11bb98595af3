package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidatesHandler struct {
	reg usecase.RegistrationUsecase
}

func NewCandidatesHandler(reg usecase.RegistrationUsecase) *CandidatesHandler {
	return &CandidatesHandler{reg: reg}
}

func (h *CandidatesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/candidates", h.RegisterCandidate)
}

func (h *CandidatesHandler) RegisterCandidate(c fiber.Ctx) error {
	var req usecase.CandidateInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.reg.RegisterCandidate(c.Context(), req); err != nil {
		return mapRegistrationError(err)
	}
	return response.Success(c, fiber.StatusCreated, "candidate added", dto.RegisteredResponse{ID: req.ID})
}
