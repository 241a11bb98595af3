package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StoreHandler struct {
	status usecase.StoreStatusUsecase
}

func NewStoreHandler(status usecase.StoreStatusUsecase) *StoreHandler {
	return &StoreHandler{status: status}
}

func (h *StoreHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/store/status", h.Status)
}

func (h *StoreHandler) Status(c fiber.Ctx) error {
	st, err := h.status.Status(c.Context())
	if err != nil {
		return mapStoreError(err)
	}
	return response.Success(c, fiber.StatusOK, "record store reachable", dto.StoreStatusResponse{
		CandidateCount: st.CandidateCount,
		JobCount:       st.JobCount,
		CompanyCount:   st.CompanyCount,
	})
}
