package handler

import (
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
	env     string
}

func NewHealthHandler(appName, env string) *HealthHandler {
	return &HealthHandler{appName: appName, env: env}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":      "healthy",
		"app":         h.appName,
		"environment": h.env,
	})
}
