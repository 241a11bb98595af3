package routes

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry wires constructed handlers onto the fiber app: /health at the
// root, everything else under /api/v1.
type Registry struct {
	Health     *handler.HealthHandler
	Match      *handler.MatchHandler
	Jobs       *handler.JobsHandler
	Candidates *handler.CandidatesHandler
	Store      *handler.StoreHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.Match.RegisterRoutes(v1)
	r.Jobs.RegisterRoutes(v1)
	r.Candidates.RegisterRoutes(v1)
	r.Store.RegisterRoutes(v1)
}
