package http

import (
	"github.com/gofiber/fiber/v2"

	appestimate "github.com/remodj/billing-api/internal/application/estimate"
	appgate "github.com/remodj/billing-api/internal/application/gate"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	GateUC     *appgate.UseCase
	BuilderUC  *appestimate.BuilderUseCase
	GenerateUC *appestimate.GenerateUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Gate (public): exchanges the 4-digit code for a session token.
	gateHandler := NewGateHandler(deps.GateUC)
	api.Post("/gate/unlock", gateHandler.Unlock)

	// Estimates (behind the gate).
	protected := api.Group("/", GateMiddleware(deps.JWTSecret))

	estimates := protected.Group("/estimates")
	estimateHandler := NewEstimateHandler(deps.BuilderUC, deps.GenerateUC)
	estimates.Post("/", estimateHandler.Create)
	estimates.Get("/:id", estimateHandler.Get)
	estimates.Patch("/:id", estimateHandler.UpdateHeader)
	estimates.Delete("/:id", estimateHandler.Close)
	estimates.Post("/:id/items", estimateHandler.AddItem)
	estimates.Patch("/:id/items/:index", estimateHandler.UpdateItem)
	estimates.Delete("/:id/items/:index", estimateHandler.RemoveItem)
	estimates.Post("/:id/pdf", estimateHandler.GeneratePDF)
}
