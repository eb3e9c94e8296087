package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/pkg/logger"
)

// RouterDeps holds the router dependencies.
type RouterDeps struct {
	Render    *documents.RenderUseCase
	Log       *logger.Logger
	JWTSecret string
}

// Router registers the API routes. Every document route requires a Bearer
// token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	documentHandler := NewDocumentHandler(deps.Render, deps.Log)
	protected.Get("/quotations/:id/document", documentHandler.Quotation)
	protected.Get("/invoices/:id/document", documentHandler.Invoice)
	protected.Get("/challans/:id/document", documentHandler.Challan)
}
