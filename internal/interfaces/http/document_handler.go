package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/application/dto"
	"github.com/ledgerly/backoffice-api/internal/domain"
	"github.com/ledgerly/backoffice-api/pkg/logger"
)

// DocumentHandler serves generated documents (protected).
//
// GET /api/{quotations|invoices|challans}/:id/document
//
// Query parameters:
//   - format: "pdf" (default) or "word"
//   - includeHeader / includeFooter: included unless the literal "false"
type DocumentHandler struct {
	uc  *documents.RenderUseCase
	log *logger.Logger
}

// NewDocumentHandler builds the handler.
func NewDocumentHandler(uc *documents.RenderUseCase, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, log: log}
}

// Quotation renders a quotation document.
// GET /api/quotations/:id/document
func (h *DocumentHandler) Quotation(c *fiber.Ctx) error {
	return h.render(c, documents.KindQuotation)
}

// Invoice renders an invoice document.
// GET /api/invoices/:id/document
func (h *DocumentHandler) Invoice(c *fiber.Ctx) error {
	return h.render(c, documents.KindInvoice)
}

// Challan renders a delivery challan document.
// GET /api/challans/:id/document
func (h *DocumentHandler) Challan(c *fiber.Ctx) error {
	return h.render(c, documents.KindChallan)
}

func (h *DocumentHandler) render(c *fiber.Ctx, kind documents.Kind) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}

	format, err := documents.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: `format must be "pdf" or "word"`})
	}

	res, err := h.uc.RenderDocument(c.Context(), documents.RenderRequest{
		BusinessID:    businessID,
		RecordID:      id,
		Kind:          kind,
		Format:        format,
		IncludeHeader: c.Query("includeHeader") != "false",
		IncludeFooter: c.Query("includeFooter") != "false",
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: string(kind) + " not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		h.log.Error().Err(err).
			Str("kind", string(kind)).
			Str("format", string(format)).
			Str("record_id", id).
			Msg("document generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to generate document"})
	}

	c.Set(fiber.HeaderContentType, res.MIMEType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Bytes)
}
