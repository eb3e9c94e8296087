package documents

import (
	"context"
	"fmt"

	"github.com/ledgerly/backoffice-api/internal/domain"
	"github.com/ledgerly/backoffice-api/internal/domain/repository"
)

// RenderUseCase loads a record, assembles the render options from the
// caller's business profile and dispatches to the renderer for the
// requested format.
type RenderUseCase struct {
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
	challanRepo   repository.ChallanRepository
	businessRepo  repository.BusinessRepository
	pdf           Renderer
	word          Renderer
}

// NewRenderUseCase builds the use case with all its dependencies.
func NewRenderUseCase(
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
	challanRepo repository.ChallanRepository,
	businessRepo repository.BusinessRepository,
	pdf Renderer,
	word Renderer,
) *RenderUseCase {
	return &RenderUseCase{
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
		challanRepo:   challanRepo,
		businessRepo:  businessRepo,
		pdf:           pdf,
		word:          word,
	}
}

// RenderRequest identifies the record, output format and section toggles of
// one render call. BusinessID comes from the caller's token, never from the
// request body.
type RenderRequest struct {
	BusinessID    string
	RecordID      string
	Kind          Kind
	Format        Format
	IncludeHeader bool
	IncludeFooter bool
}

// RenderResult is the finished document plus the response metadata the
// gateway needs.
type RenderResult struct {
	Bytes    []byte
	MIMEType string
	Filename string
}

// RenderDocument executes one render call.
//
// Returns:
//   - (result, nil)           on success.
//   - domain.ErrInvalidInput  for an unknown kind.
//   - domain.ErrNotFound      if the record or business does not exist.
//   - domain.ErrForbidden     if the record belongs to another business.
//   - a wrapped generation error when the renderer itself fails; the
//     caller translates that into a user-visible failure. Rendering is pure,
//     so a retry at the caller's discretion is always safe.
func (uc *RenderUseCase) RenderDocument(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	doc, ownerID, err := uc.loadDocument(req.Kind, req.RecordID)
	if err != nil {
		return nil, err
	}
	if ownerID != req.BusinessID {
		return nil, domain.ErrForbidden
	}

	business, err := uc.businessRepo.GetByID(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("render: load business profile: %w", err)
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	opts := RenderOptions{
		IncludeHeader:   req.IncludeHeader,
		IncludeFooter:   req.IncludeFooter,
		BusinessName:    business.Name,
		BusinessAddress: business.FullAddress(),
		BusinessEmail:   business.Email,
		BusinessPhone:   business.Phone,
		FooterText:      business.FooterText,
	}

	renderer := uc.pdf
	if req.Format == FormatWord {
		renderer = uc.word
	}

	out, err := renderer.Render(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: generate %s %s: %w", req.Kind, req.Format, err)
	}

	return &RenderResult{
		Bytes:    out,
		MIMEType: req.Format.MIME(),
		Filename: fmt.Sprintf("%s-%s.%s", req.Kind, doc.Number, req.Format.Ext()),
	}, nil
}

// loadDocument fetches the record for the kind and returns the kind-neutral
// render input plus the owning business ID for the access check.
func (uc *RenderUseCase) loadDocument(kind Kind, id string) (Document, string, error) {
	switch kind {
	case KindQuotation:
		q, err := uc.quotationRepo.GetByID(id)
		if err != nil {
			return Document{}, "", fmt.Errorf("render: load quotation: %w", err)
		}
		if q == nil {
			return Document{}, "", domain.ErrNotFound
		}
		return FromQuotation(q), q.BusinessID, nil
	case KindInvoice:
		inv, err := uc.invoiceRepo.GetByID(id)
		if err != nil {
			return Document{}, "", fmt.Errorf("render: load invoice: %w", err)
		}
		if inv == nil {
			return Document{}, "", domain.ErrNotFound
		}
		return FromInvoice(inv), inv.BusinessID, nil
	case KindChallan:
		ch, err := uc.challanRepo.GetByID(id)
		if err != nil {
			return Document{}, "", fmt.Errorf("render: load challan: %w", err)
		}
		if ch == nil {
			return Document{}, "", domain.ErrNotFound
		}
		return FromChallan(ch), ch.BusinessID, nil
	}
	return Document{}, "", fmt.Errorf("%w: unknown document kind %q", domain.ErrInvalidInput, kind)
}
