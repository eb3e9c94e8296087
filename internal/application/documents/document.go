// Package documents is the application core of the rendering engine: the
// kind/format dispatch matrix, the deterministic render input built from a
// persisted record, and the use case the HTTP layer calls to turn a record
// into downloadable bytes.
package documents

import (
	"time"

	"github.com/ledgerly/backoffice-api/internal/domain/document"
	"github.com/ledgerly/backoffice-api/internal/domain/entity"
)

// Kind selects which of the three record types is being rendered.
type Kind string

const (
	KindQuotation Kind = "quotation"
	KindInvoice   Kind = "invoice"
	KindChallan   Kind = "challan"
)

// Valid reports whether the kind is one of the three renderable types.
func (k Kind) Valid() bool {
	return k == KindQuotation || k == KindInvoice || k == KindChallan
}

// Title is the banner text printed at the top of the document.
func (k Kind) Title() string {
	switch k {
	case KindQuotation:
		return "QUOTATION"
	case KindInvoice:
		return "INVOICE"
	case KindChallan:
		return "DELIVERY CHALLAN"
	}
	return ""
}

// Document is the kind-neutral, deterministic input both renderers consume.
// It is a read-only snapshot: renderers never see repository types and never
// mutate it.
type Document struct {
	Kind            Kind
	Number          string
	CustomerName    string
	CustomerAddress string
	CustomerEmail   string
	DeliveryAddress string
	Items           []entity.LineItem
	StoredSubtotal  document.Amount
	TaxRatePercent  document.Amount
	Notes           string
	Paid            bool
	CreatedAt       time.Time
}

// Priced reports whether the document carries monetary columns and totals.
// Challans never do.
func (d Document) Priced() bool { return d.Kind != KindChallan }

// Totals re-derives subtotal, tax and total from the line items. Both
// renderers print these figures and nothing else, which is what keeps the
// PDF and Word outputs numerically identical.
func (d Document) Totals() document.Totals {
	lineTotals := make([]document.Amount, 0, len(d.Items))
	for _, it := range d.Items {
		lineTotals = append(lineTotals, it.ResolvedTotal())
	}
	return document.ResolveTotals(lineTotals, d.StoredSubtotal, d.TaxRatePercent)
}

// FromQuotation builds the render input for a quotation.
func FromQuotation(q *entity.Quotation) Document {
	return Document{
		Kind:            KindQuotation,
		Number:          q.Number,
		CustomerName:    q.CustomerName,
		CustomerAddress: q.CustomerAddress,
		CustomerEmail:   q.CustomerEmail,
		Items:           q.Items,
		StoredSubtotal:  q.Subtotal,
		TaxRatePercent:  q.TaxRatePercent,
		Notes:           q.Notes,
		CreatedAt:       q.CreatedAt,
	}
}

// FromInvoice builds the render input for an invoice.
func FromInvoice(inv *entity.Invoice) Document {
	return Document{
		Kind:            KindInvoice,
		Number:          inv.Number,
		CustomerName:    inv.CustomerName,
		CustomerAddress: inv.CustomerAddress,
		CustomerEmail:   inv.CustomerEmail,
		Items:           inv.Items,
		StoredSubtotal:  inv.Subtotal,
		TaxRatePercent:  inv.TaxRatePercent,
		Notes:           inv.Notes,
		Paid:            inv.IsPaid(),
		CreatedAt:       inv.CreatedAt,
	}
}

// FromChallan builds the render input for a delivery challan.
func FromChallan(ch *entity.DeliveryChallan) Document {
	return Document{
		Kind:            KindChallan,
		Number:          ch.Number,
		CustomerName:    ch.CustomerName,
		CustomerAddress: ch.CustomerAddress,
		DeliveryAddress: ch.DeliveryAddress,
		Items:           ch.Items,
		Notes:           ch.Notes,
		CreatedAt:       ch.CreatedAt,
	}
}
