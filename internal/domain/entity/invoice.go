package entity

import (
	"time"

	"github.com/ledgerly/backoffice-api/internal/domain/document"
)

// Invoice lifecycle states. A paid invoice renders with a PAID stamp.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is a bill issued to a customer. Structurally a quotation with a
// payment lifecycle.
type Invoice struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"businessId"`
	Number          string          `json:"documentNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	Items           []LineItem      `json:"items"`
	Subtotal        document.Amount `json:"subtotal"`
	TaxRatePercent  document.Amount `json:"taxRatePercent"`
	TaxAmount       document.Amount `json:"taxAmount"`
	Total           document.Amount `json:"total"`
	Notes           string          `json:"notes,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsPaid reports whether the invoice has been settled.
func (i Invoice) IsPaid() bool { return i.Status == InvoiceStatusPaid }
