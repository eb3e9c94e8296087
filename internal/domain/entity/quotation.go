package entity

import (
	"time"

	"github.com/ledgerly/backoffice-api/internal/domain/document"
)

// Quotation lifecycle states.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusDeclined = "declined"
)

// Quotation is a priced offer to a customer. Stored totals are treated as
// advisory: rendering always re-derives them through document.ResolveTotals.
type Quotation struct {
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
