package entity

import "github.com/ledgerly/backoffice-api/internal/domain/document"

// LineItem is one row of a quotation, invoice or delivery challan.
// Quantity is always present. Unit is only meaningful on challans;
// UnitPrice and Total only on quotations and invoices. Numeric fields use
// document.Amount so decimal-as-text values from older records decode
// without failing.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  document.Amount `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
	UnitPrice document.Amount `json:"unitPrice,omitempty"`
	Total     document.Amount `json:"total,omitempty"`
}

// ResolvedTotal is the printable total of the line (stored value, or
// quantity × unit price when the stored value is zero).
func (li LineItem) ResolvedTotal() document.Amount {
	return document.ResolveLineTotal(li.Total, li.Quantity, li.UnitPrice)
}
