package memory

import (
	"time"

	"github.com/ledgerly/backoffice-api/internal/domain/document"
	"github.com/ledgerly/backoffice-api/internal/domain/entity"
)

// SeedResult reports the IDs created by SeedDemoData so they can be logged
// and used to sign a token against the running instance.
type SeedResult struct {
	BusinessID  string
	QuotationID string
	InvoiceID   string
	ChallanID   string
}

// SeedDemoData loads one business with a quotation, a paid invoice and a
// delivery challan. Used when the binary runs with SEED_DEMO_DATA=true.
func SeedDemoData(s *Store) (SeedResult, error) {
	now := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)

	business := &entity.Business{
		Name:       "Harrow & Finch Ltd",
		Address:    "12 Mill Lane",
		City:       "Leeds",
		Postcode:   "LS1 4AB",
		Phone:      "+44 113 496 0101",
		Email:      "accounts@harrowfinch.co.uk",
		FooterText: "Harrow & Finch Ltd, Registered in England No. 08123456",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Businesses().Save(business); err != nil {
		return SeedResult{}, err
	}

	pricedItems := []entity.LineItem{
		{Name: "Oak worktop 2.4m", Quantity: document.AmountFromInt(2), UnitPrice: document.AmountFromFloat(180.00)},
		{Name: "Fitting service", Quantity: document.AmountFromInt(1), UnitPrice: document.AmountFromFloat(95.50)},
	}

	quotation := &entity.Quotation{
		BusinessID:      business.ID,
		Number:          "QUO-2024-0007",
		CustomerName:    "Brambleside Interiors",
		CustomerAddress: "4 Priory Court, York, YO1 7PQ",
		CustomerEmail:   "orders@brambleside.co.uk",
		Items:           pricedItems,
		TaxRatePercent:  document.AmountFromInt(20),
		Notes:           "Quotation valid for 30 days.",
		Status:          entity.QuotationStatusSent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Quotations().Save(quotation); err != nil {
		return SeedResult{}, err
	}

	invoice := &entity.Invoice{
		BusinessID:      business.ID,
		Number:          "INV-2024-0112",
		CustomerName:    "Brambleside Interiors",
		CustomerAddress: "4 Priory Court, York, YO1 7PQ",
		CustomerEmail:   "orders@brambleside.co.uk",
		Items:           pricedItems,
		TaxRatePercent:  document.AmountFromInt(20),
		Status:          entity.InvoiceStatusPaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Invoices().Save(invoice); err != nil {
		return SeedResult{}, err
	}

	challan := &entity.DeliveryChallan{
		BusinessID:      business.ID,
		Number:          "CHL-2024-0031",
		CustomerName:    "Brambleside Interiors",
		DeliveryAddress: "Unit 9, Fossgate Trading Estate, York",
		Items: []entity.LineItem{
			{Name: "Oak worktop 2.4m", Quantity: document.AmountFromInt(2), Unit: "pcs"},
			{Name: "Fixing kit", Quantity: document.AmountFromInt(4)},
		},
		Status:    entity.ChallanStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Challans().Save(challan); err != nil {
		return SeedResult{}, err
	}

	return SeedResult{
		BusinessID:  business.ID,
		QuotationID: quotation.ID,
		InvoiceID:   invoice.ID,
		ChallanID:   challan.ID,
	}, nil
}
