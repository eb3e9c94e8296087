package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/domain/document"
	"github.com/ledgerly/backoffice-api/internal/domain/entity"
	"github.com/ledgerly/backoffice-api/internal/infrastructure/pdf"
)

func sampleDocument(kind documents.Kind) documents.Document {
	return documents.Document{
		Kind:            kind,
		Number:          "QUO-2024-0007",
		CustomerName:    "Brambleside Interiors",
		CustomerAddress: "4 Priory Court, York, YO1 7PQ",
		CustomerEmail:   "orders@brambleside.co.uk",
		DeliveryAddress: "Unit 9, Fossgate Trading Estate, York",
		Items: []entity.LineItem{
			{Name: "Oak worktop 2.4m", Quantity: document.AmountFromInt(2), UnitPrice: document.AmountFromFloat(10.00)},
			{Name: "Fitting service", Quantity: document.AmountFromInt(1), UnitPrice: document.AmountFromFloat(5.50)},
		},
		TaxRatePercent: document.AmountFromInt(20),
		Notes:          "Payment due within 14 days.",
		CreatedAt:      time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC),
	}
}

func sampleOptions() documents.RenderOptions {
	return documents.RenderOptions{
		IncludeHeader:   true,
		IncludeFooter:   true,
		BusinessName:    "Harrow & Finch Ltd",
		BusinessAddress: "12 Mill Lane, Leeds, LS1 4AB",
		BusinessEmail:   "accounts@harrowfinch.co.uk",
		BusinessPhone:   "+44 113 496 0101",
	}
}

// PDF streams are compressed, so the assertions here are structural; the
// figure-level properties are covered on the DOCX renderer, whose XML the
// tests can read, and both renderers draw from the same resolver.

func TestRender_AllKindsProducePDF(t *testing.T) {
	r := pdf.NewRenderer()

	for _, kind := range []documents.Kind{
		documents.KindQuotation,
		documents.KindInvoice,
		documents.KindChallan,
	} {
		t.Run(string(kind), func(t *testing.T) {
			out, err := r.Render(sampleDocument(kind), sampleOptions())
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must start with the PDF magic")
		})
	}
}

func TestRender_PaidInvoice(t *testing.T) {
	doc := sampleDocument(documents.KindInvoice)
	doc.Paid = true

	out, err := pdf.NewRenderer().Render(doc, sampleOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_TogglesAndSparseRecords(t *testing.T) {
	r := pdf.NewRenderer()

	cases := []struct {
		name string
		doc  documents.Document
		opts documents.RenderOptions
	}{
		{"no header", sampleDocument(documents.KindInvoice), func() documents.RenderOptions {
			o := sampleOptions()
			o.IncludeHeader = false
			return o
		}()},
		{"no footer", sampleDocument(documents.KindInvoice), func() documents.RenderOptions {
			o := sampleOptions()
			o.IncludeFooter = false
			return o
		}()},
		{"no items", func() documents.Document {
			d := sampleDocument(documents.KindQuotation)
			d.Items = nil
			return d
		}(), sampleOptions()},
		{"nameless items", func() documents.Document {
			d := sampleDocument(documents.KindChallan)
			d.Items = []entity.LineItem{{Quantity: document.AmountFromInt(1)}}
			return d
		}(), sampleOptions()},
		{"empty options", sampleDocument(documents.KindInvoice), documents.RenderOptions{
			IncludeHeader: true,
			IncludeFooter: true,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := r.Render(tc.doc, tc.opts)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}
}
