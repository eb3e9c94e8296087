package documents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/domain"
	"github.com/ledgerly/backoffice-api/internal/domain/entity"
)

func TestParseFormat(t *testing.T) {
	got, err := documents.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, documents.FormatPDF, got, "empty format defaults to pdf")

	got, err = documents.ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, documents.FormatPDF, got)

	got, err = documents.ParseFormat("word")
	require.NoError(t, err)
	assert.Equal(t, documents.FormatWord, got)

	_, err = documents.ParseFormat("csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = documents.ParseFormat("PDF")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "format matching is case sensitive")
}

func TestFormat_MIMEAndExt(t *testing.T) {
	assert.Equal(t, "application/pdf", documents.FormatPDF.MIME())
	assert.Equal(t, "pdf", documents.FormatPDF.Ext())
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		documents.FormatWord.MIME())
	assert.Equal(t, "docx", documents.FormatWord.Ext())
}

func TestKind(t *testing.T) {
	assert.True(t, documents.KindInvoice.Valid())
	assert.False(t, documents.Kind("receipt").Valid())

	assert.Equal(t, "QUOTATION", documents.KindQuotation.Title())
	assert.Equal(t, "INVOICE", documents.KindInvoice.Title())
	assert.Equal(t, "DELIVERY CHALLAN", documents.KindChallan.Title())
	assert.False(t, documents.Document{Kind: documents.KindChallan}.Priced())
	assert.True(t, documents.Document{Kind: documents.KindQuotation}.Priced())
}

func TestRenderOptions_FooterLine(t *testing.T) {
	opts := documents.RenderOptions{
		FooterText:   "Terms: net 14 days.",
		BusinessName: "Harrow & Finch Ltd",
	}
	assert.Equal(t, "Terms: net 14 days.", opts.FooterLine())

	opts.FooterText = ""
	assert.Equal(t, "Harrow & Finch Ltd", opts.FooterLine())

	opts.BusinessName = ""
	assert.Equal(t, documents.DefaultFooter, opts.FooterLine())
}

func TestFromInvoice_CarriesPaidFlag(t *testing.T) {
	inv := &entity.Invoice{Number: "INV-1", Status: entity.InvoiceStatusPaid}
	assert.True(t, documents.FromInvoice(inv).Paid)

	inv.Status = entity.InvoiceStatusSent
	assert.False(t, documents.FromInvoice(inv).Paid)
}
