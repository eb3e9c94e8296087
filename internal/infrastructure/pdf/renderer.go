// Package pdf renders quotations, invoices and delivery challans with
// Maroto v2.
//
// A4 page layout, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: business name / address / email | phone            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TITLE BAND: QUOTATION / INVOICE / DELIVERY CHALLAN         │
//	│  Document Number (left)              Date (right)  [PAID]   │
//	│  BILL TO: name / address / email                            │
//	│  TABLE: Item | Quantity | Unit Price | Total  (or | Unit)   │
//	│  TOTALS: Subtotal / Tax (rate%) / ── / Total                │
//	│  NOTES                                                      │
//	│  FOOTER: footer text | business name | thank-you line       │
//	└─────────────────────────────────────────────────────────────┘
//
// Every optional section collapses without leaving a gap when its source
// field is absent.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/domain/document"
	"github.com/ledgerly/backoffice-api/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorBrand  = &props.Color{Red: 44, Green: 62, Blue: 80}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe = &props.Color{Red: 242, Green: 242, Blue: 242}
	colorPanel  = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorPaid   = &props.Color{Red: 46, Green: 125, Blue: 50}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// Renderer implements documents.Renderer for PDF output. Stateless: every
// call builds its own Maroto instance, so concurrent renders never share
// anything.
type Renderer struct{}

// NewRenderer constructs the PDF renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render produces the PDF bytes for one document.
func (r *Renderer) Render(doc documents.Document, opts documents.RenderOptions) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(18).WithRightMargin(18).
		WithTopMargin(18).WithBottomMargin(18).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Kind.Title()+" "+doc.Number, true).
		Build()

	m := maroto.New(cfg)

	if opts.IncludeFooter {
		if err := m.RegisterFooter(footerRow(opts)); err != nil {
			return nil, fmt.Errorf("pdf: register footer: %w", err)
		}
	}

	if opts.IncludeHeader {
		for _, hr := range headerRows(opts) {
			m.AddRows(hr)
		}
	}

	m.AddRows(titleBandRow(doc))
	m.AddRows(metadataRow(doc))
	if doc.Paid {
		m.AddRows(paidStampRow())
	}
	for _, cr := range customerRows(doc) {
		m.AddRows(cr)
	}

	m.AddRows(row.New(3))
	m.AddRows(tableHeaderRow(doc))
	for i, it := range doc.Items {
		m.AddRows(itemRow(doc, i, it))
	}

	if doc.Priced() {
		for _, tr := range totalsRows(doc) {
			m.AddRows(tr)
		}
	}

	if doc.Notes != "" {
		for _, nr := range notesRows(doc) {
			m.AddRows(nr)
		}
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return generated.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRows: business identity block plus the separator rule. Absent fields
// produce no row.
func headerRows(opts documents.RenderOptions) []core.Row {
	var rows []core.Row

	if opts.BusinessName != "" {
		rows = append(rows, row.New(9).Add(col.New(12).Add(
			text.New(opts.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorBrand, Top: 1,
			}),
		)))
	}
	if opts.BusinessAddress != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(opts.BusinessAddress, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	if contact := contactLine(opts); contact != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(contact, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	rows = append(rows, line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	return rows
}

// titleBandRow: filled band with the centered document title.
func titleBandRow(doc documents.Document) core.Row {
	return row.New(10).WithStyle(&props.Cell{BackgroundColor: colorBrand}).Add(
		col.New(12).Add(text.New(doc.Kind.Title(), props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center,
			Color: colorWhite, Top: 2,
		})),
	)
}

// metadataRow: document number left, UK-formatted creation date right.
func metadataRow(doc documents.Document) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New("Document Number: "+doc.Number, props.Text{
			Size: 9, Top: 2,
		})),
		col.New(6).Add(text.New("Date: "+document.FormatDate(doc.CreatedAt), props.Text{
			Size: 9, Align: align.Right, Color: colorGray, Top: 2,
		})),
	)
}

// paidStampRow: settled invoices carry a large green PAID mark anchored to
// the right. Maroto's row model cannot rotate text, so the stamp keeps its
// size, weight and colour without the tilt.
func paidStampRow() core.Row {
	return row.New(14).Add(
		col.New(7),
		col.New(5).Add(text.New("PAID", props.Text{
			Style: fontstyle.Bold, Size: 28, Align: align.Right, Color: colorPaid,
		})),
	)
}

// customerRows: Bill To heading plus one row per present field. Customer
// email is only printed on priced documents.
func customerRows(doc documents.Document) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Bill To:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(doc.CustomerName, props.Text{Size: 9}),
		)),
	}
	if doc.CustomerAddress != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(doc.CustomerAddress, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	if doc.CustomerEmail != "" && doc.Priced() {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(doc.CustomerEmail, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	if doc.DeliveryAddress != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Deliver To: "+doc.DeliveryAddress, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	return rows
}

// tableHeaderRow: filled brand band, white bold labels. Column sets differ
// per kind: priced documents get Unit Price and Total, challans get Unit.
func tableHeaderRow(doc documents.Document) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	style := &props.Cell{
		BackgroundColor: colorBrand,
		BorderColor:     colorGray,
		BorderType:      border.Full,
		BorderThickness: 0.2,
	}
	if doc.Priced() {
		return row.New(8).WithStyle(style).Add(
			h("Item", 5, align.Left),
			h("Quantity", 2, align.Center),
			h("Unit Price", 2, align.Right),
			h("Total", 3, align.Right),
		)
	}
	return row.New(8).WithStyle(style).Add(
		h("Item", 6, align.Left),
		h("Quantity", 3, align.Center),
		h("Unit", 3, align.Center),
	)
}

// itemRow: one body row. Even indices get a light band for scanability.
// Missing names render "N/A"; missing challan units default to "pcs"; a
// zero-quantity line still renders.
func itemRow(doc documents.Document, index int, it entity.LineItem) core.Row {
	style := &props.Cell{
		BorderColor:     colorGray,
		BorderType:      border.Full,
		BorderThickness: 0.2,
	}
	if index%2 == 0 {
		style.BackgroundColor = colorStripe
	}

	name := it.Name
	if name == "" {
		name = "N/A"
	}

	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 2.5, Left: 1, Right: 1,
		}))
	}

	if doc.Priced() {
		return row.New(9).WithStyle(style).Add(
			cell(name, 5, align.Left),
			cell(document.FormatQuantity(it.Quantity), 2, align.Center),
			cell(document.FormatMoney(it.UnitPrice), 2, align.Right),
			cell(document.FormatMoney(it.ResolvedTotal()), 3, align.Right),
		)
	}

	unit := it.Unit
	if unit == "" {
		unit = "pcs"
	}
	return row.New(9).WithStyle(style).Add(
		cell(name, 6, align.Left),
		cell(document.FormatQuantity(it.Quantity), 3, align.Center),
		cell(unit, 3, align.Center),
	)
}

// totalsRows: right-anchored panel with subtotal, tax, a divider and the
// emphasised grand total. Figures come from Document.Totals, never from
// stored fields.
func totalsRows(doc documents.Document) []core.Row {
	totals := doc.Totals()
	panel := &props.Cell{BackgroundColor: colorPanel}

	entryRow := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(7),
			col.New(3).WithStyle(panel).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1.5, Right: 2,
			})),
			col.New(2).WithStyle(panel).Add(text.New(value, props.Text{
				Size: 9, Align: align.Right, Top: 1.5, Right: 1,
			})),
		)
	}

	return []core.Row{
		row.New(3),
		entryRow("Subtotal:", document.FormatMoney(totals.Subtotal)),
		entryRow("Tax ("+document.FormatRate(doc.TaxRatePercent)+"):", document.FormatMoney(totals.TaxAmount)),
		row.New(1).Add(
			col.New(7),
			line.NewCol(5, props.Line{Color: colorGray, Thickness: 0.3}),
		),
		row.New(9).Add(
			col.New(7),
			col.New(3).WithStyle(panel).Add(text.New("Total:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorBrand, Top: 2, Right: 2,
			})),
			col.New(2).WithStyle(panel).Add(text.New(document.FormatMoney(totals.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorBrand, Top: 2, Right: 1,
			})),
		),
	}
}

// notesRows: heading plus the wrapped notes text.
func notesRows(doc documents.Document) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(6).Add(col.New(12).Add(
			text.New("Notes:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New(doc.Notes, props.Text{Size: 9, Color: colorGray}),
		)),
	}
}

// footerRow: centred small gray line anchored to the bottom margin on every
// page via Maroto's footer registration.
func footerRow(opts documents.RenderOptions) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(opts.FooterLine(), props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// contactLine joins email and phone with a pipe, skipping absent values.
func contactLine(opts documents.RenderOptions) string {
	switch {
	case opts.BusinessEmail != "" && opts.BusinessPhone != "":
		return opts.BusinessEmail + " | " + opts.BusinessPhone
	case opts.BusinessEmail != "":
		return opts.BusinessEmail
	default:
		return opts.BusinessPhone
	}
}
