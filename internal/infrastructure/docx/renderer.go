// Package docx renders the same logical document as the PDF renderer using
// flow WordprocessingML: paragraphs and a bordered table instead of
// absolute positioning. Section order, optional-section rules and every
// printed figure mirror the PDF output; the only deviations are the ones
// flow layout forces (the date is a right-aligned paragraph rather than a
// column, the PAID stamp is not rotated).
package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/domain/document"
	"github.com/ledgerly/backoffice-api/internal/domain/entity"
)

// ── Palette / metrics ─────────────────────────────────────────────────────────

const (
	hexBrand  = "2C3E50"
	hexGray   = "646464"
	hexWhite  = "FFFFFF"
	hexStripe = "F2F2F2"
	hexPaid   = "2E7D32"
)

// A4 page and content metrics in twips. Content width is the page minus the
// 50pt (1000 twips) margins.
const (
	pageWidth    = 11906
	pageHeight   = 16838
	pageMargin   = 1000
	contentWidth = pageWidth - 2*pageMargin
)

// Font sizes in half-points.
const (
	sizeName  = 32
	sizeTitle = 28
	sizeBody  = 18
	sizeSmall = 16
	sizeTotal = 24
	sizePaid  = 48
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// Renderer implements documents.Renderer for Word output. Output is fully
// deterministic: the same document and options always serialize to
// byte-identical .docx content.
type Renderer struct{}

// NewRenderer constructs the Word renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render produces the .docx bytes for one document.
func (r *Renderer) Render(doc documents.Document, opts documents.RenderOptions) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := x.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsMain)
	body := root.CreateElement("w:body")

	if opts.IncludeHeader {
		writeHeader(body, opts)
	}
	writeTitle(body, doc)
	writeMetadata(body, doc)
	if doc.Paid {
		writePaidStamp(body)
	}
	writeCustomer(body, doc)
	writeItemsTable(body, doc)
	if doc.Priced() {
		writeTotals(body, doc)
	}
	if doc.Notes != "" {
		writeNotes(body, doc)
	}
	if opts.IncludeFooter {
		writeFooter(body, opts)
	}
	writeSectionProps(body)

	out, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("docx: serialize document: %w", err)
	}
	return packDocument(out)
}

// ── Sections ──────────────────────────────────────────────────────────────────

// writeHeader: business identity paragraphs. An absent field produces no
// paragraph at all, not a blank one.
func writeHeader(body *etree.Element, opts documents.RenderOptions) {
	if opts.BusinessName != "" {
		addParagraph(body, par{}, run{
			Text: opts.BusinessName, Bold: true, Size: sizeName, Color: hexBrand,
		})
	}
	if opts.BusinessAddress != "" {
		addParagraph(body, par{}, run{
			Text: opts.BusinessAddress, Size: sizeBody, Color: hexGray,
		})
	}
	if contact := contactText(opts); contact != "" {
		addParagraph(body, par{SpacingAfter: 120}, run{
			Text: contact, Size: sizeSmall, Color: hexGray,
		})
	}
}

// writeTitle: centred bold band matching the PDF's three title strings.
func writeTitle(body *etree.Element, doc documents.Document) {
	addParagraph(body, par{Align: "center", Shade: hexBrand, SpacingAfter: 160}, run{
		Text: doc.Kind.Title(), Bold: true, Size: sizeTitle, Color: hexWhite,
	})
}

// writeMetadata: bold-labelled document number, then the right-aligned
// creation date.
func writeMetadata(body *etree.Element, doc documents.Document) {
	addParagraph(body, par{},
		run{Text: "Document Number: ", Bold: true, Size: sizeBody},
		run{Text: doc.Number, Size: sizeBody},
	)
	addParagraph(body, par{Align: "right", SpacingAfter: 120},
		run{Text: "Date: " + document.FormatDate(doc.CreatedAt), Size: sizeBody, Color: hexGray},
	)
}

// writePaidStamp: rotation is not reproducible in flow layout; colour,
// weight and size carry the semantics.
func writePaidStamp(body *etree.Element) {
	addParagraph(body, par{Align: "right", SpacingAfter: 120}, run{
		Text: "PAID", Bold: true, Size: sizePaid, Color: hexPaid,
	})
}

// writeCustomer: Bill To heading plus one paragraph per present field, same
// omission rules as the PDF.
func writeCustomer(body *etree.Element, doc documents.Document) {
	addParagraph(body, par{}, run{Text: "Bill To:", Bold: true, Size: sizeBody})
	addParagraph(body, par{}, run{Text: doc.CustomerName, Size: sizeBody})
	if doc.CustomerAddress != "" {
		addParagraph(body, par{}, run{Text: doc.CustomerAddress, Size: sizeBody, Color: hexGray})
	}
	if doc.CustomerEmail != "" && doc.Priced() {
		addParagraph(body, par{}, run{Text: doc.CustomerEmail, Size: sizeBody, Color: hexGray})
	}
	if doc.DeliveryAddress != "" {
		addParagraph(body, par{}, run{Text: "Deliver To: " + doc.DeliveryAddress, Size: sizeBody, Color: hexGray})
	}
	addParagraph(body, par{SpacingAfter: 80})
}

// writeItemsTable: brand-shaded header row with white bold text, body rows
// banded by index parity, full single-line grid. Column sets match the PDF
// exactly.
func writeItemsTable(body *etree.Element, doc documents.Document) {
	var widths []int
	var headers []string
	if doc.Priced() {
		// Item 40% | Quantity 15% | Unit Price 20% | Total 25%
		widths = []int{
			contentWidth * 40 / 100,
			contentWidth * 15 / 100,
			contentWidth * 20 / 100,
			contentWidth * 25 / 100,
		}
		headers = []string{"Item", "Quantity", "Unit Price", "Total"}
	} else {
		// Item 50% | Quantity 25% | Unit 25%
		widths = []int{
			contentWidth * 50 / 100,
			contentWidth * 25 / 100,
			contentWidth * 25 / 100,
		}
		headers = []string{"Item", "Quantity", "Unit"}
	}

	tbl := addTable(body, widths)

	headerCells := make([]cell, len(headers))
	for i, h := range headers {
		a := "center"
		if i == 0 {
			a = ""
		}
		headerCells[i] = cell{
			Text: h, Width: widths[i], Bold: true, Size: sizeSmall,
			Color: hexWhite, Shade: hexBrand, Align: a,
		}
	}
	addTableRow(tbl, headerCells...)

	for i, it := range doc.Items {
		addTableRow(tbl, itemCells(doc, i, it, widths)...)
	}

	addParagraph(body, par{SpacingAfter: 80})
}

// itemCells builds one body row with the same defaults as the PDF: "N/A"
// for a missing name, "pcs" for a missing challan unit.
func itemCells(doc documents.Document, index int, it entity.LineItem, widths []int) []cell {
	shade := ""
	if index%2 == 0 {
		shade = hexStripe
	}

	name := it.Name
	if name == "" {
		name = "N/A"
	}

	if doc.Priced() {
		return []cell{
			{Text: name, Width: widths[0], Size: sizeSmall, Shade: shade},
			{Text: document.FormatQuantity(it.Quantity), Width: widths[1], Size: sizeSmall, Shade: shade, Align: "center"},
			{Text: document.FormatMoney(it.UnitPrice), Width: widths[2], Size: sizeSmall, Shade: shade, Align: "right"},
			{Text: document.FormatMoney(it.ResolvedTotal()), Width: widths[3], Size: sizeSmall, Shade: shade, Align: "right"},
		}
	}

	unit := it.Unit
	if unit == "" {
		unit = "pcs"
	}
	return []cell{
		{Text: name, Width: widths[0], Size: sizeSmall, Shade: shade},
		{Text: document.FormatQuantity(it.Quantity), Width: widths[1], Size: sizeSmall, Shade: shade, Align: "center"},
		{Text: unit, Width: widths[2], Size: sizeSmall, Shade: shade, Align: "center"},
	}
}

// writeTotals: three right-aligned paragraphs; the grand total is the
// emphasised one. Same resolved figures as the PDF by construction.
func writeTotals(body *etree.Element, doc documents.Document) {
	totals := doc.Totals()

	addParagraph(body, par{Align: "right"},
		run{Text: "Subtotal: ", Bold: true, Size: sizeBody},
		run{Text: document.FormatMoney(totals.Subtotal), Size: sizeBody},
	)
	addParagraph(body, par{Align: "right"},
		run{Text: "Tax (" + document.FormatRate(doc.TaxRatePercent) + "): ", Bold: true, Size: sizeBody},
		run{Text: document.FormatMoney(totals.TaxAmount), Size: sizeBody},
	)
	addParagraph(body, par{Align: "right", SpacingAfter: 120},
		run{Text: "Total: ", Bold: true, Size: sizeTotal, Color: hexBrand},
		run{Text: document.FormatMoney(totals.Total), Bold: true, Size: sizeTotal, Color: hexBrand},
	)
}

// writeNotes: bold heading then the notes text.
func writeNotes(body *etree.Element, doc documents.Document) {
	addParagraph(body, par{}, run{Text: "Notes:", Bold: true, Size: sizeBody})
	addParagraph(body, par{SpacingAfter: 120}, run{Text: doc.Notes, Size: sizeBody})
}

// writeFooter: single centred paragraph with the shared content-priority
// fallback.
func writeFooter(body *etree.Element, opts documents.RenderOptions) {
	addParagraph(body, par{Align: "center"}, run{
		Text: opts.FooterLine(), Size: sizeSmall, Color: hexGray,
	})
}

// writeSectionProps: A4 with 50pt margins, matching the PDF page setup.
func writeSectionProps(body *etree.Element) {
	sectPr := body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", strconv.Itoa(pageWidth))
	pgSz.CreateAttr("w:h", strconv.Itoa(pageHeight))
	pgMar := sectPr.CreateElement("w:pgMar")
	for _, edge := range []string{"top", "right", "bottom", "left"} {
		pgMar.CreateAttr("w:"+edge, strconv.Itoa(pageMargin))
	}
}

// contactText joins email and phone with a pipe, skipping absent values.
func contactText(opts documents.RenderOptions) string {
	switch {
	case opts.BusinessEmail != "" && opts.BusinessPhone != "":
		return opts.BusinessEmail + " | " + opts.BusinessPhone
	case opts.BusinessEmail != "":
		return opts.BusinessEmail
	default:
		return opts.BusinessPhone
	}
}
