package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

// WordprocessingML main namespace.
const nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// run is one styled text fragment inside a paragraph. Size is in
// half-points (OOXML convention); zero means the document default. Color is
// RRGGBB without the hash.
type run struct {
	Text  string
	Bold  bool
	Size  int
	Color string
}

// par carries paragraph-level properties. Align is "", "center" or "right".
// Shade is an RRGGBB background fill. SpacingAfter is in twips.
type par struct {
	Align        string
	Shade        string
	SpacingAfter int
}

// cell is one table cell: a single paragraph with an optional shaded
// background. Width is in twips (dxa).
type cell struct {
	Text  string
	Width int
	Bold  bool
	Size  int
	Color string
	Shade string
	Align string
}

// addParagraph appends a w:p to the parent. Child element order follows the
// CT_PPr / CT_RPr schema sequences (shd before spacing before jc; b before
// color before sz), which Word enforces on load.
func addParagraph(parent *etree.Element, ps par, runs ...run) {
	p := parent.CreateElement("w:p")

	if ps.Align != "" || ps.Shade != "" || ps.SpacingAfter > 0 {
		pPr := p.CreateElement("w:pPr")
		if ps.Shade != "" {
			shd := pPr.CreateElement("w:shd")
			shd.CreateAttr("w:val", "clear")
			shd.CreateAttr("w:color", "auto")
			shd.CreateAttr("w:fill", ps.Shade)
		}
		if ps.SpacingAfter > 0 {
			spacing := pPr.CreateElement("w:spacing")
			spacing.CreateAttr("w:after", strconv.Itoa(ps.SpacingAfter))
		}
		if ps.Align != "" {
			jc := pPr.CreateElement("w:jc")
			jc.CreateAttr("w:val", ps.Align)
		}
	}

	for _, rn := range runs {
		r := p.CreateElement("w:r")
		if rn.Bold || rn.Size > 0 || rn.Color != "" {
			rPr := r.CreateElement("w:rPr")
			if rn.Bold {
				rPr.CreateElement("w:b")
			}
			if rn.Color != "" {
				c := rPr.CreateElement("w:color")
				c.CreateAttr("w:val", rn.Color)
			}
			if rn.Size > 0 {
				sz := rPr.CreateElement("w:sz")
				sz.CreateAttr("w:val", strconv.Itoa(rn.Size))
				szCs := rPr.CreateElement("w:szCs")
				szCs.CreateAttr("w:val", strconv.Itoa(rn.Size))
			}
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(rn.Text)
	}
}

// addTable appends a w:tbl with single-line borders on every edge and a
// fixed column grid. Widths are in twips.
func addTable(parent *etree.Element, widths []int) *etree.Element {
	total := 0
	for _, w := range widths {
		total += w
	}

	tbl := parent.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")

	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", strconv.Itoa(total))
	tblW.CreateAttr("w:type", "dxa")

	borders := tblPr.CreateElement("w:tblBorders")
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b := borders.CreateElement("w:" + edge)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:space", "0")
		b.CreateAttr("w:color", "auto")
	}

	grid := tbl.CreateElement("w:tblGrid")
	for _, w := range widths {
		gc := grid.CreateElement("w:gridCol")
		gc.CreateAttr("w:w", strconv.Itoa(w))
	}
	return tbl
}

// addTableRow appends a w:tr of single-paragraph cells.
func addTableRow(tbl *etree.Element, cells ...cell) {
	tr := tbl.CreateElement("w:tr")
	for _, c := range cells {
		tc := tr.CreateElement("w:tc")
		tcPr := tc.CreateElement("w:tcPr")
		tcW := tcPr.CreateElement("w:tcW")
		tcW.CreateAttr("w:w", strconv.Itoa(c.Width))
		tcW.CreateAttr("w:type", "dxa")
		if c.Shade != "" {
			shd := tcPr.CreateElement("w:shd")
			shd.CreateAttr("w:val", "clear")
			shd.CreateAttr("w:color", "auto")
			shd.CreateAttr("w:fill", c.Shade)
		}
		addParagraph(tc, par{Align: c.Align}, run{
			Text:  c.Text,
			Bold:  c.Bold,
			Size:  c.Size,
			Color: c.Color,
		})
	}
}
