// Package rendering produces the paginated PDF for a layout Document.
package rendering

import (
	"bytes"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/layout"
)

// Page geometry in points. Letter pages with roughly 0.7 inch margins;
// content overflow triggers automatic page breaks.
const (
	pageMargin   = 50.0
	contentWidth = 612.0 - 2*pageMargin
	bulletIndent = 14.0
)

// Two-column widths. Record rows give the title cell the wide column;
// skill rows give the label cell the narrow one.
const (
	recordLeftWidth  = 300.0
	recordRightWidth = 180.0
	skillLeftWidth   = 150.0
	skillRightWidth  = 330.0
)

// Line heights per style
const (
	nameLeading    = 22.0
	titleLeading   = 15.0
	contactLeading = 13.0
	sectionLeading = 14.0
	bodyLeading    = 14.0
	bulletLeading  = 12.0
)

type rgb struct{ r, g, b int }

var (
	textBlack   = rgb{0x00, 0x00, 0x00}
	contactGray = rgb{0x55, 0x55, 0x55}
	sectionFill = rgb{0xE5, 0xE8, 0xE8}
	sectionText = rgb{0x2C, 0x3E, 0x50}
	dateGray    = rgb{0x7F, 0x8C, 0x8D}
)

// RenderPDF lays doc out onto Letter pages and returns the PDF bytes.
// Rendering is CPU-bound and independent per call; no state is shared.
func RenderPDF(doc layout.Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	for _, block := range doc {
		r.renderBlock(block)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to build PDF document", Cause: err}
	}
	return buf.Bytes(), nil
}

// renderer walks a Document and writes styled cells to one fpdf page flow.
type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *renderer) renderBlock(block layout.Block) {
	switch b := block.(type) {
	case layout.Paragraph:
		r.renderParagraph(b)
	case layout.SectionHeader:
		r.renderSectionHeader(b)
	case layout.Row:
		r.renderRow(b)
	}
}

func (r *renderer) renderParagraph(p layout.Paragraph) {
	r.setTextColor(textBlack)

	switch p.Style {
	case layout.StyleName:
		r.pdf.SetFont("Helvetica", "B", 18)
		r.pdf.MultiCell(0, nameLeading, r.tr(p.Text), "", "C", false)
		r.pdf.Ln(6)
	case layout.StyleTitle:
		r.pdf.SetFont("Helvetica", "", 12)
		r.pdf.MultiCell(0, titleLeading, r.tr(p.Text), "", "C", false)
		r.pdf.Ln(6)
	case layout.StyleContact:
		r.pdf.SetFont("Helvetica", "", 10)
		r.setTextColor(contactGray)
		r.pdf.MultiCell(0, contactLeading, r.tr(p.Text), "", "C", false)
		r.pdf.Ln(16)
	case layout.StyleBullet:
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.Ln(2)
		r.pdf.SetX(pageMargin + bulletIndent)
		r.pdf.MultiCell(contentWidth-bulletIndent, bulletLeading, r.tr("• "+p.Text), "", "L", false)
	default:
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.MultiCell(0, bodyLeading, r.tr(p.Text), "", "L", false)
	}
}

func (r *renderer) renderSectionHeader(h layout.SectionHeader) {
	r.pdf.Ln(12)
	r.pdf.SetFont("Helvetica", "B", 11)
	r.setFillColor(sectionFill)
	r.setTextColor(sectionText)
	r.pdf.MultiCell(0, sectionLeading, r.tr(h.Title), "", "L", true)
	r.pdf.Ln(6)
}

// renderRow draws a two-column row with both cells top-aligned.
func (r *renderer) renderRow(row layout.Row) {
	leftWidth, rightWidth := recordLeftWidth, recordRightWidth
	leading := bodyLeading
	if row.Kind == layout.RowSkill {
		leftWidth, rightWidth = skillLeftWidth, skillRightWidth
		leading = bulletLeading
	}

	x, y := r.pdf.GetXY()

	r.setTextColor(textBlack)
	if row.Kind == layout.RowSkill {
		r.pdf.SetFont("Helvetica", "B", 10)
	} else {
		r.pdf.SetFont("Helvetica", "", 10)
	}
	r.pdf.MultiCell(leftWidth, leading, r.tr(row.Left), "", "L", false)
	leftBottom := r.pdf.GetY()

	r.pdf.SetXY(x+leftWidth, y)
	r.pdf.SetFont("Helvetica", "", 10)
	align := "L"
	if row.Kind == layout.RowRecord {
		r.setTextColor(dateGray)
		align = "R"
	}
	r.pdf.MultiCell(rightWidth, leading, r.tr(row.Right), "", align, false)
	rightBottom := r.pdf.GetY()

	// Continue below the taller of the two cells
	r.pdf.SetY(math.Max(leftBottom, rightBottom))
}

func (r *renderer) setTextColor(c rgb) {
	r.pdf.SetTextColor(c.r, c.g, c.b)
}

func (r *renderer) setFillColor(c rgb) {
	r.pdf.SetFillColor(c.r, c.g, c.b)
}
