package document

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// pdf page geometry, in points (A4)
const (
	pdfMargin     = 50.0
	pdfLineFactor = 1.2
)

// RenderPDF renders a template as a PDF. The stored body is converted to
// plain text first; layout (centering, word wrap, pagination) is done here
// rather than left to a viewer.
func RenderPDF(name, subject, body string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pageW, pageH := pdf.GetPageSize()
	// cp1250 covers the Czech diacritics used by the templates
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")

	measure := func(text string, style Style) (float64, float64) {
		setFont(pdf, style)
		return pdf.GetStringWidth(tr(text)), style.Size * pdfLineFactor
	}

	layout := Layout{
		PageWidth:  pageW,
		PageHeight: pageH,
		Margin:     pdfMargin,
		Measure:    measure,
	}

	for _, page := range layout.Render(name, subject, PlainText(body)) {
		pdf.AddPage()
		for _, run := range page.Runs {
			setFont(pdf, run.Style)
			pdf.Text(run.X, run.Y, tr(run.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setFont(pdf *gofpdf.Fpdf, style Style) {
	variant := ""
	if style.Bold {
		variant = "B"
	}
	pdf.SetFont("Arial", variant, style.Size)
}
