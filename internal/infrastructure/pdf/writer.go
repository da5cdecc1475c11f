// Package pdf turns paginated document lines into the downloadable PDF binary.
package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"buffet_pizzas/internal/domain/document"
	"buffet_pizzas/internal/usecase/interfaces"
)

const (
	marginLeft = 15.0
	marginTop  = 15.0
	fontFamily = "Courier"
	fontSize   = 10.0
)

// Write renders the pages produced by document.Paginate into a PDF (A4,
// portrait, monospaced face matching the paginator's width budget).
func Write(pages []document.Page) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Forno & Festa", true)
	doc.SetMargins(marginLeft, marginTop, marginLeft)
	// document.Paginate already decided every break; fpdf must not add its own
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(fontFamily, "", fontSize)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		doc.AddPage()
		y := marginTop
		for _, line := range page {
			if line != "" {
				doc.Text(marginLeft, y+document.LineHeight, tr(line))
			}
			y += document.LineHeight
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Writer adapts Write to the renderer interface consumed by the usecases.

type Writer struct{}

var _ interfaces.IDocumentRenderer = (*Writer)(nil)

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Render(pages []document.Page) ([]byte, error) {
	return Write(pages)
}
