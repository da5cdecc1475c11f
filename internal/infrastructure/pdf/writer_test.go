package pdf

import (
	"bytes"
	"testing"

	"buffet_pizzas/internal/domain/document"
)

func TestWrite(t *testing.T) {
	pages := []document.Page{
		{"RECIBO Nº ABC12345", "", "Recebemos de Maria da Silva a importância de R$ 988,00."},
		{"Segunda página"},
	}

	out, err := Write(pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", out[:min(16, len(out))])
	}
	// two pages requested
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Fatalf("expected a 2-page document")
	}
}

func TestWriteEmpty(t *testing.T) {
	out, err := Write([]document.Page{{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty PDF")
	}
}
