package interfaces

import "buffet_pizzas/internal/domain/document"

// IDocumentRenderer turns paginated document lines into the final downloadable
// binary (PDF in production).
type IDocumentRenderer interface {
	Render(pages []document.Page) ([]byte, error)
}
