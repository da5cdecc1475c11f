package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"buffet_pizzas/internal/domain/document"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/pricing"
	"buffet_pizzas/internal/usecase/interfaces"
)

var ErrInvalidDocumentKind = errors.New("invalid document kind")

// IDocumentUseCase runs the quote-to-document pipeline for one booking:
// pricing, deposit, composition, pagination and PDF rendering. Items and
// installments are session-scoped inputs supplied with each request; nothing
// about the generated document is persisted.

type IDocumentUseCase interface {
	Generate(ctx context.Context, kind entities.DocumentKind, bookingID string, items []entities.AdditionalItem, installments []entities.Installment) (entities.GeneratedDocument, error)
}

type DocumentUseCase struct {
	bookings interfaces.IBookingRepository
	config   interfaces.IPricingConfigRepository
	renderer interfaces.IDocumentRenderer
	now      func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(bookings interfaces.IBookingRepository, config interfaces.IPricingConfigRepository, renderer interfaces.IDocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{bookings: bookings, config: config, renderer: renderer, now: time.Now}
}

func (u *DocumentUseCase) Generate(ctx context.Context, kind entities.DocumentKind, bookingID string, items []entities.AdditionalItem, installments []entities.Installment) (entities.GeneratedDocument, error) {
	if kind != entities.DocumentKindContrato && kind != entities.DocumentKindRecibo {
		return entities.GeneratedDocument{}, ErrInvalidDocumentKind
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.GeneratedDocument{}, err
	}
	if booking.ID == "" {
		return entities.GeneratedDocument{}, ErrBookingNotFound
	}

	values, err := u.config.Values(ctx)
	if err != nil {
		return entities.GeneratedDocument{}, err
	}
	cfg := entities.PricingConfigFromValues(values)

	total := pricing.ComputeTotal(booking.Adults, booking.Children, items, cfg)
	quote := pricing.ComputeQuote(total, cfg, booking.DepositOverride)

	body := document.Compose(kind, document.Input{
		Booking:      booking,
		Quote:        quote,
		Items:        items,
		Installments: installments,
		GeneratedAt:  u.now(),
	})

	pdf, err := u.renderer.Render(document.Paginate(body))
	if err != nil {
		return entities.GeneratedDocument{}, err
	}

	doc := entities.GeneratedDocument{
		Kind:     kind,
		Body:     body,
		FileName: document.FileName(kind, booking.ClientName),
		PDF:      pdf,
	}
	log.Printf("[document][usecase] generated kind=%s booking_id=%s total=%s deposit=%s file=%s",
		kind, booking.ID, quote.Total.Format(), quote.DepositAmount.Format(), doc.FileName)
	return doc, nil
}
