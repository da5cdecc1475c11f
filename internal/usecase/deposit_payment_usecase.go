package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"buffet_pizzas/internal/domain/document"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/pricing"
	"buffet_pizzas/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound = errors.New("deposit payment not found")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrBookingNotConfirmed    = errors.New("booking not confirmed")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// IDepositPaymentUseCase processes the entrada payment of a confirmed booking
// through the external provider and records the result. The charged amount is
// always the deposit derived from the current pricing configuration (or the
// manual override); the caller cannot choose it.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, bookingID string, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo     interfaces.IDepositPaymentRepository
	bookings interfaces.IBookingRepository
	config   interfaces.IPricingConfigRepository
	gateway  interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, bookings interfaces.IBookingRepository, config interfaces.IPricingConfigRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, bookings: bookings, config: config, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, bookingID string, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.DepositPayment{}, ErrInvalidBookingID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		log.Printf("[payment][usecase] invalid payload booking_id=%s", bookingID)
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, ErrGatewayNotConfigured
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if booking.ID == "" {
		return entities.DepositPayment{}, ErrBookingNotFound
	}
	if booking.Status != entities.BookingStatusConfirmado {
		log.Printf("[payment][usecase] booking not confirmed booking_id=%s status=%s", bookingID, booking.Status)
		return entities.DepositPayment{}, ErrBookingNotConfirmed
	}

	values, err := u.config.Values(ctx)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	cfg := entities.PricingConfigFromValues(values)
	total := pricing.ComputeTotal(booking.Adults, booking.Children, nil, cfg)
	quote := pricing.ComputeQuote(total, cfg, booking.DepositOverride)

	// The store is the source of truth for the charged amount; the caller's
	// payload only carries payment method and payer data.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = booking.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Entrada evento %s", document.FormatISODateBR(booking.EventDate))
	}
	reqMap["transaction_amount"] = quote.DepositAmount.Float64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	log.Printf("[payment][usecase] calling gateway booking_id=%s amount=%s", bookingID, quote.DepositAmount.Format())
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed booking_id=%s err=%v", bookingID, err)
		return entities.DepositPayment{}, err
	}

	status := entities.PaymentStatusAprovado
	if !strings.EqualFold(providerStatus, "approved") {
		status = entities.PaymentStatusNegado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed booking_id=%s err=%v", bookingID, err)
	}

	p := entities.DepositPayment{
		ID:                 providerID,
		BookingID:          booking.ID,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	log.Printf("[payment][usecase] deposit payment recorded booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}
