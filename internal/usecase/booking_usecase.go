package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/money"
	"buffet_pizzas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidBookingID    = errors.New("invalid booking id")
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrInvalidGuestCount   = errors.New("invalid guest count")
	ErrInvalidEventDate    = errors.New("invalid event date")
	ErrInvalidDepositValue = errors.New("invalid deposit value")
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IBookingUseCase exposes the booking lifecycle:
//   - the public quote form creates a pendente booking,
//   - staff edit it, confirm or cancel it,
//   - staff may set a manual deposit override that replaces the computed
//     entrada everywhere it is displayed.

type IBookingUseCase interface {
	CreateFromQuote(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	Confirm(ctx context.Context, id string) (entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
	SetDepositOverride(ctx context.Context, id string, rawValue string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo interfaces.IBookingRepository
	mail interfaces.IMailSender
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, mail interfaces.IMailSender) *BookingUseCase {
	return &BookingUseCase{repo: repo, mail: mail}
}

func (u *BookingUseCase) CreateFromQuote(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	b.ClientName = strings.TrimSpace(b.ClientName)
	if b.ClientName == "" {
		return entities.Booking{}, ErrInvalidClientName
	}
	if b.Adults < 0 || b.Children < 0 {
		return entities.Booking{}, ErrInvalidGuestCount
	}
	if !isoDatePattern.MatchString(strings.TrimSpace(b.EventDate)) {
		return entities.Booking{}, ErrInvalidEventDate
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.EventDate = strings.TrimSpace(b.EventDate)
	b.Status = entities.BookingStatusPendente
	b.DepositOverride = 0
	b.CreatedAt = now
	b.UpdatedAt = now

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}

	if u.mail != nil {
		// Best effort: a broken mail relay must not lose the lead.
		if err := u.mail.SendNewQuoteAlert(created); err != nil {
			log.Printf("[booking][usecase] quote alert failed booking_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) List(ctx context.Context) ([]entities.Booking, error) {
	return u.repo.List(ctx)
}

func (u *BookingUseCase) Update(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	b.ID = strings.TrimSpace(b.ID)
	if b.ID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b.ClientName = strings.TrimSpace(b.ClientName)
	if b.ClientName == "" {
		return entities.Booking{}, ErrInvalidClientName
	}
	if b.Adults < 0 || b.Children < 0 {
		return entities.Booking{}, ErrInvalidGuestCount
	}
	if !isoDatePattern.MatchString(strings.TrimSpace(b.EventDate)) {
		return entities.Booking{}, ErrInvalidEventDate
	}

	current, err := u.repo.GetByID(ctx, b.ID)
	if err != nil {
		return entities.Booking{}, err
	}
	if current.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	// status and override have dedicated operations
	b.Status = current.Status
	b.DepositOverride = current.DepositOverride
	b.CreatedAt = current.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, b)
}

func (u *BookingUseCase) Confirm(ctx context.Context, id string) (entities.Booking, error) {
	return u.updateStatus(ctx, id, entities.BookingStatusConfirmado)
}

func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	return u.updateStatus(ctx, id, entities.BookingStatusCancelado)
}

func (u *BookingUseCase) updateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

// SetDepositOverride stores a manually entered deposit. A non-numeric value is
// rejected before any write so the previous state always survives; passing
// zero clears the override and restores the percentage rule.
func (u *BookingUseCase) SetDepositOverride(ctx context.Context, id string, rawValue string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	deposit, ok := money.ParseDecimal(rawValue)
	if !ok || deposit < 0 {
		log.Printf("[booking][usecase] rejected deposit override booking_id=%s raw=%q", id, rawValue)
		return entities.Booking{}, ErrInvalidDepositValue
	}

	updated, err := u.repo.UpdateDepositOverrideByID(ctx, id, deposit)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}
