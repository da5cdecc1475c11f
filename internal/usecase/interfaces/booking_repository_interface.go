package interfaces

import (
	"context"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/money"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Contract shared with the usecases: a lookup that finds nothing returns a
// zero-value Booking with an empty ID and a nil error; errors are reserved for
// the store itself failing.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	UpdateDepositOverrideByID(ctx context.Context, id string, deposit money.Centavos) (entities.Booking, error)
}
