package interfaces

import (
	"context"

	"buffet_pizzas/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error)
}
