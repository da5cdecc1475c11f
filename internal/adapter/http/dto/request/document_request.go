package request

import (
	"strings"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/money"
)

// DocumentItemRequest is one additional charge or discount line. Negative
// unit values are discounts.
type DocumentItemRequest struct {
	Description string  `json:"description" binding:"required"`
	UnitValue   float64 `json:"unit_value"`
	Quantity    int     `json:"quantity"`
}

// DocumentInstallmentRequest is one scheduled partial payment of the balance.
type DocumentInstallmentRequest struct {
	Seq     int     `json:"seq"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date"`
	Status  string  `json:"status"`
}

// DocumentRequest is the body of the contract/receipt generation endpoints.
// Items and installments exist only for this generation; nothing here is
// persisted with the booking.
type DocumentRequest struct {
	Items        []DocumentItemRequest        `json:"items"`
	Installments []DocumentInstallmentRequest `json:"installments"`
}

func (r DocumentRequest) ToItems() []entities.AdditionalItem {
	if len(r.Items) == 0 {
		return nil
	}
	items := make([]entities.AdditionalItem, 0, len(r.Items))
	for _, it := range r.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, entities.AdditionalItem{
			Description: strings.TrimSpace(it.Description),
			UnitValue:   money.FromFloat(it.UnitValue),
			Quantity:    qty,
		})
	}
	return items
}

func (r DocumentRequest) ToInstallments() []entities.Installment {
	if len(r.Installments) == 0 {
		return nil
	}
	installments := make([]entities.Installment, 0, len(r.Installments))
	for _, in := range r.Installments {
		installments = append(installments, entities.Installment{
			Seq:     in.Seq,
			Amount:  money.FromFloat(in.Amount),
			DueDate: strings.TrimSpace(in.DueDate),
			Status:  strings.TrimSpace(in.Status),
		})
	}
	return installments
}
