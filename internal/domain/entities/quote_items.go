package entities

import "buffet_pizzas/internal/domain/money"

// AdditionalItem is a named line adjusting the event total: positive values
// are extra charges, negative values are discounts. Items live only for one
// document-generation session; they are embedded in the generated text but not
// persisted with the booking.

type AdditionalItem struct {
	Description string         `json:"description"`
	UnitValue   money.Centavos `json:"unit_value"`
	Quantity    int            `json:"quantity"`
}

// LineTotal is unit value times quantity.
func (i AdditionalItem) LineTotal() money.Centavos {
	return i.UnitValue * money.Centavos(i.Quantity)
}

// IsDiscount reports whether the line lowers the total.
func (i AdditionalItem) IsDiscount() bool {
	return i.UnitValue < 0
}

// Installment is one scheduled partial payment of the post-deposit balance.
// The list is caller-supplied pass-through data: the documents render it in
// Seq order and nothing validates that the amounts reconcile to the remaining
// balance.

type Installment struct {
	Seq     int            `json:"seq"`
	Amount  money.Centavos `json:"amount"`
	DueDate string         `json:"due_date"`
	Status  string         `json:"status,omitempty"`
}
