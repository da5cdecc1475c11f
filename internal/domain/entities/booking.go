package entities

import (
	"time"

	"buffet_pizzas/internal/domain/money"
)

// BookingStatus represents the lifecycle of an event booking (orçamento de festa).
//
// Domain notes:
//   - A booking is created as pendente by the public quote form.
//   - Staff confirm or cancel it from the admin console; documents can be
//     generated at any point of the lifecycle.

type BookingStatus string

const (
	BookingStatusPendente   BookingStatus = "pendente"
	BookingStatusConfirmado BookingStatus = "confirmado"
	BookingStatusCancelado  BookingStatus = "cancelado"
)

// Booking is the event request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Date/time representation:
//   - EventDate is an ISO calendar date string (YYYY-MM-DD) interpreted as UTC
//     midnight. It is never parsed through locale-aware time parsing; document
//     formatting splits the tokens manually to avoid day-shift bugs.
//   - StartTime is "HH:MM".
//
// DepositOverride, when > 0, replaces the percentage-derived deposit everywhere
// the deposit is shown.

type Booking struct {
	ID                 string          `json:"id"`
	ClientName         string          `json:"client_name"`
	ClientCPF          string          `json:"client_cpf"`
	ResidentialAddress string          `json:"residential_address"`
	EventAddress       string          `json:"event_address"`
	EventDate          string          `json:"event_date"`
	StartTime          string          `json:"start_time"`
	Adults             int             `json:"adults"`
	Children           int             `json:"children"`
	Notes              string          `json:"notes,omitempty"`
	Status             BookingStatus   `json:"status"`
	DepositOverride    money.Centavos  `json:"deposit_override,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Guests returns the total headcount used by pricing and staffing.
func (b Booking) Guests() int {
	return b.Adults + b.Children
}
