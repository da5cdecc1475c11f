package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the deposit payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DepositPayment records the entrada (down payment) of a booking as processed
// by the external payment provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original response body (JSON) for
//     traceability; ProviderPayload is the parsed form, useful for debugging.

type DepositPayment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
